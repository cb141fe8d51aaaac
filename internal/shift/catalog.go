// Package shift holds the fixed reference data of the library's
// daily shifts: the shift catalog, the combination price table and
// the seat numbering scheme.  Everything here is pure and
// deterministic; there is no database or clock access.
package shift

// Shift ids as stored in the database and exchanged with clients.
const (
	Morning = "morning"
	Noon    = "noon"
	Evening = "evening"
	Night   = "night"
)

// Shift describes one bookable daily time window.
//
// Fields:
//  ID        – canonical shift id (morning, noon, evening, night).
//  Name      – display name.
//  TimeRange – human-readable opening hours.
//  Price     – monthly price when the shift is booked on its own.
type Shift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TimeRange string `json:"time_range"`
	Price     uint32 `json:"price"`
}

// catalog is the fixed list of shifts in canonical display order.
var catalog = []Shift{
	{ID: Morning, Name: "Morning", TimeRange: "06:00 AM – 11:00 AM", Price: 299},
	{ID: Noon, Name: "Noon", TimeRange: "11:00 AM – 04:00 PM", Price: 349},
	{ID: Evening, Name: "Evening", TimeRange: "04:00 PM – 09:00 PM", Price: 299},
	{ID: Night, Name: "Night", TimeRange: "09:00 PM – 05:00 AM", Price: 299},
}

// Catalog returns the four shifts in canonical order.  The returned
// slice is a copy; callers may modify it freely.
func Catalog() []Shift {
	out := make([]Shift, len(catalog))
	copy(out, catalog)
	return out
}

// Valid reports whether id names a known shift.
func Valid(id string) bool {
	for _, s := range catalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
