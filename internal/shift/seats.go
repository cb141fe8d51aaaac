package shift

import "fmt"

// SeatCount is the number of physical seats in the reading hall.
const SeatCount = 50

// SeatNumbers returns the fixed seat label sequence S1..S50 in
// order.  The result is rebuilt on each call so callers can never
// corrupt shared state.
func SeatNumbers() []string {
	seats := make([]string, SeatCount)
	for i := range seats {
		seats[i] = fmt.Sprintf("S%d", i+1)
	}
	return seats
}

// ValidSeat reports whether label is one of S1..S50.
func ValidSeat(label string) bool {
	if len(label) < 2 || label[0] != 'S' {
		return false
	}
	n := 0
	for _, r := range label[1:] {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
		if n > SeatCount {
			return false
		}
	}
	if label[1] == '0' {
		return false
	}
	return n >= 1 && n <= SeatCount
}
