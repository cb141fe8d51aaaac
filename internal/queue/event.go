// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatBookedEvent is published when a seat booking row is created.
// It carries enough context for downstream consumers (attendance
// displays, notifications, analytics) without querying the primary
// database.
type SeatBookedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	Shift       string `json:"shift"`
	SeatNumber  string `json:"seat_number"`
	BookingDate string `json:"booking_date"`
	BookedAt    string `json:"booked_at"`
}

// PaymentRecordedEvent is published when a payment is confirmed and
// a payment_history row is appended.
type PaymentRecordedEvent struct {
	PaymentID      uint64 `json:"payment_id"`
	UserID         uint64 `json:"user_id"`
	AdmissionID    uint64 `json:"admission_id"`
	Amount         uint32 `json:"amount"`
	PaymentMode    string `json:"payment_mode"`
	DurationMonths uint8  `json:"duration_months"`
	ReceiptNumber  string `json:"receipt_number"`
	RecordedAt     string `json:"recorded_at"`
}
