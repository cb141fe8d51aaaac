package model

import "time"

// PaymentHistory is an immutable record of a confirmed payment, as
// stored in the `payment_history` table.  One row is appended per
// payment confirmation; rows are never updated.
//
// Fields:
//  ID             – primary key identifier.
//  UserID         – paying user.
//  Amount         – amount paid.
//  PaymentMode    – 'upi' or 'cash'.
//  DurationMonths – membership duration purchased.
//  PaymentDate    – when the payment was confirmed.
//  ReceiptNumber  – unique human-readable receipt reference.
//  CreatedAt      – timestamp of creation.
type PaymentHistory struct {
	ID             uint64    // payment_history.id
	UserID         uint64    // payment_history.user_id
	Amount         uint32    // payment_history.amount
	PaymentMode    string    // payment_history.payment_mode
	DurationMonths uint8     // payment_history.duration_months
	PaymentDate    time.Time // payment_history.payment_date
	ReceiptNumber  string    // payment_history.receipt_number
	CreatedAt      time.Time // payment_history.created_at
}

// Payment modes stored on payment_history.payment_mode.
const (
	PaymentModeUPI  = "upi"
	PaymentModeCash = "cash"
)
