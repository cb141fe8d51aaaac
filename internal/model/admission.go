package model

import "time"

// Admission is one user's enrollment record as stored in the
// `admissions` table.  A user may submit several admissions over
// time (e.g. renewing after expiry); the most recent one by
// created_at is authoritative.  Fees are computed server-side at
// submission time and frozen on the row.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who submitted the admission.
//  Name            – applicant's full name.
//  Age             – applicant's age in years.
//  ContactNumber   – applicant's phone number.
//  FullAddress     – postal address.
//  Email           – contact email.
//  CourseName      – course or exam the applicant studies for.
//  FatherName      – guardian name.
//  FatherContact   – guardian phone number.
//  DurationMonths  – membership duration (1, 3 or 6).
//  SelectedShifts  – comma separated canonical shift ids.
//  RegistrationFee – one-time registration fee (currently 50).
//  ShiftFee        – fee for the selected shift combination.
//  TotalAmount     – RegistrationFee + ShiftFee.
//  PaymentStatus   – 'pending' until payment is confirmed, then 'paid'.
//  PaymentDate     – when payment was confirmed (nullable).
//  StartDate       – membership start (nullable until paid).
//  EndDate         – membership end (nullable until paid).
//  CreatedAt       – timestamp of creation.
type Admission struct {
	ID              uint64     // admissions.id
	UserID          uint64     // admissions.user_id
	Name            string     // admissions.name
	Age             uint8      // admissions.age
	ContactNumber   string     // admissions.contact_number
	FullAddress     string     // admissions.full_address
	Email           string     // admissions.email
	CourseName      string     // admissions.course_name
	FatherName      string     // admissions.father_name
	FatherContact   string     // admissions.father_contact
	DurationMonths  uint8      // admissions.duration_months
	SelectedShifts  string     // admissions.selected_shifts
	RegistrationFee uint32     // admissions.registration_fee
	ShiftFee        uint32     // admissions.shift_fee
	TotalAmount     uint32     // admissions.total_amount
	PaymentStatus   string     // admissions.payment_status ('pending'|'paid')
	PaymentDate     *time.Time // admissions.payment_date (nullable)
	StartDate       *time.Time // admissions.start_date (nullable)
	EndDate         *time.Time // admissions.end_date (nullable)
	CreatedAt       time.Time  // admissions.created_at
}

// PaymentStatus values stored on admissions.payment_status.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Paid reports whether the admission has been paid for.
func (a *Admission) Paid() bool { return a.PaymentStatus == PaymentPaid }

// ActiveOn reports whether the admission's validity window covers the
// given day.  Unpaid admissions are never active.  Admissions whose
// window has not been stamped yet (legacy rows) fall back to the paid
// flag alone.
func (a *Admission) ActiveOn(day time.Time) bool {
	if !a.Paid() {
		return false
	}
	if a.StartDate == nil || a.EndDate == nil {
		return true
	}
	d := day.UTC()
	return !d.Before(a.StartDate.UTC()) && !d.After(a.EndDate.UTC())
}
