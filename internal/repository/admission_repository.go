package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// AdmissionRepo provides access to the 'admissions' table.  A user
// may accumulate several admission rows over time; the most recent
// one by created_at is the authoritative record.
type AdmissionRepo struct{ DB *sql.DB }

func NewAdmissionRepo(db *sql.DB) *AdmissionRepo { return &AdmissionRepo{DB: db} }

const admissionColumns = `id,user_id,name,age,contact_number,full_address,email,course_name,
father_name,father_contact,duration_months,selected_shifts,registration_fee,shift_fee,
total_amount,payment_status,payment_date,start_date,end_date,created_at`

// Create inserts a new admission with payment_status 'pending' and
// populates the generated ID on the given record.
func (r *AdmissionRepo) Create(ctx context.Context, a *model.Admission) error {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO admissions
			(user_id,name,age,contact_number,full_address,email,course_name,
			 father_name,father_contact,duration_months,selected_shifts,
			 registration_fee,shift_fee,total_amount,payment_status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		a.UserID, a.Name, a.Age, a.ContactNumber, a.FullAddress, a.Email, a.CourseName,
		a.FatherName, a.FatherContact, a.DurationMonths, a.SelectedShifts,
		a.RegistrationFee, a.ShiftFee, a.TotalAmount, model.PaymentPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	a.PaymentStatus = model.PaymentPending
	return nil
}

// LatestByUser returns the user's most recent admission.  When the
// user has never submitted one, ErrAdmissionNotFound is returned.
func (r *AdmissionRepo) LatestByUser(ctx context.Context, userID uint64) (model.Admission, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+admissionColumns+` FROM admissions WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID)
	a, err := scanAdmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Admission{}, ErrAdmissionNotFound
	}
	return a, err
}

// MarkPaid stamps an admission as paid together with its payment
// date and validity window.  It returns ErrAdmissionNotFound when no
// pending admission with the given id belongs to the user.
func (r *AdmissionRepo) MarkPaid(ctx context.Context, id, userID uint64, paidAt, start, end time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE admissions
		SET payment_status=?, payment_date=?, start_date=?, end_date=?
		WHERE id=? AND user_id=? AND payment_status=?`,
		model.PaymentPaid, paidAt, start, end, id, userID, model.PaymentPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAdmissionNotFound
	}
	return nil
}

// ListByStatus returns admissions filtered by payment status, newest
// first.  An empty status returns every admission.  Used by the
// admin surface.
func (r *AdmissionRepo) ListByStatus(ctx context.Context, status string) ([]model.Admission, error) {
	query := `SELECT ` + admissionColumns + ` FROM admissions`
	args := []any{}
	if status != "" {
		query += ` WHERE payment_status=?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Admission{}
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanAdmission(s rowScanner) (model.Admission, error) {
	var (
		a                     model.Admission
		payDate, start, end   sql.NullTime
	)
	err := s.Scan(&a.ID, &a.UserID, &a.Name, &a.Age, &a.ContactNumber, &a.FullAddress,
		&a.Email, &a.CourseName, &a.FatherName, &a.FatherContact, &a.DurationMonths,
		&a.SelectedShifts, &a.RegistrationFee, &a.ShiftFee, &a.TotalAmount,
		&a.PaymentStatus, &payDate, &start, &end, &a.CreatedAt)
	if err != nil {
		return model.Admission{}, err
	}
	if payDate.Valid {
		a.PaymentDate = &payDate.Time
	}
	if start.Valid {
		a.StartDate = &start.Time
	}
	if end.Valid {
		a.EndDate = &end.Time
	}
	return a, nil
}
