package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// PaymentRepo provides access to the append-only 'payment_history'
// table.
type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// Create appends a payment record and populates its generated ID.
func (r *PaymentRepo) Create(ctx context.Context, p *model.PaymentHistory) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO payment_history
			(user_id, amount, payment_mode, duration_months, payment_date, receipt_number)
		 VALUES (?,?,?,?,?,?)`,
		p.UserID, p.Amount, p.PaymentMode, p.DurationMonths, p.PaymentDate, p.ReceiptNumber)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// ListByUser returns the user's payment records, newest first.
func (r *PaymentRepo) ListByUser(ctx context.Context, userID uint64) ([]model.PaymentHistory, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,user_id,amount,payment_mode,duration_months,payment_date,receipt_number,created_at
		 FROM payment_history WHERE user_id=? ORDER BY payment_date DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PaymentHistory{}
	for rows.Next() {
		var p model.PaymentHistory
		if err := rows.Scan(&p.ID, &p.UserID, &p.Amount, &p.PaymentMode, &p.DurationMonths,
			&p.PaymentDate, &p.ReceiptNumber, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
