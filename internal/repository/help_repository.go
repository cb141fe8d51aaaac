package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// HelpRepo provides access to the 'help_requests' table.
type HelpRepo struct{ DB *sql.DB }

func NewHelpRepo(db *sql.DB) *HelpRepo { return &HelpRepo{DB: db} }

const helpColumns = `id,user_id,category,subject,description,status,admin_response,created_at`

// Create inserts an open help request and populates its ID.
func (r *HelpRepo) Create(ctx context.Context, h *model.HelpRequest) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO help_requests (user_id, category, subject, description, status) VALUES (?,?,?,?,?)",
		h.UserID, h.Category, h.Subject, h.Description, model.HelpOpen)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	h.Status = model.HelpOpen
	return nil
}

// ListByUser returns the user's help requests, newest first.
func (r *HelpRepo) ListByUser(ctx context.Context, userID uint64) ([]model.HelpRequest, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+helpColumns+` FROM help_requests WHERE user_id=? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHelpRequests(rows)
}

// ListAll returns help requests across users, optionally filtered by
// status, newest first.  Used by the admin surface.
func (r *HelpRepo) ListAll(ctx context.Context, status string) ([]model.HelpRequest, error) {
	query := `SELECT ` + helpColumns + ` FROM help_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status=?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHelpRequests(rows)
}

// Respond attaches an admin response and advances the status.  It
// returns sql.ErrNoRows when the request does not exist.
func (r *HelpRepo) Respond(ctx context.Context, id uint64, response, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE help_requests SET admin_response=?, status=? WHERE id=?",
		response, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists uint64
		if err := r.DB.QueryRowContext(ctx,
			"SELECT id FROM help_requests WHERE id=? LIMIT 1", id).Scan(&exists); err != nil {
			return err
		}
	}
	return nil
}

func scanHelpRequests(rows *sql.Rows) ([]model.HelpRequest, error) {
	out := []model.HelpRequest{}
	for rows.Next() {
		var (
			h    model.HelpRequest
			resp sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.UserID, &h.Category, &h.Subject, &h.Description,
			&h.Status, &resp, &h.CreatedAt); err != nil {
			return nil, err
		}
		if resp.Valid {
			h.AdminResponse = &resp.String
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
