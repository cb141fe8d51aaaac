package model

import "time"

// HelpRequest is a support ticket raised by a user, as stored in the
// `help_requests` table.  Admins move it through open → in_progress
// → resolved and may attach a response.
type HelpRequest struct {
	ID            uint64    // help_requests.id
	UserID        uint64    // help_requests.user_id
	Category      string    // help_requests.category
	Subject       string    // help_requests.subject
	Description   string    // help_requests.description
	Status        string    // help_requests.status
	AdminResponse *string   // help_requests.admin_response (nullable)
	CreatedAt     time.Time // help_requests.created_at
}

// Help request categories.
const (
	HelpSeatIssue      = "seat_issue"
	HelpPaymentIssue   = "payment_issue"
	HelpTechnicalIssue = "technical_issue"
)

// Help request status values.
const (
	HelpOpen       = "open"
	HelpInProgress = "in_progress"
	HelpResolved   = "resolved"
)
