package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/repository"
)

// HelpHandler serves the student side of support tickets.  The admin
// side (listing across users, responding) lives in AdminHandler.
type HelpHandler struct {
	Help *repository.HelpRepo
}

func NewHelpHandler(help *repository.HelpRepo) *HelpHandler {
	if help == nil {
		panic("nil repository passed to NewHelpHandler")
	}
	return &HelpHandler{Help: help}
}

type helpReq struct {
	Category    string `json:"category"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type helpView struct {
	ID            uint64  `json:"id"`
	Category      string  `json:"category"`
	Subject       string  `json:"subject"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	AdminResponse *string `json:"admin_response"`
	CreatedAt     string  `json:"created_at"`
}

func toHelpView(h model.HelpRequest) helpView {
	return helpView{
		ID:            h.ID,
		Category:      h.Category,
		Subject:       h.Subject,
		Description:   h.Description,
		Status:        h.Status,
		AdminResponse: h.AdminResponse,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
}

func validHelpCategory(v string) bool {
	switch v {
	case model.HelpSeatIssue, model.HelpPaymentIssue, model.HelpTechnicalIssue:
		return true
	}
	return false
}

// Create handles POST /v1/help.
func (h *HelpHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req helpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	req.Subject = strings.TrimSpace(req.Subject)
	req.Description = strings.TrimSpace(req.Description)
	if !validHelpCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category must be seat_issue, payment_issue or technical_issue"})
	}
	if req.Subject == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject and description required"})
	}

	ticket := &model.HelpRequest{
		UserID:      userID,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Help.Create(ctx, ticket); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"request": toHelpView(*ticket)})
}

// List handles GET /v1/help.  It returns the caller's own tickets.
func (h *HelpHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Help.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	views := make([]helpView, 0, len(items))
	for _, t := range items {
		views = append(views, toHelpView(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": views})
}
