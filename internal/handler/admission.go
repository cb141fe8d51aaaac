package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/repository"
	"github.com/iliyamo/library-seat-booking/internal/shift"
)

// AdmissionHandler serves admission submission and lookup.  Fees are
// computed server-side from the shift price table and frozen on the
// row; the client never supplies amounts.
type AdmissionHandler struct {
	Admissions *repository.AdmissionRepo
}

func NewAdmissionHandler(admissions *repository.AdmissionRepo) *AdmissionHandler {
	if admissions == nil {
		panic("nil repository passed to NewAdmissionHandler")
	}
	return &AdmissionHandler{Admissions: admissions}
}

type admissionReq struct {
	Name           string   `json:"name"`
	Age            uint8    `json:"age"`
	ContactNumber  string   `json:"contact_number"`
	FullAddress    string   `json:"full_address"`
	Email          string   `json:"email"`
	CourseName     string   `json:"course_name"`
	FatherName     string   `json:"father_name"`
	FatherContact  string   `json:"father_contact"`
	DurationMonths uint8    `json:"duration_months"`
	SelectedShifts []string `json:"selected_shifts"`
}

// admissionView is the JSON shape of an admission row.
type admissionView struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	CourseName      string   `json:"course_name"`
	DurationMonths  uint8    `json:"duration_months"`
	SelectedShifts  []string `json:"selected_shifts"`
	RegistrationFee uint32   `json:"registration_fee"`
	ShiftFee        uint32   `json:"shift_fee"`
	TotalAmount     uint32   `json:"total_amount"`
	PaymentStatus   string   `json:"payment_status"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
}

func toAdmissionView(a model.Admission) admissionView {
	v := admissionView{
		ID:              a.ID,
		Name:            a.Name,
		CourseName:      a.CourseName,
		DurationMonths:  a.DurationMonths,
		SelectedShifts:  splitShifts(a.SelectedShifts),
		RegistrationFee: a.RegistrationFee,
		ShiftFee:        a.ShiftFee,
		TotalAmount:     a.TotalAmount,
		PaymentStatus:   a.PaymentStatus,
	}
	if a.StartDate != nil {
		s := a.StartDate.Format(dateLayout)
		v.StartDate = &s
	}
	if a.EndDate != nil {
		s := a.EndDate.Format(dateLayout)
		v.EndDate = &s
	}
	return v
}

// Submit handles POST /v1/admissions.  It validates the personal
// fields, duration and shift selection, prices the combination and
// inserts a pending admission.  An unpriced shift combination is a
// validation error, not a zero fee.
func (h *AdmissionHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req admissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.ContactNumber == "" || req.FullAddress == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, contact_number, full_address and email required"})
	}
	if req.Age == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "age required"})
	}
	switch req.DurationMonths {
	case 1, 3, 6:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_months must be 1, 3 or 6"})
	}
	if len(req.SelectedShifts) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "selected_shifts required"})
	}
	for _, id := range req.SelectedShifts {
		if !shift.Valid(strings.ToLower(strings.TrimSpace(id))) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown shift: " + id})
		}
	}

	fee, err := shift.Fee(req.SelectedShifts)
	if err != nil {
		if errors.Is(err, shift.ErrUnpricedCombination) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":  "unpriced shift combination",
				"shifts": req.SelectedShifts,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fee calculation failed"})
	}

	adm := &model.Admission{
		UserID:          userID,
		Name:            req.Name,
		Age:             req.Age,
		ContactNumber:   strings.TrimSpace(req.ContactNumber),
		FullAddress:     strings.TrimSpace(req.FullAddress),
		Email:           req.Email,
		CourseName:      strings.TrimSpace(req.CourseName),
		FatherName:      strings.TrimSpace(req.FatherName),
		FatherContact:   strings.TrimSpace(req.FatherContact),
		DurationMonths:  req.DurationMonths,
		SelectedShifts:  shift.CombinationKey(req.SelectedShifts),
		RegistrationFee: shift.RegistrationFee,
		ShiftFee:        fee,
		TotalAmount:     shift.RegistrationFee + fee,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Admissions.Create(ctx, adm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admission failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"admission": toAdmissionView(*adm)})
}

// Current handles GET /v1/admissions/current.  It returns the
// caller's most recent admission or 404 when none exists.
func (h *AdmissionHandler) Current(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	adm, err := h.Admissions.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdmissionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admission not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"admission": toAdmissionView(adm)})
}
