package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yeqown/go-qrcode"

	"github.com/iliyamo/library-seat-booking/internal/config"
	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/queue"
	"github.com/iliyamo/library-seat-booking/internal/repository"
	queue_publisher "github.com/iliyamo/library-seat-booking/internal/service"
	"github.com/iliyamo/library-seat-booking/internal/utils"
)

// PaymentHandler serves the payment flow for pending admissions: a
// UPI QR code to pay with, an attestation-based confirmation step
// and the payment history listing.  There is no gateway callback;
// the front desk verifies the transfer before seating anyone, which
// is why confirmation simply trusts the client.
type PaymentHandler struct {
	Cfg        config.Config
	Admissions *repository.AdmissionRepo
	Payments   *repository.PaymentRepo
}

func NewPaymentHandler(cfg config.Config, admissions *repository.AdmissionRepo, payments *repository.PaymentRepo) *PaymentHandler {
	if admissions == nil || payments == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{Cfg: cfg, Admissions: admissions, Payments: payments}
}

// QR handles GET /v1/payment/qr.  It renders a UPI payment QR image
// for the caller's pending admission total.
func (h *PaymentHandler) QR(c echo.Context) error {
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
	if adm.Paid() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "admission already paid"})
	}

	payload := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=INR&tn=%s",
		url.QueryEscape(h.Cfg.UPIAddress),
		url.QueryEscape(h.Cfg.LibraryName),
		adm.TotalAmount,
		url.QueryEscape(fmt.Sprintf("Admission %d", adm.ID)))

	qrc, err := qrcode.New(payload)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "qr generation failed"})
	}
	c.Response().Header().Set(echo.HeaderContentType, "image/jpeg")
	c.Response().WriteHeader(http.StatusOK)
	if err := qrc.SaveTo(c.Response()); err != nil {
		return err
	}
	return nil
}

type confirmReq struct {
	PaymentMode string `json:"payment_mode"` // upi | cash, defaults to upi
}

// Confirm handles POST /v1/payment/confirm.  It marks the caller's
// pending admission paid, stamps the validity window from today for
// the admission's duration, appends a payment_history row with a
// fresh receipt number and publishes a payment.recorded event.
func (h *PaymentHandler) Confirm(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	mode := strings.ToLower(strings.TrimSpace(req.PaymentMode))
	if mode == "" {
		mode = model.PaymentModeUPI
	}
	if mode != model.PaymentModeUPI && mode != model.PaymentModeCash {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_mode must be upi or cash"})
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
	if adm.Paid() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "admission already paid"})
	}

	now := time.Now().UTC()
	end := now.AddDate(0, int(adm.DurationMonths), 0)
	if err := h.Admissions.MarkPaid(ctx, adm.ID, userID, now, now, end); err != nil {
		if errors.Is(err, repository.ErrAdmissionNotFound) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "admission already paid"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment confirmation failed"})
	}

	pay := &model.PaymentHistory{
		UserID:         userID,
		Amount:         adm.TotalAmount,
		PaymentMode:    mode,
		DurationMonths: adm.DurationMonths,
		PaymentDate:    now,
		ReceiptNumber:  utils.ReceiptNumber(now),
	}
	if err := h.Payments.Create(ctx, pay); err != nil {
		// The admission is already paid at this point; losing the
		// history row is reported but not rolled back.
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment recorded without history"})
	}

	go func(ev queue.PaymentRecordedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishPaymentRecorded(pubCtx, ev)
	}(queue.PaymentRecordedEvent{
		PaymentID:      pay.ID,
		UserID:         userID,
		AdmissionID:    adm.ID,
		Amount:         pay.Amount,
		PaymentMode:    pay.PaymentMode,
		DurationMonths: pay.DurationMonths,
		ReceiptNumber:  pay.ReceiptNumber,
		RecordedAt:     now.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"receipt_number": pay.ReceiptNumber,
		"amount":         pay.Amount,
		"start_date":     now.Format(dateLayout),
		"end_date":       end.Format(dateLayout),
	})
}

// History handles GET /v1/payment/history.  It returns the caller's
// payment records, newest first.
func (h *PaymentHandler) History(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Payments.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	type paymentView struct {
		ID             uint64 `json:"id"`
		Amount         uint32 `json:"amount"`
		PaymentMode    string `json:"payment_mode"`
		DurationMonths uint8  `json:"duration_months"`
		PaymentDate    string `json:"payment_date"`
		ReceiptNumber  string `json:"receipt_number"`
	}
	views := make([]paymentView, 0, len(items))
	for _, p := range items {
		views = append(views, paymentView{
			ID:             p.ID,
			Amount:         p.Amount,
			PaymentMode:    p.PaymentMode,
			DurationMonths: p.DurationMonths,
			PaymentDate:    p.PaymentDate.Format(time.RFC3339),
			ReceiptNumber:  p.ReceiptNumber,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": views})
}
