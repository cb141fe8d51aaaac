package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/handler"
	"github.com/iliyamo/library-seat-booking/internal/middleware"
	"github.com/iliyamo/library-seat-booking/internal/model"
)

// StudentHandlers carries the handlers mounted on the student group
// so RegisterStudent does not take eight positional arguments.
type StudentHandlers struct {
	Admission  *handler.AdmissionHandler
	Payment    *handler.PaymentHandler
	Booking    *handler.BookingHandler
	Attendance *handler.AttendanceHandler
	Schedule   *handler.ScheduleHandler
	Help       *handler.HelpHandler
}

// RegisterStudent registers student-scoped endpoints under /v1.  All
// routes require a valid JWT and the STUDENT role.  boardCache is
// applied to the seat board (the hot polled read) and bookLimit to
// booking submission; either may be a pass-through.
func RegisterStudent(e *echo.Echo, h StudentHandlers, jwtSecret string, boardCache, bookLimit echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStudent),
	)

	// ---- Admission & payment ----
	g.POST("/admissions", h.Admission.Submit)
	g.GET("/admissions/current", h.Admission.Current)
	g.GET("/payment/qr", h.Payment.QR)
	g.POST("/payment/confirm", h.Payment.Confirm)
	g.GET("/payment/history", h.Payment.History)

	// ---- Seat booking ----
	g.GET("/booking/board", h.Booking.Board, boardCache)
	g.POST("/bookings", h.Booking.Book, bookLimit)
	g.GET("/bookings/mine", h.Booking.MyBookings)

	// ---- Attendance ----
	g.POST("/attendance/check-in", h.Attendance.CheckIn)
	g.POST("/attendance/check-out", h.Attendance.CheckOut)
	g.GET("/attendance", h.Attendance.History)

	// ---- Study schedules ----
	g.POST("/schedules", h.Schedule.Create)
	g.GET("/schedules", h.Schedule.List)
	g.DELETE("/schedules/:id", h.Schedule.Delete)

	// ---- Help desk ----
	g.POST("/help", h.Help.Create)
	g.GET("/help", h.Help.List)
}
