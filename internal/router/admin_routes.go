package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/handler"
	"github.com/iliyamo/library-seat-booking/internal/middleware"
	"github.com/iliyamo/library-seat-booking/internal/model"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.GET("/bookings", a.Bookings)
	g.GET("/admissions", a.Admissions)
	g.GET("/attendance", a.Attendance)
	g.GET("/help", a.HelpRequests)
	g.POST("/help/:id/respond", a.Respond)
}
