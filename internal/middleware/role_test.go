package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

func runRole(t *testing.T, role any, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	assert.Equal(t, http.StatusOK,
		runRole(t, model.RoleAdmin, model.RoleAdmin).Code)
	assert.Equal(t, http.StatusOK,
		runRole(t, model.RoleStudent, model.RoleStudent, model.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden,
		runRole(t, model.RoleStudent, model.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden,
		runRole(t, nil, model.RoleAdmin).Code)
	// role claim must be a string
	assert.Equal(t, http.StatusForbidden,
		runRole(t, 12, model.RoleAdmin).Code)
}
