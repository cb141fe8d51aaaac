package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-seat-booking/internal/repository"
)

// newAdmissionCtx builds an echo context carrying an authenticated
// student and the given JSON body.
func newAdmissionCtx(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admissions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7)) // as JWTAuth stores it
	return c, rec
}

func TestAdmissionSubmitValidation(t *testing.T) {
	h := NewAdmissionHandler(repository.NewAdmissionRepo(nil))

	base := map[string]any{
		"name":            "Asha Verma",
		"age":             21,
		"contact_number":  "9876543210",
		"full_address":    "12 Station Road",
		"email":           "asha@example.com",
		"duration_months": 3,
		"selected_shifts": []string{"morning"},
	}
	mutate := func(k string, v any) string {
		m := map[string]any{}
		for key, val := range base {
			m[key] = val
		}
		m[k] = v
		b, err := json.Marshal(m)
		require.NoError(t, err)
		return string(b)
	}

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing name", mutate("name", ""), http.StatusBadRequest},
		{"zero age", mutate("age", 0), http.StatusBadRequest},
		{"bad duration", mutate("duration_months", 2), http.StatusBadRequest},
		{"no shifts", mutate("selected_shifts", []string{}), http.StatusBadRequest},
		{"unknown shift", mutate("selected_shifts", []string{"midnight"}), http.StatusBadRequest},
		{"unpriced combination", mutate("selected_shifts", []string{"morning", "night"}), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAdmissionCtx(t, tt.body)
			require.NoError(t, h.Submit(c))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestAdmissionSubmitUnpricedBody(t *testing.T) {
	h := NewAdmissionHandler(repository.NewAdmissionRepo(nil))

	c, rec := newAdmissionCtx(t, `{
		"name":"Asha Verma","age":21,"contact_number":"9876543210",
		"full_address":"12 Station Road","email":"asha@example.com",
		"duration_months":1,"selected_shifts":["evening","night"]
	}`)
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unpriced shift combination", resp["error"])
}

func TestAdmissionSubmitUnauthorized(t *testing.T) {
	h := NewAdmissionHandler(repository.NewAdmissionRepo(nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admissions", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no user_id set

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
