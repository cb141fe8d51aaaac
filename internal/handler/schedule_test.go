package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-seat-booking/internal/repository"
)

func TestValidClock(t *testing.T) {
	assert.True(t, validClock("09:30"))
	assert.True(t, validClock("23:59"))
	assert.False(t, validClock("24:00"))
	assert.False(t, validClock("9:30am"))
	assert.False(t, validClock(""))
}

func TestScheduleCreateValidation(t *testing.T) {
	h := NewScheduleHandler(repository.NewScheduleRepo(nil))

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"start_time":"09:00","end_time":"11:00"}`},
		{"bad start", `{"title":"Maths","start_time":"morning","end_time":"11:00"}`},
		{"end before start", `{"title":"Maths","start_time":"11:00","end_time":"09:00"}`},
		{"bad date", `{"title":"Maths","start_time":"09:00","end_time":"11:00","date":"tomorrow"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/schedules", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set("user_id", float64(3))

			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
