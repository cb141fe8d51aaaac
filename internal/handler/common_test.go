package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithUserID(v any) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if v != nil {
		c.Set("user_id", v)
	}
	return c
}

func TestGetUserID(t *testing.T) {
	// JWT claims decode numbers as float64; other types come from
	// tests and internal callers.
	for _, v := range []any{float64(42), uint64(42), int(42), int64(42), "42"} {
		got, err := getUserID(ctxWithUserID(v))
		require.NoError(t, err)
		assert.Equal(t, uint64(42), got)
	}

	_, err := getUserID(ctxWithUserID(nil))
	assert.Error(t, err)
	_, err = getUserID(ctxWithUserID("not-a-number"))
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	day, ok := parseDay("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", day)

	day, ok = parseDay("")
	require.True(t, ok)
	assert.Equal(t, today(), day)

	_, ok = parseDay("01-06-2025")
	assert.False(t, ok)
	_, ok = parseDay("2025-13-40")
	assert.False(t, ok)
}
