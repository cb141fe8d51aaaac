package handler // handler defines http handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for calendar dates ("YYYY-MM-DD").
const dateLayout = "2006-01-02"

// getUserID extracts the user_id from echo.Context and converts it
// to uint64.  JWTAuth stores the raw claim value, which arrives as
// float64 after JSON decoding.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// today returns the current UTC calendar date in wire format.
func today() string {
	return time.Now().UTC().Format(dateLayout)
}

// parseDay validates an optional ?date= query value, defaulting to
// today.  The second return value is false when the value is present
// but malformed.
func parseDay(raw string) (string, bool) {
	if raw == "" {
		return today(), true
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", false
	}
	return raw, true
}
