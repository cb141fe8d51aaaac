package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-seat-booking/internal/config"
)

func TestEncodeDecodePayload(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`{"seats":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
	// header length pointing past the buffer
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 99})
	assert.False(t, ok)
}

func boardKey(cfg config.CacheConfig, target string, userID any) string {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/booking/board")
	if userID != nil {
		c.Set("user_id", userID)
	}
	return cacheKeyFrom(cfg, c)
}

func TestCacheKeyDependsOnQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	morning := boardKey(cfg, "/v1/booking/board?shift=morning", float64(7))
	night := boardKey(cfg, "/v1/booking/board?shift=night", float64(7))
	assert.NotEqual(t, morning, night)
	assert.Equal(t, morning, boardKey(cfg, "/v1/booking/board?shift=morning", float64(7)))
}

// The board embeds the caller's admission and seat ownership, so two
// users polling the same route+query must never share a cache entry.
func TestCacheKeyDependsOnUser(t *testing.T) {
	target := "/v1/booking/board?shift=morning"
	for _, strategy := range []string{"route", "method_route", "method_route_query", "route_query"} {
		cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: strategy}
		userA := boardKey(cfg, target, float64(7))
		userB := boardKey(cfg, target, float64(8))
		anon := boardKey(cfg, target, nil)

		assert.NotEqual(t, userA, userB, "strategy %s", strategy)
		assert.NotEqual(t, userA, anon, "strategy %s", strategy)
		assert.Equal(t, userA, boardKey(cfg, target, float64(7)), "strategy %s", strategy)
	}
}
