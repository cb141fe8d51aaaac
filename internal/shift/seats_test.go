package shift

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatNumbersSequence(t *testing.T) {
	seats := SeatNumbers()
	require.Len(t, seats, 50)
	assert.Equal(t, "S1", seats[0])
	assert.Equal(t, "S50", seats[49])

	seen := make(map[string]struct{}, len(seats))
	for i, s := range seats {
		assert.Equal(t, fmt.Sprintf("S%d", i+1), s)
		_, dup := seen[s]
		assert.False(t, dup, "duplicate seat %s", s)
		seen[s] = struct{}{}
	}
}

func TestSeatNumbersIdempotent(t *testing.T) {
	first := SeatNumbers()
	first[0] = "mutated"
	assert.Equal(t, "S1", SeatNumbers()[0])
	assert.Equal(t, SeatNumbers(), SeatNumbers())
}

func TestValidSeat(t *testing.T) {
	for _, s := range SeatNumbers() {
		assert.True(t, ValidSeat(s), s)
	}
	for _, s := range []string{"", "S", "S0", "S51", "S100", "X1", "s1", "S01", "S1x"} {
		assert.False(t, ValidSeat(s), s)
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 4)
	assert.Equal(t, []string{Morning, Noon, Evening, Night}, []string{cat[0].ID, cat[1].ID, cat[2].ID, cat[3].ID})

	// returned slice is a copy
	cat[0].ID = "mutated"
	assert.Equal(t, Morning, Catalog()[0].ID)

	assert.True(t, Valid(Night))
	assert.False(t, Valid("afternoon"))
}
