package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceiptNumber(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "LCL1748781000000", ReceiptNumber(at))

	// Distinct instants give distinct receipts.
	assert.NotEqual(t, ReceiptNumber(at), ReceiptNumber(at.Add(time.Millisecond)))
}
