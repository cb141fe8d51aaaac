package utils

import (
	"fmt"
	"time"
)

// ReceiptNumber builds the human-readable receipt reference written
// to payment_history rows.  The "LCL" prefix plus a millisecond
// timestamp matches the format printed on physical receipts at the
// front desk.
func ReceiptNumber(at time.Time) string {
	return fmt.Sprintf("LCL%d", at.UTC().UnixMilli())
}
