package cart

import (
	"fmt"
	"math/rand"
	"time"
)

const billPrefix = "XL"

// NewBillNumber generates a human-readable receipt tag: a fixed prefix, a
// compact timestamp (two digits each for year, month, day, hour, minute) and
// a zero-padded random suffix in [0, 999]. Uniqueness is probabilistic, which
// is acceptable for a receipt tag shown to staff, not a database key.
func NewBillNumber(now time.Time) string {
	return fmt.Sprintf("%s%s%03d", billPrefix, now.Format("0601021504"), rand.Intn(1000))
}
