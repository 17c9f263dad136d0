package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateNumber produces a human-readable order number of the form
// ORD-<year>-<4 digits>. The digits are random rather than a row count;
// uniqueness is enforced by the storage layer's unique index, with the
// caller retrying on a collision.
func GenerateNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%04d", now.UTC().Year(), rand.IntN(10000))
}
