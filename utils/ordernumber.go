package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber builds a human-facing receipt reference of the
// form ORD-ddmmyyyy-XXXXXX where X is an uppercase alphanumeric.
// Uniqueness is probabilistic, not enforced against existing orders.
func GenerateOrderNumber(at time.Time) string {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to a time-derived suffix rather than aborting checkout.
		nano := at.UnixNano()
		for i := range suffix {
			suffix[i] = orderNumberCharset[nano%int64(len(orderNumberCharset))]
			nano /= int64(len(orderNumberCharset))
		}
	} else {
		for i := range suffix {
			suffix[i] = orderNumberCharset[int(suffix[i])%len(orderNumberCharset)]
		}
	}

	return fmt.Sprintf("ORD-%s-%s", at.Format("02012006"), string(suffix))
}
