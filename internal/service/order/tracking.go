package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// generateTrackingCode builds a code like TRK-20260115-3FA9C2. Uniqueness is
// enforced by the database; collisions are retried by the caller.
func generateTrackingCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("tracking code entropy: %w", err)
	}

	return fmt.Sprintf("TRK-%s-%s",
		time.Now().UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(buf)),
	), nil
}
