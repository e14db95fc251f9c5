package record

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// GenerateID returns the stable identity of one rate observation: the sha256
// hex digest of "{date}_{currency}_{rate}". Two fetches that observe the same
// rate for the same date and currency always produce the same id, so
// downstream consumers can de-duplicate across runs.
func GenerateID(date, currency string, rate float64) string {
	sum := sha256.Sum256([]byte(date + "_" + currency + "_" + formatRate(rate)))
	return hex.EncodeToString(sum[:])
}

// formatRate renders a rate in shortest round-trip decimal form (1.12 → "1.12").
func formatRate(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
