package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDKnownValues(t *testing.T) {
	// sha256("2024-02-18_EUR_1.12") and sha256("2023-12-25_GBP_0.85")
	assert.Equal(t,
		"92687f1f48cf0e145486685573770ab34e5b5dcc3d0561c0275c5e5f35e9928b",
		GenerateID("2024-02-18", "EUR", 1.12))
	assert.Equal(t,
		"e712401dd3d8fbdcec452868b564d3926eeae9caf2ae1bad221f3b6d067a7f3d",
		GenerateID("2023-12-25", "GBP", 0.85))
}

func TestGenerateIDDeterministic(t *testing.T) {
	a := GenerateID("2024-02-18", "EUR", 1.12)
	b := GenerateID("2024-02-18", "EUR", 1.12)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestGenerateIDChangesWithAnyInput(t *testing.T) {
	base := GenerateID("2024-02-18", "EUR", 1.12)
	assert.NotEqual(t, base, GenerateID("2024-02-19", "EUR", 1.12))
	assert.NotEqual(t, base, GenerateID("2024-02-18", "GBP", 1.12))
	assert.NotEqual(t, base, GenerateID("2024-02-18", "EUR", 1.13))
}

func TestFormatRateShortestForm(t *testing.T) {
	assert.Equal(t, "1.12", formatRate(1.12))
	assert.Equal(t, "0.85", formatRate(0.85))
	assert.Equal(t, "151", formatRate(151))
	assert.Equal(t, "0.00064", formatRate(0.00064))
}
