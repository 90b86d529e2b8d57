package formatter

import (
	"testing"

	"github.com/alexanderramin/overtime/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "1h0min0sec", FormatHMS(3600))
	assert.Equal(t, "0h0min0sec", FormatHMS(0))
	assert.Equal(t, "-2h30min0sec", FormatHMS(-9000))
}

func TestFormatSignedHMS(t *testing.T) {
	assert.Equal(t, "+1h0min0sec", FormatSignedHMS(3600))
	assert.Equal(t, "0h0min0sec", FormatSignedHMS(0))
	assert.Equal(t, "-2h30min0sec", FormatSignedHMS(-9000))
}

func TestFormatDayRange(t *testing.T) {
	got := FormatDayRange(testutil.MustDay("2024-01-01"), testutil.MustDay("2024-03-31"))
	assert.Equal(t, "2024-01-01 → 2024-03-31", got)
}
