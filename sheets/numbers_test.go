package sheets

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.5, ParseAmount("12.5"))
	assert.Equal(t, -0.25, ParseAmount("-0.25"))
	assert.Equal(t, 1e18, ParseAmount("1e18"))
	assert.True(t, math.IsNaN(ParseAmount("")))
	assert.True(t, math.IsNaN(ParseAmount("n/a")))
	// Comma decimal separators are not locale-parsed.
	assert.True(t, math.IsNaN(ParseAmount("12,5")))
}

func TestUnixTime(t *testing.T) {
	got := UnixTime(1700000065)
	assert.Equal(t, time.Date(2023, time.November, 14, 22, 14, 25, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
