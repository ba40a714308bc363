package sheets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProRataDailyReward(t *testing.T) {
	assert.Equal(t, 10.0, ProRataDailyReward(50, 200, 40))
	assert.Equal(t, 0.0, ProRataDailyReward(0, 200, 40))
	assert.Equal(t, 40.0, ProRataDailyReward(200, 200, 40))

	assert.True(t, math.IsNaN(ProRataDailyReward(50, 0, 40)))
	assert.True(t, math.IsNaN(ProRataDailyReward(50, math.NaN(), 40)))
}

func TestTokenValue(t *testing.T) {
	assert.Equal(t, 15.0, TokenValue(3, 5))
	assert.Equal(t, 0.0, TokenValue(0, 5))
	assert.True(t, math.IsNaN(TokenValue(3, math.NaN())))
}
