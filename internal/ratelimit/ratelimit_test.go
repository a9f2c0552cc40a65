package ratelimit_test

import (
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/ratelimit"
)

func TestKeyedLimiter(t *testing.T) {
	clock := time2.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter := ratelimit.New(60, 2, clock)

	assert.True(t, limiter.Allow("0xAbC"))
	assert.True(t, limiter.Allow("0xabc"))
	assert.False(t, limiter.Allow("0xABC"))

	// other keys have their own bucket
	assert.True(t, limiter.Allow("0xdef"))

	clock.Advance(time.Second)
	assert.True(t, limiter.Allow("0xabc"))
	assert.False(t, limiter.Allow("0xabc"))

	clock.Advance(time.Hour)
	assert.True(t, limiter.Allow("0xabc"))
	assert.Equal(t, 1, limiter.Len())
}

func TestKeyedLimiterUnlimited(t *testing.T) {
	limiter := ratelimit.New(0, 0, time2.DefaultClock)

	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow("k"))
	}
}
