package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, ParseDuration("24h", time.Hour))
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestValidDay(t *testing.T) {
	assert.True(t, ValidDay("2025-04-23"))
	assert.True(t, ValidDay("2024-02-29"))

	assert.False(t, ValidDay(""))
	assert.False(t, ValidDay("23-04-2025"))
	assert.False(t, ValidDay("2025-13-01"))
	assert.False(t, ValidDay("2025-02-30"))
	assert.False(t, ValidDay("2025-04-23T00:00:00Z"))
}
