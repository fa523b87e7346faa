package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	c := &Config{CORSOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins())

	assert.Empty(t, (&Config{}).AllowedOrigins())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BOOKING_LOCK_TTL", "2s")

	c := Load()
	assert.Equal(t, ":9090", c.Addr())
	assert.Equal(t, "UTC", c.Timezone)
	assert.Equal(t, 60, c.RateLimitPerMin)
	assert.Equal(t, "2s", c.BookingLockTTL.String())
	assert.False(t, c.RedisEnabled())
	assert.False(t, c.StorageEnabled())
}
