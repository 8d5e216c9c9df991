package identity_test

import (
	"strconv"
	"testing"
	"time"

	"bitbucket.org/crgw/availability-pricer/internal/identity"
	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2024, 10, 14, 9, 5, 7, 999, time.UTC)
}

func TestOfferID(t *testing.T) {
	t.Run("should use prefix and second precision timestamp", func(t *testing.T) {
		g := identity.New(identity.WithClock(fixedClock))
		assert.Equal(t, "A#20241014090507", g.OfferID())
	})

	t.Run("should collide within the same second", func(t *testing.T) {
		g := identity.New(identity.WithClock(fixedClock))
		assert.Equal(t, g.OfferID(), g.OfferID())
	})

	t.Run("should use a custom prefix", func(t *testing.T) {
		g := identity.New(identity.WithClock(fixedClock), identity.WithPrefix("B-"))
		assert.Equal(t, "B-20241014090507", g.OfferID())
	})
}

func TestHotelCode(t *testing.T) {
	tests := []struct {
		name     string
		intn     func(n int) int
		expected string
	}{
		{
			name:     "lowest draw",
			intn:     func(n int) int { return 0 },
			expected: "10000000",
		},
		{
			name:     "highest draw",
			intn:     func(n int) int { return n - 1 },
			expected: "99999999",
		},
		{
			name:     "middle draw",
			intn:     func(n int) int { return 12345678 },
			expected: "22345678",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := identity.New(identity.WithIntn(test.intn))
			assert.Equal(t, test.expected, g.HotelCode())
		})
	}

	t.Run("should always be 8 digits with the default source", func(t *testing.T) {
		g := identity.New()
		for i := 0; i < 1000; i++ {
			code := g.HotelCode()
			assert.Len(t, code, 8)

			value, err := strconv.Atoi(code)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, value, 10000000)
			assert.LessOrEqual(t, value, 99999999)
		}
	})

	t.Run("should ask for the full inclusive range", func(t *testing.T) {
		var requested int
		g := identity.New(identity.WithIntn(func(n int) int {
			requested = n
			return 0
		}))
		g.HotelCode()
		assert.Equal(t, 90000000, requested)
	})
}
