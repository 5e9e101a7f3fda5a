//go:build unit

package clock_test

import (
	"testing"
	"time"

	"barbershop-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestZonedClock(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	base := clock.NewMockClock(time.Date(2024, 6, 1, 20, 30, 0, 0, time.UTC))

	c := clock.NewZonedClock(base, tokyo)
	now := c.Now()

	assert.Equal(t, 2, now.Day())
	assert.Equal(t, 5, now.Hour())
	assert.Equal(t, tokyo, c.Location())

	base.Add(time.Hour)
	assert.Equal(t, 6, c.Now().Hour())
}

func TestZonedClockDefaultsToUTC(t *testing.T) {
	c := clock.NewZonedClock(clock.NewMockClock(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)), nil)
	assert.Equal(t, time.UTC, c.Location())
}
