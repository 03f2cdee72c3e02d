package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/dball/internal/common/clock Clock

// Clock stamps purchases, draw transitions and settlements
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock in UTC, truncated to the microsecond so
// values survive a round trip through SQLite and JSON unchanged
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current UTC time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
