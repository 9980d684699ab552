package adapter

import "time"

// Clock is the time source of the ledger; block and transaction timestamps come from Now
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
	// NewTicker returns a ticker firing every d
	NewTicker(d time.Duration) *time.Ticker
}

type realClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func (realClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
