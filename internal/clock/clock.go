package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts time.Now so "defaults to current time" behavior is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}

// Module provides the wall clock.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
