package checkpoints

import (
	"time"
)

// TimeSource supplies the wall clock used by the verification progress
// estimate.
type TimeSource interface {
	Now() time.Time
}

// localClock reads the local system clock truncated to whole seconds, the
// precision block timestamps carry.
type localClock struct{}

func (localClock) Now() time.Time {
	return time.Unix(time.Now().Unix(), 0)
}

// NewTimeSource returns a TimeSource backed by the local clock.
func NewTimeSource() TimeSource {
	return localClock{}
}
