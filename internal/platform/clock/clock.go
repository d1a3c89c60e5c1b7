package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
// Streak anchoring and goal effective-instants all read "now" through it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now returns wall-clock time in the local zone. Day normalization happens in
// the calendar package against the configured location, never here.
func (SystemClock) Now() time.Time {
	return time.Now()
}
