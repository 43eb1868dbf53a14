package sdkerr

import "time"

// Between returns to - from. A from that falls after to yields a
// DurationComputationError holding the size of the gap.
func Between(from, to time.Time) (time.Duration, Error) {
	if from.After(to) {
		return 0, DurationComputation(from.Sub(to))
	}
	return to.Sub(from), nil
}
