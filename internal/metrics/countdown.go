package metrics

import "time"

// Countdown is the time remaining until the exam, floored to whole units.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Passed  bool
}

// Until returns the countdown from now to target. Once target has been reached
// the countdown is zero and Passed is set.
func Until(now, target time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{Passed: true}
	}
	day := 24 * time.Hour
	return Countdown{
		Days:    int(diff / day),
		Hours:   int((diff % day) / time.Hour),
		Minutes: int((diff % time.Hour) / time.Minute),
	}
}
