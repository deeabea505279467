package leave

import (
	"math"
	"time"
)

// DaysInclusive counts the days covered by an inclusive date range:
// floor of the absolute distance in whole days, plus one. A range whose
// start equals its end is one day. Callers reject reversed ranges before
// reaching here.
func DaysInclusive(start, end time.Time) int {
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Floor(diff)) + 1
}
