package overtime

// workdayHours is the fixed hours-to-days conversion ratio.
const workdayHours = 8.0

// DaysForHours converts worked overtime hours into equivalent work days.
// The result is fractional on purpose: half-days and partial days are
// meaningful values and are displayed to two decimal places.
func DaysForHours(hours float64) float64 {
	return hours / workdayHours
}
