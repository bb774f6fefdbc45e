// Package percent rounds ratios the way every summary in the app shows them.
package percent

import "math"

// Of returns round(part/whole*100), or 0 when whole is not positive.
// Halves round up.
func Of(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(whole) + 0.5))
}
