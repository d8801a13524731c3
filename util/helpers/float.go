package helpers

import "math"

// CompareFloat is a total order over float64. NaN sorts after every
// non-NaN value and equals itself, so comparison results stay
// transitive even for malformed data.
func CompareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
