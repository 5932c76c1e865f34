// Package display turns API records into the numbers and labels the screens show.
// Nothing here fails: missing data yields fallbacks, out-of-range data is clamped.
package display

// Similarity is bounded above only; a negative ratio passes through.
func Similarity(ratio, offset int) int {
	return min(100, ratio+offset)
}

func CelebrityBarValue(ratio, barCap, offset int) int {
	return min(barCap, ratio+offset)
}

func ImprovementGap(target, current int) int {
	return max(0, target-current)
}

// ClampPercent bounds a value used as a bar width.
func ClampPercent(v int) int {
	return max(0, min(100, v))
}
