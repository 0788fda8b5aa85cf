package gamemath

// Lerp moves start toward end by the given fraction.
func Lerp(start, end, amount float64) float64 {
	return start + amount*(end-start)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizedDelta converts elapsed milliseconds into reference frames.
func NormalizedDelta(deltaMs int64, referenceFrameMs float64) float64 {
	return float64(deltaMs) / referenceFrameMs
}
