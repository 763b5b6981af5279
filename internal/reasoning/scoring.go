package reasoning

import (
	"math"

	"github.com/montanaflynn/stats"
)

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// mean returns 0 for empty input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func boolWeight(ok bool, w float64) float64 {
	if ok {
		return w
	}
	return 0
}
