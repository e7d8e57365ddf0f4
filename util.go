package yuvconv

import (
	"math"

	"github.com/samber/lo"
)

// clampSample rounds half away from zero and saturates to [0, maxVal].
func clampSample(v float64, maxVal int) int {
	return int(lo.Clamp(math.Round(v), 0, float64(maxVal)))
}

func normalizeBitDepth(depth int) int {
	return lo.Clamp(depth, MinBitDepth, MaxBitDepth)
}
