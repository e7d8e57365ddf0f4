package yuvconv

// RangeParamsFor derives sample mapping for a range type and bit depth.
//
// Depth is clamped to [MinBitDepth, MaxBitDepth], any depth in between is exact. Chroma is centered at 128*2^(depth-8)
// in both ranges, full range stretches luma and chroma over the whole code span.
func RangeParamsFor(rt RangeType, depth int) RangeParams {
	depth = normalizeBitDepth(depth)
	maxVal := 1<<depth - 1
	scale := 1 << (depth - referenceDepth)

	if rt == RangeFull {
		return RangeParams{
			MaxValue: maxVal,
			YOffset:  0,
			YRange:   maxVal,
			UVOffset: chromaOffset8 * scale,
			UVRange:  maxVal,
		}
	}

	return RangeParams{
		MaxValue: maxVal,
		YOffset:  limitedYOffset8 * scale,
		YRange:   limitedYRange8 * scale,
		UVOffset: chromaOffset8 * scale,
		UVRange:  limitedUVRange8 * scale,
	}
}
