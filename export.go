package yuvconv

// ClampSample wraps clampSample for external use: it rounds half away from zero
// and saturates v to [0, 2^depth-1].
func ClampSample(v float64, depth int) int {
	return clampSample(v, 1<<normalizeBitDepth(depth)-1)
}

// BuiltinTransform returns the transform used by RGBToYUV and YUVToRGB for p.
func BuiltinTransform(p Params) *Transform {
	t := builtinTransform(p)
	return &t
}

// ReportFormat exposes the current report format identifier.
func ReportFormat() string {
	return reportFormatName
}
