package yuvconv

// 8-bit limited range anchors, scaled by 2^(depth-8) for deeper samples.
const (
	limitedYOffset8  = 16
	limitedYRange8   = 219
	chromaOffset8    = 128
	limitedUVRange8  = 224
	referenceDepth   = 8
	defaultBitDepth  = 8
	defaultStandard  = BT709
	reportFormatName = "yuvconv-report-1"
)

// Bit depth bounds, depths outside are clamped into this interval.
// MaxBitDepth keeps every sample and range constant within a 32-bit int.
const (
	MinBitDepth = 8
	MaxBitDepth = 30
)
