package yuvconv

// Standard identifies a colorimetry standard defining luma weights.
//
// The zero value StandardUnknown resolves to BT709, see Standard.Resolve.
type Standard int

const (
	StandardUnknown Standard = iota
	BT601
	BT709
	BT2020
)

// RangeType identifies the signal range of YUV samples.
type RangeType int

const (
	// RangeFull maps samples across the entire representable span.
	RangeFull RangeType = iota
	// RangeLimited reserves footroom and headroom (8-bit luma 16-235, chroma 16-240).
	RangeLimited
)

// Coefficients are luma weights of the red, green and blue components.
type Coefficients struct {
	Kr, Kg, Kb float64
}

// RangeParams describes how normalized values map onto integer samples.
type RangeParams struct {
	MaxValue int
	YOffset  int
	YRange   int
	UVOffset int
	UVRange  int
}

// RGB is a pixel sample in R'G'B'.
type RGB struct {
	R, G, B int
}

// YUV is a pixel sample in Y'CbCr, U carries the blue and V the red difference.
type YUV struct {
	Y, U, V int
}

// Params selects the conversion flavor.
type Params struct {
	Standard Standard  `json:"standard"`
	Range    RangeType `json:"range"`
	BitDepth int       `json:"bit_depth"` // 8 if zero
}

// Standards lists the built-in standards in sweep order.
func Standards() []Standard {
	return []Standard{BT601, BT709, BT2020}
}

// Ranges lists range types in sweep order.
func Ranges() []RangeType {
	return []RangeType{RangeFull, RangeLimited}
}

// BitDepths lists the bit depths covered by sweeps.
func BitDepths() []int {
	return []int{8, 10}
}

func (p Params) depth() int {
	if p.BitDepth == 0 {
		return defaultBitDepth
	}
	return normalizeBitDepth(p.BitDepth)
}

func (px RGB) triple() [3]int { return [3]int{px.R, px.G, px.B} }
func (px YUV) triple() [3]int { return [3]int{px.Y, px.U, px.V} }
