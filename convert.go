package yuvconv

// Transform converts samples with a fixed coefficient set, range type and bit depth.
// It is immutable and safe for concurrent use.
type Transform struct {
	coeffs Coefficients
	params RangeParams
}

// NewTransform validates coefficients and prepares range parameters.
// An invalid coefficient set results in *DomainError.
func NewTransform(c Coefficients, rt RangeType, depth int) (*Transform, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t := newTransform(c, RangeParamsFor(rt, depth))
	return &t, nil
}

func newTransform(c Coefficients, p RangeParams) Transform {
	return Transform{coeffs: c, params: p}
}

func builtinTransform(p Params) Transform {
	return newTransform(p.Standard.Coefficients(), RangeParamsFor(p.Range, p.depth()))
}

// Coefficients returns luma weights used by the transform.
func (t *Transform) Coefficients() Coefficients {
	return t.coeffs
}

// RangeParams returns sample mapping used by the transform.
func (t *Transform) RangeParams() RangeParams {
	return t.params
}

// ToYUV converts an RGB sample. Components outside [0, MaxValue] are accepted,
// the result is always saturated to [0, MaxValue].
func (t *Transform) ToYUV(px RGB) YUV {
	kr, kg, kb := t.coeffs.Kr, t.coeffs.Kg, t.coeffs.Kb
	p := t.params
	maxVal := float64(p.MaxValue)

	rn := float64(px.R) / maxVal
	gn := float64(px.G) / maxVal
	bn := float64(px.B) / maxVal

	yRaw := kr*rn + kg*gn + kb*bn
	uRaw := (bn - yRaw) / (2 * (1 - kb))
	vRaw := (rn - yRaw) / (2 * (1 - kr))

	y := float64(p.YRange)*yRaw + float64(p.YOffset)
	u := float64(p.UVRange)*uRaw + float64(p.UVOffset)
	v := float64(p.UVRange)*vRaw + float64(p.UVOffset)

	return YUV{
		Y: clampSample(y, p.MaxValue),
		U: clampSample(u, p.MaxValue),
		V: clampSample(v, p.MaxValue),
	}
}

// ToRGB converts a YUV sample, it is the algebraic inverse of ToYUV.
func (t *Transform) ToRGB(px YUV) RGB {
	kr, kg, kb := t.coeffs.Kr, t.coeffs.Kg, t.coeffs.Kb
	p := t.params
	maxVal := float64(p.MaxValue)

	yn := float64(px.Y-p.YOffset) / float64(p.YRange)
	un := float64(px.U-p.UVOffset) / float64(p.UVRange)
	vn := float64(px.V-p.UVOffset) / float64(p.UVRange)

	rn := yn + (2*(1-kr))*vn
	bn := yn + (2*(1-kb))*un
	gn := (yn - kr*rn - kb*bn) / kg

	return RGB{
		R: clampSample(rn*maxVal, p.MaxValue),
		G: clampSample(gn*maxVal, p.MaxValue),
		B: clampSample(bn*maxVal, p.MaxValue),
	}
}

// RGBToYUV converts an RGB sample using built-in coefficients of p.Standard.
// Unknown standards convert as BT709.
func RGBToYUV(px RGB, p Params) YUV {
	t := builtinTransform(p)
	return t.ToYUV(px)
}

// YUVToRGB converts a YUV sample using built-in coefficients of p.Standard.
// Unknown standards convert as BT709.
func YUVToRGB(px YUV, p Params) RGB {
	t := builtinTransform(p)
	return t.ToRGB(px)
}
