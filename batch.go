package yuvconv

import (
	"fmt"

	"github.com/samber/lo"
)

// Mode selects how a sample is run through the converter.
type Mode int

const (
	// ModeSingle converts once with the given parameters.
	ModeSingle Mode = iota
	// ModeSweep runs a round trip for every standard, range and bit depth.
	ModeSweep
	// ModeCrossCheck encodes and decodes 8-bit RGB with mismatched standards and ranges.
	ModeCrossCheck
)

var modeNames = map[Mode]string{
	ModeSingle:     "single",
	ModeSweep:      "sweep",
	ModeCrossCheck: "crosscheck",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ConvertRGB converts an RGB sample once and describes the result.
// The label and parameters name the resolved standard.
func ConvertRGB(px RGB, p Params) Conversion {
	p.Standard = p.Standard.Resolve()
	p.BitDepth = p.depth()
	yuv := RGBToYUV(px, p)

	return Conversion{
		Label:  fmt.Sprintf("Converter RGB to YUV %s, %s", p.Standard, p.Range),
		Source: p,
		Target: p,
		In:     px.triple(),
		Mid:    yuv.triple(),
	}
}

// ConvertYUV converts a YUV sample once and describes the result.
// The label and parameters name the resolved standard.
func ConvertYUV(px YUV, p Params) Conversion {
	p.Standard = p.Standard.Resolve()
	p.BitDepth = p.depth()
	rgb := YUVToRGB(px, p)

	return Conversion{
		Label:  fmt.Sprintf("Converter YUV to RGB %s, %s", p.Standard, p.Range),
		Source: p,
		Target: p,
		In:     px.triple(),
		Mid:    rgb.triple(),
	}
}

// SweepRGB runs RGB -> YUV -> RGB for every combination of Standards, Ranges and BitDepths.
func SweepRGB(px RGB) []Conversion {
	return lo.Map(sweepParams(), func(p Params, _ int) Conversion {
		yuv := RGBToYUV(px, p)
		out := YUVToRGB(yuv, p)

		return Conversion{
			Label:  fmt.Sprintf("Converter RGB --> YUV --> RGB %s, %s, %dbit", p.Standard, p.Range, p.BitDepth),
			Source: p,
			Target: p,
			In:     px.triple(),
			Mid:    yuv.triple(),
			Out:    lo.ToPtr(out.triple()),
		}
	})
}

// SweepYUV runs YUV -> RGB -> YUV for every combination of Standards, Ranges and BitDepths.
func SweepYUV(px YUV) []Conversion {
	return lo.Map(sweepParams(), func(p Params, _ int) Conversion {
		rgb := YUVToRGB(px, p)
		out := RGBToYUV(rgb, p)

		return Conversion{
			Label:  fmt.Sprintf("Converter YUV --> RGB --> YUV %s, %s, %dbit", p.Standard, p.Range, p.BitDepth),
			Source: p,
			Target: p,
			In:     px.triple(),
			Mid:    rgb.triple(),
			Out:    lo.ToPtr(out.triple()),
		}
	})
}

// CrossCheck encodes an 8-bit RGB sample with one BT.601/BT.709 standard and range and
// decodes it with another, exposing color shifts caused by mismatched signaling.
// Results are ordered by source standard, target standard, source range, target range.
func CrossCheck(px RGB) []Conversion {
	standards := []Standard{BT601, BT709}
	ranges := Ranges()
	res := make([]Conversion, 0, len(standards)*len(standards)*len(ranges)*len(ranges))

	for _, stdSrc := range standards {
		for _, stdDst := range standards {
			for _, rngSrc := range ranges {
				for _, rngDst := range ranges {
					src := Params{Standard: stdSrc, Range: rngSrc, BitDepth: referenceDepth}
					dst := Params{Standard: stdDst, Range: rngDst, BitDepth: referenceDepth}
					yuv := RGBToYUV(px, src)
					out := YUVToRGB(yuv, dst)

					res = append(res, Conversion{
						Label: fmt.Sprintf("%d.Converter RGB --> YUV%s, %s --> RGB%s, %s, %dbit",
							len(res), stdSrc, rngSrc, stdDst, rngDst, referenceDepth),
						Source: src,
						Target: dst,
						In:     px.triple(),
						Mid:    yuv.triple(),
						Out:    lo.ToPtr(out.triple()),
					})
				}
			}
		}
	}

	return res
}

func sweepParams() []Params {
	return lo.FlatMap(Standards(), func(s Standard, _ int) []Params {
		return lo.FlatMap(Ranges(), func(rt RangeType, _ int) []Params {
			return lo.Map(BitDepths(), func(depth int, _ int) Params {
				return Params{Standard: s, Range: rt, BitDepth: depth}
			})
		})
	})
}
