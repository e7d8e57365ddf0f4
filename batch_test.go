package yuvconv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRGB(t *testing.T) {
	res := SweepRGB(RGB{255, 0, 0})
	require.Len(t, res, 12)

	labels := make([]string, 0, len(res))
	for _, r := range res {
		labels = append(labels, r.Label)
	}

	want := []string{
		"Converter RGB --> YUV --> RGB bt601, full, 8bit",
		"Converter RGB --> YUV --> RGB bt601, full, 10bit",
		"Converter RGB --> YUV --> RGB bt601, limited, 8bit",
		"Converter RGB --> YUV --> RGB bt601, limited, 10bit",
		"Converter RGB --> YUV --> RGB bt709, full, 8bit",
		"Converter RGB --> YUV --> RGB bt709, full, 10bit",
		"Converter RGB --> YUV --> RGB bt709, limited, 8bit",
		"Converter RGB --> YUV --> RGB bt709, limited, 10bit",
		"Converter RGB --> YUV --> RGB bt2020, full, 8bit",
		"Converter RGB --> YUV --> RGB bt2020, full, 10bit",
		"Converter RGB --> YUV --> RGB bt2020, limited, 8bit",
		"Converter RGB --> YUV --> RGB bt2020, limited, 10bit",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Converter RGB --> YUV --> RGB bt709, limited, 8bit: 255, 0, 0 --> 63, 102, 240 --> 255, 1, 0",
		res[6].String())

	for i, r := range res {
		require.NotNil(t, r.Out, i)
		assert.Equal(t, r.Source, r.Target)
		assert.Equal(t, [3]int{255, 0, 0}, r.In)
		assert.Equal(t, RGBToYUV(RGB{255, 0, 0}, r.Source).triple(), r.Mid)
		assert.InDelta(t, 255, r.Out[0], 1)
	}
}

func TestSweepYUV(t *testing.T) {
	res := SweepYUV(YUV{16, 128, 128})
	require.Len(t, res, 12)

	assert.Equal(t, "Converter YUV --> RGB --> YUV bt601, full, 8bit: 16, 128, 128 --> 16, 16, 16 --> 16, 128, 128",
		res[0].String())
	assert.Equal(t, "Converter YUV --> RGB --> YUV bt601, limited, 8bit: 16, 128, 128 --> 0, 0, 0 --> 16, 128, 128",
		res[2].String())

	for _, r := range res {
		want := RGBToYUV(YUVToRGB(YUV{16, 128, 128}, r.Source), r.Source).triple()
		require.NotNil(t, r.Out)
		assert.Equal(t, want, *r.Out)
	}
}

func TestCrossCheck(t *testing.T) {
	res := CrossCheck(RGB{120, 194, 87})
	require.Len(t, res, 16)

	want := []Conversion{
		{
			Label:  "0.Converter RGB --> YUVbt601, full --> RGBbt601, full, 8bit",
			Source: Params{Standard: BT601, Range: RangeFull, BitDepth: 8},
			Target: Params{Standard: BT601, Range: RangeFull, BitDepth: 8},
			In:     [3]int{120, 194, 87},
			Mid:    [3]int{160, 87, 100},
			Out:    &[3]int{121, 194, 87},
		},
		{
			Label:  "11.Converter RGB --> YUVbt709, limited --> RGBbt601, limited, 8bit",
			Source: Params{Standard: BT709, Range: RangeLimited, BitDepth: 8},
			Target: Params{Standard: BT601, Range: RangeLimited, BitDepth: 8},
			In:     [3]int{120, 194, 87},
			Mid:    [3]int{162, 88, 100},
			Out:    &[3]int{125, 208, 89},
		},
		{
			Label:  "15.Converter RGB --> YUVbt709, limited --> RGBbt709, limited, 8bit",
			Source: Params{Standard: BT709, Range: RangeLimited, BitDepth: 8},
			Target: Params{Standard: BT709, Range: RangeLimited, BitDepth: 8},
			In:     [3]int{120, 194, 87},
			Mid:    [3]int{162, 88, 100},
			Out:    &[3]int{120, 193, 86},
		},
	}

	got := []Conversion{res[0], res[11], res[15]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected cross-check (-want +got):\n%s", diff)
	}

	assert.Equal(t, "1.Converter RGB --> YUVbt601, full --> RGBbt601, limited, 8bit: 120, 194, 87 --> 160, 87, 100 --> 123, 206, 85",
		res[1].String())
}

func TestConvertSingle(t *testing.T) {
	c := ConvertRGB(RGB{0, 255, 0}, Params{Standard: BT2020, Range: RangeFull})
	assert.Equal(t, "Converter RGB to YUV bt2020, full: 0, 255, 0 --> 173, 36, 11", c.String())
	assert.Equal(t, 8, c.Source.BitDepth)
	assert.Nil(t, c.Out)

	c = ConvertYUV(YUV{294, 387, 960}, Params{Standard: BT2020, Range: RangeLimited, BitDepth: 10})
	assert.Equal(t, "Converter YUV to RGB bt2020, limited: 294, 387, 960 --> 1023, 0, 0", c.String())
}

func TestConvertSingleUnknownStandardLabel(t *testing.T) {
	c := ConvertRGB(RGB{0, 255, 0}, Params{Range: RangeFull})
	assert.Equal(t, "Converter RGB to YUV bt709, full: 0, 255, 0 --> 182, 30, 12", c.String())
	assert.Equal(t, BT709, c.Source.Standard)

	c = ConvertYUV(YUV{182, 30, 12}, Params{Standard: Standard(42), Range: RangeFull})
	assert.Equal(t, "Converter YUV to RGB bt709, full", c.Label)
	assert.Equal(t, BT709, c.Target.Standard)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "single", ModeSingle.String())
	assert.Equal(t, "sweep", ModeSweep.String())
	assert.Equal(t, "crosscheck", ModeCrossCheck.String())
	assert.Equal(t, "mode(7)", Mode(7).String())
}
