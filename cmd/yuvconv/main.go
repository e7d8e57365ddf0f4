package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vearutop/yuvconv"
)

type options struct {
	rgb      []int
	yuv      []int
	standard string
	rng      string
	bitDepth int
	all      int
	json     bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // Cobra falls back to os.Args on nil.
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fail(stderr, err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	opt := options{}

	cmd := &cobra.Command{
		Use:   "yuvconv",
		Short: "Color Space Converter. [10bit supported]",
		Example: "  yuvconv -r 255,0,0 -s bt709 -t limited\n" +
			"  yuvconv -y 64,512,512 -s bt2020 -t lr -b 10\n" +
			"  yuvconv -r 120,194,87 -a 2",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opt.completeTriple(args); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), &opt)
		},
	}

	bindFlags(cmd.Flags(), &opt)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, opt *options) {
	fs.IntSliceVarP(&opt.yuv, "yuv", "y", nil, "YUV value (Y,U,V)")
	fs.IntSliceVarP(&opt.rgb, "rgb", "r", nil, "RGB value (R,G,B)")
	fs.StringVarP(&opt.standard, "standard", "s", "bt601", "color space standard: bt601, bt709, bt2020")
	fs.StringVarP(&opt.rng, "range", "t", "full", "color range: full, limited, fr, lr")
	fs.IntVarP(&opt.bitDepth, "bit-depth", "b", 8, "bit depth: 8, 10")
	fs.IntVarP(&opt.all, "all", "a", 0, "0: single conversion, 1: all standards, ranges and depths, 2: cross-check")
	fs.BoolVar(&opt.json, "json", false, "print JSON report")
	fs.SortFlags = false
}

func run(w io.Writer, opt *options) error {
	if len(opt.rgb) == 0 && len(opt.yuv) == 0 {
		return fmt.Errorf("%w: RGB or YUV value is required, see yuvconv -h", yuvconv.ErrMissingInput)
	}

	p, err := opt.params()
	if err != nil {
		return err
	}

	rgb, err := rgbTriple(opt.rgb)
	if err != nil {
		return err
	}
	yuv, err := yuvTriple(opt.yuv)
	if err != nil {
		return err
	}

	var (
		mode    = yuvconv.Mode(opt.all)
		results []yuvconv.Conversion
	)

	switch mode {
	case yuvconv.ModeSingle:
		if yuv != nil {
			results = append(results, yuvconv.ConvertYUV(*yuv, p))
		} else {
			results = append(results, yuvconv.ConvertRGB(*rgb, p))
		}
	case yuvconv.ModeSweep:
		if rgb != nil {
			results = yuvconv.SweepRGB(*rgb)
		} else {
			results = yuvconv.SweepYUV(*yuv)
		}
	case yuvconv.ModeCrossCheck:
		if rgb == nil {
			return fmt.Errorf("%w: for cts issue check, RGB value is required", yuvconv.ErrMissingInput)
		}
		results = yuvconv.CrossCheck(*rgb)
	default:
		return fmt.Errorf("%w: all %d, expected 0, 1 or 2", yuvconv.ErrInvalidSelector, opt.all)
	}

	if opt.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false) // Keep "-->" readable in labels.

		return enc.Encode(yuvconv.NewReport(mode, results))
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}

	return nil
}

func (o *options) params() (yuvconv.Params, error) {
	p := yuvconv.Params{}

	p.Standard = yuvconv.ParseStandard(o.standard)
	if p.Standard == yuvconv.StandardUnknown {
		return p, fmt.Errorf("%w: standard %q", yuvconv.ErrInvalidSelector, o.standard)
	}

	rt, err := yuvconv.ParseRange(o.rng)
	if err != nil {
		return p, err
	}
	p.Range = rt

	if o.bitDepth != 8 && o.bitDepth != 10 {
		return p, fmt.Errorf("%w: bit depth %d, expected 8 or 10", yuvconv.ErrInvalidSelector, o.bitDepth)
	}
	p.BitDepth = o.bitDepth

	return p, nil
}

func rgbTriple(v []int) (*yuvconv.RGB, error) {
	if len(v) == 0 {
		return nil, nil
	}
	if len(v) != 3 {
		return nil, errors.New("RGB value must have 3 components")
	}
	return &yuvconv.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func yuvTriple(v []int) (*yuvconv.YUV, error) {
	if len(v) == 0 {
		return nil, nil
	}
	if len(v) != 3 {
		return nil, errors.New("YUV value must have 3 components")
	}
	return &yuvconv.YUV{Y: v[0], U: v[1], V: v[2]}, nil
}

// completeTriple accepts the space separated form "-r 120 194 87": trailing
// positional values complete the triple flag that received a single value.
func (o *options) completeTriple(args []string) error {
	if len(args) == 0 {
		return nil
	}

	var target *[]int

	switch {
	case len(o.rgb) == 1 && len(o.yuv) != 1:
		target = &o.rgb
	case len(o.yuv) == 1 && len(o.rgb) != 1:
		target = &o.yuv
	default:
		return fmt.Errorf("unexpected arguments %v", args)
	}

	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("unexpected argument %q: %w", a, err)
		}
		*target = append(*target, v)
	}

	return nil
}

func fail(w io.Writer, err error) {
	fmt.Fprintln(w, "[Error]", err)
}
