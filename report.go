package yuvconv

import (
	"errors"
	"fmt"
	"strings"
)

// Conversion describes a sample passed through one or two conversions.
type Conversion struct {
	Label  string  `json:"label"`
	Source Params  `json:"source"`
	Target Params  `json:"target"`
	In     [3]int  `json:"in"`
	Mid    [3]int  `json:"mid"`
	Out    *[3]int `json:"out,omitempty"`
}

// String renders "<label>: in --> mid [--> out]" with comma separated components.
func (c Conversion) String() string {
	var sb strings.Builder

	sb.WriteString(c.Label)
	sb.WriteString(": ")
	writeTriple(&sb, c.In)
	sb.WriteString(" --> ")
	writeTriple(&sb, c.Mid)
	if c.Out != nil {
		sb.WriteString(" --> ")
		writeTriple(&sb, *c.Out)
	}

	return sb.String()
}

func writeTriple(sb *strings.Builder, v [3]int) {
	fmt.Fprintf(sb, "%d, %d, %d", v[0], v[1], v[2])
}

// Report is a JSON friendly collection of conversions.
type Report struct {
	Format  string       `json:"format"`
	Mode    string       `json:"mode"`
	Results []Conversion `json:"results"`
}

// NewReport wraps conversion results produced in mode.
func NewReport(mode Mode, results []Conversion) *Report {
	return &Report{
		Format:  reportFormatName,
		Mode:    mode.String(),
		Results: results,
	}
}

// Validate ensures the report was produced by a compatible version and is not empty.
func (r *Report) Validate() error {
	if r == nil {
		return errors.New("report is nil")
	}
	if r.Format == "" {
		return errors.New("report missing format")
	}
	if r.Format != reportFormatName {
		return fmt.Errorf("unsupported report format %q", r.Format)
	}
	if len(r.Results) == 0 {
		return errors.New("report has no results")
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Standard) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, unknown names decode as StandardUnknown.
func (s *Standard) UnmarshalText(text []byte) error {
	*s = ParseStandard(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (rt RangeType) MarshalText() ([]byte, error) {
	return []byte(rt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rt *RangeType) UnmarshalText(text []byte) error {
	v, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*rt = v
	return nil
}
