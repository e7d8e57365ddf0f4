package yuvconv

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
)

var coefficients = map[Standard]Coefficients{
	BT601:  {Kr: 0.2990, Kg: 0.5870, Kb: 0.1140}, // SDTV
	BT709:  {Kr: 0.2126, Kg: 0.7152, Kb: 0.0722}, // HDTV
	BT2020: {Kr: 0.2627, Kg: 0.6780, Kb: 0.0593}, // UHDTV
}

var standardNames = map[Standard]string{
	BT601:  "bt601",
	BT709:  "bt709",
	BT2020: "bt2020",
}

var rangeNames = map[string]RangeType{
	"full":    RangeFull,
	"fr":      RangeFull,
	"limited": RangeLimited,
	"lr":      RangeLimited,
}

// Resolve returns the standard whose coefficients are used for conversion.
// StandardUnknown and values outside the table resolve to BT709.
func (s Standard) Resolve() Standard {
	if _, ok := coefficients[s]; ok {
		return s
	}
	return defaultStandard
}

// Coefficients returns luma weights of the resolved standard.
func (s Standard) Coefficients() Coefficients {
	return coefficients[s.Resolve()]
}

func (s Standard) String() string {
	if n, ok := standardNames[s]; ok {
		return n
	}
	return "unknown"
}

func (rt RangeType) String() string {
	if rt == RangeFull {
		return "full"
	}
	return "limited"
}

// ParseStandard maps a selector such as "bt709" to a Standard.
// Unrecognized names yield StandardUnknown, which converts as BT709.
func ParseStandard(name string) Standard {
	name = foldName(name)
	for s, n := range standardNames {
		if n == name {
			return s
		}
	}
	return StandardUnknown
}

// ParseRange maps "full", "limited" and their "fr", "lr" aliases to a RangeType.
func ParseRange(name string) (RangeType, error) {
	if rt, ok := rangeNames[foldName(name)]; ok {
		return rt, nil
	}
	return RangeFull, fmt.Errorf("%w: range %q", ErrInvalidSelector, name)
}

// Validate checks that chroma and green reconstruction are defined.
func (c Coefficients) Validate() error {
	for _, k := range []struct {
		name string
		val  float64
	}{{"Kr", c.Kr}, {"Kg", c.Kg}, {"Kb", c.Kb}} {
		if math.IsNaN(k.val) || math.IsInf(k.val, 0) {
			return &DomainError{Coefficient: k.name, Value: k.val, Reason: "not a finite number"}
		}
	}
	if c.Kr == 1 {
		return &DomainError{Coefficient: "Kr", Value: c.Kr, Reason: "red difference scale 2*(1-Kr) is zero"}
	}
	if c.Kb == 1 {
		return &DomainError{Coefficient: "Kb", Value: c.Kb, Reason: "blue difference scale 2*(1-Kb) is zero"}
	}
	if c.Kg == 0 {
		return &DomainError{Coefficient: "Kg", Value: c.Kg, Reason: "green cannot be reconstructed"}
	}
	return nil
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
