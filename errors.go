package yuvconv

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates a coefficient set that makes the transform undefined.
	ErrDomain = errors.New("coefficient domain error")
	// ErrInvalidSelector indicates an unknown range name or unsupported bit depth.
	ErrInvalidSelector = errors.New("invalid selector")
	// ErrMissingInput indicates that no sample was supplied for conversion.
	ErrMissingInput = errors.New("missing input")
)

// DomainError describes an invalid luma coefficient.
type DomainError struct {
	Coefficient string
	Value       float64
	Reason      string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s=%g, %s", ErrDomain, e.Coefficient, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrDomain).
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
