package lift

import (
	"errors"
	"fmt"
)

// Reason classifies a validation failure.
type Reason int

const (
	NonNumericInput Reason = iota + 1
	NegativeInnerDiameter
	NonPositiveOuterDiameter
	OuterNotGreaterThanInner
	NegativePressure
)

var (
	ErrNonNumericInput          = errors.New("non-numeric input")
	ErrNegativeInnerDiameter    = errors.New("negative inner diameter")
	ErrNonPositiveOuterDiameter = errors.New("non-positive outer diameter")
	ErrOuterNotGreaterThanInner = errors.New("outer diameter not greater than inner diameter")
	ErrNegativePressure         = errors.New("negative pressure")
)

var reasonInfo = map[Reason]struct {
	name    string
	kind    error
	message string
}{
	NonNumericInput:          {"NonNumericInput", ErrNonNumericInput, "inner diameter, outer diameter and pressure must all be numbers"},
	NegativeInnerDiameter:    {"NegativeInnerDiameter", ErrNegativeInnerDiameter, "inner diameter cannot be negative"},
	NonPositiveOuterDiameter: {"NonPositiveOuterDiameter", ErrNonPositiveOuterDiameter, "outer diameter must be greater than zero"},
	OuterNotGreaterThanInner: {"OuterNotGreaterThanInner", ErrOuterNotGreaterThanInner, "outer diameter must be larger than inner diameter"},
	NegativePressure:         {"NegativePressure", ErrNegativePressure, "pressure cannot be negative"},
}

func (r Reason) String() string {
	if info, ok := reasonInfo[r]; ok {
		return info.name
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// MarshalText renders the reason by name for JSON responses.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (r *Reason) UnmarshalText(b []byte) error {
	for k, info := range reasonInfo {
		if info.name == string(b) {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("unknown reason %q", b)
}

// ValidationError is returned by Compute when its input is rejected.
type ValidationError struct {
	Reason  Reason
	Message string
}

func newValidationError(r Reason) error {
	return &ValidationError{Reason: r, Message: reasonInfo[r].message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap exposes the per-reason sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return reasonInfo[e.Reason].kind
}

// AsValidationError extracts a *ValidationError from err, if there is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
