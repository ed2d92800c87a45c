// Package numparse reads the dimension and pressure strings users type,
// including the mixed-number fractions common on oilfield tallies ("5 7/8").
package numparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for blank input. Callers usually treat it as
	// "no override" rather than as invalid input.
	ErrEmpty = errors.New("empty input")

	// ErrMalformed is returned for text that is neither a decimal nor a
	// supported fraction form.
	ErrMalformed = errors.New("malformed number")
)

// ParseError reports which input failed and why.
type ParseError struct {
	Input string
	Kind  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == ErrEmpty {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %q", e.Kind.Error(), e.Input)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func malformed(s string) error {
	return &ParseError{Input: s, Kind: ErrMalformed}
}

// tokens are separated by whitespace runs or a literal hyphen
var separators = regexp.MustCompile(`\s+|-`)

// ParseNumberOrFraction parses a decimal ("5.875", "-2") or a fraction in
// one of the forms "N/D", "W N/D" and "W-N/D".
//
// A zero denominator is not special-cased: the result is ±Inf or NaN and the
// caller's range checks decide what to do with it.
func ParseNumberOrFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ParseError{Input: s, Kind: ErrEmpty}
	}

	if !strings.Contains(s, "/") {
		return parseDecimal(s)
	}

	var parts []string
	for _, p := range separators.Split(s, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	switch len(parts) {
	case 1:
		return parseFraction(s, parts[0])
	case 2:
		whole, err := parseDecimal(parts[0])
		if err != nil {
			return 0, malformed(s)
		}
		frac, err := parseFraction(s, parts[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	default:
		return 0, malformed(s)
	}
}

func parseFraction(input, token string) (float64, error) {
	nd := strings.Split(token, "/")
	if len(nd) != 2 {
		return 0, malformed(input)
	}
	num, err := parseDecimal(nd[0])
	if err != nil {
		return 0, malformed(input)
	}
	den, err := parseDecimal(nd[1])
	if err != nil {
		return 0, malformed(input)
	}
	return num / den, nil
}

// parseDecimal accepts plain decimal notation only. strconv would also take
// "Inf", "NaN", hex floats and underscores, none of which a user types into
// a diameter field.
func parseDecimal(s string) (float64, error) {
	if !decimal.MatchString(s) {
		return 0, malformed(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed(s)
	}
	return v, nil
}

var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
