// Package format renders calculation values for display.
//
// Nothing produced here is ever parsed back into a calculation; results are
// always recomputed from the raw inputs.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Number rounds n to digits decimals and groups the integer part
// ("2,356.2"). Trailing fractional zeros are dropped. Non-finite values
// render as "".
func Number(n float64, digits int) string {
	if !finite(n) {
		return ""
	}
	r := round(n, digits)
	return printer.Sprint(number.Decimal(r, number.MaxFractionDigits(digits)))
}

// Plain rounds n to digits decimals and renders it without grouping, for
// fields the user may edit ("9.625").
func Plain(n float64, digits int) string {
	if !finite(n) {
		return ""
	}
	return strconv.FormatFloat(round(n, digits), 'f', -1, 64)
}

// InputNumber renders n rounded to the nearest integer, halves rounding up.
func InputNumber(n float64) string {
	if !finite(n) {
		return ""
	}
	r := math.Floor(n + 0.5)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// round mirrors fixed-point formatting: render with digits decimals, then
// read the value back.
func round(n float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(n, 'f', digits, 64), 64)
	if err != nil {
		return n
	}
	return r
}

func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
