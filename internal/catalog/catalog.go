// Package catalog lists the nominal pipe sizes offered as presets for the
// outer (bore) and inner (string) diameters.
package catalog

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/stringlift/internal/format"
	"github.com/alexiusacademia/stringlift/internal/numparse"
	"github.com/alexiusacademia/stringlift/internal/units"
)

// Size is a nominal pipe size.
type Size struct {
	Name        string  // e.g. "9-5/8"
	Description string  // e.g. "casing"
	Inches      float64 // actual diameter
}

// Meters returns the diameter in meters.
func (s Size) Meters() float64 {
	return units.LengthToMeters(s.Inches, units.Inch)
}

// Value is the preset's select value: the diameter in meters as text.
func (s Size) Value() string {
	return format.Plain(s.Meters(), 6)
}

// Label is the text shown for the preset.
func (s Size) Label() string {
	if s.Inches == 0 {
		return s.Description
	}
	return fmt.Sprintf(`%s" %s`, strings.ReplaceAll(s.Name, "-", " "), s.Description)
}

// NoPipe is the inner preset for an open bore.
var NoPipe = Size{Name: "none", Description: "No pipe", Inches: 0}

// OuterSizes are API casing and riser bores (nominal OD).
var OuterSizes = []Size{
	{Name: "4-1/2", Description: "casing", Inches: 4.5},
	{Name: "5", Description: "casing", Inches: 5},
	{Name: "5-1/2", Description: "casing", Inches: 5.5},
	{Name: "6-5/8", Description: "casing", Inches: 6.625},
	{Name: "7", Description: "casing", Inches: 7},
	{Name: "7-5/8", Description: "casing", Inches: 7.625},
	{Name: "8-5/8", Description: "casing", Inches: 8.625},
	{Name: "9-5/8", Description: "casing", Inches: 9.625},
	{Name: "10-3/4", Description: "casing", Inches: 10.75},
	{Name: "11-3/4", Description: "casing", Inches: 11.75},
	{Name: "13-3/8", Description: "casing", Inches: 13.375},
	{Name: "16", Description: "casing", Inches: 16},
	{Name: "18-5/8", Description: "casing", Inches: 18.625},
	{Name: "20", Description: "casing", Inches: 20},
	{Name: "21", Description: "riser", Inches: 21},
}

// InnerSizes are tubing and drill pipe bodies, plus the open-bore preset.
var InnerSizes = []Size{
	NoPipe,
	{Name: "2-3/8", Description: "tubing", Inches: 2.375},
	{Name: "2-7/8", Description: "tubing", Inches: 2.875},
	{Name: "3-1/2", Description: "drill pipe", Inches: 3.5},
	{Name: "4", Description: "drill pipe", Inches: 4},
	{Name: "4-1/2", Description: "drill pipe", Inches: 4.5},
	{Name: "5", Description: "drill pipe", Inches: 5},
	{Name: "5-1/2", Description: "drill pipe", Inches: 5.5},
	{Name: "5-7/8", Description: "drill pipe", Inches: 5.875},
	{Name: "6-5/8", Description: "drill pipe", Inches: 6.625},
	{Name: "7", Description: "casing string", Inches: 7},
}

// Default presets for a first run.
var (
	DefaultOuter = OuterSizes[7] // 9-5/8
	DefaultInner = InnerSizes[8] // 5-7/8
)

// FindOuter looks up an outer preset by name or inch value.
func FindOuter(name string) (Size, error) {
	return find(OuterSizes, name)
}

// FindInner looks up an inner preset by name or inch value. "none" and "0"
// select the open bore.
func FindInner(name string) (Size, error) {
	return find(InnerSizes, name)
}

// ByValue finds the preset whose select value is v.
func ByValue(sizes []Size, v string) (Size, bool) {
	for _, s := range sizes {
		if s.Value() == strings.TrimSpace(v) {
			return s, true
		}
	}
	return Size{}, false
}

func find(sizes []Size, name string) (Size, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range sizes {
		if s.Name == key {
			return s, nil
		}
	}
	// "9 5/8", "9.625" and friends
	if in, err := numparse.ParseNumberOrFraction(key); err == nil {
		for _, s := range sizes {
			if s.Inches == in {
				return s, nil
			}
		}
	}
	return Size{}, fmt.Errorf("unknown pipe size %q", name)
}
