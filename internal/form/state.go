// Package form is the collaborator between whatever collects user input
// (CLI flags, the web form) and the pure calculation packages.
//
// It owns the rules the core deliberately knows nothing about: a non-empty
// custom diameter overrides the preset, custom diameters are entered in
// inches, and failures become the sentences a user sees.
package form

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexiusacademia/stringlift/internal/catalog"
	"github.com/alexiusacademia/stringlift/internal/format"
	"github.com/alexiusacademia/stringlift/internal/numparse"
	"github.com/alexiusacademia/stringlift/internal/units"
)

// StorageKey identifies the persisted schema. Bump the suffix if a field
// changes meaning; new optional fields keep it.
const StorageKey = "stringlift.formState.v1"

// State is the raw, unvalidated form as the user left it. Select fields hold
// preset values (meters), custom fields hold free text in the custom unit.
type State struct {
	OuterD       string `json:"outerD"`
	OuterDCustom string `json:"outerD_custom"`
	InnerD       string `json:"innerD"`
	InnerDCustom string `json:"innerD_custom"`
	Pressure     string `json:"pressure"`
	PressureUnit string `json:"pressureUnit"`

	// CustomUnit is the unit the custom fields were typed in. Records
	// without it were written in inches.
	CustomUnit string `json:"customUnit,omitempty"`
}

// Default is the form shown on first run.
func Default() State {
	return State{
		OuterD:       catalog.DefaultOuter.Value(),
		OuterDCustom: OuterCustomFromSelect(catalog.DefaultOuter.Value(), units.Inch),
		InnerD:       catalog.DefaultInner.Value(),
		InnerDCustom: InnerCustomFromSelect(catalog.DefaultInner.Value(), units.Inch),
		Pressure:     "345",
		PressureUnit: units.Bar.String(),
		CustomUnit:   units.Inch.String(),
	}
}

// LoadFromFile loads a form from a JSON file using the persisted keys.
// A diameter or pressure the file leaves out entirely takes its default.
func LoadFromFile(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("%s: %w", path, err)
	}

	def := Default().WithCustomUnit(st.customUnit())
	if st.OuterD == "" && st.OuterDCustom == "" {
		st.OuterD, st.OuterDCustom = def.OuterD, def.OuterDCustom
	}
	if st.InnerD == "" && st.InnerDCustom == "" {
		st.InnerD, st.InnerDCustom = def.InnerD, def.InnerDCustom
	}
	if st.Pressure == "" {
		st.Pressure, st.PressureUnit = def.Pressure, def.PressureUnit
	}
	return st, nil
}

// OuterCustomFromSelect fills the outer custom field from a preset value,
// or clears it when the preset is not a number.
func OuterCustomFromSelect(selectValue string, custom units.LengthUnit) string {
	m, err := strconv.ParseFloat(strings.TrimSpace(selectValue), 64)
	if err != nil {
		return ""
	}
	return format.Plain(units.MetersTo(m, custom), customDigits(custom))
}

// InnerCustomFromSelect fills the inner custom field from a preset value.
// An open bore (or an unreadable preset) shows as "0".
func InnerCustomFromSelect(selectValue string, custom units.LengthUnit) string {
	m, err := strconv.ParseFloat(strings.TrimSpace(selectValue), 64)
	if err != nil || m <= 0 {
		return "0"
	}
	return format.Plain(units.MetersTo(m, custom), customDigits(custom))
}

// SelectOuter switches the outer preset and syncs the custom field.
func (s State) SelectOuter(size catalog.Size, custom units.LengthUnit) State {
	s.OuterD = size.Value()
	s.OuterDCustom = OuterCustomFromSelect(s.OuterD, custom)
	s.CustomUnit = custom.String()
	return s
}

// SelectInner switches the inner preset and syncs the custom field.
func (s State) SelectInner(size catalog.Size, custom units.LengthUnit) State {
	s.InnerD = size.Value()
	s.InnerDCustom = InnerCustomFromSelect(s.InnerD, custom)
	s.CustomUnit = custom.String()
	return s
}

// WithCustomUnit re-expresses the custom diameters in unit to, so the same
// physical sizes survive a change of --custom-unit. Fields that don't parse
// are left as typed.
func (s State) WithCustomUnit(to units.LengthUnit) State {
	if from := s.customUnit(); from != to {
		s.OuterDCustom = convertLengthField(s.OuterDCustom, from, to)
		s.InnerDCustom = convertLengthField(s.InnerDCustom, from, to)
	}
	s.CustomUnit = to.String()
	return s
}

// customUnit reads CustomUnit, falling back to inches.
func (s State) customUnit() units.LengthUnit {
	if u, err := units.ParseLengthUnit(s.CustomUnit); err == nil {
		return u
	}
	return units.Inch
}

func convertLengthField(raw string, from, to units.LengthUnit) string {
	v, err := numparse.ParseNumberOrFraction(raw)
	if err != nil || !finite(v) {
		return raw
	}
	return format.Plain(units.MetersTo(units.LengthToMeters(v, from), to), customDigits(to))
}

// customDigits is how many decimals a synced custom field keeps.
func customDigits(u units.LengthUnit) int {
	if u == units.Meter {
		return 6
	}
	return 3
}

// WithPressureUnit switches the pressure unit and converts the entered
// pressure so it describes the same physical value. An unreadable current
// unit is taken to be bar.
func (s State) WithPressureUnit(to units.PressureUnit) State {
	from, err := units.ParsePressureUnit(s.PressureUnit)
	if err != nil {
		from = units.Bar
	}
	s.Pressure = ConvertPressureField(s.Pressure, from, to)
	s.PressureUnit = to.String()
	return s
}

var (
	separatorChars = regexp.MustCompile(`[,\s]`)
	nonNumeric     = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber  = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ConvertPressureField converts a pressure as typed from one unit to another
// and renders it as a whole number. Grouping commas, spaces and stray
// characters are ignored. An empty field stays empty, and a field with no
// leading number is returned unchanged.
func ConvertPressureField(raw string, from, to units.PressureUnit) string {
	if raw == "" {
		return ""
	}
	cleaned := nonNumeric.ReplaceAllString(separatorChars.ReplaceAllString(raw, ""), "")
	m := leadingNumber.FindString(cleaned)
	if m == "" {
		return raw
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return raw
	}
	return format.InputNumber(units.PascalsTo(units.PressureToPascals(n, from), to))
}

// PipePresent reports whether the state describes a string in the bore,
// which decides how the schematic is laid out.
func PipePresent(s State, custom units.LengthUnit) bool {
	m, err := strconv.ParseFloat(strings.TrimSpace(s.InnerD), 64)
	if err != nil {
		m = -1
	}
	if strings.TrimSpace(s.InnerDCustom) != "" {
		if v, err := numparse.ParseNumberOrFraction(s.InnerDCustom); err == nil {
			m = units.LengthToMeters(v, custom)
		}
	}
	return m > 0
}
