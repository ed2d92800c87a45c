package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/alexiusacademia/stringlift/internal/catalog"
	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/units"
)

// formFlags are the form fields a command can override. Anything not given
// on the command line comes from the remembered state.
type formFlags struct {
	file     string
	odSize   string
	od       string
	idSize   string
	id       string
	pressure string
	unit     units.PressureUnit
}

func (f *formFlags) bind(fs *pflag.FlagSet, withPressure bool) {
	fs.StringVarP(&f.file, "file", "f", "", "Read the form from a JSON file instead of the remembered state")
	fs.StringVar(&f.odSize, "od-size", "", "Casing/riser preset, e.g. 9-5/8 (see 'stringlift sizes')")
	fs.StringVar(&f.od, "od", "", "Custom outer diameter in the custom unit, e.g. \"9 5/8\"")
	fs.StringVar(&f.idSize, "id-size", "", "Pipe preset, e.g. 5-7/8, or none for an open bore")
	fs.StringVar(&f.id, "id", "", "Custom inner diameter in the custom unit (0 for no pipe)")
	if withPressure {
		fs.StringVarP(&f.pressure, "pressure", "p", "", "Pressure, e.g. 345")
	}
	f.unit = units.Bar
	fs.VarP(&f.unit, "unit", "u", "Pressure unit (bar, psi, Pa)")
}

// state builds the form: the --file contents or the remembered state,
// re-expressed in the custom unit, with the flags that were set laid over it.
func (f *formFlags) state(fs *pflag.FlagSet, custom units.LengthUnit) (form.State, error) {
	var st form.State
	if f.file == "" {
		st = loadState()
	} else {
		var err error
		if st, err = form.LoadFromFile(f.file); err != nil {
			return st, fmt.Errorf("--file: %w", err)
		}
	}
	return f.apply(fs, st.WithCustomUnit(custom), custom)
}

// apply overlays the flags that were set on st.
func (f *formFlags) apply(fs *pflag.FlagSet, st form.State, custom units.LengthUnit) (form.State, error) {
	if fs.Changed("od-size") {
		size, err := catalog.FindOuter(f.odSize)
		if err != nil {
			return st, fmt.Errorf("--od-size: %w", err)
		}
		st = st.SelectOuter(size, custom)
	}
	if fs.Changed("od") {
		st.OuterDCustom = f.od
	}
	if fs.Changed("id-size") {
		size, err := catalog.FindInner(f.idSize)
		if err != nil {
			return st, fmt.Errorf("--id-size: %w", err)
		}
		st = st.SelectInner(size, custom)
	}
	if fs.Changed("id") {
		st.InnerDCustom = f.id
	}

	pressureSet := fs.Changed("pressure")
	if fs.Changed("unit") {
		if pressureSet {
			st.PressureUnit = f.unit.String()
		} else {
			// same physical pressure, new unit
			st = st.WithPressureUnit(f.unit)
		}
	}
	if pressureSet {
		st.Pressure = f.pressure
	}
	return st, nil
}
