package domain

// SaturationCurveUnit is the x-axis unit of a saturation curve measurement.
type SaturationCurveUnit string

const (
	UnitWCM2 SaturationCurveUnit = "W/cm²"
	UnitW    SaturationCurveUnit = "W"
)

func (u SaturationCurveUnit) String() string {
	return string(u)
}

// XAxisName is the axis label matching the unit.
func (u SaturationCurveUnit) XAxisName() string {
	if u == UnitW {
		return "Power"
	}
	return "Irradiance"
}

// SaturationCurve is one measured signal-versus-intensity curve. X and Y have
// equal length; the uncertainty slices are nil when not provided and
// otherwise match their data slice in length. Title is the unique key within
// a document's curve collection.
type SaturationCurve struct {
	Title string
	Notes string
	Unit  SaturationCurveUnit
	Fit   bool
	X     []float64
	XUnc  []float64
	Y     []float64
	YUnc  []float64
}

// NewSaturationCurve builds a curve from the raw editor fields, parsing the
// four pasted data fields and enforcing the length invariants.
func NewSaturationCurve(title, notes string, unit SaturationCurveUnit, fit bool, xdat, xunc, ydat, yunc string) (SaturationCurve, error) {
	if title == "" {
		return SaturationCurve{}, CompletenessError("Title cannot be empty.")
	}

	x, err := ParseFloatList("x", xdat)
	if err != nil {
		return SaturationCurve{}, err
	}
	y, err := ParseFloatList("y", ydat)
	if err != nil {
		return SaturationCurve{}, err
	}
	if len(x) == 0 || len(y) == 0 {
		return SaturationCurve{}, CompletenessError("Please enter some data.")
	}
	if len(x) != len(y) {
		return SaturationCurve{}, StructuralError("Length of x and y data must be equal.")
	}

	xu, err := ParseFloatList("x uncertainty", xunc)
	if err != nil {
		return SaturationCurve{}, err
	}
	if len(xu) > 0 && len(xu) != len(x) {
		return SaturationCurve{}, StructuralError("Length of x data and x data uncertainty must be equal.")
	}
	yu, err := ParseFloatList("y uncertainty", yunc)
	if err != nil {
		return SaturationCurve{}, err
	}
	if len(yu) > 0 && len(yu) != len(y) {
		return SaturationCurve{}, StructuralError("Length of y data and y data uncertainty must be equal.")
	}

	c := SaturationCurve{
		Title: title,
		Notes: notes,
		Unit:  unit,
		Fit:   fit,
		X:     x,
		Y:     y,
	}
	if len(xu) > 0 {
		c.XUnc = xu
	}
	if len(yu) > 0 {
		c.YUnc = yu
	}
	return c, nil
}

// Editor field renderings, used to load an existing entry back into the form.

func (c SaturationCurve) XString() string    { return FormatFloats(c.X) }
func (c SaturationCurve) XUncString() string { return FormatFloats(c.XUnc) }
func (c SaturationCurve) YString() string    { return FormatFloats(c.Y) }
func (c SaturationCurve) YUncString() string { return FormatFloats(c.YUnc) }
