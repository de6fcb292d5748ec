package domain

// NumTransitions is the fixed number of transition slots in a scheme. Slot
// index is step order and is never reordered.
const NumTransitions = 7

// GroundState is the lowest level of the scheme in cm^-1 plus an optional
// term symbol.
type GroundState struct {
	Level      string
	TermSymbol string
}

// Transition is one laser-driven step in a scheme. Level and Strength are
// numeric strings; an empty Strength means "unspecified". A low-lying step is
// referenced from the ground state manifold and is always given in cm^-1
// regardless of the scheme unit.
type Transition struct {
	Level      string
	TermSymbol string
	Strength   string
	LowLying   bool
	Forbidden  bool
}

// Empty reports whether the slot is unpopulated.
func (t Transition) Empty() bool {
	return t.Level == ""
}

// TransitionUnit is the display and input unit for non-low-lying transitions.
type TransitionUnit string

const (
	UnitCM1 TransitionUnit = "1/cm"
	UnitNM  TransitionUnit = "nm"
)

func (u TransitionUnit) String() string {
	return string(u)
}

// Lasers describes which laser technology produced the scheme. The values are
// the canonical display strings shared with the document format.
type Lasers string

const (
	LasersTiSa Lasers = "Ti:Sa"
	LasersDye  Lasers = "Dye"
	LasersBoth Lasers = "Ti:Sa and Dye"
)

func (l Lasers) String() string {
	return string(l)
}

// ParseLasers accepts exactly the three canonical display strings.
func ParseLasers(s string) (Lasers, error) {
	switch Lasers(s) {
	case LasersTiSa, LasersDye, LasersBoth:
		return Lasers(s), nil
	}
	return "", ImportSchemaError("Invalid lasers entry %q.", s)
}

// Scheme is the excitation pathway for one element: ground state, up to
// NumTransitions steps, and the laser setup that produced it.
type Scheme struct {
	Element      Element
	GroundState  GroundState
	IPTermSymbol string
	Transitions  [NumTransitions]Transition
	LastStepToIP bool
	Unit         TransitionUnit
	Lasers       Lasers
}

// NewScheme returns a scheme with the form defaults: hydrogen, ground state
// at level 0, wavenumber unit, Ti:Sa lasers.
func NewScheme() Scheme {
	return Scheme{
		Element:     "H",
		GroundState: GroundState{Level: "0"},
		Unit:        UnitCM1,
		Lasers:      LasersTiSa,
	}
}

// Complete reports whether the scheme has at least its first transition
// entered. Export refuses incomplete schemes.
func (s Scheme) Complete() bool {
	return !s.Transitions[0].Empty()
}

// StepUnit returns the unit a given transition is expressed in: low-lying
// steps are always cm^-1, the rest follow the scheme unit.
func (s Scheme) StepUnit(i int) TransitionUnit {
	if i >= 0 && i < NumTransitions && s.Transitions[i].LowLying {
		return UnitCM1
	}
	return s.Unit
}
