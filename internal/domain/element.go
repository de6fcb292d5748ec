package domain

// Element is a chemical element identified by its short symbol. The set of
// valid elements is closed: everything listed in the ionization potential
// table below, hydrogen through hassium.
type Element string

// IP returns the element's first ionization potential in cm^-1. The values
// are fixed published constants; an element outside the table returns 0.
func (e Element) IP() float64 {
	return elementIP[e]
}

func (e Element) String() string {
	return string(e)
}

// ParseElement maps a short symbol onto the closed element set.
func ParseElement(symbol string) (Element, error) {
	e := Element(symbol)
	if _, ok := elementIP[e]; !ok {
		return "", InputFormatError("Unknown element %q.", symbol)
	}
	return e, nil
}

// Elements returns all valid elements in periodic table order.
func Elements() []Element {
	out := make([]Element, len(elementOrder))
	copy(out, elementOrder)
	return out
}

var elementOrder = []Element{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs",
}

// First ionization potentials in cm^-1, as published in the NIST atomic
// spectra database.
var elementIP = map[Element]float64{
	"H":  109678.77174307,
	"He": 198310.66637,
	"Li": 43487.1142,
	"Be": 75192.64,
	"B":  66928.04,
	"C":  90820.348,
	"N":  117225.7,
	"O":  109837.02,
	"F":  140524.5,
	"Ne": 173929.75,
	"Na": 41449.451,
	"Mg": 61671.05,
	"Al": 48278.48,
	"Si": 65747.76,
	"P":  84580.83,
	"S":  83559.1,
	"Cl": 104591.01,
	"Ar": 127109.842,
	"K":  35009.814,
	"Ca": 49305.924,
	"Sc": 52922.0,
	"Ti": 55072.5,
	"V":  54411.67,
	"Cr": 54575.6,
	"Mn": 59959.56,
	"Fe": 63737.704,
	"Co": 63564.6,
	"Ni": 61619.77,
	"Cu": 62317.46,
	"Zn": 75769.31,
	"Ga": 48387.634,
	"Ge": 63713.24,
	"As": 78950.0,
	"Se": 78658.15,
	"Br": 95284.8,
	"Kr": 112914.433,
	"Rb": 33690.81,
	"Sr": 45932.2036,
	"Y":  50145.6,
	"Zr": 53507.832,
	"Nb": 54513.8,
	"Mo": 57204.3,
	"Tc": 57421.68,
	"Ru": 59366.4,
	"Rh": 60160.1,
	"Pd": 67241.14,
	"Ag": 61106.45,
	"Cd": 72540.05,
	"In": 46670.107,
	"Sn": 59232.69,
	"Sb": 69431.34,
	"Te": 72669.006,
	"I":  84294.9,
	"Xe": 97833.787,
	"Cs": 31406.4677325,
	"Ba": 42034.91,
	"La": 44981.0,
	"Ce": 44672.0,
	"Pr": 44120.0,
	"Nd": 44562.0,
	"Pm": 45020.8,
	"Sm": 45519.69,
	"Eu": 45734.74,
	"Gd": 49601.45,
	"Tb": 47295.0,
	"Dy": 47901.76,
	"Ho": 48567.0,
	"Er": 49262.0,
	"Tm": 49880.57,
	"Yb": 50443.2,
	"Lu": 43762.6,
	"Hf": 55047.9,
	"Ta": 60891.4,
	"W":  63427.7,
	"Re": 63181.6,
	"Os": 68058.9,
	"Ir": 72323.9,
	"Pt": 72257.8,
	"Au": 74409.11,
	"Hg": 84184.15,
	"Tl": 49266.66,
	"Pb": 59819.558,
	"Bi": 58761.65,
	"Po": 67896.31,
	"At": 75150.8,
	"Rn": 86692.5,
	"Fr": 32848.872,
	"Ra": 42573.36,
	"Ac": 43394.52,
	"Th": 50867.0,
	"Pa": 47500.0,
	"U":  49958.4,
	"Np": 50535.0,
	"Pu": 48601.0,
	"Am": 48182.0,
	"Cm": 48330.68,
	"Bk": 49989.0,
	"Cf": 50666.76,
	"Es": 51364.58,
	"Fm": 52400.0,
	"Md": 53100.0,
	"No": 53444.0,
	"Lr": 40005.0,
	"Rf": 48580.0,
	"Db": 55000.0,
	"Sg": 63000.0,
	"Bh": 62000.0,
	"Hs": 61000.0,
}
