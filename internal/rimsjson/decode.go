package rimsjson

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

// Unmarshal parses a RIMSSchemeDrawer document, accepting both the current
// rims_scheme shape and the legacy flat scheme shape, and normalizes it into
// the domain model. Element, lasers and unit are required; references without
// an id and curves without a title are skipped.
func Unmarshal(raw []byte) (domain.Document, error) {
	return unmarshal(raw, true)
}

// UnmarshalState is the lenient variant for persisted form state: missing
// scheme fields fall back to their form defaults instead of failing, so state
// written by older versions still loads.
func UnmarshalState(raw []byte) (domain.Document, error) {
	return unmarshal(raw, false)
}

func unmarshal(raw []byte, strict bool) (domain.Document, error) {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return domain.Document{}, domain.ImportSchemaError("Not a valid JSON document: %v", err)
	}

	scheme, err := findScheme(root)
	if err != nil {
		return domain.Document{}, err
	}

	doc := domain.NewDocument()
	doc.Notes = stringOr(root["notes"], "")
	doc.SubmittedBy = stringOr(root["submitted_by"], "")

	if err := decodeScheme(scheme, &doc.Scheme, strict); err != nil {
		return domain.Document{}, err
	}
	if err := decodeReferences(root["references"], &doc); err != nil {
		return domain.Document{}, err
	}
	if err := decodeSaturationCurves(root["saturation_curves"], &doc); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

// findScheme detects the schema variant by key presence: rims_scheme first,
// then the legacy bare scheme.
func findScheme(root map[string]any) (map[string]any, error) {
	if rs, ok := root["rims_scheme"].(map[string]any); ok {
		if s, ok := rs["scheme"].(map[string]any); ok {
			return s, nil
		}
	}
	if s, ok := root["scheme"].(map[string]any); ok {
		return s, nil
	}
	return nil, domain.ImportSchemaError("No 'rims_scheme' or 'scheme' key found.")
}

func decodeScheme(src map[string]any, scheme *domain.Scheme, strict bool) error {
	if sym, ok := src["element"].(string); ok {
		el, err := domain.ParseElement(sym)
		if err != nil {
			return err
		}
		scheme.Element = el
	} else if strict {
		return domain.ImportSchemaError("No element found in scheme.")
	}

	scheme.GroundState.Level = stringOr(src["gs_level"], "0")
	scheme.GroundState.TermSymbol = stringOr(src["gs_term"], "")
	scheme.IPTermSymbol = stringOr(src["ip_term"], "")
	scheme.LastStepToIP = boolOr(src["last_step_to_ip"], false)

	if s, ok := src["lasers"].(string); ok {
		lasers, err := domain.ParseLasers(s)
		if err != nil {
			return err
		}
		scheme.Lasers = lasers
	} else if strict {
		return domain.ImportSchemaError("No lasers entry found in scheme.")
	}

	// Permissive on purpose: anything other than "nm" is read as cm^-1, only
	// a truly absent unit is an error.
	if s, ok := src["unit"].(string); ok {
		if s == wireUnitNM {
			scheme.Unit = domain.UnitNM
		} else {
			scheme.Unit = domain.UnitCM1
		}
	} else if strict {
		return domain.ImportSchemaError("No unit entry found in scheme.")
	}

	// A step exists only if its level key is present; every other field of a
	// present step defaults when missing.
	for i := 0; i < domain.NumTransitions; i++ {
		level, ok := src[fmt.Sprintf("step_level%d", i)]
		if !ok {
			continue
		}
		scheme.Transitions[i] = domain.Transition{
			Level:      stringOr(level, ""),
			TermSymbol: stringOr(src[fmt.Sprintf("step_term%d", i)], ""),
			Strength:   stringOr(src[fmt.Sprintf("trans_strength%d", i)], ""),
			Forbidden:  boolOr(src[fmt.Sprintf("step_forbidden%d", i)], false),
			LowLying:   boolOr(src[fmt.Sprintf("step_lowlying%d", i)], false),
		}
	}
	return nil
}

func decodeReferences(v any, doc *domain.Document) error {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		id, ok := m["id"].(string)
		if !ok || id == "" {
			// Deliberate tolerance for partially-malformed companion data.
			continue
		}
		authors := stringOr(m["authors"], "")
		year := 0
		if y, ok := m["year"].(float64); ok {
			year = int(y)
		}
		doc.References = append(doc.References, domain.ReferenceEntry{
			ID:      id,
			Authors: authors,
			Year:    year,
		})
	}
	return nil
}

func decodeSaturationCurves(v any, doc *domain.Document) error {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		title, ok := m["title"].(string)
		if !ok || title == "" {
			continue
		}

		unit := domain.UnitWCM2
		if s, _ := m["unit"].(string); s == wireUnitW {
			unit = domain.UnitW
		}

		data, _ := m["data"].(map[string]any)
		x, err := floatArray(data["x"], true, title, "x")
		if err != nil {
			return err
		}
		y, err := floatArray(data["y"], true, title, "y")
		if err != nil {
			return err
		}
		xErr, err := floatArray(data["x_err"], false, title, "x_err")
		if err != nil {
			return err
		}
		yErr, err := floatArray(data["y_err"], false, title, "y_err")
		if err != nil {
			return err
		}

		doc.SaturationCurves = append(doc.SaturationCurves, domain.SaturationCurve{
			Title: title,
			Notes: stringOr(m["notes"], ""),
			Unit:  unit,
			Fit:   boolOr(m["fit"], true),
			X:     x,
			XUnc:  xErr,
			Y:     y,
			YUnc:  yErr,
		})
	}
	return nil
}

// floatArray reads a data array. A required array must be present; any
// non-numeric element anywhere fails the whole parse.
func floatArray(v any, required bool, curve, axis string) ([]float64, error) {
	if v == nil {
		if required {
			return nil, domain.ImportSchemaError("No %s data found in saturation curve %q.", axis, curve)
		}
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, domain.ImportSchemaError("None-numeric value found in data.")
	}
	out := make([]float64, 0, len(arr))
	for _, el := range arr {
		f, ok := el.(float64)
		if !ok {
			return nil, domain.ImportSchemaError("None-numeric value found in data.")
		}
		out = append(out, f)
	}
	return out, nil
}

// stringOr reads a string value with a default. Numbers are tolerated and
// formatted, since older drawer files store some levels unquoted.
func stringOr(v any, def string) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	return def
}

func boolOr(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}
