package rimsjson

import (
	"encoding/json"
	"fmt"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

// Wire literals for the unit enums. Kept distinct from the display strings in
// the domain package; RIMSSchemeDrawer expects these exact values.
const (
	wireUnitNM   = "nm"
	wireUnitCM1  = "cm<sup>-1</sup>"
	wireUnitWCM2 = "W * cm^-2"
	wireUnitW    = "W"
)

// Marshal serializes a document into the canonical pretty-printed submission
// JSON. It fails closed: no transitions, an empty submitter name, or any
// invalid numeric field yields an error and no partial document.
func Marshal(doc domain.Document) ([]byte, error) {
	if err := validate(doc); err != nil {
		return nil, err
	}
	return marshal(doc)
}

// MarshalState serializes without the validation gate, defaulting nothing.
// Used only for persisting the form state across restarts.
func MarshalState(doc domain.Document) ([]byte, error) {
	return marshal(doc)
}

func validate(doc domain.Document) error {
	if !doc.Scheme.Complete() {
		return domain.CompletenessError("No transitions entered")
	}
	if doc.SubmittedBy == "" {
		return domain.CompletenessError("Please enter your name.")
	}
	if _, err := domain.CheckGroundStateLevel(doc.Scheme.GroundState.Level); err != nil {
		return err
	}
	for _, tr := range doc.Scheme.Transitions {
		if tr.Empty() {
			continue
		}
		if _, err := domain.CheckNumeric("Transition level", tr.Level); err != nil {
			return err
		}
		if _, err := domain.CheckNumeric("Transition strength", tr.Strength); err != nil {
			return err
		}
	}
	return nil
}

func marshal(doc domain.Document) ([]byte, error) {
	scheme := &object{}
	scheme.set("element", doc.Scheme.Element.String())
	scheme.set("lasers", doc.Scheme.Lasers.String())
	scheme.set("last_step_to_ip", doc.Scheme.LastStepToIP)
	scheme.set("gs_term", doc.Scheme.GroundState.TermSymbol)
	scheme.set("gs_level", doc.Scheme.GroundState.Level)
	scheme.set("ip_term", doc.Scheme.IPTermSymbol)
	scheme.set("unit", unitToWire(doc.Scheme.Unit))

	// Only populated steps are emitted; gaps are absent keys, not nulls.
	for i, tr := range doc.Scheme.Transitions {
		if tr.Empty() {
			continue
		}
		scheme.set(fmt.Sprintf("step_level%d", i), tr.Level)
		scheme.set(fmt.Sprintf("step_term%d", i), tr.TermSymbol)
		scheme.set(fmt.Sprintf("trans_strength%d", i), tr.Strength)
		scheme.set(fmt.Sprintf("step_forbidden%d", i), tr.Forbidden)
		scheme.set(fmt.Sprintf("step_lowlying%d", i), tr.LowLying)
	}

	rimsScheme := &object{}
	rimsScheme.set("scheme", scheme)

	refs := make([]*object, 0, len(doc.References))
	for _, r := range doc.References {
		ro := &object{}
		ro.set("id", r.ID)
		ro.set("authors", r.Authors)
		ro.set("year", r.Year)
		refs = append(refs, ro)
	}

	curves := make([]*object, 0, len(doc.SaturationCurves))
	for _, c := range doc.SaturationCurves {
		data := &object{}
		data.set("x", c.X)
		data.set("y", c.Y)
		if c.XUnc != nil {
			data.set("x_err", c.XUnc)
		}
		if c.YUnc != nil {
			data.set("y_err", c.YUnc)
		}

		co := &object{}
		co.set("title", c.Title)
		co.set("notes", c.Notes)
		co.set("unit", saturationUnitToWire(c.Unit))
		co.set("fit", c.Fit)
		co.set("data", data)
		curves = append(curves, co)
	}

	root := &object{}
	root.set("notes", doc.Notes)
	root.set("rims_scheme", rimsScheme)
	root.set("references", refs)
	root.set("saturation_curves", curves)
	root.set("submitted_by", doc.SubmittedBy)

	return json.MarshalIndent(root, "", "  ")
}

func unitToWire(u domain.TransitionUnit) string {
	if u == domain.UnitNM {
		return wireUnitNM
	}
	return wireUnitCM1
}

func saturationUnitToWire(u domain.SaturationCurveUnit) string {
	if u == domain.UnitW {
		return wireUnitW
	}
	return wireUnitWCM2
}
