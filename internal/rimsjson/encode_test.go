package rimsjson

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/domain"
)

func sampleDocument(t *testing.T) domain.Document {
	t.Helper()

	doc := domain.NewDocument()
	doc.Notes = "some notes"
	doc.SubmittedBy = "A. Submitter"
	doc.Scheme.Element = "Ti"
	doc.Scheme.Lasers = domain.LasersBoth
	doc.Scheme.Unit = domain.UnitNM
	doc.Scheme.LastStepToIP = true
	doc.Scheme.GroundState = domain.GroundState{Level: "0", TermSymbol: "3F2"}
	doc.Scheme.IPTermSymbol = "2F9/2"
	doc.Scheme.Transitions[0] = domain.Transition{Level: "465.777", TermSymbol: "3F3", Strength: "410000"}
	// Slot 1 stays empty: gaps are allowed.
	doc.Scheme.Transitions[2] = domain.Transition{Level: "416.158", Forbidden: true}

	curve, err := domain.NewSaturationCurve("step 1", "", domain.UnitW, true, "1,2,3", "", "10,20,25", "0.5 0.5 0.5")
	if err != nil {
		t.Fatalf("building curve: %v", err)
	}
	doc.UpsertSaturationCurve(curve)
	doc.UpsertReference(domain.NewReferenceFromDOI("10.1088/1361-6471/aa78e0"))
	doc.UpsertReference(domain.NewReferenceFromURL("https://example.com/article", "Wendt et al.", 2014))
	return doc
}

func query(t *testing.T, doc any, path string) any {
	t.Helper()
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		t.Fatalf("jsonpath %s: %v", path, err)
	}
	return v
}

func TestMarshalCanonicalShape(t *testing.T) {
	raw, err := Marshal(sampleDocument(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if got := query(t, parsed, "$.rims_scheme.scheme.element"); got != "Ti" {
		t.Fatalf("element: got %v", got)
	}
	if got := query(t, parsed, "$.rims_scheme.scheme.lasers"); got != "Ti:Sa and Dye" {
		t.Fatalf("lasers: got %v", got)
	}
	if got := query(t, parsed, "$.rims_scheme.scheme.unit"); got != "nm" {
		t.Fatalf("unit: got %v", got)
	}
	if got := query(t, parsed, "$.rims_scheme.scheme.step_level0"); got != "465.777" {
		t.Fatalf("step_level0: got %v", got)
	}
	if got := query(t, parsed, "$.rims_scheme.scheme.step_forbidden2"); got != true {
		t.Fatalf("step_forbidden2: got %v", got)
	}
	if got := query(t, parsed, "$.submitted_by"); got != "A. Submitter" {
		t.Fatalf("submitted_by: got %v", got)
	}
	if got := query(t, parsed, "$.saturation_curves[0].unit"); got != "W" {
		t.Fatalf("curve unit: got %v", got)
	}
	if got := query(t, parsed, "$.saturation_curves[0].data.y_err[0]"); got != 0.5 {
		t.Fatalf("y_err: got %v", got)
	}
	if got := query(t, parsed, "$.references[1].year"); got != float64(2014) {
		t.Fatalf("year: got %v", got)
	}

	// Empty slots and absent uncertainties are absent keys, not nulls.
	if _, err := jsonpath.Get("$.rims_scheme.scheme.step_level1", parsed); err == nil {
		t.Fatalf("empty step 1 must not be emitted")
	}
	if _, err := jsonpath.Get("$.saturation_curves[0].data.x_err", parsed); err == nil {
		t.Fatalf("absent x uncertainty must not be emitted")
	}
}

func TestMarshalWavenumberLiteral(t *testing.T) {
	doc := sampleDocument(t)
	doc.Scheme.Unit = domain.UnitCM1
	raw, err := Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got := query(t, parsed, "$.rims_scheme.scheme.unit"); got != "cm<sup>-1</sup>" {
		t.Fatalf("unit literal: got %v", got)
	}
}

func TestMarshalKeyOrder(t *testing.T) {
	raw, err := Marshal(sampleDocument(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(raw)

	order := []string{`"notes"`, `"rims_scheme"`, `"element"`, `"lasers"`, `"last_step_to_ip"`,
		`"gs_term"`, `"gs_level"`, `"ip_term"`, `"unit"`, `"step_level0"`,
		`"references"`, `"saturation_curves"`, `"submitted_by"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		if idx < 0 {
			t.Fatalf("key %s missing from output", key)
		}
		if idx < last {
			t.Fatalf("key %s out of order", key)
		}
		last = idx
	}

	if !strings.HasPrefix(s, "{\n") {
		t.Fatalf("output should be pretty-printed")
	}
}

func TestMarshalFailsClosed(t *testing.T) {
	doc := sampleDocument(t)
	doc.SubmittedBy = ""
	if _, err := Marshal(doc); err == nil || err.Error() != "Please enter your name." {
		t.Fatalf("expected name error, got %v", err)
	}

	doc = sampleDocument(t)
	doc.Scheme.Transitions[0].Level = ""
	if _, err := Marshal(doc); err == nil || err.Error() != "No transitions entered" {
		t.Fatalf("expected transitions error, got %v", err)
	}

	doc = sampleDocument(t)
	doc.Scheme.Transitions[0].Strength = "not-a-number"
	if _, err := Marshal(doc); err == nil || err.Error() != "Transition strength is not a number." {
		t.Fatalf("expected strength error, got %v", err)
	}

	doc = sampleDocument(t)
	doc.Scheme.GroundState.Level = ""
	if _, err := Marshal(doc); err == nil || err.Error() != "Ground state level is empty." {
		t.Fatalf("expected ground state error, got %v", err)
	}
}

func TestMarshalStateSkipsValidation(t *testing.T) {
	doc := domain.NewDocument() // no transitions, no submitter
	raw, err := MarshalState(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got := query(t, parsed, "$.rims_scheme.scheme.element"); got != "H" {
		t.Fatalf("element: got %v", got)
	}
}
