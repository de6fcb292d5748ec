package domain

import "testing"

func mustCurve(t *testing.T, title, x, y string) SaturationCurve {
	t.Helper()
	c, err := NewSaturationCurve(title, "", UnitWCM2, true, x, "", y, "")
	if err != nil {
		t.Fatalf("building curve %q: %v", title, err)
	}
	return c
}

func TestUpsertSaturationCurveReplacesInPlace(t *testing.T) {
	var d Document
	d.UpsertSaturationCurve(mustCurve(t, "a", "1", "2"))
	d.UpsertSaturationCurve(mustCurve(t, "b", "1", "2"))
	d.UpsertSaturationCurve(mustCurve(t, "a", "3,4", "5,6"))

	if len(d.SaturationCurves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(d.SaturationCurves))
	}
	if d.SaturationCurves[0].Title != "a" || len(d.SaturationCurves[0].X) != 2 {
		t.Fatalf("entry was not replaced in place: %+v", d.SaturationCurves[0])
	}
}

func TestUpsertReferenceReplacesInPlace(t *testing.T) {
	var d Document
	d.UpsertReference(NewReferenceFromDOI("10.1/a"))
	d.UpsertReference(NewReferenceFromDOI("10.1/b"))
	d.UpsertReference(NewReferenceFromURL("10.1/a", "Someone", 2020))

	if len(d.References) != 2 {
		t.Fatalf("expected 2 references, got %d", len(d.References))
	}
	if d.References[0].Authors != "Someone" {
		t.Fatalf("entry was not replaced in place: %+v", d.References[0])
	}
}

func TestMoveAndRemove(t *testing.T) {
	var d Document
	d.UpsertReference(NewReferenceFromDOI("10.1/a"))
	d.UpsertReference(NewReferenceFromDOI("10.1/b"))
	d.UpsertReference(NewReferenceFromDOI("10.1/c"))

	d.MoveReference(2, -1)
	if d.References[1].ID != "10.1/c" {
		t.Fatalf("expected c at index 1, got %q", d.References[1].ID)
	}

	// Out-of-range moves are no-ops.
	d.MoveReference(0, -1)
	d.MoveReference(2, +1)
	if d.References[0].ID != "10.1/a" || d.References[2].ID != "10.1/b" {
		t.Fatalf("boundary move changed order: %+v", d.References)
	}

	d.RemoveReference(1)
	if len(d.References) != 2 || d.References[1].ID != "10.1/b" {
		t.Fatalf("unexpected state after remove: %+v", d.References)
	}
	d.RemoveReference(5)
	if len(d.References) != 2 {
		t.Fatalf("out-of-range remove should be a no-op")
	}
}

func TestDocumentReset(t *testing.T) {
	d := NewDocument()
	d.Notes = "something"
	d.SubmittedBy = "someone"
	d.Scheme.Element = "U"
	d.Scheme.Transitions[0].Level = "25000"
	d.UpsertReference(NewReferenceFromDOI("10.1/a"))

	d.Reset()

	if d.Notes != "" || d.SubmittedBy != "" || len(d.References) != 0 {
		t.Fatalf("reset did not clear document: %+v", d)
	}
	if d.Scheme.Element != "H" || d.Scheme.GroundState.Level != "0" {
		t.Fatalf("reset did not restore scheme defaults: %+v", d.Scheme)
	}
	if d.Scheme.Complete() {
		t.Fatalf("default scheme should not be complete")
	}
}

func TestSchemeStepUnit(t *testing.T) {
	s := NewScheme()
	s.Unit = UnitNM
	s.Transitions[1].LowLying = true
	if s.StepUnit(0) != UnitNM {
		t.Fatalf("expected scheme unit for regular step")
	}
	if s.StepUnit(1) != UnitCM1 {
		t.Fatalf("low-lying step must be cm^-1")
	}
}
