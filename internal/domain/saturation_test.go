package domain

import "testing"

func TestNewSaturationCurve(t *testing.T) {
	c, err := NewSaturationCurve("step 1", "some notes", UnitWCM2, true, "1,2,3", "", "4,5,6", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.X) != 3 || len(c.Y) != 3 {
		t.Fatalf("expected three-element sequences, got %d/%d", len(c.X), len(c.Y))
	}
	if c.XUnc != nil || c.YUnc != nil {
		t.Fatalf("expected nil uncertainties")
	}
	if c.Title != "step 1" || !c.Fit || c.Unit != UnitWCM2 {
		t.Fatalf("metadata not carried: %+v", c)
	}
}

func TestNewSaturationCurveWithUncertainties(t *testing.T) {
	c, err := NewSaturationCurve("t", "", UnitW, false, "1 2 3", "0.1 0.2 0.3", "4 5 6", "0.4 0.5 0.6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.XUnc) != 3 || len(c.YUnc) != 3 {
		t.Fatalf("expected uncertainties of length 3, got %d/%d", len(c.XUnc), len(c.YUnc))
	}
}

func TestNewSaturationCurveErrors(t *testing.T) {
	cases := []struct {
		name                   string
		title                  string
		x, xunc, y, yunc       string
		msg                    string
	}{
		{"empty title", "", "1", "", "2", "", "Title cannot be empty."},
		{"no data", "t", "", "", "4,5,6", "", "Please enter some data."},
		{"length mismatch", "t", "1,2", "", "4,5,6", "", "Length of x and y data must be equal."},
		{"xunc mismatch", "t", "1,2,3", "0.1,0.2", "4,5,6", "", "Length of x data and x data uncertainty must be equal."},
		{"yunc mismatch", "t", "1,2,3", "", "4,5,6", "0.1", "Length of y data and y data uncertainty must be equal."},
		{"bad x token", "t", "1,a,3", "", "4,5,6", "", "None-numeric value found in x data."},
	}
	for _, c := range cases {
		_, err := NewSaturationCurve(c.title, "", UnitWCM2, true, c.x, c.xunc, c.y, c.yunc)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if err.Error() != c.msg {
			t.Fatalf("%s: expected %q, got %q", c.name, c.msg, err.Error())
		}
	}
}

func TestSaturationCurveEditorStrings(t *testing.T) {
	c, err := NewSaturationCurve("t", "", UnitWCM2, true, "1,2", "0.5,0.5", "3,4", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.XString() != "1, 2" || c.XUncString() != "0.5, 0.5" || c.YString() != "3, 4" || c.YUncString() != "" {
		t.Fatalf("unexpected editor strings: %q %q %q %q", c.XString(), c.XUncString(), c.YString(), c.YUncString())
	}
}

func TestSaturationCurveUnitAxisName(t *testing.T) {
	if UnitWCM2.XAxisName() != "Irradiance" || UnitW.XAxisName() != "Power" {
		t.Fatalf("unexpected axis names")
	}
}
