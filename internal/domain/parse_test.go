package domain

import (
	"testing"
)

func TestCheckNumeric(t *testing.T) {
	if v, err := CheckNumeric("Transition level", ""); err != nil || v != "" {
		t.Fatalf("empty input should be accepted, got %q, %v", v, err)
	}
	if v, err := CheckNumeric("Transition level", "123.5e3"); err != nil || v != "123.5e3" {
		t.Fatalf("valid input should be returned unchanged, got %q, %v", v, err)
	}
	_, err := CheckNumeric("Transition level", "abc")
	if err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
	if err.Error() != "Transition level is not a number." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !IsKind(err, KindInputFormat) {
		t.Fatalf("expected input_format kind")
	}
}

func TestCheckGroundStateLevel(t *testing.T) {
	_, err := CheckGroundStateLevel("")
	if err == nil || err.Error() != "Ground state level is empty." {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, err := CheckGroundStateLevel("0"); err != nil || v != "0" {
		t.Fatalf("unexpected result: %q, %v", v, err)
	}
}

func TestParseFloatListDelimiters(t *testing.T) {
	got, err := ParseFloatList("x", "1, 2:3\t4\n5\r6  7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 2, 3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseFloatListHyphenIsDelimiter(t *testing.T) {
	// '-' splits tokens, so "-1" parses as 1, not negative one.
	got, err := ParseFloatList("x", "-1-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected values: %v", got)
	}
}

func TestParseFloatListError(t *testing.T) {
	_, err := ParseFloatList("y", "1, 2, x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "None-numeric value found in y data." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestParseFloatListEmpty(t *testing.T) {
	got, err := ParseFloatList("x", "  ,, \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}

func TestIsDOI(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"10.500/123456789", true},
		{"https://doi.org/10.500/123456789", false},
		{"no-slash-here", false},
	}
	for _, c := range cases {
		if got := IsDOI(c.id); got != c.want {
			t.Fatalf("IsDOI(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestFormatFloats(t *testing.T) {
	if got := FormatFloats([]float64{1, 2.5, 300}); got != "1, 2.5, 300" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := FormatFloats(nil); got != "" {
		t.Fatalf("expected empty string for nil data, got %q", got)
	}
}
