package domain

import (
	"strconv"
	"strings"
)

// CheckNumeric validates a numeric form field. Empty input is accepted and
// means "unspecified"; anything else must parse as a 64-bit float. The
// accepted text is returned unchanged since the document format stores
// numerics as strings.
func CheckNumeric(name, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return "", InputFormatError("%s is not a number.", name)
	}
	return value, nil
}

// CheckGroundStateLevel is CheckNumeric for the ground state level, where
// empty input is an error rather than "unspecified".
func CheckGroundStateLevel(value string) (string, error) {
	if value == "" {
		return "", CompletenessError("Ground state level is empty.")
	}
	return CheckNumeric("Ground state level", value)
}

// dataDelimiters are the characters that separate values in pasted data
// fields. Note that '-' is a delimiter, so negative numbers cannot be entered
// through this path; this is a known input-format limitation kept for
// compatibility with existing submissions.
func isDataDelimiter(r rune) bool {
	switch r {
	case ' ', ',', ':', '-', '\t', '\n', '\r':
		return true
	}
	return false
}

// ParseFloatList splits a pasted data field on the delimiter set, drops empty
// tokens, and parses every remaining token as a 64-bit float. name is used in
// the error message only.
func ParseFloatList(name, value string) ([]float64, error) {
	tokens := strings.FieldsFunc(value, isDataDelimiter)
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, InputFormatError("None-numeric value found in %s data.", name)
		}
		out = append(out, v)
	}
	return out, nil
}

// IsDOI reports whether a reference identifier looks like a bare DOI: exactly
// one slash. Zero or two-plus slashes are treated as full URLs.
func IsDOI(id string) bool {
	return strings.Count(id, "/") == 1
}

// FormatFloats renders a numeric sequence back into an editable field value.
func FormatFloats(data []float64) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
