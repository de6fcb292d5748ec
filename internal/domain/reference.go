package domain

import (
	"fmt"
	"strconv"
)

// ReferenceEntry is a bibliographic reference, either a bare DOI (authors
// empty and year zero) or a literal URL with an author display string and a
// publication year. ID is the unique key within a document's reference list.
type ReferenceEntry struct {
	ID      string
	Authors string
	Year    int
}

// NewReferenceFromDOI records a bare DOI.
func NewReferenceFromDOI(id string) ReferenceEntry {
	return ReferenceEntry{ID: id}
}

// NewReferenceFromURL records a literal URL with display metadata.
func NewReferenceFromURL(id, authors string, year int) ReferenceEntry {
	return ReferenceEntry{ID: id, Authors: authors, Year: year}
}

// NewReference builds an entry from the raw editor fields, deciding between
// the DOI and URL forms. A non-DOI identifier requires authors and year.
func NewReference(id, authors, year string) (ReferenceEntry, error) {
	if id == "" {
		return ReferenceEntry{}, CompletenessError("Reference is empty")
	}
	if authors == "" || year == "" {
		if !IsDOI(id) {
			return ReferenceEntry{}, InputFormatError("This does not look like a DOI. If that is intentional, please fill in the Author and Year data.")
		}
		return NewReferenceFromDOI(id), nil
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return ReferenceEntry{}, InputFormatError("Cannot parse year. Please check it is a number.")
	}
	return NewReferenceFromURL(id, authors, y), nil
}

// BareDOI reports whether the entry is a bare DOI rather than a literal URL.
func (r ReferenceEntry) BareDOI() bool {
	return r.Authors == "" && r.Year == 0
}

// URL returns the entry's access URL: bare DOIs resolve through doi.org, URL
// entries are opened as-is.
func (r ReferenceEntry) URL() string {
	if r.BareDOI() {
		return fmt.Sprintf("https://doi.org/%s", r.ID)
	}
	return r.ID
}

// Label is the display string shown alongside the identifier.
func (r ReferenceEntry) Label() string {
	if r.BareDOI() {
		return r.URL()
	}
	return fmt.Sprintf("%s (%d)", r.Authors, r.Year)
}

// YearString renders the year back into the editor field; zero maps to empty.
func (r ReferenceEntry) YearString() string {
	if r.Year == 0 {
		return ""
	}
	return strconv.Itoa(r.Year)
}
