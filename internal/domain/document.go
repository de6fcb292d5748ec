package domain

// Document is the submission unit: the scheme plus its supporting material.
// References and SaturationCurves keep insertion order; both collections
// upsert by key (ID and Title respectively) so re-adding an existing entry
// replaces it in place.
type Document struct {
	Notes            string
	Scheme           Scheme
	References       []ReferenceEntry
	SaturationCurves []SaturationCurve
	SubmittedBy      string
}

// NewDocument returns the empty form defaults.
func NewDocument() Document {
	return Document{Scheme: NewScheme()}
}

// Reset replaces the document with a freshly constructed default value. This
// is the "Clear all" semantics: no field-by-field clearing, so no stale state
// can survive.
func (d *Document) Reset() {
	*d = NewDocument()
}

// UpsertReference inserts the entry, or replaces the entry with the same ID
// in place.
func (d *Document) UpsertReference(e ReferenceEntry) {
	for i := range d.References {
		if d.References[i].ID == e.ID {
			d.References[i] = e
			return
		}
	}
	d.References = append(d.References, e)
}

// RemoveReference deletes the entry at index i; out-of-range is a no-op.
func (d *Document) RemoveReference(i int) {
	if i < 0 || i >= len(d.References) {
		return
	}
	d.References = append(d.References[:i], d.References[i+1:]...)
}

// MoveReference swaps the entry at index i with its neighbor at i+delta,
// where delta is -1 or +1. Out-of-range moves are no-ops.
func (d *Document) MoveReference(i, delta int) {
	j := i + delta
	if i < 0 || j < 0 || i >= len(d.References) || j >= len(d.References) {
		return
	}
	d.References[i], d.References[j] = d.References[j], d.References[i]
}

// UpsertSaturationCurve inserts the curve, or replaces the curve with the
// same title in place.
func (d *Document) UpsertSaturationCurve(c SaturationCurve) {
	for i := range d.SaturationCurves {
		if d.SaturationCurves[i].Title == c.Title {
			d.SaturationCurves[i] = c
			return
		}
	}
	d.SaturationCurves = append(d.SaturationCurves, c)
}

// RemoveSaturationCurve deletes the curve at index i; out-of-range is a no-op.
func (d *Document) RemoveSaturationCurve(i int) {
	if i < 0 || i >= len(d.SaturationCurves) {
		return
	}
	d.SaturationCurves = append(d.SaturationCurves[:i], d.SaturationCurves[i+1:]...)
}

// MoveSaturationCurve swaps the curve at index i with its neighbor at
// i+delta, where delta is -1 or +1. Out-of-range moves are no-ops.
func (d *Document) MoveSaturationCurve(i, delta int) {
	j := i + delta
	if i < 0 || j < 0 || i >= len(d.SaturationCurves) || j >= len(d.SaturationCurves) {
		return
	}
	d.SaturationCurves[i], d.SaturationCurves[j] = d.SaturationCurves[j], d.SaturationCurves[i]
}
