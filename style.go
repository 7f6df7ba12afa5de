package sketch

import "slices"

// LineStyle is either solid or a dash pattern. The zero value is solid.
type LineStyle struct {
	// Phase shifts the start of the dash pattern.
	Phase float64

	// Lengths alternates dash and gap lengths. Empty means solid.
	Lengths []float64
}

// Solid returns the solid line style.
func Solid() LineStyle { return LineStyle{} }

// Dashed returns a dash pattern starting at phase.
func Dashed(phase float64, lengths ...float64) LineStyle {
	return LineStyle{Phase: phase, Lengths: slices.Clone(lengths)}
}

// IsDashed reports whether s has a dash pattern.
func (s LineStyle) IsDashed() bool {
	return len(s.Lengths) > 0
}

// Equal reports whether s and o describe the same pattern.
func (s LineStyle) Equal(o LineStyle) bool {
	if !s.IsDashed() && !o.IsDashed() {
		return true
	}
	return s.Phase == o.Phase && slices.Equal(s.Lengths, o.Lengths)
}
