package domain

import "math"

// AllOption is the sentinel genre/language value that disables that criterion.
const AllOption = "all"

// FilterSpec narrows a result set locally. It is a value object: updates
// produce a new spec via Merge.
type FilterSpec struct {
	Genre     string  `json:"genre"`
	Language  string  `json:"language"`
	MinRating float64 `json:"minRating"`
}

// DefaultFilterSpec returns a spec that lets every show through.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{Genre: AllOption, Language: AllOption, MinRating: 0}
}

// FilterPatch is a partial FilterSpec update. Nil fields keep the current value.
type FilterPatch struct {
	Genre     *string
	Language  *string
	MinRating *float64
}

// Merge returns a copy of f with every non-nil field of p applied.
// An empty genre or language resets that criterion to AllOption and a
// negative MinRating is clamped to 0.
func (f FilterSpec) Merge(p FilterPatch) FilterSpec {
	next := f
	if p.Genre != nil {
		next.Genre = orAll(*p.Genre)
	}
	if p.Language != nil {
		next.Language = orAll(*p.Language)
	}
	if p.MinRating != nil {
		next.MinRating = *p.MinRating
		if math.IsNaN(next.MinRating) || next.MinRating < 0 {
			next.MinRating = 0
		}
	}
	return next
}

// IsDefault reports whether the spec filters nothing out.
func (f FilterSpec) IsDefault() bool {
	return f == DefaultFilterSpec()
}

func orAll(v string) string {
	if v == "" {
		return AllOption
	}
	return v
}
