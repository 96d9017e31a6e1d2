// Package morpheme implements the result API of spec.md §4.8: an
// indexable, iterable view over a resolved path that resolves
// dictionary fields on demand and can re-split a word into the units
// stored in its WordInfo's A/B split lists.
package morpheme

// SplitMode selects the segmentation granularity of spec.md §1: A is
// the finest (shortest units), B intermediate, C the coarsest
// (named-entity-preserving). A tokenize call resolves OOV/dictionary
// words at mode C's granularity first and then, for each resulting
// morpheme, descends into its A or B split list to refine it down to
// the requested mode.
type SplitMode int

const (
	ModeA SplitMode = iota
	ModeB
	ModeC
)

// String implements fmt.Stringer.
func (m SplitMode) String() string {
	switch m {
	case ModeA:
		return "A"
	case ModeB:
		return "B"
	case ModeC:
		return "C"
	default:
		return "?"
	}
}

// ParseSplitMode parses the single-letter mode names accepted by
// configuration and command-line input; it is case-insensitive.
func ParseSplitMode(s string) (SplitMode, bool) {
	switch s {
	case "A", "a":
		return ModeA, true
	case "B", "b":
		return ModeB, true
	case "C", "c":
		return ModeC, true
	default:
		return 0, false
	}
}
