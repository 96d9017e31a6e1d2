package input

import (
	"sort"

	"github.com/go-sudachi/sudachi/chardef"
)

// Rewriter is an input-text rewriter (spec.md §4.3): it reads the
// buffer's current modified text and proposes edits against e. It must
// never read or write Original.
type Rewriter interface {
	Rewrite(b *Buffer, e *Editor) error
}

// Buffer is the InputBuffer of spec.md §3: it owns `original` and
// `modified`, the byte-offset mapping m2o between them, and (after
// Build) the auxiliary tables rewriters and OOV providers query —
// per-char category sets, per-char same-category run length, and a
// beginning-of-word bitmap. Reusable across analyses via Reset.
type Buffer struct {
	original string
	modified string
	m2o      []int // len(modified)+1, monotonic, m2o[0]=0, m2o[last]=len(original)

	// charStart[i] is the byte offset in modified where char i begins;
	// charStart[nChars] == len(modified).
	charStart []int
	catOfChar []chardef.Category
	contLen   []int // in chars, forward run sharing a nonempty category intersection
	bowChar   []bool
}

// New builds a Buffer already reset to text.
func New(text string) *Buffer {
	b := &Buffer{}
	b.Reset(text)
	return b
}

// Reset discards any previous analysis and starts over with a new
// original text. Identity mapping until the first rewriter pass runs.
func (b *Buffer) Reset(text string) *Buffer {
	b.original = text
	b.modified = text
	b.m2o = identityMapping(len(text))
	b.charStart = nil
	b.catOfChar = nil
	b.contLen = nil
	b.bowChar = nil
	return b
}

func identityMapping(n int) []int {
	m := make([]int, n+1)
	for i := range m {
		m[i] = i
	}
	return m
}

// Original returns the untouched input text.
func (b *Buffer) Original() string { return b.original }

// Modified returns the text as rewritten so far.
func (b *Buffer) Modified() string { return b.modified }

// ApplyRewriter runs one rewriter pass: the rewriter proposes edits
// against a fresh Editor, and the buffer resolves them into the next
// `modified`/`m2o` pair (spec.md §4.3).
func (b *Buffer) ApplyRewriter(r Rewriter) error {
	e := &Editor{}
	if err := r.Rewrite(b, e); err != nil {
		return err
	}
	if len(e.ops) == 0 {
		return nil
	}
	modified, m2o := resolveEdits(b.modified, b.m2o, e)
	b.modified = modified
	b.m2o = m2o
	return nil
}

// OrigSlice maps a modified byte range back to the original text it
// came from, via m2o (spec.md §3's mapping round-trip property).
func (b *Buffer) OrigSlice(start, end int) string {
	return b.original[b.m2o[start]:b.m2o[end]]
}

// CurrSlice returns modified[start:end).
func (b *Buffer) CurrSlice(start, end int) string { return b.modified[start:end] }

// M2O returns the original byte offset a modified byte offset maps to.
func (b *Buffer) M2O(modifiedByte int) int { return b.m2o[modifiedByte] }

// Build computes the auxiliary tables used by lattice construction and
// OOV providers, once every input-text rewriter pass has run (spec.md
// §4.3): char-byte index, per-char category set, per-char continuous
// same-category run length, and the beginning-of-word bitmap.
func (b *Buffer) Build(cat *chardef.Map) {
	text := b.modified
	n := len(text)

	starts := make([]int, 0, n+1)
	cats := make([]chardef.Category, 0, n)
	for i, r := range text {
		starts = append(starts, i)
		cats = append(cats, cat.Of(r))
	}
	starts = append(starts, n)

	nChars := len(cats)
	contLen := make([]int, nChars)
	for i := 0; i < nChars; i++ {
		j := i + 1
		for j < nChars && cats[j].Intersects(cats[i]) {
			j++
		}
		contLen[i] = j - i
	}

	bow := make([]bool, nChars)
	for i := 0; i < nChars; i++ {
		if i == 0 {
			bow[i] = true
			continue
		}
		bow[i] = !cats[i].Intersects(cats[i-1])
	}

	b.charStart = starts
	b.catOfChar = cats
	b.contLen = contLen
	b.bowChar = bow
}

// CharIndexAt returns the char index owning byte offset p (p must be a
// char boundary); used to translate lattice byte positions into the
// char-indexed auxiliary tables.
func (b *Buffer) CharIndexAt(p int) int {
	i := sort.SearchInts(b.charStart, p)
	if i < len(b.charStart) && b.charStart[i] == p {
		return i
	}
	return i - 1
}

// NumChars returns the number of characters in modified.
func (b *Buffer) NumChars() int { return len(b.catOfChar) }

// CharByteRange returns the byte range of char index ci.
func (b *Buffer) CharByteRange(ci int) (int, int) { return b.charStart[ci], b.charStart[ci+1] }

// CategoryAtChar returns the category set of char index ci.
func (b *Buffer) CategoryAtChar(ci int) chardef.Category { return b.catOfChar[ci] }

// CategoryOfRange returns the intersection of every char's category in
// [start, end) char indices; empty if the run is not uniformly
// categorized (mirrors the original's cat_of_range).
func (b *Buffer) CategoryOfRange(start, end int) chardef.Category {
	if start >= end {
		return 0
	}
	c := b.catOfChar[start]
	for i := start + 1; i < end; i++ {
		c &= b.catOfChar[i]
	}
	return c
}

// ContinuousLen returns, in characters, how many chars starting at ci
// share a nonempty category intersection with char ci (spec.md §4.3's
// "continuous length").
func (b *Buffer) ContinuousLen(ci int) int { return b.contLen[ci] }

// CanBow reports whether byte offset p begins a character that may
// start a word: p must be a char boundary, and that char must not be a
// continuation of the previous char's category cluster (spec.md §3's
// can_bow, preventing a word from starting mid-cluster).
func (b *Buffer) CanBow(p int) bool {
	i := sort.SearchInts(b.charStart, p)
	if i >= len(b.charStart) || b.charStart[i] != p {
		return false
	}
	if i >= len(b.bowChar) {
		return false
	}
	return b.bowChar[i]
}

// ContinuousLenBytes returns, in bytes, how much of the same-category
// run starting at byte offset p remains (spec.md §4.5's
// get_char_category_continuous_length).
func (b *Buffer) ContinuousLenBytes(p int) int {
	ci := b.CharIndexAt(p)
	end := ci + b.contLen[ci]
	if end > len(b.catOfChar) {
		end = len(b.catOfChar)
	}
	return b.charStart[end] - p
}

// CharsToBytes returns the byte length spanned by nChars characters
// starting at byte offset p, clamped to the end of the text (spec.md
// §4.5's get_code_points_offset_length).
func (b *Buffer) CharsToBytes(p int, nChars int) int {
	ci := b.CharIndexAt(p)
	end := ci + nChars
	if end > len(b.catOfChar) {
		end = len(b.catOfChar)
	}
	return b.charStart[end] - p
}

// WordCandidateLength returns the byte length Simple OOV should use
// starting at byte offset p: the distance, in bytes, to the end of the
// same-category run beginning at p (spec.md §4.5's
// get_word_candidate_length).
func (b *Buffer) WordCandidateLength(p int) int {
	ci := b.CharIndexAt(p)
	end := ci + b.contLen[ci]
	if end > len(b.catOfChar) {
		end = len(b.catOfChar)
	}
	return b.charStart[end] - p
}
