package morpheme

import (
	"unicode/utf8"

	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

// List is the morpheme-list result of spec.md §4.8: an indexable view
// over a resolved path, holding a reference to the input buffer (for
// surface slicing through m2o) and the dictionary (for on-demand POS,
// split, and synonym lookups).
type List struct {
	buf   *input.Buffer
	dict  *dic.Dictionary
	mode  SplitMode
	nodes []lattice.Node
}

// NewList wraps a resolved node path at the given split-mode
// granularity; BOS/EOS sentinels must already be excluded.
func NewList(buf *input.Buffer, dict *dic.Dictionary, mode SplitMode, nodes []lattice.Node) *List {
	return &List{buf: buf, dict: dict, mode: mode, nodes: nodes}
}

// Resolve builds the tokenize result of spec.md §4.8: path is resolved
// at its native (coarsest, mode C) granularity, then refined down to
// mode by splitting every morpheme whose split list reaches that far.
func Resolve(buf *input.Buffer, dict *dic.Dictionary, path []lattice.Node, mode SplitMode) (*List, error) {
	base := NewList(buf, dict, ModeC, path)
	if mode == ModeC {
		return base, nil
	}

	var out []lattice.Node
	for i := range base.nodes {
		m := base.Get(i)
		children, err := m.Split(mode)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			out = append(out, *c.node())
		}
	}
	return NewList(buf, dict, mode, out), nil
}

// Len returns the number of morphemes in the list.
func (l *List) Len() int { return len(l.nodes) }

// Get returns the morpheme at index i.
func (l *List) Get(i int) Morpheme { return Morpheme{list: l, index: i} }

// Mode returns the split-mode granularity this list was resolved at.
func (l *List) Mode() SplitMode { return l.mode }

// EmptyClone returns a list sharing this one's buffer and dictionary
// but with no morphemes yet, for building up a refined list via
// per-morpheme Split (mirrors spec.md §4.8's split-after-analysis
// workflow).
func (l *List) EmptyClone(mode SplitMode) *List {
	return NewList(l.buf, l.dict, mode, nil)
}

// Morpheme is a lightweight index into a List: a view, not a copy. Its
// field accessors fetch from the dictionary on demand.
type Morpheme struct {
	list  *List
	index int
}

func (m Morpheme) node() *lattice.Node { return &m.list.nodes[m.index] }

// Begin returns the morpheme's starting byte offset in the analyzer's
// modified text.
func (m Morpheme) Begin() int { return m.node().Begin }

// End returns the morpheme's ending byte offset in the modified text.
func (m Morpheme) End() int { return m.node().End }

// info resolves the morpheme's WordInfo, from the dictionary for a
// resolved word or inline for an OOV-manufactured one.
func (m Morpheme) info() (dic.WordInfo, error) {
	n := m.node()
	if n.OOVInfo != nil {
		return *n.OOVInfo, nil
	}
	return m.list.dict.WordInfo(n.WordID, dic.AllInfo)
}

// Surface returns the morpheme's surface form, sliced from the
// original (pre-rewrite) input text via the buffer's byte mapping
// (spec.md §9's mapping round-trip property).
func (m Morpheme) Surface() string {
	n := m.node()
	return m.list.buf.OrigSlice(n.Begin, n.End)
}

// PartOfSpeechID returns the morpheme's part-of-speech id.
func (m Morpheme) PartOfSpeechID() (uint16, error) {
	info, err := m.info()
	if err != nil {
		return 0, err
	}
	return info.POSID, nil
}

// PartOfSpeech returns the morpheme's 6-field part-of-speech tuple.
func (m Morpheme) PartOfSpeech() (dic.POS, error) {
	id, err := m.PartOfSpeechID()
	if err != nil {
		return dic.POS{}, err
	}
	return m.list.dict.Grammar().POSOf(id), nil
}

// NormalizedForm returns the morpheme's normalized form.
func (m Morpheme) NormalizedForm() (string, error) {
	info, err := m.info()
	if err != nil {
		return "", err
	}
	return info.NormalizedForm, nil
}

// DictionaryForm returns the morpheme's dictionary (lemma) form.
func (m Morpheme) DictionaryForm() (string, error) {
	info, err := m.info()
	if err != nil {
		return "", err
	}
	return info.DictionaryForm, nil
}

// ReadingForm returns the morpheme's reading, empty if the dictionary
// does not record one.
func (m Morpheme) ReadingForm() (string, error) {
	info, err := m.info()
	if err != nil {
		return "", err
	}
	return info.ReadingForm, nil
}

// SynonymGroupIDs returns the morpheme's synonym group ids, if any.
func (m Morpheme) SynonymGroupIDs() ([]int32, error) {
	info, err := m.info()
	if err != nil {
		return nil, err
	}
	return info.SynonymGroupIDs, nil
}

// IsOOV reports whether this morpheme was manufactured by an OOV
// provider rather than resolved from a dictionary entry.
func (m Morpheme) IsOOV() bool { return m.node().IsOOV() }

// WordID returns the morpheme's dictionary word id.
func (m Morpheme) WordID() dic.WordID { return m.node().WordID }

// DictionaryID returns which dictionary (system, or nth user
// dictionary) this morpheme's word id refers to, or -1 for an OOV
// word with no backing entry.
func (m Morpheme) DictionaryID() int {
	if m.IsOOV() {
		return -1
	}
	return int(m.WordID().Dic())
}

// Split resolves this morpheme into the finer-grained units recorded
// in its WordInfo's A/B split list, stopping early (returning just
// this morpheme) when it is already at mode or finer, or when the
// dictionary records no further split for it (spec.md §4.8).
func (m Morpheme) Split(mode SplitMode) ([]Morpheme, error) {
	if mode >= m.list.mode {
		return []Morpheme{m}, nil
	}

	info, err := m.info()
	if err != nil {
		return nil, err
	}

	var splitIDs []dic.WordID
	switch mode {
	case ModeA:
		splitIDs = info.SplitA
	case ModeB:
		splitIDs = info.SplitB
	}
	if len(splitIDs) == 0 {
		return []Morpheme{m}, nil
	}

	node := m.node()
	children := make([]lattice.Node, len(splitIDs))
	pos, posChar := node.Begin, node.BeginChar
	for i, wid := range splitIDs {
		wi, err := m.list.dict.WordInfo(wid, dic.AllInfo)
		if err != nil {
			return nil, err
		}
		length := len(wi.Surface)
		nChars := utf8.RuneCountInString(wi.Surface)
		children[i] = lattice.Node{
			Begin: pos, End: pos + length,
			BeginChar: posChar, EndChar: posChar + nChars,
			WordID: wid,
		}
		pos += length
		posChar += nChars
	}

	childList := NewList(m.list.buf, m.list.dict, mode, children)
	out := make([]Morpheme, len(children))
	for i := range children {
		out[i] = childList.Get(i)
	}
	return out, nil
}
