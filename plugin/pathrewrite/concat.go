// Package pathrewrite implements the path-rewrite plugins of spec.md
// §4.7: passes that run once the best path is known, merging adjacent
// nodes into single words (numeral runs, katakana OOV clusters).
package pathrewrite

import (
	"strings"

	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

// Rewriter is a path-rewrite plugin: given the resolved best path, it
// returns a replacement path. Implementations must not assume the
// lattice itself is still reachable; they see only the path slice and
// the buffer that produced it (for category lookups over its range).
type Rewriter interface {
	Rewrite(buf *input.Buffer, d *dic.Dictionary, path []lattice.Node) ([]lattice.Node, error)
}

// wordInfo resolves n's WordInfo, whether it came from a dictionary
// lookup or was manufactured inline by an OOV provider.
func wordInfo(d *dic.Dictionary, n *lattice.Node) (dic.WordInfo, error) {
	if n.OOVInfo != nil {
		return *n.OOVInfo, nil
	}
	return d.WordInfo(n.WordID, dic.AllInfo)
}

// concatenate merges path[begin:end) into a single node spanning their
// combined byte/char range, keeping the outer pair's connection ids.
// If normalizedForm is non-nil it overrides the joined surface as the
// merged node's normalized form (spec.md §4.7's numeral normalization);
// otherwise the normalized forms of the constituents are joined as-is.
// posID, when non-nil, overrides the merged node's part of speech
// (used by katakana-OOV joining); nil keeps the first constituent's.
// A POS id of 0 is a valid, frequently-assigned grammar entry (often
// 名詞,普通名詞,一般 itself), so the override cannot be signaled by a
// zero value.
func concatenate(d *dic.Dictionary, path []lattice.Node, begin, end int, normalizedForm *string, posID *uint16) ([]lattice.Node, error) {
	first, err := wordInfo(d, &path[begin])
	if err != nil {
		return nil, err
	}

	var surface, normalized, dictForm strings.Builder
	headLen := uint16(0)
	pos := first.POSID
	if posID != nil {
		pos = *posID
	}

	for i := begin; i < end; i++ {
		wi, err := wordInfo(d, &path[i])
		if err != nil {
			return nil, err
		}
		surface.WriteString(wi.Surface)
		normalized.WriteString(wi.NormalizedForm)
		dictForm.WriteString(wi.DictionaryForm)
		headLen += wi.HeadWordLength
	}

	norm := normalized.String()
	if normalizedForm != nil {
		norm = *normalizedForm
	}

	merged := dic.WordInfo{
		Surface:              surface.String(),
		HeadWordLength:       headLen,
		POSID:                pos,
		NormalizedForm:       norm,
		DictionaryForm:       dictForm.String(),
		DictionaryFormWordID: -1,
	}

	head := path[begin]
	tail := path[end-1]
	var cost int16
	for i := begin; i < end; i++ {
		cost += path[i].Cost
	}

	node := lattice.Node{
		Begin: head.Begin, End: tail.End,
		BeginChar: head.BeginChar, EndChar: tail.EndChar,
		Left: head.Left, Right: tail.Right, Cost: cost,
		WordID:  dic.NewWordID(dic.OOVDic, 0),
		OOVInfo: &merged,
	}

	out := make([]lattice.Node, 0, len(path)-(end-begin)+1)
	out = append(out, path[:begin]...)
	out = append(out, node)
	out = append(out, path[end:]...)
	return out, nil
}
