package oov

import (
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/errs"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

// SimpleProvider is the fallback OOV provider of spec.md §4.5: when no
// other word exists at a position, it emits a single node spanning
// get_word_candidate_length bytes.
type SimpleProvider struct {
	Left, Right, Cost int16
	POSID             uint16
}

// NewSimpleProvider resolves the default POS (補助記号, 一般, *, *, *, *)
// against grammar and returns a provider with the reference
// implementation's default connection ids and cost.
func NewSimpleProvider(grammar *dic.Grammar) (*SimpleProvider, error) {
	defaultPOS := [6]string{"補助記号", "一般", "*", "*", "*", "*"}
	posID, ok := grammar.POSID(dic.POS(defaultPOS))
	if !ok {
		return nil, errs.NewPartOfSpeechError(defaultPOS)
	}
	return &SimpleProvider{Left: 5968, Right: 5968, Cost: 3857, POSID: posID}, nil
}

// ProvideOOV implements lattice.OOVProvider.
func (p *SimpleProvider) ProvideOOV(buf *input.Buffer, offset int, created lattice.CreatedWords) ([]lattice.Node, error) {
	if created.NotEmpty() {
		return nil, nil
	}

	length := buf.WordCandidateLength(offset)
	surface := buf.CurrSlice(offset, offset+length)
	wi := dic.WordInfo{
		Surface:              surface,
		HeadWordLength:       uint16(length),
		POSID:                p.POSID,
		NormalizedForm:       surface,
		DictionaryForm:       surface,
		DictionaryFormWordID: -1,
	}
	return []lattice.Node{{
		Begin: offset, End: offset + length,
		BeginChar: buf.CharIndexAt(offset), EndChar: buf.CharIndexAt(offset + length),
		Left: p.Left, Right: p.Right, Cost: p.Cost,
		WordID:  dic.NewWordID(dic.OOVDic, 0),
		OOVInfo: &wi,
	}}, nil
}
