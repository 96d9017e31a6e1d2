package oov

import (
	"regexp"

	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/errs"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

// RegexProvider emits a node wherever a configured regular expression
// matches anchored at the current position (spec.md §4.5), skipping a
// match whose length coincides with a word already created there.
type RegexProvider struct {
	Pattern           *regexp.Regexp
	Left, Right, Cost int16
	POSID             uint16
}

// NewRegexProvider anchors pattern at the start of the match (a bare
// regex like "[-0-9a-zA-Z]{4,}" is not implicitly anchored, so the
// provider never needs to scan — it simply tests whether the pattern
// matches a prefix of the remaining text) and resolves pos against
// grammar.
func NewRegexProvider(pattern string, left, right, cost int16, pos [6]string, grammar *dic.Grammar) (*RegexProvider, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, err
	}
	posID, ok := grammar.POSID(dic.POS(pos))
	if !ok {
		return nil, errs.NewPartOfSpeechError(pos)
	}
	return &RegexProvider{Pattern: re, Left: left, Right: right, Cost: cost, POSID: posID}, nil
}

// ProvideOOV implements lattice.OOVProvider.
func (p *RegexProvider) ProvideOOV(buf *input.Buffer, offset int, created lattice.CreatedWords) ([]lattice.Node, error) {
	rest := buf.Modified()[offset:]
	loc := p.Pattern.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return nil, nil
	}
	length := loc[1]
	if length == 0 {
		return nil, nil
	}

	endChar := buf.CharIndexAt(offset + length)
	beginChar := buf.CharIndexAt(offset)
	if created.HasWord(endChar-beginChar) != lattice.HasWordNo {
		return nil, nil
	}

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
		BeginChar: beginChar, EndChar: endChar,
		Left: p.Left, Right: p.Right, Cost: p.Cost,
		WordID:  dic.NewWordID(dic.OOVDic, 0),
		OOVInfo: &wi,
	}}, nil
}
