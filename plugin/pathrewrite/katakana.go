package pathrewrite

import (
	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/errs"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

// KatakanaOOVJoinPlugin merges a run of adjacent katakana nodes into a
// single 名詞,普通名詞,一般 word whenever the run contains at least one
// short or out-of-vocabulary node (spec.md §4.7), ported from
// original_source/plugin/path_rewrite/join_katakana_oov/src/lib.rs.
type KatakanaOOVJoinPlugin struct {
	OOVPOSID  uint16
	MinLength int
}

// NewKatakanaOOVJoinPlugin resolves the fixed 名詞,普通名詞,一般,*,*,*
// part of speech against grammar, with the reference plugin's default
// minimum length of 3 characters.
func NewKatakanaOOVJoinPlugin(grammar *dic.Grammar) (*KatakanaOOVJoinPlugin, error) {
	pos := [6]string{"名詞", "普通名詞", "一般", "*", "*", "*"}
	posID, ok := grammar.POSID(dic.POS(pos))
	if !ok {
		return nil, errs.NewPartOfSpeechError(pos)
	}
	return &KatakanaOOVJoinPlugin{OOVPOSID: posID, MinLength: 3}, nil
}

func (p *KatakanaOOVJoinPlugin) isKatakana(buf *input.Buffer, n *lattice.Node) bool {
	return buf.CategoryOfRange(n.BeginChar, n.EndChar)&chardef.KATAKANA != 0
}

func (p *KatakanaOOVJoinPlugin) canOOVBow(buf *input.Buffer, n *lattice.Node) bool {
	return buf.CategoryAtChar(n.BeginChar)&chardef.NOOOVBOW == 0
}

func (p *KatakanaOOVJoinPlugin) isShorter(n *lattice.Node) bool {
	return n.CharLen() < p.MinLength
}

// Rewrite implements Rewriter.
func (p *KatakanaOOVJoinPlugin) Rewrite(buf *input.Buffer, d *dic.Dictionary, path []lattice.Node) ([]lattice.Node, error) {
	i := 0
	for i < len(path) {
		node := &path[i]
		if (!node.IsOOV() && !p.isShorter(node)) || !p.isKatakana(buf, node) {
			i++
			continue
		}

		begin := i - 1
		for begin >= 0 {
			if !p.isKatakana(buf, &path[begin]) {
				begin++
				break
			}
			begin--
		}
		if begin < 0 {
			begin = 0
		}

		end := i + 1
		for end < len(path) && p.isKatakana(buf, &path[end]) {
			end++
		}

		for begin != end && !p.canOOVBow(buf, &path[begin]) {
			begin++
		}

		if end-begin > 1 {
			var err error
			path, err = concatenate(d, path, begin, end, nil, &p.OOVPOSID)
			if err != nil {
				return nil, err
			}
			i = begin + 1
		}
		i++
	}

	return path, nil
}
