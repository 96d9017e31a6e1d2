package pathrewrite

import (
	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/errs"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

// NumericJoinPlugin merges a run of numeral nodes (NUMERIC/KANJINUMERIC
// category, plus comma/period digit-grouping punctuation) into a
// single 名詞,数詞 node, optionally normalizing the merged surface to
// its canonical decimal form (spec.md §4.7), ported from
// original_source/plugin/path_rewrite/join_numeric/src/lib.rs.
type NumericJoinPlugin struct {
	NumericPOSID    uint16
	EnableNormalize bool
}

// NewNumericJoinPlugin resolves the fixed 名詞,数詞,*,*,*,* part of
// speech against grammar. enableNormalize defaults to true, matching
// the reference plugin's default settings.
func NewNumericJoinPlugin(grammar *dic.Grammar, enableNormalize bool) (*NumericJoinPlugin, error) {
	pos := [6]string{"名詞", "数詞", "*", "*", "*", "*"}
	posID, ok := grammar.POSID(dic.POS(pos))
	if !ok {
		return nil, errs.NewPartOfSpeechError(pos)
	}
	return &NumericJoinPlugin{NumericPOSID: posID, EnableNormalize: enableNormalize}, nil
}

func (p *NumericJoinPlugin) concat(d *dic.Dictionary, path []lattice.Node, begin, end int, parser *numericParser) ([]lattice.Node, error) {
	wi, err := wordInfo(d, &path[begin])
	if err != nil {
		return nil, err
	}
	if wi.POSID != p.NumericPOSID {
		return path, nil
	}

	if p.EnableNormalize {
		normalized := parser.getNormalized()
		if end-begin > 1 || normalized != wi.NormalizedForm {
			return concatenate(d, path, begin, end, &normalized, nil)
		}
		return path, nil
	}

	if end-begin > 1 {
		return concatenate(d, path, begin, end, nil, nil)
	}
	return path, nil
}

// Rewrite implements Rewriter.
func (p *NumericJoinPlugin) Rewrite(buf *input.Buffer, d *dic.Dictionary, path []lattice.Node) ([]lattice.Node, error) {
	beginIdx := -1
	commaAsDigit := true
	periodAsDigit := true
	parser := newNumericParser()

	i := -1
	for i < len(path)-1 {
		i++
		node := &path[i]
		ctypes := buf.CategoryOfRange(node.BeginChar, node.EndChar)
		wi, err := wordInfo(d, node)
		if err != nil {
			return nil, err
		}
		s := wi.NormalizedForm

		if ctypes&(chardef.NUMERIC|chardef.KANJINUMERIC) != 0 ||
			(commaAsDigit && s == ",") || (periodAsDigit && s == ".") {
			if beginIdx < 0 {
				parser.clear()
				beginIdx = i
			}
			for _, c := range s {
				if !parser.append(c) {
					if beginIdx >= 0 {
						switch parser.err {
						case errComma:
							commaAsDigit = false
							i = beginIdx - 1
						case errPoint:
							periodAsDigit = false
							i = beginIdx - 1
						}
						beginIdx = -1
					}
					break
				}
			}
			continue
		}

		if beginIdx >= 0 {
			if parser.done() {
				var err error
				path, err = p.concat(d, path, beginIdx, i, parser)
				if err != nil {
					return nil, err
				}
				i = beginIdx + 1
			} else {
				ss, err := wordInfo(d, &path[i-1])
				if err != nil {
					return nil, err
				}
				if (parser.err == errComma && ss.NormalizedForm == ",") ||
					(parser.err == errPoint && ss.NormalizedForm == ".") {
					path, err = p.concat(d, path, beginIdx, i-1, parser)
					if err != nil {
						return nil, err
					}
					i = beginIdx + 2
				}
			}
		}
		beginIdx = -1
		if !commaAsDigit && s != "," {
			commaAsDigit = true
		}
		if !periodAsDigit && s != "." {
			periodAsDigit = true
		}
	}

	if beginIdx >= 0 {
		n := len(path)
		if parser.done() {
			var err error
			path, err = p.concat(d, path, beginIdx, n, parser)
			if err != nil {
				return nil, err
			}
		} else {
			ss, err := wordInfo(d, &path[n-1])
			if err != nil {
				return nil, err
			}
			if (parser.err == errComma && ss.NormalizedForm == ",") ||
				(parser.err == errPoint && ss.NormalizedForm == ".") {
				path, err = p.concat(d, path, beginIdx, n-1, parser)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	return path, nil
}
