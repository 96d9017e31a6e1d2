package inputtext

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/go-sudachi/sudachi/input"
)

// lowerCaser performs full Unicode lowercase mapping (one rune may
// expand to several, e.g. İ -> "i" + U+0307), unlike strings.ToLower's
// 1:1 simple mapping.
var lowerCaser = cases.Lower(language.Und)

// DefaultRewriter is the default input-text rewriter of spec.md §4.3:
// longest-key replacement from a rewrite table, then NFKC+lowercase
// normalization guarded by an ignore-normalize set.
type DefaultRewriter struct {
	Table *RewriteTable
}

// Rewrite implements input.Rewriter.
func (p *DefaultRewriter) Rewrite(b *input.Buffer, e *input.Editor) error {
	text := b.Modified()
	runes := []rune(text)
	positions := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		positions[i] = pos
		pos += utf8.RuneLen(r)
	}
	positions[len(runes)] = pos

	for i := 0; i < len(runes); i++ {
		maxLen := p.Table.maxKeyRunes[runes[i]]
		if rest := len(runes) - i; maxLen > rest {
			maxLen = rest
		}
		matched := false
		for j := maxLen; j >= 1; j-- {
			key := string(runes[i : i+j])
			if replace, ok := p.Table.Replace[key]; ok {
				e.Replace(positions[i], positions[i+j], replace)
				i += j - 1
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		original := string(runes[i])
		lower := lowerCaser.String(original)
		lowerFirst, _ := utf8.DecodeRuneInString(lower)

		var replace string
		if p.Table.IgnoreNormalize[lowerFirst] {
			if original == lower {
				continue
			}
			replace = lower
		} else {
			replace = norm.NFKC.String(lower)
		}
		if original != replace {
			e.Replace(positions[i], positions[i+1], replace)
		}
	}
	return nil
}
