package inputtext

import (
	"unicode/utf8"

	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/input"
)

// IgnoreYomiganaRewriter deletes a parenthesized reading that
// immediately follows a KANJI character (spec.md §4.3): when a KANJI is
// followed by an opening bracket, it scans up to MaxLength HIRAGANA/
// KATAKANA characters followed by a matching closing bracket, and if
// matched, deletes the bracketed region including the brackets.
type IgnoreYomiganaRewriter struct {
	Cat           *chardef.Map
	LeftBrackets  map[rune]bool
	RightBrackets map[rune]bool
	MaxLength     int
}

// NewIgnoreYomiganaRewriter builds a rewriter with the spec's default
// bracket sets ("(","（") / (")","）") and max length 4.
func NewIgnoreYomiganaRewriter(cat *chardef.Map) *IgnoreYomiganaRewriter {
	return &IgnoreYomiganaRewriter{
		Cat:           cat,
		LeftBrackets:  map[rune]bool{'(': true, '（': true},
		RightBrackets: map[rune]bool{')': true, '）': true},
		MaxLength:     4,
	}
}

func (p *IgnoreYomiganaRewriter) isKanji(c rune) bool {
	return p.Cat.Of(c).Contains(chardef.KANJI)
}

func (p *IgnoreYomiganaRewriter) isYomigana(c rune) bool {
	cat := p.Cat.Of(c)
	return cat.Contains(chardef.HIRAGANA) || cat.Contains(chardef.KATAKANA)
}

// Rewrite implements input.Rewriter.
func (p *IgnoreYomiganaRewriter) Rewrite(b *input.Buffer, e *input.Editor) error {
	text := b.Modified()
	runes := []rune(text)
	positions := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		positions[i] = pos
		pos += utf8.RuneLen(r)
	}
	positions[len(runes)] = pos

	var startBracket = -1
	hasYomigana := false

	for i := 1; i < len(runes); i++ {
		if p.isKanji(runes[i-1]) && p.LeftBrackets[runes[i]] {
			startBracket = i
			continue
		}
		if hasYomigana && p.RightBrackets[runes[i]] {
			replacement := string(runes[startBracket-1])
			e.Replace(positions[startBracket-1], positions[i+1], replacement)
			startBracket = -1
			hasYomigana = false
			continue
		}
		if startBracket >= 0 {
			if p.isYomigana(runes[i]) && i-startBracket <= p.MaxLength {
				hasYomigana = true
			} else {
				startBracket = -1
				hasYomigana = false
			}
		}
	}
	return nil
}
