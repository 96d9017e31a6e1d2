package inputtext

import (
	"unicode/utf8"

	"github.com/go-sudachi/sudachi/input"
)

// defaultProlongedMarks is the default configured set of spec.md §4.3's
// prolonged-sound-mark rewriter.
var defaultProlongedMarks = []rune{'ー', '-', '⁓', '〜', '〰'}

// ProlongedSoundMarkRewriter collapses every run of two or more
// configured prolonged-sound marks into a single replacement symbol.
type ProlongedSoundMarkRewriter struct {
	Marks   map[rune]bool
	Replace rune
}

// NewProlongedSoundMarkRewriter builds a rewriter with the spec's
// default mark set and replacement symbol ('ー').
func NewProlongedSoundMarkRewriter() *ProlongedSoundMarkRewriter {
	marks := make(map[rune]bool, len(defaultProlongedMarks))
	for _, r := range defaultProlongedMarks {
		marks[r] = true
	}
	return &ProlongedSoundMarkRewriter{Marks: marks, Replace: 'ー'}
}

// Rewrite implements input.Rewriter.
func (p *ProlongedSoundMarkRewriter) Rewrite(b *input.Buffer, e *input.Editor) error {
	text := b.Modified()
	runes := []rune(text)
	positions := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		positions[i] = pos
		pos += utf8.RuneLen(r)
	}
	positions[len(runes)] = pos

	n := len(runes)
	isPSM := false
	start := n
	replacement := string(p.Replace)

	for i := 0; i < n; i++ {
		c := runes[i]
		switch {
		case !isPSM && p.Marks[c]:
			isPSM = true
			start = i
		case isPSM && !p.Marks[c]:
			if i > start+1 {
				e.Replace(positions[start], positions[i], replacement)
			}
			isPSM = false
		}
	}
	if isPSM && n > start+1 {
		e.Replace(positions[start], positions[n], replacement)
	}
	return nil
}
