package inputtext

import (
	"strings"
	"testing"

	"github.com/go-sudachi/sudachi/chardef"
)

func testYomiganaCategoryMap(t *testing.T) *chardef.Map {
	t.Helper()
	const def = `
0x4E00..0x9FFF KANJI
0x3041..0x3096 HIRAGANA
`
	m, err := chardef.Load(strings.NewReader(def), "<test>")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestIgnoreYomiganaRewriterDeletesBracketedReading(t *testing.T) {
	p := NewIgnoreYomiganaRewriter(testYomiganaCategoryMap(t))
	got := applyRewrite(t, p, "彼女（かのじょ）")
	if want := "彼女"; got != want {
		t.Fatalf("Rewrite() = %q, want %q", got, want)
	}
}

func TestIgnoreYomiganaRewriterLeavesOverlongReadingAlone(t *testing.T) {
	p := NewIgnoreYomiganaRewriter(testYomiganaCategoryMap(t))
	text := "彼女（かのじょう）" // 5 hiragana chars exceeds the default max length of 4
	if got := applyRewrite(t, p, text); got != text {
		t.Fatalf("Rewrite() = %q, want unchanged %q", got, text)
	}
}

func TestIgnoreYomiganaRewriterRequiresPrecedingKanji(t *testing.T) {
	p := NewIgnoreYomiganaRewriter(testYomiganaCategoryMap(t))
	text := "ABC（かな）" // no kanji directly before the bracket
	if got := applyRewrite(t, p, text); got != text {
		t.Fatalf("Rewrite() = %q, want unchanged %q", got, text)
	}
}
