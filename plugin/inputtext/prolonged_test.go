package inputtext

import (
	"testing"

	"github.com/go-sudachi/sudachi/input"
)

func applyRewrite(t *testing.T, r input.Rewriter, text string) string {
	t.Helper()
	b := input.New(text)
	if err := b.ApplyRewriter(r); err != nil {
		t.Fatal(err)
	}
	return b.Modified()
}

func TestProlongedSoundMarkRewriterCollapsesRunOfTwoOrMore(t *testing.T) {
	p := NewProlongedSoundMarkRewriter()
	if got, want := applyRewrite(t, p, "あーーー"), "あー"; got != want {
		t.Fatalf("Rewrite() = %q, want %q", got, want)
	}
}

func TestProlongedSoundMarkRewriterLeavesSingleMarkAlone(t *testing.T) {
	p := NewProlongedSoundMarkRewriter()
	if got, want := applyRewrite(t, p, "あー"), "あー"; got != want {
		t.Fatalf("Rewrite() = %q, want %q", got, want)
	}
}

func TestProlongedSoundMarkRewriterCollapsesMixedMarkTypes(t *testing.T) {
	p := NewProlongedSoundMarkRewriter()
	if got, want := applyRewrite(t, p, "あ-〜ー"), "あー"; got != want {
		t.Fatalf("Rewrite() = %q, want %q", got, want)
	}
}
