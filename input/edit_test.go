package input

import "testing"

// replacingRewriter replaces every occurrence of old with new in the
// buffer's current modified text.
type replacingRewriter struct {
	old, new string
}

func (r replacingRewriter) Rewrite(b *Buffer, e *Editor) error {
	text := b.Modified()
	for i := 0; i+len(r.old) <= len(text); {
		if text[i:i+len(r.old)] == r.old {
			e.Replace(i, i+len(r.old), r.new)
			i += len(r.old)
			continue
		}
		i++
	}
	return nil
}

func TestApplyRewriterGrowingReplacementMapsToSameOriginalSpan(t *testing.T) {
	b := New("ab")
	if err := b.ApplyRewriter(replacingRewriter{old: "a", new: "xyz"}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.Modified(), "xyzb"; got != want {
		t.Fatalf("Modified() = %q, want %q", got, want)
	}
	// the grown replacement as a whole maps back to "a"'s single
	// original byte: its first byte keeps "a"'s start offset and the
	// extra bytes repeat the replaced range's right edge.
	if got := b.OrigSlice(0, 3); got != "a" {
		t.Fatalf("OrigSlice(0,3) = %q, want %q", got, "a")
	}
	if got := b.OrigSlice(3, 4); got != "b" {
		t.Fatalf("OrigSlice(3,4) = %q, want %q", got, "b")
	}
}

func TestApplyRewriterShrinkingReplacementDropsTrailingOffsets(t *testing.T) {
	b := New("abc")
	if err := b.ApplyRewriter(replacingRewriter{old: "abc", new: "z"}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.Modified(), "z"; got != want {
		t.Fatalf("Modified() = %q, want %q", got, want)
	}
	if got := b.OrigSlice(0, 1); got != "abc" {
		t.Fatalf("OrigSlice(0,1) = %q, want %q", got, "abc")
	}
}

func TestApplyRewriterNoOpsLeavesBufferUnchanged(t *testing.T) {
	b := New("hello")
	if err := b.ApplyRewriter(replacingRewriter{old: "zzz", new: "q"}); err != nil {
		t.Fatal(err)
	}
	if got := b.Modified(); got != "hello" {
		t.Fatalf("Modified() = %q, want %q", got, "hello")
	}
}

func TestApplyRewriterChainedPassesComposeMapping(t *testing.T) {
	b := New("aa")
	if err := b.ApplyRewriter(replacingRewriter{old: "a", new: "bb"}); err != nil {
		t.Fatal(err)
	}
	if err := b.ApplyRewriter(replacingRewriter{old: "b", new: "c"}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.Modified(), "cccc"; got != want {
		t.Fatalf("Modified() = %q, want %q", got, want)
	}
	// each grown "bb" keeps its "a"'s start offset on its first byte and
	// repeats that "a"'s right edge on its second; the 1:1 second pass
	// carries that mapping over unchanged.
	wantM2O := []int{0, 1, 1, 2, 2}
	for i, want := range wantM2O {
		if got := b.M2O(i); got != want {
			t.Fatalf("M2O(%d) = %d, want %d", i, got, want)
		}
	}
}
