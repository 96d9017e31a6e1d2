package input

import (
	"strings"
	"testing"

	"github.com/go-sudachi/sudachi/chardef"
)

func testCategoryMap(t *testing.T) *chardef.Map {
	t.Helper()
	const def = `
0x3041..0x3096 HIRAGANA
0x30A1..0x30FA KATAKANA
0x0030..0x0039 NUMERIC
0x0041..0x005A ALPHA
0x0061..0x007A ALPHA
`
	m, err := chardef.Load(strings.NewReader(def), "<test>")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBufferBuildCategoriesAndContinuousLen(t *testing.T) {
	b := New("ひらがなABC")
	b.Build(testCategoryMap(t))

	if got, want := b.NumChars(), 7; got != want {
		t.Fatalf("NumChars() = %d, want %d", got, want)
	}
	if got := b.CategoryAtChar(0); got != chardef.HIRAGANA {
		t.Fatalf("CategoryAtChar(0) = %v, want HIRAGANA", got)
	}
	if got := b.CategoryAtChar(4); got != chardef.ALPHA {
		t.Fatalf("CategoryAtChar(4) = %v, want ALPHA", got)
	}
	// the run of 4 hiragana chars shares a nonempty category
	// intersection, so the first char's continuous length is 4.
	if got, want := b.ContinuousLen(0), 4; got != want {
		t.Fatalf("ContinuousLen(0) = %d, want %d", got, want)
	}
	// the trailing run of 3 ASCII letters is its own category cluster.
	if got, want := b.ContinuousLen(4), 3; got != want {
		t.Fatalf("ContinuousLen(4) = %d, want %d", got, want)
	}
}

func TestBufferCanBowFalseMidCluster(t *testing.T) {
	b := New("ひらABC")
	b.Build(testCategoryMap(t))

	// byte 0 starts the text: always a valid word beginning.
	if !b.CanBow(0) {
		t.Fatal("CanBow(0) = false, want true")
	}
	hiraLen := len("ひ")
	// the second hiragana char continues the first's category cluster.
	if b.CanBow(hiraLen) {
		t.Fatal("CanBow at second hiragana char = true, want false")
	}
	// the first ASCII letter starts a new category cluster after hiragana.
	asciiStart := len("ひら")
	if !b.CanBow(asciiStart) {
		t.Fatal("CanBow at first ASCII char = false, want true")
	}
	// a non-char-boundary offset is never a valid word beginning.
	if b.CanBow(asciiStart + 1) {
		t.Fatal("CanBow at non-char-boundary byte = true, want false")
	}
}

func TestBufferWordCandidateLengthSpansCategoryRun(t *testing.T) {
	b := New("ひらABC")
	b.Build(testCategoryMap(t))

	hiraBytes := len("ひら")
	if got, want := b.WordCandidateLength(0), hiraBytes; got != want {
		t.Fatalf("WordCandidateLength(0) = %d, want %d", got, want)
	}
	if got, want := b.WordCandidateLength(hiraBytes), len("ABC"); got != want {
		t.Fatalf("WordCandidateLength(hiragana end) = %d, want %d", got, want)
	}
}

func TestBufferOrigSliceTracksRewrites(t *testing.T) {
	b := New("ABC")
	e := &Editor{}
	e.Replace(0, 1, "a")
	if err := b.ApplyRewriter(staticRewrite{e}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.Modified(), "aBC"; got != want {
		t.Fatalf("Modified() = %q, want %q", got, want)
	}
	if got, want := b.OrigSlice(0, 1), "A"; got != want {
		t.Fatalf("OrigSlice(0,1) = %q, want %q", got, want)
	}
	if got, want := b.OrigSlice(1, 3), "BC"; got != want {
		t.Fatalf("OrigSlice(1,3) = %q, want %q", got, want)
	}
}

type staticRewrite struct{ e *Editor }

func (s staticRewrite) Rewrite(b *Buffer, e *Editor) error {
	*e = *s.e
	return nil
}
