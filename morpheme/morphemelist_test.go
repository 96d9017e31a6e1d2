package morpheme

import (
	"testing"

	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

func testDict(t *testing.T) *dic.Dictionary {
	t.Helper()
	pos := []dic.POS{{"名詞", "普通名詞", "一般", "*", "*", "*"}}
	g := dic.NewTestGrammar(1, 1, []int16{0}, pos)
	return dic.NewTestDictionary(g)
}

func oovNode(begin, end int, surface string) lattice.Node {
	return lattice.Node{
		Begin: begin, End: end,
		BeginChar: begin, EndChar: end,
		WordID: dic.NewWordID(dic.OOVDic, 0),
		OOVInfo: &dic.WordInfo{
			Surface:              surface,
			HeadWordLength:       uint16(len(surface)),
			POSID:                0,
			NormalizedForm:       surface,
			DictionaryForm:       surface,
			DictionaryFormWordID: -1,
		},
	}
}

func TestListSurfaceUsesOriginalTextViaBuffer(t *testing.T) {
	buf := input.New("ABC")
	nodes := []lattice.Node{oovNode(0, 1, "A"), oovNode(1, 3, "BC")}
	list := NewList(buf, testDict(t), ModeC, nodes)

	if got, want := list.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := list.Get(0).Surface(), "A"; got != want {
		t.Fatalf("Get(0).Surface() = %q, want %q", got, want)
	}
	if got, want := list.Get(1).Surface(), "BC"; got != want {
		t.Fatalf("Get(1).Surface() = %q, want %q", got, want)
	}
}

func TestMorphemeIsOOVAndPartOfSpeech(t *testing.T) {
	buf := input.New("A")
	nodes := []lattice.Node{oovNode(0, 1, "A")}
	list := NewList(buf, testDict(t), ModeC, nodes)

	m := list.Get(0)
	if !m.IsOOV() {
		t.Fatal("IsOOV() = false, want true")
	}
	if got := m.DictionaryID(); got != -1 {
		t.Fatalf("DictionaryID() = %d, want -1 for an OOV morpheme", got)
	}
	posID, err := m.PartOfSpeechID()
	if err != nil {
		t.Fatal(err)
	}
	if posID != 0 {
		t.Fatalf("PartOfSpeechID() = %d, want 0", posID)
	}
	pos, err := m.PartOfSpeech()
	if err != nil {
		t.Fatal(err)
	}
	if want := (dic.POS{"名詞", "普通名詞", "一般", "*", "*", "*"}); pos != want {
		t.Fatalf("PartOfSpeech() = %v, want %v", pos, want)
	}
}

func TestMorphemeSplitStopsAtOwnModeOrFinerAndWhenNoSplitRecorded(t *testing.T) {
	buf := input.New("A")
	nodes := []lattice.Node{oovNode(0, 1, "A")}
	list := NewList(buf, testDict(t), ModeC, nodes)
	m := list.Get(0)

	// asking for the list's own mode (or a coarser one) returns the
	// morpheme unchanged.
	same, err := m.Split(ModeC)
	if err != nil {
		t.Fatal(err)
	}
	if len(same) != 1 {
		t.Fatalf("Split(ModeC) = %d morphemes, want 1", len(same))
	}

	// this OOV word's WordInfo records no SplitA/SplitB list, so
	// splitting down to a finer mode still returns just the one morpheme.
	finer, err := m.Split(ModeA)
	if err != nil {
		t.Fatal(err)
	}
	if len(finer) != 1 || finer[0].Surface() != "A" {
		t.Fatalf("Split(ModeA) = %v, want the original morpheme unchanged", finer)
	}
}

// TestResolveSplitsToRequestedGranularity mirrors spec.md §8's S1-S3
// scenarios: a single mode-C word over "選挙管理委員会" refines to
// 4 units at mode A, 3 at mode B, and stays whole at mode C.
func TestResolveSplitsToRequestedGranularity(t *testing.T) {
	pos := []dic.POS{{"名詞", "普通名詞", "一般", "*", "*", "*"}}
	g := dic.NewTestGrammar(1, 1, []int16{0}, pos)

	aUnits := []string{"選挙", "管理", "委員", "会"}
	bUnits := []string{"選挙", "管理", "委員会"}
	words := map[dic.WordID]dic.WordInfo{}
	idFor := map[string]dic.WordID{}
	nextID := uint32(1)
	wordIDFor := func(surface string) dic.WordID {
		if id, ok := idFor[surface]; ok {
			return id
		}
		id := dic.NewWordID(0, nextID)
		nextID++
		idFor[surface] = id
		words[id] = dic.WordInfo{
			Surface:              surface,
			HeadWordLength:       uint16(len(surface)),
			NormalizedForm:       surface,
			DictionaryForm:       surface,
			DictionaryFormWordID: -1,
		}
		return id
	}

	splitA := make([]dic.WordID, len(aUnits))
	for i, u := range aUnits {
		splitA[i] = wordIDFor(u)
	}
	splitB := make([]dic.WordID, len(bUnits))
	for i, u := range bUnits {
		splitB[i] = wordIDFor(u)
	}

	const whole = "選挙管理委員会"
	topID := dic.NewWordID(0, nextID)
	words[topID] = dic.WordInfo{
		Surface:              whole,
		HeadWordLength:       uint16(len(whole)),
		NormalizedForm:       whole,
		DictionaryForm:       whole,
		DictionaryFormWordID: -1,
		SplitA:               splitA,
		SplitB:               splitB,
	}

	dict := dic.NewTestDictionaryWithWords(g, words)
	buf := input.New(whole)
	path := []lattice.Node{{
		Begin: 0, End: len(whole), BeginChar: 0, EndChar: len([]rune(whole)),
		WordID: topID,
	}}

	modeC, err := Resolve(buf, dict, path, ModeC)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := surfacesOf(t, modeC), []string{whole}; !equalStrings(got, want) {
		t.Fatalf("mode C = %v, want %v", got, want)
	}

	modeB, err := Resolve(buf, dict, path, ModeB)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := surfacesOf(t, modeB), bUnits; !equalStrings(got, want) {
		t.Fatalf("mode B = %v, want %v", got, want)
	}

	modeAList, err := Resolve(buf, dict, path, ModeA)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := surfacesOf(t, modeAList), aUnits; !equalStrings(got, want) {
		t.Fatalf("mode A = %v, want %v", got, want)
	}
}

func surfacesOf(t *testing.T, l *List) []string {
	t.Helper()
	out := make([]string, l.Len())
	for i := 0; i < l.Len(); i++ {
		out[i] = l.Get(i).Surface()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitModeStringAndParse(t *testing.T) {
	cases := []struct {
		mode SplitMode
		str  string
	}{{ModeA, "A"}, {ModeB, "B"}, {ModeC, "C"}}
	for _, c := range cases {
		if got := c.mode.String(); got != c.str {
			t.Fatalf("%v.String() = %q, want %q", c.mode, got, c.str)
		}
		parsed, ok := ParseSplitMode(c.str)
		if !ok || parsed != c.mode {
			t.Fatalf("ParseSplitMode(%q) = %v,%v, want %v,true", c.str, parsed, ok, c.mode)
		}
	}
	if _, ok := ParseSplitMode("x"); ok {
		t.Fatal("ParseSplitMode(\"x\") ok = true, want false")
	}
}
