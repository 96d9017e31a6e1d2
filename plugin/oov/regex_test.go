package oov

import (
	"strings"
	"testing"

	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

func testRegexGrammar(t *testing.T) *dic.Grammar {
	t.Helper()
	pos := []dic.POS{{"名詞", "普通名詞", "一般", "*", "*", "*"}}
	return dic.NewTestGrammar(1, 1, []int16{0}, pos)
}

func testRegexCategoryMap(t *testing.T) *chardef.Map {
	t.Helper()
	const def = `
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

func TestRegexProviderMatchesAnchoredPrefix(t *testing.T) {
	g := testRegexGrammar(t)
	pos := [6]string{"名詞", "普通名詞", "一般", "*", "*", "*"}
	p, err := NewRegexProvider("[0-9a-zA-Z]{2,}", 1, 2, 100, pos, g)
	if err != nil {
		t.Fatal(err)
	}

	b := input.New("ABC123 foo")
	b.Build(testRegexCategoryMap(t))
	nodes, err := p.ProvideOOV(b, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("ProvideOOV() = %d nodes, want 1", len(nodes))
	}
	if got, want := nodes[0].End, len("ABC123"); got != want {
		t.Fatalf("node.End = %d, want %d", got, want)
	}
}

func TestRegexProviderNoMatchAtOffset(t *testing.T) {
	g := testRegexGrammar(t)
	pos := [6]string{"名詞", "普通名詞", "一般", "*", "*", "*"}
	p, err := NewRegexProvider("[0-9a-zA-Z]{2,}", 1, 2, 100, pos, g)
	if err != nil {
		t.Fatal(err)
	}

	b := input.New(" ABC")
	b.Build(testRegexCategoryMap(t))
	nodes, err := p.ProvideOOV(b, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if nodes != nil {
		t.Fatalf("ProvideOOV() = %v, want nil when the pattern does not match at offset", nodes)
	}
}

func TestRegexProviderSkipsWhenMatchingLengthAlreadyCreated(t *testing.T) {
	g := testRegexGrammar(t)
	pos := [6]string{"名詞", "普通名詞", "一般", "*", "*", "*"}
	p, err := NewRegexProvider("[0-9a-zA-Z]{2,}", 1, 2, 100, pos, g)
	if err != nil {
		t.Fatal(err)
	}

	b := input.New("ABC foo")
	b.Build(testRegexCategoryMap(t))
	endChar := b.CharIndexAt(len("ABC"))
	nodes, err := p.ProvideOOV(b, 0, lattice.SingleWord(endChar))
	if err != nil {
		t.Fatal(err)
	}
	if nodes != nil {
		t.Fatalf("ProvideOOV() = %v, want nil when this exact length already exists", nodes)
	}
}
