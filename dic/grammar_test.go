package dic

import (
	"testing"
)

func testPOS() POS { return POS{"名詞", "普通名詞", "一般", "*", "*", "*"} }

func TestGrammarCostRowMajor(t *testing.T) {
	g := NewTestGrammar(2, 3, []int16{0, 1, 2, 3, 4, 5}, []POS{testPOS()})
	if got := g.Cost(0, 0); got != 0 {
		t.Fatalf("Cost(0,0) = %d, want 0", got)
	}
	if got := g.Cost(1, 2); got != 5 {
		t.Fatalf("Cost(1,2) = %d, want 5", got)
	}
}

func TestGrammarSetCostUpgradesToOwned(t *testing.T) {
	g := NewTestGrammar(2, 2, []int16{0, 0, 0, 0}, []POS{testPOS()})
	g.SetCost(1, 1, InhibitedConnection)
	if got := g.Cost(1, 1); got != InhibitedConnection {
		t.Fatalf("Cost(1,1) = %d, want %d", got, InhibitedConnection)
	}
	if got := g.Cost(0, 0); got != 0 {
		t.Fatalf("Cost(0,0) changed unexpectedly: %d", got)
	}
}

func TestGrammarPOSLookup(t *testing.T) {
	g := NewTestGrammar(1, 1, []int16{0}, []POS{testPOS()})
	want := testPOS()
	id, ok := g.POSID(want)
	if !ok || id != 0 {
		t.Fatalf("POSID(%v) = %d,%v", want, id, ok)
	}
	if got := g.POSOf(0); got != want {
		t.Fatalf("POSOf(0) = %v, want %v", got, want)
	}
	if _, ok := g.POSID(POS{"x", "x", "x", "x", "x", "x"}); ok {
		t.Fatal("expected ok=false for unknown POS")
	}
}
