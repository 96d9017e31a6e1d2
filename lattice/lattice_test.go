package lattice

import (
	"testing"

	"github.com/go-sudachi/sudachi/dic"
)

// newTestLattice builds an empty Lattice with a BOS node at position 0,
// mirroring Build's setup, for tests that drive connect/addNode
// directly instead of going through a full dictionary/OOV pipeline.
func newTestLattice() *Lattice {
	l := &Lattice{endingAt: map[int][]int{}, created: map[int]CreatedWords{}}
	l.bos = l.addNode(Node{Begin: 0, End: 0, Right: dic.BOSParseID, Prev: -1})
	l.endingAt[0] = []int{l.bos}
	return l
}

func (l *Lattice) addAndConnect(n Node, pos int, g *dic.Grammar) int {
	idx := l.addNode(n)
	l.connect(idx, pos, g)
	l.endingAt[n.End] = append(l.endingAt[n.End], idx)
	return idx
}

func (l *Lattice) closeWithEOS(n int, g *dic.Grammar) {
	l.eos = l.addNode(Node{Begin: n, End: n, Left: dic.EOSParseID, Prev: -1})
	l.connect(l.eos, n, g)
}

func TestBestPathPicksCheaperRoute(t *testing.T) {
	// two length-1 nodes at [0,1) with a big cost gap; a flat
	// zero-cost connection matrix means the cheaper node must win.
	g := dic.NewTestGrammar(1, 1, []int16{0}, nil)
	l := newTestLattice()
	l.addAndConnect(Node{Begin: 0, End: 1, Cost: 100}, 0, g)
	l.addAndConnect(Node{Begin: 0, End: 1, Cost: 5}, 0, g)
	l.closeWithEOS(1, g)

	path := l.BestPath()
	if len(path) != 1 {
		t.Fatalf("BestPath() = %v, want one node", path)
	}
	if got := l.Node(path[0]).Cost; got != 5 {
		t.Fatalf("winning node Cost = %d, want 5", got)
	}
}

func TestBestPathInhibitedConnectionIsSkipped(t *testing.T) {
	// left id 0 -> right id 0 is inhibited; only the transition through
	// left id 1 may be taken, even though it is the costlier node.
	conn := []int16{dic.InhibitedConnection, 0, 0, 0}
	g := dic.NewTestGrammar(2, 2, conn, nil)
	l := newTestLattice()
	cheap := l.addAndConnect(Node{Begin: 0, End: 1, Left: 0, Right: 0, Cost: 1}, 0, g)
	expensive := l.addAndConnect(Node{Begin: 0, End: 1, Left: 1, Right: 1, Cost: 50}, 0, g)
	l.closeWithEOS(1, g)

	path := l.BestPath()
	if len(path) != 1 || path[0] != expensive {
		t.Fatalf("BestPath() = %v, want the uninhibited node (idx %d), cheap was idx %d", path, expensive, cheap)
	}
}

func TestBestPathNoViableRouteReturnsNil(t *testing.T) {
	// every transition into EOS is inhibited: no path exists.
	conn := []int16{dic.InhibitedConnection}
	g := dic.NewTestGrammar(1, 1, conn, nil)
	l := newTestLattice()
	l.addAndConnect(Node{Begin: 0, End: 1, Cost: 1}, 0, g)
	l.closeWithEOS(1, g)

	if path := l.BestPath(); path != nil {
		t.Fatalf("BestPath() = %v, want nil", path)
	}
}

func TestBestPathTieBreaksOnSmallerBegin(t *testing.T) {
	// nodeC and nodeB both end at 2 with equal total path cost (9);
	// nodeC is connected first (so it becomes connect's initial best),
	// but nodeB's smaller Begin must still win the tie.
	g := dic.NewTestGrammar(1, 1, []int16{0}, nil)
	l := newTestLattice()

	_ = l.addAndConnect(Node{Begin: 0, End: 1, Cost: 5}, 0, g)      // PathCost 5
	_ = l.addAndConnect(Node{Begin: 1, End: 2, Cost: 4}, 1, g)      // via nodeA: PathCost 9
	nodeB := l.addAndConnect(Node{Begin: 0, End: 2, Cost: 9}, 0, g) // via BOS: PathCost 9

	final := l.addAndConnect(Node{Begin: 2, End: 3, Cost: 0}, 2, g)
	l.closeWithEOS(3, g)

	if got := l.Node(final).Prev; got != nodeB {
		t.Fatalf("tie-break chose predecessor idx %d, want %d (smaller Begin)", got, nodeB)
	}
	path := l.BestPath()
	if len(path) != 2 || path[0] != nodeB || path[1] != final {
		t.Fatalf("BestPath() = %v, want [%d %d]", path, nodeB, final)
	}
}
