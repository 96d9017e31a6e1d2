// Package lattice implements the lattice builder and Viterbi solver of
// spec.md §4.6, grounded on original_source/sudachi/src/lattice and
// original_source/sudachi/src/analysis (lattice.rs, created.rs are not
// present verbatim in the retrieval pack; the algorithm here follows
// spec.md §4.6's pseudocode directly).
package lattice

import (
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/input"
)

// OOVProvider emits candidate nodes starting at a byte offset when the
// dictionary trie yields nothing there, or unconditionally when
// configured to (spec.md §4.5). created reports which character
// lengths already have a node starting at offset, for providers that
// only fire when nothing else matched.
type OOVProvider interface {
	ProvideOOV(buf *input.Buffer, offset int, created CreatedWords) ([]Node, error)
}

// Lattice is the built DAG of spec.md §3: a flat node slice plus, per
// byte position, the indices of nodes ending there and the
// CreatedWords bitset recorded while building from that position.
type Lattice struct {
	nodes    []Node
	endingAt map[int][]int
	created  map[int]CreatedWords

	bos int
	eos int
}

// Nodes returns the flat node slice; indices are stable for the
// lifetime of the Lattice and are what Node.Prev references.
func (l *Lattice) Nodes() []Node { return l.nodes }

// Node returns the node at index i.
func (l *Lattice) Node(i int) *Node { return &l.nodes[i] }

// CreatedAt returns the CreatedWords bitset recorded at byte position p.
func (l *Lattice) CreatedAt(p int) CreatedWords { return l.created[p] }

func (l *Lattice) addNode(n Node) int {
	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// connect picks the minimum-cost predecessor among the nodes already
// ending at pos for the node at index idx, skipping any transition
// whose connection cost is the inhibited sentinel (spec.md §4.6). Ties
// are broken by preferring the predecessor with the smaller Begin
// (the longer-spanning candidate), then by insertion order — an
// explicit resolution of spec.md §9's Open Question on tie-breaking,
// since predecessors considered here always share the same End.
func (l *Lattice) connect(idx int, pos int, g *dic.Grammar) {
	node := &l.nodes[idx]
	best := -1
	var bestCost int32

	for _, pidx := range l.endingAt[pos] {
		prev := &l.nodes[pidx]
		connCost := g.Cost(prev.Right, node.Left)
		if connCost == dic.InhibitedConnection {
			continue
		}
		total := prev.PathCost + int32(connCost) + int32(node.Cost)
		if best == -1 {
			best, bestCost = pidx, total
			continue
		}
		if total < bestCost {
			best, bestCost = pidx, total
			continue
		}
		if total == bestCost && prev.Begin < l.nodes[best].Begin {
			best, bestCost = pidx, total
		}
	}

	node.Prev = best
	if best != -1 {
		node.PathCost = bestCost
	}
}

// Build constructs the lattice over buf's modified text: trie-resolved
// dictionary nodes plus every configured OOV provider's nodes at each
// reachable byte position, each immediately connected to its best
// predecessor (spec.md §4.6).
func Build(d *dic.Dictionary, providers []OOVProvider, buf *input.Buffer) (*Lattice, error) {
	text := []byte(buf.Modified())
	n := len(text)
	g := d.Grammar()

	l := &Lattice{endingAt: map[int][]int{}, created: map[int]CreatedWords{}}
	l.bos = l.addNode(Node{Begin: 0, End: 0, Right: dic.BOSParseID, Prev: -1})
	l.endingAt[0] = []int{l.bos}

	for i := 0; i < n; i++ {
		if len(l.endingAt[i]) == 0 {
			continue
		}

		var created CreatedWords

		for _, de := range d.CommonPrefixSearch(text, i) {
			left, right, cost := d.Params(de.ID)
			node := Node{
				Begin:     i,
				End:       de.End,
				BeginChar: buf.CharIndexAt(i),
				EndChar:   buf.CharIndexAt(de.End),
				Left:      left,
				Right:     right,
				Cost:      cost,
				WordID:    de.ID,
			}
			idx := l.addNode(node)
			l.connect(idx, i, g)
			l.endingAt[de.End] = append(l.endingAt[de.End], idx)
			created = created.AddWord(node.CharLen())
		}
		l.created[i] = created

		for _, p := range providers {
			oovNodes, err := p.ProvideOOV(buf, i, created)
			if err != nil {
				return nil, err
			}
			for _, on := range oovNodes {
				idx := l.addNode(on)
				l.connect(idx, i, g)
				l.endingAt[on.End] = append(l.endingAt[on.End], idx)
				created = created.AddWord(on.CharLen())
			}
			l.created[i] = created
		}
	}

	l.eos = l.addNode(Node{Begin: n, End: n, Left: dic.EOSParseID, Prev: -1})
	l.connect(l.eos, n, g)

	return l, nil
}

// BestPath backtracks from EOS to BOS and returns the node indices of
// the shortest path, excluding the BOS/EOS bookends, in left-to-right
// order. An empty, nil-error result means EOS had no valid predecessor
// (spec.md §4.6's "no-path failure").
func (l *Lattice) BestPath() []int {
	eos := &l.nodes[l.eos]
	if eos.Prev == -1 {
		return nil
	}

	var rev []int
	for idx := eos.Prev; idx != l.bos; idx = l.nodes[idx].Prev {
		rev = append(rev, idx)
		if l.nodes[idx].Prev == -1 {
			return nil
		}
	}

	path := make([]int, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	return path
}
