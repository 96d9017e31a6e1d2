package lattice

import "github.com/go-sudachi/sudachi/dic"

// Node is a lattice entry (spec.md §3): a byte and char range in the
// analyzer's modified text, connection ids, a unigram cost, and either
// a dictionary WordID or an inline WordInfo for OOV-manufactured
// words. Predecessors are referenced by index into the owning
// Lattice's flat node slice rather than by pointer (spec.md §9).
type Node struct {
	Begin, End         int // byte range in modified
	BeginChar, EndChar int // char range in modified

	Left, Right, Cost int16
	WordID            dic.WordID

	// OOVInfo is non-nil for a node manufactured by an OOV provider; such
	// nodes have no dictionary entry to look up and carry their WordInfo
	// directly.
	OOVInfo *dic.WordInfo

	Prev     int   // index of the best predecessor, -1 for BOS
	PathCost int32 // best cumulative cost reaching this node
}

// IsOOV reports whether n was manufactured by an OOV provider rather
// than resolved from a dictionary lookup.
func (n *Node) IsOOV() bool { return n.OOVInfo != nil }

// CharLen returns the node's length in characters.
func (n *Node) CharLen() int { return n.EndChar - n.BeginChar }
