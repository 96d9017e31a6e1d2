package dic

import (
	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/internal/cow"
)

// InhibitedConnection is the out-of-band connection cost value that
// forbids a transition outright (spec.md §3's "inhibited connection
// sentinel"). Lattice/Viterbi must never select a transition whose
// matrix entry equals this value.
const InhibitedConnection int16 = 1 << 14

// BOS/EOS always sit at left/right id 0, per spec.md §3.
const (
	BOSParseID = 0
	EOSParseID = 0
)

// POS is a 6-tuple of short strings (spec.md §3): e.g. (名詞, 普通名詞,
// 一般, *, *, *).
type POS [6]string

// Grammar is the grammar block of spec.md §4.1: the POS table, the
// connection-cost matrix, and the character category map (attached
// separately, after char.def is loaded — see Grammar.SetCharCategory).
type Grammar struct {
	pos         []POS
	posIndex    map[POS]uint16
	conn        cow.Array[int16]
	leftSize    int
	rightSize   int
	charCat     *chardef.Map
}

// NewTestGrammar builds a Grammar directly from an owned connection
// matrix and POS table, bypassing readGrammar's binary decoding. It
// exists for tests elsewhere in the module (lattice, plugin/pathrewrite,
// ...) that exercise Viterbi decoding or POS resolution without a real
// binary dictionary fixture.
func NewTestGrammar(leftSize, rightSize int, conn []int16, pos []POS) *Grammar {
	index := make(map[POS]uint16, len(pos))
	for i, p := range pos {
		index[p] = uint16(i)
	}
	return &Grammar{
		pos:       pos,
		posIndex:  index,
		conn:      cow.FromOwned(conn),
		leftSize:  leftSize,
		rightSize: rightSize,
	}
}

func readGrammar(r *reader) (*Grammar, error) {
	posCount, err := r.i16()
	if err != nil {
		return nil, err
	}
	g := &Grammar{
		pos:      make([]POS, posCount),
		posIndex: make(map[POS]uint16, posCount),
	}
	for i := 0; i < int(posCount); i++ {
		var p POS
		for j := 0; j < 6; j++ {
			s, err := r.u16LenString()
			if err != nil {
				return nil, err
			}
			p[j] = s
		}
		g.pos[i] = p
		g.posIndex[p] = uint16(i)
	}

	leftSize, err := r.i16()
	if err != nil {
		return nil, err
	}
	rightSize, err := r.i16()
	if err != nil {
		return nil, err
	}
	g.leftSize = int(leftSize)
	g.rightSize = int(rightSize)

	n := int(leftSize) * int(rightSize)
	start := r.pos
	if err := r.skip(n * 2); err != nil {
		return nil, err
	}
	g.conn = cow.FromBytes[int16](r.data, start, n)

	return g, nil
}

// POSOf returns the POS 6-tuple for posID, or the zero POS if posID is
// out of range.
func (g *Grammar) POSOf(posID uint16) POS {
	if int(posID) >= len(g.pos) {
		return POS{}
	}
	return g.pos[posID]
}

// POSID looks up the grammar index for a POS 6-tuple, reporting ok=false
// if the grammar has no such entry (spec.md §7's InvalidPartOfSpeech).
func (g *Grammar) POSID(p POS) (uint16, bool) {
	id, ok := g.posIndex[p]
	return id, ok
}

// POSIDSlice is a convenience wrapper for callers holding a []string of
// length 6 (e.g. decoded from unk.def/plugin settings) instead of a POS.
func (g *Grammar) POSIDSlice(fields []string) (uint16, bool) {
	if len(fields) != 6 {
		return 0, false
	}
	var p POS
	copy(p[:], fields)
	return g.POSID(p)
}

// Cost returns the connection cost for a (left, right) id pair
// (spec.md §4.1's get_cost, row-major: matrix[left*rightSize+right]).
func (g *Grammar) Cost(left, right int16) int16 {
	idx := int(left)*g.rightSize + int(right)
	return g.conn.Get(idx)
}

// SetCost overrides a connection cost; used by the edit-connection-cost
// plugin family (spec.md §4.1, §5: "writes trigger the copy-on-write
// upgrade"). Only legal at construction time.
func (g *Grammar) SetCost(left, right int16, cost int16) {
	idx := int(left)*g.rightSize + int(right)
	g.conn.Set(idx, cost)
}

// LeftSize and RightSize report the connection matrix dimensions.
func (g *Grammar) LeftSize() int  { return g.leftSize }
func (g *Grammar) RightSize() int { return g.rightSize }

// CharCategory returns the attached character category map, or nil if
// none has been attached yet.
func (g *Grammar) CharCategory() *chardef.Map { return g.charCat }

// SetCharCategory attaches the character category map loaded from
// config's characterDefinitionFile. Grammar objects are otherwise
// immutable after construction (spec.md §5); this is the one
// exception, performed once at analyzer-construction time, mirroring
// original_source's `grammar.character_category = ...` assignment.
func (g *Grammar) SetCharCategory(m *chardef.Map) { g.charCat = m }
