package dic

import "encoding/binary"

// WordIDTable resolves a Trie leaf value into the WordIDs it stands
// for: spec.md §4.1 "word-id table size (u32) + variable-length
// records (1-byte count then count u32 word ids, unaligned)". A single
// trie leaf can map to more than one WordID because multiple lexicon
// entries can share a surface at different POS/cost.
//
// Records are byte-offset addressed and not guaranteed u32-aligned, so
// entries are decoded with explicit little-endian reads rather than by
// reinterpreting the backing array (spec.md §9 "Unaligned reads").
type WordIDTable struct {
	bytes  []byte
	offset int
	size   uint32
}

func newWordIDTable(data []byte, offset int, size uint32) *WordIDTable {
	return &WordIDTable{bytes: data, offset: offset, size: size}
}

func (t *WordIDTable) storageSize() int { return 4 + int(t.size) }

// Entries returns the WordIDs stored at the record beginning at index
// (a Trie leaf's Value).
func (t *WordIDTable) Entries(index uint32) []WordID {
	pos := t.offset + int(index)
	count := int(t.bytes[pos])
	out := make([]WordID, count)
	p := pos + 1
	for i := 0; i < count; i++ {
		out[i] = WordID(binary.LittleEndian.Uint32(t.bytes[p : p+4]))
		p += 4
	}
	return out
}
