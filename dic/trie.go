package dic

import "github.com/go-sudachi/sudachi/internal/cow"

// Trie is the double-array trie of spec.md §4.4, over the normalized
// UTF-8 bytes of an analyzer's modified input. Each u32 entry packs an
// offset, an 8-bit label plus a high sign bit, a has-leaf flag at bit
// 8, and (at a leaf) a 31-bit value — an offset into the word-id
// table, not a WordID itself.
type Trie struct {
	array cow.Array[uint32]
}

func newTrie(data []byte, offset, size int) *Trie {
	return &Trie{array: cow.FromBytes[uint32](data, offset, size)}
}

func (t *Trie) get(i int) uint32 { return t.array.Get(i) }

func trieHasLeaf(u uint32) bool  { return (u>>8)&1 == 1 }
func trieValue(u uint32) uint32  { return u & ((1 << 31) - 1) }
func trieLabel(u uint32) uint32  { return u & ((1 << 31) | 0xFF) }
func trieOffset(u uint32) uint32 { return (u >> 10) << ((u & (1 << 9)) >> 6) }

// TrieEntry is one common-prefix hit: Value is an offset into the
// word-id table (resolved further by Lexicon.WordIDs), End is the
// absolute byte offset in the search buffer where the matched surface
// ends.
type TrieEntry struct {
	Value uint32
	End   int
}

// TrieIter walks every common-prefix match starting at a fixed byte
// offset, longest match last. It is "fused": once it reports no match
// it keeps reporting no match.
type TrieIter struct {
	t       *Trie
	data    []byte
	nodePos uint32
	offset  int
}

// CommonPrefixSearch returns an iterator over every word whose surface
// is a byte-prefix of data[start:], per spec.md §4.4.
func (t *Trie) CommonPrefixSearch(data []byte, start int) *TrieIter {
	root := t.get(0)
	return &TrieIter{t: t, data: data, nodePos: trieOffset(root), offset: start}
}

// Next returns the next common-prefix hit, or ok=false when exhausted.
func (it *TrieIter) Next() (TrieEntry, bool) {
	nodePos := it.nodePos
	for i := it.offset; i < len(it.data); i++ {
		k := uint32(it.data[i])
		nodePos ^= k
		u := it.t.get(int(nodePos))
		if trieLabel(u) != k {
			return TrieEntry{}, false
		}
		nodePos ^= trieOffset(u)
		if trieHasLeaf(u) {
			v := trieValue(it.t.get(int(nodePos)))
			it.offset = i + 1
			it.nodePos = nodePos
			return TrieEntry{Value: v, End: i + 1}, true
		}
	}
	return TrieEntry{}, false
}
