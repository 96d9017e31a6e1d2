package dic

import "github.com/go-sudachi/sudachi/internal/cow"

// WordParams is the word-params section of spec.md §4.1: `3*n` i16
// triples of (left_id, right_id, cost) indexed by word number. It is
// the only field group the Viterbi phase needs before a path is
// chosen (spec.md §4.6's "subset loading").
type WordParams struct {
	data cow.Array[int16]
	size uint32
}

const wordParamSize = 3

func newWordParams(data []byte, offset int, size uint32) *WordParams {
	return &WordParams{
		data: cow.FromBytes[int16](data, offset, int(size)*wordParamSize),
		size: size,
	}
}

func (p *WordParams) storageSize() int { return 4 + 2*wordParamSize*int(p.size) }

// Size returns the number of words with params in this lexicon.
func (p *WordParams) Size() uint32 { return p.size }

// Get returns (left_id, right_id, cost) for a word number.
func (p *WordParams) Get(word uint32) (left, right, cost int16) {
	base := int(word) * wordParamSize
	return p.data.Get(base), p.data.Get(base + 1), p.data.Get(base + 2)
}

// Cost returns just the cost field for a word number.
func (p *WordParams) Cost(word uint32) int16 {
	return p.data.Get(int(word)*wordParamSize + 2)
}

// SetCost overrides the cost field for a word number; used by
// connection-cost-editing plugins at construction time (spec.md §4.1).
func (p *WordParams) SetCost(word uint32, cost int16) {
	p.data.Set(int(word)*wordParamSize+2, cost)
}
