package dic

// Lexicon bundles one dictionary's trie, word-id table, word-params
// and word-info sections (spec.md §3, §4.1). System and user
// dictionaries are both represented as a Lexicon; a Dictionary stacks
// one or more of them, indexed by WordID.Dic().
type Lexicon struct {
	trie     *Trie
	wordIDs  *WordIDTable
	params   *WordParams
	wordInfo *WordInfoList
}

func readLexicon(r *reader) (*Lexicon, error) {
	trieSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	trieStart := r.pos
	if err := r.skip(int(trieSize) * 4); err != nil {
		return nil, err
	}
	trie := newTrie(r.data, trieStart, int(trieSize))

	tableSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	tableStart := r.pos
	if err := r.skip(int(tableSize)); err != nil {
		return nil, err
	}
	wordIDs := newWordIDTable(r.data, tableStart, tableSize)

	wordCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	paramsStart := r.pos
	if err := r.skip(int(wordCount) * wordParamSize * 2); err != nil {
		return nil, err
	}
	params := newWordParams(r.data, paramsStart, wordCount)

	wordInfo, err := readWordInfoList(r, wordCount)
	if err != nil {
		return nil, err
	}
	// wordInfoList's records are variable length and are located via
	// offsets relative to the offset table; advance past the longest one isn't
	// knowable without parsing, so lexicon reading for user dictionaries
	// stacked after this one relies on a consumer never needing to seek
	// past the end of this section during a single Load call.

	return &Lexicon{trie: trie, wordIDs: wordIDs, params: params, wordInfo: wordInfo}, nil
}

// WordCount returns the number of words local to this lexicon.
func (l *Lexicon) WordCount() uint32 { return l.params.Size() }

// CommonPrefixSearch returns every WordID whose surface is a byte
// prefix of data[start:], resolved from the trie through the word-id
// table.
func (l *Lexicon) CommonPrefixSearch(data []byte, start int) *LexiconIter {
	return &LexiconIter{lex: l, trie: l.trie.CommonPrefixSearch(data, start)}
}

// LexiconIter flattens Trie hits (one per shared prefix length) into
// individual WordID hits (one trie leaf may resolve to several
// homographs sharing a surface).
type LexiconIter struct {
	lex     *Lexicon
	trie    *TrieIter
	pending []WordID
	end     int
}

// Next returns the next (WordID, end-offset) pair.
func (it *LexiconIter) Next() (WordID, int, bool) {
	for len(it.pending) == 0 {
		entry, ok := it.trie.Next()
		if !ok {
			return 0, 0, false
		}
		it.pending = it.lex.wordIDs.Entries(entry.Value)
		it.end = entry.End
	}
	id := it.pending[0]
	it.pending = it.pending[1:]
	return id, it.end, true
}

// Params returns (left_id, right_id, cost) for a local word number.
func (l *Lexicon) Params(word uint32) (left, right, cost int16) { return l.params.Get(word) }

// Cost returns just the cost for a local word number.
func (l *Lexicon) Cost(word uint32) int16 { return l.params.Cost(word) }

// SetCost overrides the cost for a local word number.
func (l *Lexicon) SetCost(word uint32, cost int16) { l.params.SetCost(word, cost) }

// WordInfo decodes the WordInfo record for a local word number.
func (l *Lexicon) WordInfo(word uint32, subset InfoSubset) (WordInfo, error) {
	return l.wordInfo.Get(word, subset)
}
