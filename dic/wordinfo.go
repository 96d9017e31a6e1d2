package dic

import "github.com/go-sudachi/sudachi/errs"

// WordInfo is the per-word record of spec.md §3: surface, head-word
// byte length, POS id, normalized form, dictionary-form word id (-1 if
// the word is its own dictionary form), dictionary form, reading form,
// the two oversegmentation split lists (mode A and B), a
// word-structure split, and synonym-group ids. All strings are UTF-8;
// lists may be empty.
type WordInfo struct {
	Surface             string
	HeadWordLength       uint16
	POSID                uint16
	NormalizedForm       string
	DictionaryFormWordID int32
	DictionaryForm       string
	ReadingForm          string
	SplitA               []WordID
	SplitB               []WordID
	WordStructure        []WordID
	SynonymGroupIDs      []int32
}

// WordInfoList is the word-info section of spec.md §4.1: `n` u32
// offsets into the record area, followed by the variable-length
// records themselves. Offsets are relative to the start of the offset
// table, matching the layout produced by the rest of the section.
type WordInfoList struct {
	data    []byte
	base    int // position of the first offset entry
	offsets []uint32
}

func readWordInfoList(r *reader, count uint32) (*WordInfoList, error) {
	base := r.pos
	offsets := make([]uint32, count)
	for i := range offsets {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		offsets[i] = v
	}
	return &WordInfoList{data: r.data, base: base, offsets: offsets}, nil
}

// Get decodes and returns the WordInfo for a word number, applying
// subset to skip fields the caller does not need (spec.md §4.6's
// InfoSubset). String, list and synonym fields outside subset come
// back empty, not fetched; the fixed-width head-word length, POS id
// and dictionary-form word id are always decoded, and an empty
// DictionaryForm falls back to Surface whatever the subset.
func (l *WordInfoList) Get(word uint32, subset InfoSubset) (WordInfo, error) {
	if int(word) >= len(l.offsets) {
		return WordInfo{}, errs.NewWordIDError(word)
	}
	r := &reader{data: l.data, pos: l.base + int(l.offsets[word])}

	var wi WordInfo
	var err error

	if subset.Has(Surface) {
		if wi.Surface, err = r.u16LenString(); err != nil {
			return WordInfo{}, err
		}
	} else if err = skipU16LenString(r); err != nil {
		return WordInfo{}, err
	}

	headLen, err := r.u16()
	if err != nil {
		return WordInfo{}, err
	}
	wi.HeadWordLength = headLen

	posID, err := r.u16()
	if err != nil {
		return WordInfo{}, err
	}
	wi.POSID = posID

	if wi.NormalizedForm, err = readOptionalString(r, subset.Has(NormalizedForm)); err != nil {
		return WordInfo{}, err
	}
	if subset.Has(NormalizedForm) && wi.NormalizedForm == "" {
		wi.NormalizedForm = wi.Surface
	}

	dicFormID, err := r.i32()
	if err != nil {
		return WordInfo{}, err
	}
	wi.DictionaryFormWordID = dicFormID

	if wi.DictionaryForm, err = readOptionalString(r, subset.Has(DicFormWordID)); err != nil {
		return WordInfo{}, err
	}
	if wi.DictionaryForm == "" {
		wi.DictionaryForm = wi.Surface
	}

	if wi.ReadingForm, err = readOptionalString(r, subset.Has(ReadingForm)); err != nil {
		return WordInfo{}, err
	}

	if wi.SplitA, err = readOptionalWordIDList(r, subset.Has(SplitA)); err != nil {
		return WordInfo{}, err
	}
	if wi.SplitB, err = readOptionalWordIDList(r, subset.Has(SplitB)); err != nil {
		return WordInfo{}, err
	}
	if wi.WordStructure, err = readOptionalWordIDList(r, subset.Has(WordStructure)); err != nil {
		return WordInfo{}, err
	}

	if subset.Has(SynonymGroupID) {
		n, err := r.u8()
		if err != nil {
			return WordInfo{}, err
		}
		wi.SynonymGroupIDs = make([]int32, n)
		for i := range wi.SynonymGroupIDs {
			v, err := r.i32()
			if err != nil {
				return WordInfo{}, err
			}
			wi.SynonymGroupIDs[i] = v
		}
	}

	return wi, nil
}

func readOptionalString(r *reader, want bool) (string, error) {
	if want {
		return r.u16LenString()
	}
	return "", skipU16LenString(r)
}

func skipU16LenString(r *reader) error {
	n, err := r.i16()
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	return r.skip(int(n) * 2)
}

func readOptionalWordIDList(r *reader, want bool) ([]WordID, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	if !want {
		return nil, r.skip(int(n) * 4)
	}
	out := make([]WordID, n)
	for i := range out {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		out[i] = WordID(v)
	}
	return out, nil
}
