package dic

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/go-sudachi/sudachi/errs"
)

// Dictionary is a loaded system dictionary plus zero or more user
// dictionaries stacked on top of it (spec.md §4.1, §6). Lookups that
// span dictionaries (CommonPrefixSearch, WordInfo, Cost) dispatch on
// WordID.Dic() to the right Lexicon, matching original_source's
// JapaneseDictionary / grammar+lexicon-set split.
type Dictionary struct {
	storage Storage
	header  Header
	grammar *Grammar
	lexicon *Lexicon // system lexicon, dic index 0

	userStorage []Storage
	userHeader  []Header
	userLexicon []*Lexicon // dic index i+1

	testWords map[WordID]WordInfo
}

// NewTestDictionary builds a Dictionary carrying only a Grammar and no
// lexicon, for tests elsewhere in the module that exercise the
// OOV-morpheme path (which never calls WordInfo) without a real binary
// dictionary fixture.
func NewTestDictionary(grammar *Grammar) *Dictionary {
	return &Dictionary{grammar: grammar}
}

// NewTestDictionaryWithWords builds a Dictionary like NewTestDictionary
// that additionally serves fixed WordInfo records keyed by WordID, for
// tests exercising Morpheme.Split's dictionary-form lookups (spec.md
// §4.8's A/B/C split-mode resolution) without a real binary lexicon.
func NewTestDictionaryWithWords(grammar *Grammar, words map[WordID]WordInfo) *Dictionary {
	return &Dictionary{grammar: grammar, testWords: words}
}

// Load parses a system dictionary blob: header, grammar, then the
// system lexicon, in that fixed sequence (spec.md §4.1). storage stays
// open for the Dictionary's lifetime since the Trie/WordParams/
// WordInfo sections all borrow its bytes via copy-on-write arrays.
func Load(storage Storage) (*Dictionary, error) {
	r := newReader(storage.Bytes())

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if header.Kind != KindSystem {
		return nil, errs.NewDictionaryFormatError("expected a system dictionary header, got a user one")
	}

	grammar, err := readGrammar(r)
	if err != nil {
		return nil, err
	}

	lexicon, err := readLexicon(r)
	if err != nil {
		return nil, err
	}

	return &Dictionary{storage: storage, header: header, grammar: grammar, lexicon: lexicon}, nil
}

// AddUser parses a user dictionary blob and stacks it on top of the
// dictionaries already loaded, assigning it the next dic index
// (spec.md §3: user dictionaries occupy indices 1..14 in load order).
// A user dictionary blob is read as a header followed directly by a
// lexicon: no grammar section is read, and every user word resolves
// its POS ids and connection costs against the system grammar.
func (d *Dictionary) AddUser(storage Storage) error {
	if len(d.userLexicon) >= OOVDic-1 {
		return errs.NewDictionaryFormatError("too many user dictionaries (max %d)", OOVDic-1)
	}

	r := newReader(storage.Bytes())

	header, err := readHeader(r)
	if err != nil {
		return err
	}
	if header.Kind != KindUser {
		return errs.NewDictionaryFormatError("expected a user dictionary header, got a system one")
	}

	lexicon, err := readLexicon(r)
	if err != nil {
		return err
	}

	d.userStorage = append(d.userStorage, storage)
	d.userHeader = append(d.userHeader, header)
	d.userLexicon = append(d.userLexicon, lexicon)
	return nil
}

// Grammar returns the system grammar (POS table and connection matrix),
// shared by every lexicon stacked on this Dictionary.
func (d *Dictionary) Grammar() *Grammar { return d.grammar }

// Header returns the system dictionary's header.
func (d *Dictionary) Header() Header { return d.header }

// Close releases every backing Storage, system and user alike.
func (d *Dictionary) Close() error {
	var firstErr error
	if err := d.storage.Close(); err != nil {
		firstErr = err
	}
	for _, s := range d.userStorage {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (d *Dictionary) lexiconFor(dic uint8) *Lexicon {
	if dic == 0 {
		return d.lexicon
	}
	idx := int(dic) - 1
	if idx < 0 || idx >= len(d.userLexicon) {
		return nil
	}
	return d.userLexicon[idx]
}

// WordInfo decodes the WordInfo record for id, dispatching to whichever
// lexicon id.Dic() names. OOV words have no lexicon entry; callers must
// synthesize their own WordInfo for those.
func (d *Dictionary) WordInfo(id WordID, subset InfoSubset) (WordInfo, error) {
	if wi, ok := d.testWords[id]; ok {
		return wi, nil
	}
	lex := d.lexiconFor(id.Dic())
	if lex == nil {
		return WordInfo{}, errs.NewWordIDError(uint32(id))
	}
	return lex.WordInfo(id.Word(), subset)
}

// Cost returns the connection-matrix-independent unigram cost for id.
func (d *Dictionary) Cost(id WordID) int16 {
	lex := d.lexiconFor(id.Dic())
	if lex == nil {
		return 0
	}
	return lex.Cost(id.Word())
}

// Params returns (left_id, right_id, cost) for id.
func (d *Dictionary) Params(id WordID) (left, right, cost int16) {
	lex := d.lexiconFor(id.Dic())
	if lex == nil {
		return 0, 0, 0
	}
	return lex.Params(id.Word())
}

// DictEntry pairs a WordID with the byte offset (relative to the
// search start) where its surface ends, the shape CommonPrefixSearch
// callers need to build lattice edges.
type DictEntry struct {
	ID  WordID
	End int
}

// CommonPrefixSearch looks up every dictionary entry whose surface is a
// byte prefix of data[start:], across the system lexicon and every
// stacked user lexicon, tagging each WordID with its owning dic index
// (spec.md §4.3's multi-dictionary lookup step).
func (d *Dictionary) CommonPrefixSearch(data []byte, start int) []DictEntry {
	var out []DictEntry

	if d.lexicon != nil {
		it := d.lexicon.CommonPrefixSearch(data, start)
		for {
			id, end, ok := it.Next()
			if !ok {
				break
			}
			out = append(out, DictEntry{ID: id, End: end})
		}
	}

	for i, lex := range d.userLexicon {
		dic := uint8(i + 1)
		uit := lex.CommonPrefixSearch(data, start)
		for {
			id, end, ok := uit.Next()
			if !ok {
				break
			}
			out = append(out, DictEntry{ID: NewWordID(dic, uint32(id.Word())), End: end})
		}
	}

	return out
}

// loadGroup coalesces concurrent Load calls for the same resolved file
// path: two goroutines opening the same system dictionary (e.g. two
// Analyzer instances built from one shared Config, spec.md §5) mmap and
// parse it only once.
var loadGroup singleflight.Group

// loadCache memoizes successful loads by path; the mmap'd bytes and
// parsed sections can be shared freely since Dictionary's read paths
// never mutate without an explicit plugin-driven SetCost/SetCharCategory
// call, and those are only ever applied once at construction time.
var (
	loadCacheMu sync.Mutex
	loadCache   = map[string]*Dictionary{}
)

// LoadSystemFile loads and caches the system dictionary at path,
// opening it at most once even under concurrent callers.
func LoadSystemFile(path string) (*Dictionary, error) {
	loadCacheMu.Lock()
	if d, ok := loadCache[path]; ok {
		loadCacheMu.Unlock()
		return d, nil
	}
	loadCacheMu.Unlock()

	v, err, _ := loadGroup.Do(path, func() (any, error) {
		storage, err := openMmap(path)
		if err != nil {
			return nil, err
		}
		d, err := Load(storage)
		if err != nil {
			storage.Close()
			return nil, err
		}

		loadCacheMu.Lock()
		loadCache[path] = d
		loadCacheMu.Unlock()
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dictionary), nil
}
