// Package oov implements the out-of-vocabulary providers of spec.md
// §4.5, grounded on original_source/plugin/oov/{mecab_oov,simple_oov}/
// src/lib.rs and original_source/sudachi/src/plugin/oov/regex_oov.
package oov

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-sudachi/sudachi/chardef"
	"github.com/go-sudachi/sudachi/dic"
	"github.com/go-sudachi/sudachi/errs"
	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
)

type unkEntry struct {
	left, right, cost int16
	posID             uint16
}

// MeCabProvider is the category-driven OOV provider of spec.md §4.5:
// for each category type active at a position, a "grouped" category
// first gets one node per template spanning the whole continuous run;
// then every category gets one node per template per character length
// up to its configured length, as long as that length stays shorter
// than the run (grouped) or within it (not grouped).
type MeCabProvider struct {
	categories map[chardef.Category]categoryInfo
	templates  map[chardef.Category][]unkEntry
}

type categoryInfo struct {
	isInvoke bool
	isGroup  bool
	length   uint32
}

// LoadUnkDef parses an unk.def CSV resource (spec.md §6): each row is
// `category,left_id,right_id,cost,pos1..pos6`. category must already be
// declared in categories (via chardef.Load's Types); the POS 6-tuple
// must exist in grammar.
func LoadUnkDef(r io.Reader, source string, charMap *chardef.Map, grammar *dic.Grammar) (*MeCabProvider, error) {
	p := &MeCabProvider{
		categories: map[chardef.Category]categoryInfo{},
		templates:  map[chardef.Category][]unkEntry{},
	}
	for name, decl := range charMap.Types {
		cat, ok := chardef.ParseCategoryName(name)
		if !ok {
			continue
		}
		p.categories[cat] = categoryInfo{isInvoke: decl.IsInvoke, isGroup: decl.IsGroup, length: decl.Length}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) < 10 {
			return nil, errs.NewDataFormatError(source, lineNo, "expected at least 10 columns, got %d", len(cols))
		}
		cat, ok := chardef.ParseCategoryName(cols[0])
		if !ok {
			return nil, errs.NewDataFormatError(source, lineNo, "%s is undefined in the character definition", cols[0])
		}
		if _, ok := p.categories[cat]; !ok {
			return nil, errs.NewDataFormatError(source, lineNo, "%s is undefined in the character definition", cols[0])
		}

		left, err := strconv.ParseInt(cols[1], 10, 16)
		if err != nil {
			return nil, errs.NewDataFormatError(source, lineNo, "invalid left_id %q", cols[1])
		}
		right, err := strconv.ParseInt(cols[2], 10, 16)
		if err != nil {
			return nil, errs.NewDataFormatError(source, lineNo, "invalid right_id %q", cols[2])
		}
		cost, err := strconv.ParseInt(cols[3], 10, 16)
		if err != nil {
			return nil, errs.NewDataFormatError(source, lineNo, "invalid cost %q", cols[3])
		}

		var posTuple [6]string
		copy(posTuple[:], cols[4:10])
		posID, ok := grammar.POSID(dic.POS(posTuple))
		if !ok {
			return nil, errs.NewPartOfSpeechError(posTuple)
		}

		p.templates[cat] = append(p.templates[cat], unkEntry{
			left: int16(left), right: int16(right), cost: int16(cost), posID: posID,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *MeCabProvider) nodeFor(buf *input.Buffer, offset, length int, e unkEntry) lattice.Node {
	surface := buf.CurrSlice(offset, offset+length)
	wi := dic.WordInfo{
		Surface:              surface,
		HeadWordLength:       uint16(length),
		POSID:                e.posID,
		NormalizedForm:       surface,
		DictionaryForm:       surface,
		DictionaryFormWordID: -1,
	}
	return lattice.Node{
		Begin: offset, End: offset + length,
		BeginChar: buf.CharIndexAt(offset), EndChar: buf.CharIndexAt(offset + length),
		Left: e.left, Right: e.right, Cost: e.cost,
		WordID:  dic.NewWordID(dic.OOVDic, 0),
		OOVInfo: &wi,
	}
}

// ProvideOOV implements lattice.OOVProvider.
func (p *MeCabProvider) ProvideOOV(buf *input.Buffer, offset int, created lattice.CreatedWords) ([]lattice.Node, error) {
	byteLen := buf.ContinuousLenBytes(offset)
	if byteLen == 0 {
		return nil, nil
	}

	var nodes []lattice.Node
	cat := buf.CategoryAtChar(buf.CharIndexAt(offset))

	cat.Each(func(ctype chardef.Category) {
		cinfo, ok := p.categories[ctype]
		if !ok {
			return
		}
		if !cinfo.isInvoke && created.NotEmpty() {
			return
		}
		entries, ok := p.templates[ctype]
		if !ok {
			return
		}

		llength := byteLen
		if cinfo.isGroup {
			for _, e := range entries {
				nodes = append(nodes, p.nodeFor(buf, offset, byteLen, e))
			}
			llength--
		}
		for i := 1; i <= int(cinfo.length); i++ {
			sublength := buf.CharsToBytes(offset, i)
			if sublength > llength {
				break
			}
			for _, e := range entries {
				nodes = append(nodes, p.nodeFor(buf, offset, sublength, e))
			}
		}
	})

	return nodes, nil
}
