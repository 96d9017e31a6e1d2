package chardef

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-sudachi/sudachi/errs"
)

// TypeDecl is a char.def type-declaration record: `NAME is_invoke
// is_group length`. The mecab-style OOV provider (plugin/oov) keys its
// template tables on these, while ranges (below) classify individual
// code points for everything else.
type TypeDecl struct {
	IsInvoke bool
	IsGroup  bool
	Length   uint32
}

type rangeEntry struct {
	lo, hi rune // inclusive
	flags  Category
}

// Map is the sorted range table of spec.md §4.2: lookup returns the
// category flags assigned to a code point, defaulting to DEFAULT for
// any code point no range covers.
type Map struct {
	ranges []rangeEntry
	Types  map[string]TypeDecl
}

// Of returns the category flags for rune r.
func (m *Map) Of(r rune) Category {
	// ranges is sorted by lo; binary search for the last range with lo <= r.
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].lo > r })
	if i == 0 {
		return DEFAULT
	}
	e := m.ranges[i-1]
	if r <= e.hi {
		return e.flags
	}
	return DEFAULT
}

// Load parses a char.def-format resource (spec.md §4.2) from r, whose
// source name is used for error messages.
func Load(r io.Reader, source string) (*Map, error) {
	m := &Map{Types: make(map[string]TypeDecl)}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Fields(line)

		if strings.HasPrefix(cols[0], "0x") || strings.HasPrefix(cols[0], "0X") {
			entry, err := parseRange(cols, source, lineNo)
			if err != nil {
				return nil, err
			}
			m.ranges = append(m.ranges, entry)
			continue
		}

		if len(cols) != 4 {
			return nil, errs.NewDataFormatError(source, lineNo, "expected NAME IS_INVOKE IS_GROUP LENGTH, got %q", line)
		}
		if _, dup := m.Types[cols[0]]; dup {
			return nil, errs.NewDataFormatError(source, lineNo, "%s is already defined", cols[0])
		}
		length, err := strconv.ParseUint(cols[3], 10, 32)
		if err != nil {
			return nil, errs.NewDataFormatError(source, lineNo, "invalid length %q", cols[3])
		}
		m.Types[cols[0]] = TypeDecl{
			IsInvoke: cols[1] == "1",
			IsGroup:  cols[2] == "1",
			Length:   uint32(length),
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	sort.Slice(m.ranges, func(i, j int) bool { return m.ranges[i].lo < m.ranges[j].lo })
	return m, nil
}

func parseRange(cols []string, source string, lineNo int) (rangeEntry, error) {
	bounds := strings.SplitN(cols[0], "..", 2)
	lo, err := parseHexRune(bounds[0])
	if err != nil {
		return rangeEntry{}, errs.NewDataFormatError(source, lineNo, "invalid code point %q", bounds[0])
	}
	hi := lo
	if len(bounds) == 2 {
		hi, err = parseHexRune(bounds[1])
		if err != nil {
			return rangeEntry{}, errs.NewDataFormatError(source, lineNo, "invalid code point %q", bounds[1])
		}
	}
	if len(cols) < 2 {
		return rangeEntry{}, errs.NewDataFormatError(source, lineNo, "range %s has no category", cols[0])
	}
	var flags Category
	for _, name := range cols[1:] {
		if strings.HasPrefix(name, "#") {
			break
		}
		c, ok := ParseCategoryName(name)
		if !ok {
			return rangeEntry{}, errs.NewDataFormatError(source, lineNo, "unknown category type %q", name)
		}
		flags = flags.Add(c)
	}
	return rangeEntry{lo: lo, hi: hi, flags: flags}, nil
}

func parseHexRune(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}
