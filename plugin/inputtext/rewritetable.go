// Package inputtext implements the input-text rewriters of spec.md
// §4.3, grounded on original_source/plugin/input_text/{default_input_text,
// prolonged_sound_mark,ignore_yomigana}/src/lib.rs.
package inputtext

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-sudachi/sudachi/errs"
)

// RewriteTable is the parsed rewrite-table resource of spec.md §6: a
// set of characters to leave alone once already lowercase
// (ignore-normalize), and a longest-key-wins replacement map.
type RewriteTable struct {
	IgnoreNormalize map[rune]bool
	Replace         map[string]string
	maxKeyRunes     map[rune]int
}

// LoadRewriteTable parses a rewrite-table file (spec.md §6): comment
// lines start with '#'; one-column lines add to the ignore-normalize
// set; two-column whitespace-separated lines add a replacement
// mapping. Any other column count, or a duplicate replacement key, is
// a data-format error.
func LoadRewriteTable(r io.Reader, source string) (*RewriteTable, error) {
	t := &RewriteTable{
		IgnoreNormalize: map[rune]bool{},
		Replace:         map[string]string{},
		maxKeyRunes:     map[rune]int{},
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Fields(line)

		switch len(cols) {
		case 1:
			runes := []rune(cols[0])
			if len(runes) != 1 {
				return nil, errs.NewDataFormatError(source, lineNo, "%s is not a single character", cols[0])
			}
			t.IgnoreNormalize[runes[0]] = true
		case 2:
			if _, dup := t.Replace[cols[0]]; dup {
				return nil, errs.NewDataFormatError(source, lineNo, "%s is already defined", cols[0])
			}
			key := []rune(cols[0])
			if t.maxKeyRunes[key[0]] < len(key) {
				t.maxKeyRunes[key[0]] = len(key)
			}
			t.Replace[cols[0]] = cols[1]
		default:
			return nil, errs.NewDataFormatError(source, lineNo, "expected 1 or 2 columns, got %d", len(cols))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
