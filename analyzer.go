package sudachi

import (
	"fmt"

	"github.com/go-sudachi/sudachi/input"
	"github.com/go-sudachi/sudachi/lattice"
	"github.com/go-sudachi/sudachi/morpheme"
)

// Analyzer runs the tokenize pipeline of spec.md §5 against one
// Dictionary at a fixed split mode: rewrite the input text, build the
// lattice, solve it, rewrite the resulting path, then resolve the
// morpheme list at the requested granularity.
type Analyzer struct {
	dict *Dictionary
	mode morpheme.SplitMode
}

// Create builds an Analyzer sharing jd's dictionary state.
func (jd *Dictionary) Create(mode morpheme.SplitMode) *Analyzer {
	return &Analyzer{dict: jd, mode: mode}
}

// Tokenize runs the full pipeline of spec.md §5 over text: input-text
// rewriting, lattice construction, Viterbi decoding, path rewriting,
// and split-mode resolution.
func (a *Analyzer) Tokenize(text string) (*morpheme.List, error) {
	buf := input.New(text)
	for _, r := range a.dict.inputRewriters {
		if err := buf.ApplyRewriter(r); err != nil {
			return nil, fmt.Errorf("sudachi: input rewrite: %w", err)
		}
	}
	buf.Build(a.dict.charCat)

	lat, err := lattice.Build(a.dict.dic, a.dict.oovProviders, buf)
	if err != nil {
		return nil, fmt.Errorf("sudachi: lattice construction: %w", err)
	}

	indices := lat.BestPath()
	if indices == nil {
		// EOS has no valid predecessor: the analyzer reports this as an
		// empty morpheme list, not an error (spec.md's no-viable-path case).
		return morpheme.NewList(buf, a.dict.dic, a.mode, nil), nil
	}
	path := make([]lattice.Node, len(indices))
	for i, idx := range indices {
		path[i] = *lat.Node(idx)
	}

	for _, r := range a.dict.pathRewriters {
		path, err = r.Rewrite(buf, a.dict.dic, path)
		if err != nil {
			return nil, fmt.Errorf("sudachi: path rewrite: %w", err)
		}
	}

	return morpheme.Resolve(buf, a.dict.dic, path, a.mode)
}
