// Package input implements the editable text buffer of spec.md §3/§4.3:
// an InputBuffer that tracks an `original`/`modified` pair of strings
// plus a byte-offset mapping (`m2o`) that survives any number of
// rewriter passes, grounded on
// original_source/sudachi/src/input_text/input_buffer/edit.rs.
package input

// replaceOp is one proposed edit: replace the modified-text byte range
// What with the literal text With. Edits collected during one rewriter
// pass are always applied left-to-right and must not overlap.
type replaceOp struct {
	what  [2]int // [start, end) in the buffer's current modified text
	with  string
}

// Editor collects edits during a single rewriter pass. Rewriters never
// mutate the buffer directly; they call Replace* against an Editor and
// the buffer resolves every collected edit into a new modified string
// and a new mapping once the pass returns.
type Editor struct {
	ops []replaceOp
}

// Replace schedules replacing modified[start:end) with s.
func (e *Editor) Replace(start, end int, s string) {
	e.ops = append(e.ops, replaceOp{what: [2]int{start, end}, with: s})
}

// ReplaceRune schedules replacing modified[start:end) with a single rune.
func (e *Editor) ReplaceRune(start, end int, r rune) {
	e.Replace(start, end, string(r))
}

// resolveEdits applies every op in e against (source, sourceMapping),
// producing the next modified string and its m2o mapping. Ported
// directly from edit.rs's resolve_edits/add_replace: the tail of a
// grown replacement repeats the original offset at the replaced
// range's right edge; a shrunk replacement simply drops the trailing
// original offsets.
func resolveEdits(source string, sourceMapping []int, e *Editor) (string, []int) {
	target := make([]byte, 0, len(source))
	targetMapping := make([]int, 0, len(sourceMapping))

	start := 0
	for _, op := range e.ops {
		target = append(target, source[start:op.what[0]]...)
		targetMapping = append(targetMapping, sourceMapping[start:op.what[0]]...)
		start = op.what[1]
		target, targetMapping = addReplace(target, targetMapping, sourceMapping, op.what, op.with)
	}
	target = append(target, source[start:]...)
	targetMapping = append(targetMapping, sourceMapping[start:]...)

	return string(target), targetMapping
}

func addReplace(target []byte, targetMapping []int, sourceMapping []int, what [2]int, with string) ([]byte, []int) {
	target = append(target, with...)

	oldLen := what[1] - what[0]
	newLen := len(with)
	oldMapping := sourceMapping[what[0]:what[1]]

	if newLen >= oldLen {
		targetMapping = append(targetMapping, oldMapping...)
		lastValue := sourceMapping[what[1]]
		for i := oldLen; i < newLen; i++ {
			targetMapping = append(targetMapping, lastValue)
		}
	} else {
		targetMapping = append(targetMapping, oldMapping[:newLen]...)
	}

	return target, targetMapping
}
