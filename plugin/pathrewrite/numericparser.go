package pathrewrite

// parseError reports why NumericParser.Append rejected a character,
// mirroring original_source/.../numeric_parser.rs's Error enum. Only
// Point and Comma are ever actually latched by append/done; errOther
// exists for parity with the original's Error::OTHER but, as in the
// original, nothing here ever sets it.
type parseError int

const (
	errNone parseError = iota
	errPoint
	errComma
	errOther
)

var charToNum = map[rune]int{
	'〇': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'十': -1, '百': -2, '千': -3,
	'万': -4, '億': -8, '兆': -12,
}

func isSmallUnit(n int) bool { return -3 <= n && n < 0 }
func isLargeUnit(n int) bool { return n < -3 }

// numericParser accumulates a run of digit/unit characters into a
// normalized decimal literal (spec.md §4.7's numeric-join rule),
// ported from
// original_source/src/plugin/path_rewrite/join_numeric/numeric_parser.rs.
// tmp holds every digit read since the last unit character, subtotal
// the group total below the current 万/億/兆
// large unit, total the running grand total.
type numericParser struct {
	digitLength     int
	isFirstDigit    bool
	hasComma        bool
	hasHangingPoint bool
	err             parseError

	total    *stringNumber
	subtotal *stringNumber
	tmp      *stringNumber
}

func newNumericParser() *numericParser {
	return &numericParser{
		isFirstDigit: true,
		total:        newStringNumber(),
		subtotal:     newStringNumber(),
		tmp:          newStringNumber(),
	}
}

func (p *numericParser) clear() {
	p.digitLength = 0
	p.isFirstDigit = true
	p.hasComma = false
	p.hasHangingPoint = false
	p.err = errNone
	p.total.clear()
	p.subtotal.clear()
	p.tmp.clear()
}

// append processes one input character, reporting whether it extends
// the current numeral.
func (p *numericParser) append(c rune) bool {
	if c == '.' {
		p.hasHangingPoint = true
		if p.isFirstDigit {
			p.err = errPoint
			return false
		}
		if p.hasComma && !p.checkComma() {
			p.err = errComma
			return false
		}
		if !p.tmp.setPoint() {
			p.err = errPoint
			return false
		}
		p.hasComma = false
		return true
	}

	if c == ',' {
		if !p.checkComma() {
			p.err = errComma
			return false
		}
		p.hasComma = true
		p.digitLength = 0
		return true
	}

	n, ok := charToNum[c]
	if !ok {
		return false
	}

	switch {
	case isSmallUnit(n):
		p.tmp.shiftScale(-n)
		if !p.subtotal.add(p.tmp) {
			return false
		}
		p.tmp.clear()
		p.isFirstDigit = true
		p.digitLength = 0
		p.hasComma = false
	case isLargeUnit(n):
		if !p.subtotal.add(p.tmp) || p.subtotal.isZero() {
			return false
		}
		p.subtotal.shiftScale(-n)
		if !p.total.add(p.subtotal) {
			return false
		}
		p.subtotal.clear()
		p.tmp.clear()
		p.isFirstDigit = true
		p.digitLength = 0
		p.hasComma = false
	default:
		p.tmp.append(n)
		p.isFirstDigit = false
		p.digitLength++
		p.hasHangingPoint = false
	}

	return true
}

// checkComma validates a `,` or hanging `.` against the digit grouping
// accumulated so far: the first three-digit group may be 1-3 digits,
// every subsequent one must be exactly 3.
func (p *numericParser) checkComma() bool {
	if p.isFirstDigit {
		return false
	}
	if !p.hasComma {
		return p.digitLength <= 3 && !p.tmp.isZero() && !p.tmp.isAllZero
	}
	return p.digitLength == 3
}

// done finalizes the accumulated digits into total, reporting whether
// the numeral ended in a legal state (no trailing '.', no incomplete
// comma group).
func (p *numericParser) done() bool {
	ret := p.subtotal.add(p.tmp)
	if ret {
		ret = p.total.add(p.subtotal)
	}
	if p.hasHangingPoint {
		p.err = errPoint
		return false
	}
	if p.hasComma && p.digitLength != 3 {
		p.err = errComma
		return false
	}
	return ret
}

func (p *numericParser) getNormalized() string {
	return p.total.String()
}
