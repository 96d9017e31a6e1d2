package pathrewrite

import "strings"

// stringNumber is the significand/scale/decimal-point accumulator
// backing numeric join (spec.md §4.7, SPEC_FULL.md §3's StringNumber),
// ported from
// original_source/plugin/path_rewrite/join_numeric/src/numeric_parser/string_number.rs.
type stringNumber struct {
	significand string
	scale       int
	point       int // -1 if unset
	isAllZero   bool
}

func newStringNumber() *stringNumber {
	return &stringNumber{point: -1, isAllZero: true}
}

func (s *stringNumber) clear() {
	s.significand = ""
	s.scale = 0
	s.point = -1
	s.isAllZero = true
}

func (s *stringNumber) append(i int) {
	if i != 0 {
		s.isAllZero = false
	}
	s.significand += itoa(i)
}

func (s *stringNumber) shiftScale(i int) {
	if s.isZero() {
		s.significand += "1"
	}
	s.scale += i
}

// add appends number onto s, reporting whether the join was legal
// (number's integer part must fit within s's trailing zero run).
func (s *stringNumber) add(number *stringNumber) bool {
	if number.isZero() {
		return true
	}
	if s.isZero() {
		s.significand += number.significand
		s.scale = number.scale
		s.point = number.point
		return true
	}

	s.normalizeScale()
	length := number.intLength()
	if s.scale >= length {
		s.fillZero(s.scale - length)
		if number.point >= 0 {
			s.point = len(s.significand) + number.point
		}
		s.significand += number.significand
		s.scale = number.scale
		return true
	}
	return false
}

func (s *stringNumber) setPoint() bool {
	if s.scale == 0 && s.point < 0 {
		s.point = len(s.significand)
		return true
	}
	return false
}

func (s *stringNumber) intLength() int {
	s.normalizeScale()
	if s.point >= 0 {
		return s.point
	}
	return len(s.significand) + s.scale
}

func (s *stringNumber) isZero() bool { return len(s.significand) == 0 }

func (s *stringNumber) String() string {
	if s.isZero() {
		return "0"
	}

	s.normalizeScale()
	if s.scale > 0 {
		s.fillZero(s.scale)
	} else if s.point >= 0 {
		sig := s.significand[:s.point] + "." + s.significand[s.point:]
		if s.point == 0 {
			sig = "0" + sig
		}
		sig = strings.TrimRight(sig, "0")
		sig = strings.TrimSuffix(sig, ".")
		s.significand = sig
	}

	return s.significand
}

func (s *stringNumber) normalizeScale() {
	if s.point >= 0 {
		nScale := len(s.significand) - s.point
		if nScale > s.scale {
			s.point += s.scale
			s.scale = 0
		} else {
			s.scale -= nScale
			s.point = -1
		}
	}
}

func (s *stringNumber) fillZero(length int) {
	if length <= 0 {
		return
	}
	s.significand += strings.Repeat("0", length)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
