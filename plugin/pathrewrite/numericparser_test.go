package pathrewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func appendAll(t *testing.T, p *numericParser, s string) bool {
	t.Helper()
	for _, c := range s {
		if !p.append(c) {
			return false
		}
	}
	return true
}

func TestNumericParserKanjiThousands(t *testing.T) {
	p := newNumericParser()
	assert.True(t, appendAll(t, p, "千三百二十七"))
	assert.True(t, p.done())
	assert.Equal(t, "1327", p.getNormalized())
}

func TestNumericParserCommaGrouping(t *testing.T) {
	p := newNumericParser()
	assert.True(t, appendAll(t, p, "2,000,000"))
	assert.True(t, p.done())
	assert.Equal(t, "2000000", p.getNormalized())
}

func TestNumericParserMisplacedCommaFails(t *testing.T) {
	// every character is individually accepted; the incomplete second
	// group of only 2 digits is only caught once the numeral is closed.
	p := newNumericParser()
	ok := appendAll(t, p, "2,00")
	assert.True(t, ok)
	assert.False(t, p.done())
	assert.Equal(t, errComma, p.err)
}

func TestNumericParserLargeUnitMix(t *testing.T) {
	// 三兆2千億千三百二十七万一四.〇五 -> 3200013270014.05
	p := newNumericParser()
	assert.True(t, appendAll(t, p, "三兆2千億千三百二十七万一四.〇五"))
	assert.True(t, p.done())
	assert.Equal(t, "3200013270014.05", p.getNormalized())
}

func TestNumericParserRejectsNonNumeral(t *testing.T) {
	// an unrecognized rune is rejected without latching any error state,
	// mirroring the ported parser: only '.' and ',' ever set p.err.
	p := newNumericParser()
	ok := p.append('あ')
	assert.False(t, ok)
	assert.Equal(t, errNone, p.err)
}
