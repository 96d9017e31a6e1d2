package dic

import "fmt"

// WordID is the 32-bit tagged identifier of spec.md §3: the high 4
// bits select which dictionary (0 = system, 1..14 = user dictionaries
// in load order, 15 = the OOV sentinel) and the low 28 bits are the
// word number within that dictionary. Equality and ordering are by raw
// value, so WordID is safe to use as a map key or slice-sort key
// directly, ported from original_source/sudachi/src/dic/word_id.rs.
type WordID uint32

const wordMask uint32 = 0x0fffffff

// OOVDic is the reserved dictionary index marking a word manufactured
// by an OOV provider rather than looked up in a lexicon.
const OOVDic = 0xf

// NewWordID packs a dictionary index and a word number into a WordID.
func NewWordID(dict uint8, word uint32) WordID {
	return WordID((uint32(dict&0xf) << 28) | (word & wordMask))
}

// Dic returns the dictionary index (0 = system, 1..14 = user, 15 = OOV).
func (w WordID) Dic() uint8 { return uint8(w >> 28) }

// Word returns the word number within its dictionary.
func (w WordID) Word() uint32 { return uint32(w) & wordMask }

// IsSystem reports whether w references the system dictionary.
func (w WordID) IsSystem() bool { return w.Dic() == 0 }

// IsUser reports whether w references a user dictionary.
func (w WordID) IsUser() bool {
	d := w.Dic()
	return d != 0 && d != OOVDic
}

// IsOOV reports whether w is the out-of-vocabulary sentinel.
func (w WordID) IsOOV() bool { return w.Dic() == OOVDic }

// String renders a WordID as "(dic, word)", with dic -1 for OOV words,
// matching original_source's Display impl.
func (w WordID) String() string {
	dic := int(w.Dic())
	if w.IsOOV() {
		dic = -1
	}
	return fmt.Sprintf("(%d, %d)", dic, w.Word())
}
