package dic

import "unicode/utf16"

// decodeUTF16 turns UTF-16LE code units already split out of the blob
// into a UTF-8 string. Decoding happens lazily, at the point a field is
// actually read off the dictionary (spec.md §9): the dictionary never
// keeps a UTF-16 copy of a string once this returns.
func decodeUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}
