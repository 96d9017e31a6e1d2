package dic

import "github.com/go-sudachi/sudachi/errs"

// magic tags discriminate the dictionary kind and format revision of
// spec.md §6 "Magic integers distinguish system v1, system v2, system
// v3, user v1, user v2". Each dictionary blob starts with one.
type magic uint32

const (
	magicSystemV1 magic = 0xa11270de + iota
	magicSystemV2
	magicSystemV3
	magicUserV1
	magicUserV2
)

// Kind reports whether a Header describes a system or user dictionary.
type Kind int

const (
	KindSystem Kind = iota
	KindUser
)

const descriptionSize = 256

// Header is the fixed-size block at the start of every dictionary
// blob: a magic tag, a creation timestamp, and a fixed-width
// NUL-padded UTF-8 description (spec.md §4.1, §6).
type Header struct {
	Kind        Kind
	Version     int // 1, 2 or 3 for system; 1 or 2 for user
	CreatedAt   uint64
	Description string
}

// headerSize is the magic (4) + creation time (8) + description
// (descriptionSize) block.
const headerSize = 4 + 8 + descriptionSize

func readHeader(r *reader) (Header, error) {
	rawMagic, err := r.u32()
	if err != nil {
		return Header{}, err
	}

	var h Header
	switch magic(rawMagic) {
	case magicSystemV1:
		h.Kind, h.Version = KindSystem, 1
	case magicSystemV2:
		h.Kind, h.Version = KindSystem, 2
	case magicSystemV3:
		h.Kind, h.Version = KindSystem, 3
	case magicUserV1:
		h.Kind, h.Version = KindUser, 1
	case magicUserV2:
		h.Kind, h.Version = KindUser, 2
	default:
		return Header{}, errs.NewDictionaryFormatError("unrecognized magic %#x", rawMagic)
	}

	createdAt, err := r.u64()
	if err != nil {
		return Header{}, err
	}
	h.CreatedAt = createdAt

	descBytes, err := r.bytes(descriptionSize)
	if err != nil {
		return Header{}, err
	}
	end := len(descBytes)
	for end > 0 && descBytes[end-1] == 0 {
		end--
	}
	h.Description = string(descBytes[:end])

	return h, nil
}
