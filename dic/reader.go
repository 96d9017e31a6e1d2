package dic

import "github.com/go-sudachi/sudachi/errs"

// reader is a small sequential cursor over a dictionary byte blob,
// every read bound-checked and erroring with DictionaryFormatError
// instead of panicking — the binary dictionary format of spec.md §4.1/
// §6 is untrusted input (a file path from config), so out-of-bounds
// offsets must surface as errors, not crashes.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader { return &reader{data: data} }

func (r *reader) remaining() int { return len(r.data) - r.pos }

func (r *reader) need(n int) error {
	if r.remaining() < n {
		return errs.NewDictionaryFormatError("unexpected end of data at offset %d, need %d more bytes", r.pos, n)
	}
	return nil
}

func (r *reader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

// utf16le decodes n UTF-16LE code units starting at the cursor into a
// UTF-8 string. Dictionary strings never outlive this call as UTF-16;
// they are materialized as UTF-8 immediately, per spec.md §9.
func (r *reader) utf16le(n int) (string, error) {
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		u, err := r.u16()
		if err != nil {
			return "", err
		}
		units[i] = u
	}
	return decodeUTF16(units), nil
}

// u8LenString reads a u8 length prefix followed by that many UTF-16LE
// code units. WordInfoList.Get does not use it: word-info strings are
// read with u16LenString.
func (r *reader) u8LenString() (string, error) {
	n, err := r.u8()
	if err != nil {
		return "", err
	}
	return r.utf16le(int(n))
}

// u16LenString reads an i16 length prefix followed by that many
// UTF-16LE code units (the grammar POS table string encoding of
// spec.md §4.1, also used for every word-info record string).
func (r *reader) u16LenString() (string, error) {
	n, err := r.i16()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errs.NewDictionaryFormatError("negative string length %d", n)
	}
	return r.utf16le(int(n))
}
