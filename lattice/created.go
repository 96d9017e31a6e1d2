package lattice

// CreatedWords is the bitset of spec.md §3: which character lengths
// have already been produced by the lattice builder at the current
// byte position, so OOV providers configured with is_invoke=false can
// cheaply tell whether to fire. Ported from
// original_source/sudachi/src/analysis/created.rs.
type CreatedWords uint64

// MaxValue is the largest length CreatedWords tracks precisely; longer
// words all collapse onto the same top bit, so queries for them return
// HasWordMaybe instead of a precise yes/no.
const MaxValue = 64

// HasWord is the tri-state result of CreatedWords.HasWord.
type HasWord int

const (
	HasWordNo HasWord = iota
	HasWordYes
	HasWordMaybe
)

// SingleWord returns the bitset containing only length.
func SingleWord(length int) CreatedWords {
	if length <= 0 {
		return 0
	}
	shift := length - 1
	if shift > MaxValue-1 {
		shift = MaxValue - 1
	}
	return CreatedWords(1) << uint(shift)
}

// Add ORs two bitsets together.
func (c CreatedWords) Add(other CreatedWords) CreatedWords { return c | other }

// AddWord returns c with length's bit set.
func (c CreatedWords) AddWord(length int) CreatedWords { return c.Add(SingleWord(length)) }

// HasWord reports whether a word of the given character length has
// already been created, returning HasWordMaybe once length reaches
// MaxValue since lengths that long all share the top bit.
func (c CreatedWords) HasWord(length int) HasWord {
	mask := SingleWord(length)
	if c&mask == 0 {
		return HasWordNo
	}
	if length >= MaxValue {
		return HasWordMaybe
	}
	return HasWordYes
}

// IsEmpty reports whether no length has been created yet.
func (c CreatedWords) IsEmpty() bool { return c == 0 }

// NotEmpty reports whether at least one length has been created.
func (c CreatedWords) NotEmpty() bool { return c != 0 }
