package dic

// Storage is a dictionary's byte backing: spec.md §6 "designed to be
// memory-mapped", §5 "memory-mapped or owned byte blob", ported from
// original_source/sudachi/src/dic/storage.rs's Storage enum
// {File(Mmap), Borrowed, Owned}.
type Storage interface {
	Bytes() []byte
	Close() error
}

// ownedStorage wraps a []byte the caller already has in memory (e.g.
// test fixtures, or bytes read in full by os.ReadFile when mmap isn't
// available on the current platform).
type ownedStorage struct{ data []byte }

func (o *ownedStorage) Bytes() []byte { return o.data }
func (o *ownedStorage) Close() error  { return nil }

// NewOwnedStorage wraps data as a Storage without copying it.
func NewOwnedStorage(data []byte) Storage { return &ownedStorage{data: data} }

// OpenStorageFile opens path as a Storage, memory-mapped where the
// platform supports it (storage_unix.go) and read fully into memory
// otherwise (storage_other.go). Used directly for user dictionaries,
// which are not cached the way LoadSystemFile caches system ones.
func OpenStorageFile(path string) (Storage, error) { return openMmap(path) }
