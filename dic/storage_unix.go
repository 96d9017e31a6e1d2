//go:build unix

package dic

import (
	"os"
	"syscall"
)

// mmapStorage memory-maps a file read-only for the lifetime of the
// Storage, so the kernel owns paging the dictionary in rather than the
// process holding a copy in the Go heap (spec.md §6).
type mmapStorage struct {
	data []byte
}

func openMmap(path string) (Storage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &mmapStorage{data: nil}, nil
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &mmapStorage{data: data}, nil
}

func (m *mmapStorage) Bytes() []byte { return m.data }

func (m *mmapStorage) Close() error {
	if m.data == nil {
		return nil
	}
	return syscall.Munmap(m.data)
}
