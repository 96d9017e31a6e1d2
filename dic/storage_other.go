//go:build !unix

package dic

import "os"

// openMmap falls back to reading the whole dictionary into an owned
// []byte on platforms without a POSIX mmap syscall. Analysis behavior
// is identical; only the residency of the bytes differs (spec.md §5
// treats memory-mapped and owned bytes as interchangeable backends).
func openMmap(path string) (Storage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewOwnedStorage(data), nil
}
