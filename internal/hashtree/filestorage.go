package hashtree

import "os"

// FileStorage backs a HashStore with a region of an on-disk file starting
// at `base`, as used for the packed hash nodes in a meta file (§3, §6).
type FileStorage struct {
	file *os.File
	base int64
	size int64
}

// NewFileStorage wraps the region [base, base+size) of file as Storage.
func NewFileStorage(file *os.File, base, size int64) *FileStorage {
	return &FileStorage{file: file, base: base, size: size}
}

func (f *FileStorage) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, f.base+off)
}

func (f *FileStorage) WriteAt(p []byte, off int64) (int, error) {
	return f.file.WriteAt(p, f.base+off)
}

func (f *FileStorage) Size() int64 { return f.size }
