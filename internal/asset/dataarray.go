package asset

import "os"

// DataArray is the opaque byte array a StoredAsset verifies reads against —
// the Go counterpart of the original's IDataArray / RandomAccessFile
// (_examples/original_source/bithorded/lib/randomaccessfile.{hpp,cpp}).
type DataArray interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Size() int64
}

// FileDataArray backs a DataArray with a plain on-disk file.
type FileDataArray struct {
	file *os.File
}

// NewFileDataArray wraps an already-open file.
func NewFileDataArray(file *os.File) *FileDataArray {
	return &FileDataArray{file: file}
}

func (f *FileDataArray) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

func (f *FileDataArray) WriteAt(p []byte, off int64) (int, error) {
	return f.file.WriteAt(p, off)
}

func (f *FileDataArray) Size() int64 {
	info, err := f.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}
