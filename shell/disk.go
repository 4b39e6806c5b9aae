package shell

import (
	"io"
	"os"
	"path/filepath"

	"github.com/smarty/pluginrepo/contracts"
)

type DiskFileSystem struct{ root string }

func NewDiskFileSystem(root string) *DiskFileSystem {
	return &DiskFileSystem{root: filepath.Clean(root)}
}

func (this *DiskFileSystem) RootPath() string {
	return this.root
}

func (this *DiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return FileInfo{path: path, size: info.Size(), mode: info.Mode()}, nil
}

func (this *DiskFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (this *DiskFileSystem) Create(path string) (io.WriteCloser, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, err
	}
	return os.Create(path)
}

// Delete is best-effort cleanup of a rejected artifact.
func (this *DiskFileSystem) Delete(path string) {
	_ = os.Remove(path)
}

////////////////////////////////////////

type FileInfo struct {
	path string
	size int64
	mode os.FileMode
}

func (this FileInfo) Path() string      { return this.path }
func (this FileInfo) Size() int64       { return this.size }
func (this FileInfo) Mode() os.FileMode { return this.mode }
