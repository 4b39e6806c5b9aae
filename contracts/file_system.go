package contracts

import (
	"io"
	"os"
)

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type FileCreator interface {
	Create(path string) (io.WriteCloser, error)
}

type Deleter interface {
	Delete(path string)
}

type FileSystem interface {
	FileChecker
	FileOpener
	FileCreator
	Deleter
}

type FileInfo interface {
	Path() string
	Size() int64
	Mode() os.FileMode
}
