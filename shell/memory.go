package shell

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"

	"github.com/smarty/pluginrepo/contracts"
)

type InMemoryFileSystem struct {
	fileSystem map[string]*memoryFile
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{fileSystem: make(map[string]*memoryFile)}
}

func (this *InMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return target, nil
}

func (this *InMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	target, found := this.fileSystem[path]
	if !found {
		return nil, os.ErrNotExist
	}
	return ioutil.NopCloser(bytes.NewReader(target.contents)), nil
}

func (this *InMemoryFileSystem) Create(path string) (io.WriteCloser, error) {
	this.WriteFile(path, nil)
	return this.fileSystem[path], nil
}

func (this *InMemoryFileSystem) ReadFile(path string) []byte {
	return this.fileSystem[path].contents
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) {
	this.fileSystem[path] = &memoryFile{path: path, contents: content, mode: 0644}
}

func (this *InMemoryFileSystem) WriteDirectory(path string) {
	this.fileSystem[path] = &memoryFile{path: path, mode: os.ModeDir | 0755}
}

func (this *InMemoryFileSystem) Delete(path string) {
	delete(this.fileSystem, path)
}

func (this *InMemoryFileSystem) Exists(path string) bool {
	_, found := this.fileSystem[path]
	return found
}

////////////////////////////////////////

type memoryFile struct {
	path     string
	contents []byte
	mode     os.FileMode
}

func (this *memoryFile) Path() string      { return this.path }
func (this *memoryFile) Size() int64       { return int64(len(this.contents)) }
func (this *memoryFile) Mode() os.FileMode { return this.mode }

func (this *memoryFile) Write(buffer []byte) (int, error) {
	this.contents = append(this.contents, buffer...)
	return len(buffer), nil
}

func (this *memoryFile) Close() error { return nil }
