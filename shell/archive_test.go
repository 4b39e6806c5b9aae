package shell

import (
	"archive/zip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestUnarchiverFixture(t *testing.T) {
	gunit.Run(new(UnarchiverFixture), t)
}

type UnarchiverFixture struct {
	*gunit.Fixture

	root string
}

func (this *UnarchiverFixture) Setup() {
	root, err := ioutil.TempDir("", "unarchiver-fixture")
	this.So(err, should.BeNil)
	this.root = root
}

func (this *UnarchiverFixture) Teardown() {
	_ = os.RemoveAll(this.root)
}

func (this *UnarchiverFixture) TestZipArchiveExtracted() {
	source := filepath.Join(this.root, "p1-1.0.zip")
	this.writeZip(source, "plugin.properties", "plugin.id=p1\n")
	destination := filepath.Join(this.root, "plugins", "p1")

	err := NewUnarchiver().Extract(source, destination)

	this.So(err, should.BeNil)
	contents, err := ioutil.ReadFile(filepath.Join(destination, "plugin.properties"))
	this.So(err, should.BeNil)
	this.So(string(contents), should.Equal, "plugin.id=p1\n")
}

func (this *UnarchiverFixture) TestCorruptArchiveFails() {
	source := filepath.Join(this.root, "p1-1.0.zip")
	this.So(ioutil.WriteFile(source, []byte("not a zip"), 0644), should.BeNil)

	err := NewUnarchiver().Extract(source, filepath.Join(this.root, "out"))

	this.So(err, should.NotBeNil)
}

func (this *UnarchiverFixture) writeZip(path, name, contents string) {
	file, err := os.Create(path)
	this.So(err, should.BeNil)
	writer := zip.NewWriter(file)
	entry, err := writer.Create(name)
	this.So(err, should.BeNil)
	_, err = entry.Write([]byte(contents))
	this.So(err, should.BeNil)
	this.So(writer.Close(), should.BeNil)
	this.So(file.Close(), should.BeNil)
}
