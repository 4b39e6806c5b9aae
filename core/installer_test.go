package core

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
	"github.com/smartystreets/logging"

	"github.com/smarty/pluginrepo/contracts"
	"github.com/smarty/pluginrepo/shell"
)

func TestPluginInstallerFixture(t *testing.T) {
	gunit.Run(new(PluginInstallerFixture), t)
}

type PluginInstallerFixture struct {
	*gunit.Fixture

	installer  *PluginInstaller
	downloader *FakeFileDownloader
	verifier   *FakeFileVerifier
	extractor  *FakeExtractor
	fileSystem *shell.InMemoryFileSystem
	plugin     contracts.PluginInfo
	release    contracts.PluginRelease
}

func (this *PluginInstallerFixture) Setup() {
	this.downloader = &FakeFileDownloader{localPath: "/downloads/p1-1.0.zip"}
	this.verifier = &FakeFileVerifier{}
	this.extractor = &FakeExtractor{}
	this.fileSystem = shell.NewInMemoryFileSystem()
	this.fileSystem.WriteFile("/downloads/p1-1.0.zip", []byte("plugin archive bytes"))
	this.installer = NewPluginInstaller(this.downloader, this.verifier, this.extractor, this.fileSystem, "/plugins")
	this.installer.logger = logging.Capture()
	this.plugin = contracts.PluginInfo{ID: "p1", Name: "Plugin One"}
	this.release = contracts.PluginRelease{
		Version:   "1.0",
		URL:       "https://example.com/repo/p1-1.0.zip",
		SHA512Sum: "deadbeef",
	}
}

func (this *PluginInstallerFixture) TestDownloadVerifyExtract() {
	installed, err := this.installer.Install(this.plugin, this.release)

	this.So(err, should.BeNil)
	this.So(installed, should.Equal, filepath.Join("/plugins", "p1"))
	this.So(this.downloader.requested.String(), should.Equal, this.release.URL)
	this.So(this.verifier.path, should.Equal, "/downloads/p1-1.0.zip")
	this.So(this.verifier.context, should.Resemble, contracts.VerificationContext{
		PluginID:  "p1",
		Version:   "1.0",
		URL:       "https://example.com/repo/p1-1.0.zip",
		SHA512Sum: "deadbeef",
	})
	this.So(this.extractor.source, should.Equal, "/downloads/p1-1.0.zip")
	this.So(this.extractor.destination, should.Equal, filepath.Join("/plugins", "p1"))
}

func (this *PluginInstallerFixture) TestRejectedArtifactDeleted() {
	this.verifier.err = fmt.Errorf("bad checksum: %w", contracts.VerifyErr)

	_, err := this.installer.Install(this.plugin, this.release)

	this.So(errors.Is(err, contracts.VerifyErr), should.BeTrue)
	this.So(this.fileSystem.Exists("/downloads/p1-1.0.zip"), should.BeFalse)
	this.So(this.extractor.calls, should.Equal, 0)
}

func (this *PluginInstallerFixture) TestUncheckableArtifactLeftInPlace() {
	this.verifier.err = errors.New("read error")

	_, err := this.installer.Install(this.plugin, this.release)

	this.So(err, should.NotBeNil)
	this.So(this.fileSystem.Exists("/downloads/p1-1.0.zip"), should.BeTrue)
	this.So(this.extractor.calls, should.Equal, 0)
}

func (this *PluginInstallerFixture) TestDownloadFailurePropagates() {
	this.downloader.err = errors.New("connection refused")

	_, err := this.installer.Install(this.plugin, this.release)

	this.So(err, should.NotBeNil)
	this.So(this.verifier.calls, should.Equal, 0)
}

func (this *PluginInstallerFixture) TestExtractionFailurePropagates() {
	this.extractor.err = errors.New("corrupt archive")

	_, err := this.installer.Install(this.plugin, this.release)

	this.So(err, should.NotBeNil)
}

//////////////////////////////////////////////////////////////////////

type FakeFileDownloader struct {
	localPath string
	err       error
	requested url.URL
}

func (this *FakeFileDownloader) Download(address url.URL) (string, error) {
	this.requested = address
	return this.localPath, this.err
}

type FakeExtractor struct {
	err         error
	calls       int
	source      string
	destination string
}

func (this *FakeExtractor) Extract(source, destination string) error {
	this.calls++
	this.source = source
	this.destination = destination
	return this.err
}
