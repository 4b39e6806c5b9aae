package core

import (
	"errors"
	"net/url"
	"path/filepath"

	"github.com/smartystreets/logging"

	"github.com/smarty/pluginrepo/contracts"
)

// PluginInstaller drives one release from manifest record to an
// extracted plugin on disk: download, verify, unpack. An artifact
// that fails verification is deleted before the error is returned;
// an artifact that could not be checked is left in place.
type PluginInstaller struct {
	logger *logging.Logger

	downloader       contracts.FileDownloader
	verifier         contracts.FileVerifier
	extractor        contracts.ArchiveExtractor
	fileSystem       contracts.Deleter
	pluginsDirectory string
}

func NewPluginInstaller(
	downloader contracts.FileDownloader,
	verifier contracts.FileVerifier,
	extractor contracts.ArchiveExtractor,
	fileSystem contracts.Deleter,
	pluginsDirectory string,
) *PluginInstaller {
	return &PluginInstaller{
		downloader:       downloader,
		verifier:         verifier,
		extractor:        extractor,
		fileSystem:       fileSystem,
		pluginsDirectory: pluginsDirectory,
	}
}

func (this *PluginInstaller) Install(plugin contracts.PluginInfo, release contracts.PluginRelease) (string, error) {
	address, err := url.Parse(release.URL)
	if err != nil {
		return "", err
	}
	localPath, err := this.downloader.Download(*address)
	if err != nil {
		return "", err
	}

	context := contracts.VerificationContext{
		PluginID:  plugin.ID,
		Version:   release.Version,
		URL:       release.URL,
		SHA512Sum: release.SHA512Sum,
	}
	err = this.verifier.Verify(context, localPath)
	if errors.Is(err, contracts.VerifyErr) {
		this.fileSystem.Delete(localPath)
		return "", err
	}
	if err != nil {
		return "", err
	}

	destination := filepath.Join(this.pluginsDirectory, plugin.ID)
	err = this.extractor.Extract(localPath, destination)
	if err != nil {
		return "", err
	}
	this.logger.Printf("installed %s into %s", context.Title(), destination)
	return destination, nil
}
