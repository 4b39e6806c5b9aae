package core

import (
	"io"
	"net/url"
	"path"
	"path/filepath"

	"github.com/smartystreets/logging"

	"github.com/smarty/pluginrepo/contracts"
)

// SimpleFileDownloader fetches a release artifact over the wire and
// writes it under the target directory, named after the last segment
// of the release URL path.
type SimpleFileDownloader struct {
	logger *logging.Logger

	downloader      contracts.Downloader
	fileSystem      contracts.FileCreator
	targetDirectory string
}

func NewSimpleFileDownloader(downloader contracts.Downloader, fileSystem contracts.FileCreator, targetDirectory string) *SimpleFileDownloader {
	return &SimpleFileDownloader{
		downloader:      downloader,
		fileSystem:      fileSystem,
		targetDirectory: targetDirectory,
	}
}

func (this *SimpleFileDownloader) Download(address url.URL) (string, error) {
	body, err := this.downloader.Download(address)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	localPath := filepath.Join(this.targetDirectory, path.Base(address.Path))
	writer, err := this.fileSystem.Create(localPath)
	if err != nil {
		return "", err
	}
	_, err = io.Copy(writer, body)
	closeErr := writer.Close()
	if err != nil {
		return "", err
	}
	if closeErr != nil {
		return "", closeErr
	}
	this.logger.Printf("downloaded %s to %s", address.String(), localPath)
	return localPath, nil
}
