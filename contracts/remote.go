package contracts

import (
	"io"
	"net/url"
)

// Downloader fetches the body at a remote address.
type Downloader interface {
	Download(address url.URL) (io.ReadCloser, error)
}

// FileDownloader materializes a release artifact on local disk and
// reports where it put it.
type FileDownloader interface {
	Download(address url.URL) (localPath string, err error)
}

type ArchiveExtractor interface {
	Extract(source, destination string) error
}
