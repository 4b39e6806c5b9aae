package core

import (
	"bufio"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/smartystreets/logging"

	"github.com/smarty/pluginrepo/contracts"
)

// SidecarChecksum in the manifest's sha512sum field means the digest
// lives next to the artifact, at the release URL with its extension
// replaced by .sha512, in conventional `sha512sum` output format.
const SidecarChecksum = ".sha512"

// Sha512SumVerifier compares the artifact's SHA-512 digest with the
// expectation carried by the manifest. Most useful with meta
// repositories pointing at third-party download hosts that could have
// been tampered with.
type Sha512SumVerifier struct {
	logger *logging.Logger

	fileSystem contracts.FileOpener
	downloader contracts.Downloader
}

func NewSha512SumVerifier(fileSystem contracts.FileOpener, downloader contracts.Downloader) *Sha512SumVerifier {
	return &Sha512SumVerifier{fileSystem: fileSystem, downloader: downloader}
}

func (this *Sha512SumVerifier) Verify(context contracts.VerificationContext, path string) error {
	expected, skip, err := this.expectedChecksum(context)
	if err != nil {
		return fmt.Errorf("could not retrieve sha512 checksum (%s): %v: %w",
			context.SHA512Sum, err, contracts.VerifyErr)
	}
	if skip {
		this.logger.Printf("no sha512 checksum specified for %s, skipping verification", context.Title())
		return nil
	}

	actual, err := this.fileChecksum(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(actual, expected) {
		return nil
	}
	return fmt.Errorf("sha512 checksum of downloaded file %s does not match that from plugin descriptor (got %s, expected %s): %w",
		filepath.Base(path), actual, expected, contracts.VerifyErr)
}

// expectedChecksum resolves the manifest's checksum field. Precedence
// is load-bearing: explicit sidecar sentinel, then URL-looking
// values, then the literal digest.
func (this *Sha512SumVerifier) expectedChecksum(context contracts.VerificationContext) (expected string, skip bool, err error) {
	field := context.SHA512Sum
	switch {
	case field == "":
		return "", true, nil
	case strings.EqualFold(field, SidecarChecksum):
		return this.remoteChecksum(sidecarAddress(context.URL))
	case strings.HasPrefix(field, "http"):
		return this.remoteChecksum(field)
	default:
		return field, false, nil
	}
}

// sidecarAddress cuts at the last dot of the whole URL string, which
// is how existing repositories derive their sidecar names.
func sidecarAddress(release string) string {
	if dot := strings.LastIndex(release, "."); dot >= 0 {
		release = release[:dot]
	}
	return release + SidecarChecksum
}

// remoteChecksum fetches a checksum file and extracts the first
// whitespace-delimited token of its first line ("<hash>  <filename>").
func (this *Sha512SumVerifier) remoteChecksum(address string) (expected string, skip bool, err error) {
	parsed, err := url.Parse(address)
	if err != nil {
		return "", false, err
	}
	body, err := this.downloader.Download(*parsed)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = body.Close() }()

	line, err := bufio.NewReader(body).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", false, fmt.Errorf("empty checksum file at %s", address)
	}
	return tokens[0], false, nil
}

func (this *Sha512SumVerifier) fileChecksum(path string) (string, error) {
	reader, err := this.fileSystem.Open(path)
	if err != nil {
		return "", err
	}
	hasher := sha512.New()
	_, err = io.Copy(hasher, reader)
	closeErr := reader.Close()
	if err != nil {
		return "", err
	}
	if closeErr != nil {
		return "", closeErr
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
