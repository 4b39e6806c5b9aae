package core

import (
	"fmt"
	"os"

	"github.com/smarty/pluginrepo/contracts"
)

// BasicVerifier is the sanity gate that runs before any checksum
// work: the downloaded artifact must exist, be a regular file, and
// contain at least one byte.
type BasicVerifier struct {
	fileSystem contracts.FileChecker
}

func NewBasicVerifier(fileSystem contracts.FileChecker) *BasicVerifier {
	return &BasicVerifier{fileSystem: fileSystem}
}

func (this *BasicVerifier) Verify(context contracts.VerificationContext, path string) error {
	info, err := this.fileSystem.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file %s does not exist: %w", path, contracts.VerifyErr)
	}
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() || info.Size() == 0 {
		return fmt.Errorf("file %s is not a regular file or has size 0: %w", path, contracts.VerifyErr)
	}
	return nil
}
