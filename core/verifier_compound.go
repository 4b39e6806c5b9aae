package core

import "github.com/smarty/pluginrepo/contracts"

// CompoundFileVerifier runs each inner verifier in order and fails
// the artifact at the first failure.
type CompoundFileVerifier struct {
	inners []contracts.FileVerifier
}

func NewCompoundFileVerifier(inners ...contracts.FileVerifier) *CompoundFileVerifier {
	return &CompoundFileVerifier{inners: inners}
}

func (this *CompoundFileVerifier) Verify(context contracts.VerificationContext, path string) error {
	for _, inner := range this.inners {
		err := inner.Verify(context, path)
		if err != nil {
			return err
		}
	}
	return nil
}

// DefaultFileVerifier is the stock chain: basic sanity gate first,
// then checksum comparison.
func DefaultFileVerifier(fileSystem contracts.FileSystem, downloader contracts.Downloader) *CompoundFileVerifier {
	return NewCompoundFileVerifier(
		NewBasicVerifier(fileSystem),
		NewSha512SumVerifier(fileSystem, downloader),
	)
}
