package contracts

import (
	"errors"
	"fmt"
)

// VerifyErr marks an artifact that was checked and rejected, as
// distinct from an I/O failure that prevented checking at all.
// Callers inspect with errors.Is.
var VerifyErr = errors.New("file verification failure")

type FileVerifier interface {
	Verify(context VerificationContext, path string) error
}

// VerificationContext is a read-only view of the release under
// verification, taken from the repository manifest.
type VerificationContext struct {
	PluginID  string
	Version   string
	URL       string
	SHA512Sum string
}

func (this VerificationContext) Title() string {
	return fmt.Sprintf("[%s @ %s]", this.PluginID, this.Version)
}
