package shell

import "github.com/mholt/archiver"

// Unarchiver unpacks a downloaded plugin archive into a directory,
// choosing the format from the source filename extension.
type Unarchiver struct{}

func NewUnarchiver() *Unarchiver {
	return &Unarchiver{}
}

func (this *Unarchiver) Extract(source, destination string) error {
	return archiver.Unarchive(source, destination)
}
