package store

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed file has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted credentials")

	// ErrNoCredentials indicates nobody has logged in on this machine.
	ErrNoCredentials = errors.New("no stored credentials")
)

// VersionError is returned for a sealed file written by a newer format.
type VersionError struct {
	Path    string
	Version int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: unsupported format version %d", e.Path, e.Version)
}

// IsNoCredentials reports whether err means there is nothing to load.
func IsNoCredentials(err error) bool {
	return errors.Is(err, ErrNoCredentials)
}
