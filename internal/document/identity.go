package document

import (
	"errors"
	"strings"
)

// ErrEmptyIdentity is returned when an account identifier sanitizes to
// nothing.
var ErrEmptyIdentity = errors.New("empty identity")

// Identity is the storage-safe key of a user document.
type Identity string

var keyReplacer = strings.NewReplacer(".", "_", "#", "_", "$", "_", "[", "_", "]", "_")

// IdentityFromEmail derives the document key for an account identifier.
// Characters the store does not allow in keys ('.', '#', '$', '[', ']') are
// replaced with '_'.
func IdentityFromEmail(email string) (Identity, error) {
	id := keyReplacer.Replace(strings.TrimSpace(email))
	if id == "" {
		return "", ErrEmptyIdentity
	}
	return Identity(id), nil
}

func (id Identity) String() string { return string(id) }
