// Package remote declares the contract between the sync session and the
// document store it mirrors.
package remote

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/duosync/internal/document"
)

var (
	// ErrNotFound is returned by Get when no document exists for the identity.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned when the store cannot be reached.
	ErrUnavailable = errors.New("document store unavailable")
)

// Unsubscribe cancels a subscription. It is safe to call more than once.
type Unsubscribe func()

// Store is a document store addressed by identity.
type Store interface {
	Get(ctx context.Context, id document.Identity) (*document.Document, error)

	// Update merges patch into the stored document at the top level,
	// creating the document when it does not exist yet.
	Update(ctx context.Context, id document.Identity, patch document.Patch) error

	// Subscribe calls fn with the current document and again after every
	// change, until the returned Unsubscribe is called or ctx ends.
	Subscribe(ctx context.Context, id document.Identity, fn func(*document.Document)) (Unsubscribe, error)

	Exists(ctx context.Context, id document.Identity) (bool, error)
}

// IdentityProvider reports who is signed in.
type IdentityProvider interface {
	CurrentIdentity() (document.Identity, bool)
}
