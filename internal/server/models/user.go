// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// User is an account. Identity is the key of the account's document and is
// derived from Email at registration.
type User struct {
	ID        string
	Email     string
	Identity  document.Identity
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
