package models

import (
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// RefreshToken is an opaque, single-use token. Identity is filled from the
// owning user when the token is looked up.
type RefreshToken struct {
	UserID   string
	Identity document.Identity
	Token    string
	Expires  time.Time
}
