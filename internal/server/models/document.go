package models

import (
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// Document is a stored user document. Body is kept as the raw top-level
// JSON object so patches merge without decoding the records. Version grows
// by one on every update.
type Document struct {
	Identity  document.Identity
	Body      document.Raw
	Version   int64
	UpdatedAt time.Time
}
