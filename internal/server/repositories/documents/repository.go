// Package documents stores one JSON document per identity together with a
// version counter.
package documents

import (
	"context"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, id document.Identity) (*models.Document, error)
	// GetForUpdate reads the row and locks it until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id document.Identity) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) error
	Update(ctx context.Context, doc *models.Document) error
	Exists(ctx context.Context, id document.Identity) (bool, error)
}
