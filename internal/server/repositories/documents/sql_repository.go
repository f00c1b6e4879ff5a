package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Get(ctx context.Context, id document.Identity) (*models.Document, error) {
	return r.get(ctx, id, "")
}

func (r *SQLRepository) GetForUpdate(ctx context.Context, id document.Identity) (*models.Document, error) {
	return r.get(ctx, id, dbx.ForUpdate(r.dialect))
}

func (r *SQLRepository) get(ctx context.Context, id document.Identity, suffix string) (*models.Document, error) {
	query := dbx.Rebind(r.dialect,
		`SELECT body, version, updated_at FROM documents WHERE identity = ?`+suffix)

	doc := &models.Document{Identity: id}
	var body []byte
	err := r.db.QueryRowContext(ctx, query, string(id)).Scan(&body, &doc.Version, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(body, &doc.Body); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return doc, nil
}

// Create inserts a new document. An existing row for the identity yields
// common.ErrorAlreadyExists.
func (r *SQLRepository) Create(ctx context.Context, doc *models.Document) error {
	body, err := encodeBody(doc.Body)
	if err != nil {
		return err
	}

	query := dbx.Rebind(r.dialect,
		`INSERT INTO documents (identity, body, version, updated_at)
		 VALUES (?, ?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, string(doc.Identity), body, doc.Version, doc.UpdatedAt.UTC()); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update overwrites body, version and updated_at of an existing document.
func (r *SQLRepository) Update(ctx context.Context, doc *models.Document) error {
	body, err := encodeBody(doc.Body)
	if err != nil {
		return err
	}

	query := dbx.Rebind(r.dialect,
		`UPDATE documents SET body = ?, version = ?, updated_at = ?
		 WHERE identity = ?`)

	res, err := r.db.ExecContext(ctx, query, body, doc.Version, doc.UpdatedAt.UTC(), string(doc.Identity))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLRepository) Exists(ctx context.Context, id document.Identity) (bool, error) {
	query := dbx.Rebind(r.dialect,
		`SELECT EXISTS (SELECT 1 FROM documents WHERE identity = ?)`)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, string(id)).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// encodeBody renders the body as JSON text so both JSONB and TEXT columns
// accept it.
func encodeBody(body document.Raw) (string, error) {
	if body == nil {
		body = document.Raw{}
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(b), nil
}
