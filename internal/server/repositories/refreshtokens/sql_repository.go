// Package refreshtokens stores the single-use refresh tokens issued at
// login.
package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/server/models"
)

// SQLRepository implements CRUD operations for refresh tokens over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	now     func() time.Time
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, now: time.Now}
}

// Create inserts a new refresh token for userID expiring at now+validity.
func (r *SQLRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	query := dbx.Rebind(r.dialect, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES (?, ?, ?)
	`)

	if _, err := r.db.ExecContext(ctx, query, userID, token, r.now().UTC().Add(validity)); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// Find returns the token row together with its owner's identity.
// If not found, it returns common.ErrorNotFound.
func (r *SQLRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := dbx.Rebind(r.dialect, `
		SELECT t.user_id, u.identity, t.expires_at
		FROM refresh_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token = ?
	`)

	rt := &models.RefreshToken{Token: token}
	var identity string
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&rt.UserID, &identity, &rt.Expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	rt.Identity = document.Identity(identity)
	return rt, nil
}

// Delete removes a refresh token by its token string. A token that is
// already gone yields common.ErrorNotFound, so each token is spent once.
func (r *SQLRepository) Delete(ctx context.Context, token string) error {
	query := dbx.Rebind(r.dialect, `
		DELETE FROM refresh_tokens
		WHERE token = ?
	`)

	res, err := r.db.ExecContext(ctx, query, token)
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

// DeleteExpired removes tokens that expired before now and reports how many
// were removed.
func (r *SQLRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := dbx.Rebind(r.dialect, `
		DELETE FROM refresh_tokens
		WHERE expires_at < ?
	`)

	res, err := r.db.ExecContext(ctx, query, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
