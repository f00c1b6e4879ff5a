package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/google/uuid"
)

// SQLRepository implements Repository over dbx.DBTX for both dialects.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// Create inserts user, assigning a fresh ID when it has none. A taken email
// or identity yields common.ErrorAlreadyExists.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := dbx.Rebind(r.dialect,
		`INSERT INTO users (id, email, identity, salt, verifier)
		 VALUES (?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, string(user.Identity), user.Salt, user.Verifier)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `WHERE email = ?`, email)
}

func (r *SQLRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

func (r *SQLRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := dbx.Rebind(r.dialect,
		`SELECT id, email, identity, salt, verifier FROM users `+where)

	user := &models.User{}
	var identity string
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &identity, &user.Salt, &user.Verifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.Identity = document.Identity(identity)

	return user, nil
}
