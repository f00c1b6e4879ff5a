package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/server/migrations"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/documents"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repositories for one dialect and
// knows which migration set belongs to it.
type SQLRepositoryManager struct {
	dialect      dbx.Dialect
	gooseDialect string
	dir          string
}

func NewPostgresRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dbx.DialectPostgres, gooseDialect: "postgres", dir: migrations.PostgresDir}
}

func NewSQLiteRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dbx.DialectSQLite, gooseDialect: "sqlite3", dir: migrations.SQLiteDir}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect { return m.dialect }

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewSQLRepository(db, m.dialect)
}

// Documents returns a documents.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewSQLRepository(db, m.dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies the
// set for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.gooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, m.dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
