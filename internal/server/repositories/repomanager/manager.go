// Package repomanager vends repository implementations for the configured
// database and runs the embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/documents"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/users"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Documents(db dbx.DBTX) documents.Repository
}
