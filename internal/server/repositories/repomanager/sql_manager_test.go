package repomanager

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestManagers_Dialects(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager()
	var _ RepositoryManager = NewSQLiteRepositoryManager()

	assert.Equal(t, dbx.DialectPostgres, NewPostgresRepositoryManager().Dialect())
	assert.Equal(t, dbx.DialectSQLite, NewSQLiteRepositoryManager().Dialect())
}

func TestFactories_ReturnRepos(t *testing.T) {
	db := newDB(t)
	m := NewPostgresRepositoryManager()

	assert.NotNil(t, m.Users(db))
	assert.NotNil(t, m.RefreshTokens(db))
	assert.NotNil(t, m.Documents(db))
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	for _, tc := range []struct {
		m   *SQLRepositoryManager
		dir string
	}{
		{NewPostgresRepositoryManager(), "postgres"},
		{NewSQLiteRepositoryManager(), "sqlite"},
	} {
		var gotDir string
		stubGoose(t, func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
			gotDir = dir
			return nil
		})
		require.NoError(t, tc.m.RunMigrations(context.Background(), newDB(t)))
		assert.Equal(t, tc.dir, gotDir)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	stubGoose(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), newDB(t))
	require.ErrorContains(t, err, "boom")
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "oracle", "")
	require.ErrorContains(t, err, "unsupported")
}

func TestOpen_OpenError(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("nope") }
	t.Cleanup(func() { sqlOpen = orig })

	_, _, err := Open(context.Background(), DriverPostgres, "postgres://x")
	require.ErrorContains(t, err, "nope")
}

func openSQLite(t *testing.T) (*sql.DB, RepositoryManager) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, m, err := Open(context.Background(), DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, m.RunMigrations(context.Background(), db))
	return db, m
}

func TestSQLite_RepositoriesRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, m := openSQLite(t)

	u, err := m.Users(db).Create(ctx, &models.User{
		Email: "alice@example.org", Identity: "alice@example_org",
		Salt: []byte("salt"), Verifier: []byte("verifier"),
	})
	require.NoError(t, err)

	_, err = m.Users(db).Create(ctx, &models.User{Email: "alice@example.org", Identity: "other", Salt: []byte{1}, Verifier: []byte{1}})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := m.Users(db).GetUserByEmail(ctx, "alice@example.org")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, []byte("verifier"), got.Verifier)

	require.NoError(t, m.RefreshTokens(db).Create(ctx, u.ID, "tok", time.Hour))
	rt, err := m.RefreshTokens(db).Find(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, document.Identity("alice@example_org"), rt.Identity)
	assert.True(t, rt.Expires.After(time.Now()))

	n, err := m.RefreshTokens(db).DeleteExpired(ctx, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := m.Documents(db).Exists(ctx, "alice@example_org")
	require.NoError(t, err)
	assert.False(t, ok)

	stamp := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	doc := &models.Document{
		Identity:  "alice@example_org",
		Body:      document.Raw{"email": json.RawMessage(`"alice@example.org"`)},
		Version:   1,
		UpdatedAt: stamp,
	}
	require.NoError(t, m.Documents(db).Create(ctx, doc))
	require.ErrorIs(t, m.Documents(db).Create(ctx, doc), common.ErrorAlreadyExists)

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cur, err := m.Documents(tx).GetForUpdate(ctx, "alice@example_org")
		if err != nil {
			return err
		}
		cur.Body = cur.Body.Apply(document.Patch{document.FieldPartnerIdentity: json.RawMessage(`"bob@example_org"`)})
		cur.Version++
		cur.UpdatedAt = stamp.Add(time.Minute)
		return m.Documents(tx).Update(ctx, cur)
	})
	require.NoError(t, err)

	stored, err := m.Documents(db).Get(ctx, "alice@example_org")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
	assert.JSONEq(t, `"bob@example_org"`, string(stored.Body["partnerIdentity"]))
	assert.True(t, stamp.Add(time.Minute).Equal(stored.UpdatedAt))

	ok, err = m.Documents(db).Exists(ctx, "alice@example_org")
	require.NoError(t, err)
	assert.True(t, ok)
}
