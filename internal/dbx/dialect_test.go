package dbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		in      string
		want    string
	}{
		{
			name:    "postgres numbers placeholders",
			dialect: DialectPostgres,
			in:      `SELECT body FROM documents WHERE identity = ? AND version > ?`,
			want:    `SELECT body FROM documents WHERE identity = $1 AND version > $2`,
		},
		{
			name:    "quoted question mark kept",
			dialect: DialectPostgres,
			in:      `SELECT '?' FROM t WHERE a = ?`,
			want:    `SELECT '?' FROM t WHERE a = $1`,
		},
		{
			name:    "sqlite untouched",
			dialect: DialectSQLite,
			in:      `INSERT INTO t (a, b) VALUES (?, ?)`,
			want:    `INSERT INTO t (a, b) VALUES (?, ?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rebind(tt.dialect, tt.in))
		})
	}
}

func TestForUpdate(t *testing.T) {
	assert.Equal(t, " FOR UPDATE", ForUpdate(DialectPostgres))
	assert.Equal(t, "", ForUpdate(DialectSQLite))
}
