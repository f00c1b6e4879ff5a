package dbx

import (
	"strconv"
	"strings"
)

// Dialect selects SQL flavour details that differ between the supported
// database drivers.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Rebind rewrites '?' placeholders into '$1, $2, ...' for Postgres and
// leaves the query untouched for SQLite. Question marks inside single-quoted
// literals are preserved.
func Rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ForUpdate returns the row-locking suffix for a SELECT. SQLite serializes
// writers per database, so it needs none.
func ForUpdate(d Dialect) string {
	if d == DialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}
