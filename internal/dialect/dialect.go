// Package dialect provides the per-SQL-dialect column builders used by the
// schema generator. Each Profile knows its drizzle import module, table
// function, and how to render one column declaration from a field definition.
package dialect

import (
	"fmt"

	"github.com/example/crouton/internal/schema"
)

// Dialect names accepted by ForName.
const (
	SQLiteName   = "sqlite"
	PostgresName = "pg"
)

// Profile describes one SQL dialect.
type Profile struct {
	Name       string
	ImportFrom string
	TableFn    string
	Imports    []string
	MakeCol    func(f schema.Field) string
}

// ForName returns the profile for a dialect name.
func ForName(name string) (Profile, error) {
	switch name {
	case SQLiteName:
		return SQLite(), nil
	case PostgresName:
		return Postgres(), nil
	default:
		return Profile{}, fmt.Errorf("unknown dialect %q (valid: sqlite, pg)", name)
	}
}

// constraints appends the shared not-null/unique suffix. Order is fixed:
// not-null first, then unique. Primary keys carry neither.
func constraints(m schema.Meta) string {
	if m.PrimaryKey {
		return ""
	}
	s := ""
	if m.Required {
		s += ".notNull()"
	}
	if m.Unique {
		s += ".unique()"
	}
	return s
}
