package dialect

import (
	"fmt"

	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

// SQLite returns the profile for drizzle's sqlite-core. Primary keys are plain
// text columns; ID values are generated client-side (short cuid2 IDs) by the
// queries and seed output, not by the database.
func SQLite() Profile {
	return Profile{
		Name:       SQLiteName,
		ImportFrom: "drizzle-orm/sqlite-core",
		TableFn:    "sqliteTable",
		Imports:    []string{"sqliteTable", "text", "integer", "real"},
		MakeCol:    sqliteCol,
	}
}

func sqliteCol(f schema.Field) string {
	col := naming.Snake(f.Name)

	if f.Meta.PrimaryKey {
		return fmt.Sprintf("text('%s').primaryKey()", col)
	}
	if f.Meta.References != "" {
		return fmt.Sprintf("text('%s')", col) + constraints(f.Meta)
	}

	var base string
	switch f.Type {
	case typemap.TypeText:
		base = fmt.Sprintf("text('%s')", col)
	case typemap.TypeNumber:
		base = fmt.Sprintf("integer('%s')", col)
	case typemap.TypeDecimal:
		base = fmt.Sprintf("real('%s')", col)
	case typemap.TypeBoolean:
		base = fmt.Sprintf("integer('%s', { mode: 'boolean' })", col)
	case typemap.TypeDate:
		base = fmt.Sprintf("integer('%s', { mode: 'timestamp' })", col)
	case typemap.TypeJSON, typemap.TypeRepeater, typemap.TypeArray:
		base = fmt.Sprintf("text('%s', { mode: 'json' })", col)
	default:
		base = fmt.Sprintf("text('%s')", col)
	}

	return base + constraints(f.Meta)
}
