package dialect

import (
	"fmt"

	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

// Postgres returns the profile for drizzle's pg-core. Primary keys are
// database-generated random UUIDs; reference columns are uuid to match.
func Postgres() Profile {
	return Profile{
		Name:       PostgresName,
		ImportFrom: "drizzle-orm/pg-core",
		TableFn:    "pgTable",
		Imports: []string{
			"pgTable", "uuid", "varchar", "text", "integer",
			"numeric", "boolean", "timestamp", "jsonb",
		},
		MakeCol: postgresCol,
	}
}

func postgresCol(f schema.Field) string {
	col := naming.Snake(f.Name)

	if f.Meta.PrimaryKey {
		return fmt.Sprintf("uuid('%s').primaryKey().defaultRandom()", col)
	}
	if f.Meta.References != "" {
		return fmt.Sprintf("uuid('%s')", col) + constraints(f.Meta)
	}

	var base string
	switch f.Type {
	case typemap.TypeText:
		base = fmt.Sprintf("text('%s')", col)
	case typemap.TypeNumber:
		base = fmt.Sprintf("integer('%s')", col)
	case typemap.TypeDecimal:
		if f.Meta.Precision > 0 {
			base = fmt.Sprintf("numeric('%s', { precision: %d, scale: %d })", col, f.Meta.Precision, f.Meta.Scale)
		} else {
			base = fmt.Sprintf("numeric('%s')", col)
		}
	case typemap.TypeBoolean:
		base = fmt.Sprintf("boolean('%s')", col)
	case typemap.TypeDate:
		base = fmt.Sprintf("timestamp('%s', { withTimezone: true })", col)
	case typemap.TypeJSON, typemap.TypeRepeater, typemap.TypeArray:
		base = fmt.Sprintf("jsonb('%s')", col)
	default:
		length := 255
		if f.Meta.MaxLength > 0 {
			length = f.Meta.MaxLength
		}
		base = fmt.Sprintf("varchar('%s', { length: %d })", col, length)
	}

	return base + constraints(f.Meta)
}
