// Package typemap is the single source of truth for field-type knowledge:
// the canonical FieldType set, normalization of raw schema input, and the
// per-type validation/default/TypeScript fragments shared by the schema and
// composable generators.
package typemap

// FieldType is one of the nine canonical abstract field types.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeDecimal  FieldType = "decimal"
	TypeBoolean  FieldType = "boolean"
	TypeDate     FieldType = "date"
	TypeJSON     FieldType = "json"
	TypeRepeater FieldType = "repeater"
	TypeArray    FieldType = "array"
)

// Entry holds the per-type syntax fragments shared across generators. The
// drizzle column-builder syntax lives in the dialect package (it varies in
// shape, not just name); everything else the generators need lives here.
type Entry struct {
	Zod      string // zod validation fragment
	Default  string // default-value literal for form state
	TSType   string // TypeScript type annotation
	SQLite   string // raw SQLite column type for DDL output
	Postgres string // raw PostgreSQL column type for DDL output
}

var mapping = map[FieldType]Entry{
	TypeString:   {Zod: "z.string()", Default: "''", TSType: "string", SQLite: "TEXT", Postgres: "VARCHAR(255)"},
	TypeText:     {Zod: "z.string()", Default: "''", TSType: "string", SQLite: "TEXT", Postgres: "TEXT"},
	TypeNumber:   {Zod: "z.number()", Default: "0", TSType: "number", SQLite: "INTEGER", Postgres: "INTEGER"},
	TypeDecimal:  {Zod: "z.number()", Default: "0", TSType: "number", SQLite: "REAL", Postgres: "NUMERIC"},
	TypeBoolean:  {Zod: "z.boolean()", Default: "false", TSType: "boolean", SQLite: "INTEGER", Postgres: "BOOLEAN"},
	TypeDate:     {Zod: "z.coerce.date()", Default: "new Date()", TSType: "Date", SQLite: "INTEGER", Postgres: "TIMESTAMPTZ"},
	TypeJSON:     {Zod: "z.record(z.string(), z.any())", Default: "{}", TSType: "Record<string, unknown>", SQLite: "TEXT", Postgres: "JSONB"},
	TypeRepeater: {Zod: "z.array(z.record(z.string(), z.any()))", Default: "[]", TSType: "Record<string, unknown>[]", SQLite: "TEXT", Postgres: "JSONB"},
	TypeArray:    {Zod: "z.array(z.string())", Default: "[]", TSType: "string[]", SQLite: "TEXT", Postgres: "JSONB"},
}

// All returns the canonical field types in a stable order.
func All() []FieldType {
	return []FieldType{
		TypeString, TypeText, TypeNumber, TypeDecimal, TypeBoolean,
		TypeDate, TypeJSON, TypeRepeater, TypeArray,
	}
}

// Normalize maps raw schema input to a canonical FieldType. Unknown or empty
// input normalizes to TypeString; this leniency is deliberate so a typo in a
// field file degrades to a text column instead of failing the whole run.
func Normalize(raw string) FieldType {
	t := FieldType(raw)
	if _, ok := mapping[t]; ok {
		return t
	}
	return TypeString
}

// Lookup returns the syntax fragments for a canonical type. The mapping is
// total over the nine types; asking for anything else is a programming error
// and falls back to the string entry.
func Lookup(t FieldType) Entry {
	if e, ok := mapping[t]; ok {
		return e
	}
	return mapping[TypeString]
}
