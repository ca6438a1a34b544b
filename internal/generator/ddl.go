package generator

import (
	"fmt"
	"strings"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

// DDL emits the raw CREATE TABLE statement matching the generated drizzle
// schema, used to push the table to a dev database. Column order matches the
// schema file exactly.
func DDL(fields []schema.Field, cfg config.Config) Artifact {
	return Artifact{
		Path:    "server/database/schema.sql",
		Content: joinSections(ddlSections(fields, cfg)),
	}
}

func ddlSections(fields []schema.Field, cfg config.Config) []section {
	pg := cfg.Dialect == "pg"

	var cols []string
	if pg {
		cols = append(cols, "id UUID PRIMARY KEY DEFAULT gen_random_uuid()")
	} else {
		cols = append(cols, "id TEXT PRIMARY KEY")
	}

	cols = append(cols, "team_id "+refType(pg)+" NOT NULL")
	cols = append(cols, "owner TEXT NOT NULL")

	if cfg.UseMetadata {
		ts := sqlType(typemap.TypeDate, pg)
		cols = append(cols,
			"created_at "+ts+" NOT NULL",
			"updated_at "+ts+" NOT NULL",
			"created_by TEXT NOT NULL",
			"updated_by TEXT NOT NULL",
		)
	}

	if cfg.Hierarchy.Enabled {
		h := cfg.Hierarchy
		cols = append(cols,
			sqlIdent(naming.Snake(h.ParentField))+" "+refType(pg),
			sqlIdent(naming.Snake(h.PathField))+" TEXT NOT NULL DEFAULT '/'",
			sqlIdent(naming.Snake(h.DepthField))+" INTEGER NOT NULL DEFAULT 0",
			sqlIdent(naming.Snake(h.OrderField))+" INTEGER NOT NULL DEFAULT 0",
		)
	} else if cfg.Sortable.Enabled {
		cols = append(cols, sqlIdent(naming.Snake(cfg.Sortable.OrderField))+" INTEGER NOT NULL DEFAULT 0")
	}

	if cfg.UseTranslations {
		cols = append(cols, "translations "+sqlType(typemap.TypeJSON, pg))
	}

	for _, f := range fields {
		cols = append(cols, fieldDDL(f, pg))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", cfg.TableName())
	b.WriteString("  " + strings.Join(cols, ",\n  ") + "\n")
	b.WriteString(");")

	return []section{
		{"header", sqlHeader(cfg)},
		{"table", b.String()},
	}
}

func fieldDDL(f schema.Field, pg bool) string {
	col := sqlIdent(naming.Snake(f.Name))

	var t string
	switch {
	case f.Meta.References != "":
		t = refType(pg)
	case pg && f.Type == typemap.TypeString && f.Meta.MaxLength > 0:
		t = fmt.Sprintf("VARCHAR(%d)", f.Meta.MaxLength)
	case pg && f.Type == typemap.TypeDecimal && f.Meta.Precision > 0:
		t = fmt.Sprintf("NUMERIC(%d, %d)", f.Meta.Precision, f.Meta.Scale)
	default:
		t = sqlType(f.Type, pg)
	}

	decl := col + " " + t
	if f.Meta.Required {
		decl += " NOT NULL"
	}
	if f.Meta.Unique {
		decl += " UNIQUE"
	}
	return decl
}

func sqlType(t typemap.FieldType, pg bool) string {
	e := typemap.Lookup(t)
	if pg {
		return e.Postgres
	}
	return e.SQLite
}

func refType(pg bool) string {
	if pg {
		return "UUID"
	}
	return "TEXT"
}

// sqlIdent quotes identifiers that collide with SQL keywords (the sortable
// default column is literally named "order").
func sqlIdent(name string) string {
	switch strings.ToLower(name) {
	case "order", "group", "user", "select", "where", "table":
		return `"` + name + `"`
	}
	return name
}
