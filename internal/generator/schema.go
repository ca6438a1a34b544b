package generator

import (
	"fmt"
	"strings"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/dialect"
	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

// Schema emits the drizzle table-definition file for one collection.
// Column order is fixed: primary key, team scoping, audit metadata,
// hierarchy or sortable, translations, then the schema fields in input order.
func Schema(fields []schema.Field, profile dialect.Profile, cfg config.Config) Artifact {
	return Artifact{
		Path:    "server/database/schema.ts",
		Content: joinSections(schemaSections(fields, profile, cfg)),
	}
}

func schemaSections(fields []schema.Field, profile dialect.Profile, cfg config.Config) []section {
	binding := cfg.TableBinding()
	pascal := naming.Pascal(binding)

	var body strings.Builder
	fmt.Fprintf(&body, "export const %s = %s('%s', {\n", binding, profile.TableFn, cfg.TableName())
	body.WriteString(primaryKeyCols(profile))
	body.WriteString(teamCols(profile))
	if cfg.UseMetadata {
		body.WriteString(metadataCols(profile))
	}
	if cfg.Hierarchy.Enabled {
		body.WriteString(hierarchyCols(profile, cfg))
	} else if cfg.Sortable.Enabled {
		body.WriteString(sortableCols(profile, cfg))
	}
	if cfg.UseTranslations {
		body.WriteString(translationsCol(profile))
	}
	for _, f := range fields {
		fmt.Fprintf(&body, "  %s: %s,\n", f.Name, profile.MakeCol(f))
	}
	body.WriteString("})")

	return []section{
		{"header", header(cfg)},
		{"imports", fmt.Sprintf("import { %s } from '%s'", strings.Join(profile.Imports, ", "), profile.ImportFrom)},
		{"table", body.String()},
		{"types", fmt.Sprintf("export type %sSelect = typeof %s.$inferSelect\nexport type %sInsert = typeof %s.$inferInsert",
			pascal, binding, pascal, binding)},
	}
}

func primaryKeyCols(profile dialect.Profile) string {
	pk := profile.MakeCol(schema.Field{
		Name: "id",
		Type: typemap.TypeString,
		Meta: schema.Meta{PrimaryKey: true},
	})
	return fmt.Sprintf("  id: %s,\n", pk)
}

// teamCols renders the mandatory multi-tenant columns. They are present on
// every generated table, with no configuration to turn them off.
func teamCols(profile dialect.Profile) string {
	teamID := profile.MakeCol(schema.Field{
		Name: "teamId",
		Type: typemap.TypeString,
		Meta: schema.Meta{Required: true, References: "teams"},
	})
	owner := profile.MakeCol(schema.Field{
		Name: "owner",
		Type: typemap.TypeText,
		Meta: schema.Meta{Required: true},
	})
	return fmt.Sprintf("  teamId: %s,\n  owner: %s,\n", teamID, owner)
}

func metadataCols(profile dialect.Profile) string {
	stamp := func(name string) string {
		return profile.MakeCol(schema.Field{Name: name, Type: typemap.TypeDate, Meta: schema.Meta{Required: true}})
	}
	by := func(name string) string {
		return profile.MakeCol(schema.Field{Name: name, Type: typemap.TypeText, Meta: schema.Meta{Required: true}})
	}
	return fmt.Sprintf("  createdAt: %s,\n  updatedAt: %s,\n  createdBy: %s,\n  updatedBy: %s,\n",
		stamp("createdAt"), stamp("updatedAt"), by("createdBy"), by("updatedBy"))
}

func hierarchyCols(profile dialect.Profile, cfg config.Config) string {
	h := cfg.Hierarchy

	parent := profile.MakeCol(schema.Field{
		Name: h.ParentField,
		Type: typemap.TypeString,
		Meta: schema.Meta{References: cfg.Collection},
	})
	path := profile.MakeCol(schema.Field{Name: h.PathField, Type: typemap.TypeText, Meta: schema.Meta{Required: true}})
	depth := profile.MakeCol(schema.Field{Name: h.DepthField, Type: typemap.TypeNumber, Meta: schema.Meta{Required: true}})
	order := profile.MakeCol(schema.Field{Name: h.OrderField, Type: typemap.TypeNumber, Meta: schema.Meta{Required: true}})

	var b strings.Builder
	fmt.Fprintf(&b, "  // nullable self-reference; root rows keep it null\n")
	fmt.Fprintf(&b, "  %s: %s,\n", h.ParentField, parent)
	fmt.Fprintf(&b, "  %s: %s.default('/'),\n", h.PathField, path)
	fmt.Fprintf(&b, "  %s: %s.default(0),\n", h.DepthField, depth)
	fmt.Fprintf(&b, "  %s: %s.default(0),\n", h.OrderField, order)
	return b.String()
}

func sortableCols(profile dialect.Profile, cfg config.Config) string {
	order := profile.MakeCol(schema.Field{
		Name: cfg.Sortable.OrderField,
		Type: typemap.TypeNumber,
		Meta: schema.Meta{Required: true},
	})
	return fmt.Sprintf("  %s: %s.default(0),\n", cfg.Sortable.OrderField, order)
}

func translationsCol(profile dialect.Profile) string {
	col := profile.MakeCol(schema.Field{Name: "translations", Type: typemap.TypeJSON})
	return fmt.Sprintf("  // shape: { [locale]: { [key]: string } }\n  translations: %s,\n", col)
}
