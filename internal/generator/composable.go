package generator

import (
	"fmt"
	"strings"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

// Composable emits the client-side composable: the zod schema, the table
// columns, the default-values object, the collection config, and the
// default-exported factory.
func Composable(fields []schema.Field, cfg config.Config) Artifact {
	cases := cfg.Cases()
	return Artifact{
		Path:    fmt.Sprintf("app/composables/use%s.ts", cases.PascalCasePlural),
		Content: joinSections(composableSections(fields, cfg)),
	}
}

func composableSections(fields []schema.Field, cfg config.Config) []section {
	cases := cfg.Cases()
	singular := cases.CamelCase

	return []section{
		{"header", header(cfg)},
		{"imports", "import { z } from 'zod'"},
		{"schema", zodSchema(fields, singular)},
		{"formType", fmt.Sprintf("export type %sForm = z.infer<typeof %sSchema>", cases.PascalCase, singular)},
		{"columns", tableColumns(fields, singular)},
		{"defaults", defaultValues(fields, singular)},
		{"config", collectionConfig(fields, cfg)},
		{"hideSchema", hideSchema(cfg)},
		{"factory", factory(cfg)},
	}
}

func zodSchema(fields []schema.Field, singular string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export const %sSchema = z.object({\n", singular)
	for _, f := range fields {
		frag := typemap.Lookup(f.Type).Zod
		if !f.Meta.Required {
			frag += ".optional()"
		}
		fmt.Fprintf(&b, "  %s: %s,\n", f.Name, frag)
	}
	b.WriteString("})")
	return b.String()
}

func tableColumns(fields []schema.Field, singular string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export const %sColumns = [\n", singular)
	for _, f := range fields {
		fmt.Fprintf(&b, "  { accessorKey: '%s', header: '%s' },\n", f.Name, columnLabel(f))
	}
	b.WriteString("]")
	return b.String()
}

func defaultValues(fields []schema.Field, singular string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export const %sDefaults = {\n", singular)
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %s,\n", f.Name, typemap.Lookup(f.Type).Default)
	}
	b.WriteString("}")
	return b.String()
}

// collectionConfig renders the typed configuration object. Hierarchy and
// sortable are structurally exclusive here: a hierarchy block suppresses any
// sortable block, which is the single enforcement point for that invariant.
func collectionConfig(fields []schema.Field, cfg config.Config) string {
	cases := cfg.Cases()

	var b strings.Builder
	fmt.Fprintf(&b, "export const %sConfig = {\n", cases.CamelCasePlural)
	fmt.Fprintf(&b, "  name: '%s',\n", cases.Plural)
	fmt.Fprintf(&b, "  layer: '%s',\n", cfg.Layer)
	fmt.Fprintf(&b, "  apiPath: '%s',\n", naming.Kebab(cases.Plural))
	fmt.Fprintf(&b, "  componentName: '%s%sForm',\n", naming.Pascal(cfg.Layer), cases.PascalCasePlural)

	refs := referenceFields(fields)
	if len(refs) > 0 {
		b.WriteString("  references: {\n")
		for _, f := range refs {
			fmt.Fprintf(&b, "    %s: '%s',\n", f.Name, f.Meta.References)
		}
		b.WriteString("  },\n")
	} else {
		b.WriteString("  references: {},\n")
	}

	if cfg.Hierarchy.Enabled {
		h := cfg.Hierarchy
		b.WriteString("  hierarchy: {\n")
		fmt.Fprintf(&b, "    parentField: '%s',\n", h.ParentField)
		fmt.Fprintf(&b, "    pathField: '%s',\n", h.PathField)
		fmt.Fprintf(&b, "    depthField: '%s',\n", h.DepthField)
		fmt.Fprintf(&b, "    orderField: '%s',\n", h.OrderField)
		b.WriteString("  },\n")
	} else if cfg.Sortable.Enabled {
		fmt.Fprintf(&b, "  sortable: {\n    orderField: '%s',\n  },\n", cfg.Sortable.OrderField)
	}

	b.WriteString("  dependentFieldComponents: {},\n")
	fmt.Fprintf(&b, "  defaultValues: %sDefaults,\n", cases.CamelCase)
	b.WriteString("}")
	return b.String()
}

// hideSchema marks the zod instance non-enumerable so downstream tooling that
// iterates config keys does not trip over it.
func hideSchema(cfg config.Config) string {
	cases := cfg.Cases()
	return fmt.Sprintf(`Object.defineProperty(%sConfig, 'schema', {
  value: %sSchema,
  enumerable: false,
})`, cases.CamelCasePlural, cases.CamelCase)
}

func factory(cfg config.Config) string {
	cases := cfg.Cases()
	return fmt.Sprintf(`export default function use%s() {
  return {
    defaultValue: %sDefaults,
    schema: %sSchema,
    columns: %sColumns,
    collection: %sConfig,
  }
}`, cases.PascalCasePlural, cases.CamelCase, cases.CamelCase, cases.CamelCase, cases.CamelCasePlural)
}

func referenceFields(fields []schema.Field) []schema.Field {
	var refs []schema.Field
	for _, f := range fields {
		if f.Meta.References != "" {
			refs = append(refs, f)
		}
	}
	return refs
}

// columnLabel derives a display header from the field's label meta, or from
// the name itself ("publishedAt" -> "Published At").
func columnLabel(f schema.Field) string {
	if f.Meta.Label != "" {
		return f.Meta.Label
	}
	words := strings.Split(naming.Snake(f.Name), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
