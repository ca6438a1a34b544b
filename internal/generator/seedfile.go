package generator

import (
	"fmt"
	"strings"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/paths"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/seed"
)

// SeedFile emits a standalone seed script for one collection. Reference
// fields get literal placeholder values so the script can be edited against a
// real database before running; hierarchy collections are seeded flat, roots
// only.
func SeedFile(fields []schema.Field, cfg config.Config) Artifact {
	return Artifact{
		Path:    "server/database/seed.ts",
		Content: joinSections(seedSections(fields, cfg)),
	}
}

func seedSections(fields []schema.Field, cfg config.Config) []section {
	binding := cfg.TableBinding()
	seedFn := "seed" + naming.Pascal(binding)

	schemaPath := paths.ImportPath(paths.KeyDatabaseSchema, pathVars(cfg), cfg.UseAliases)
	dbPath := paths.ImportPath(paths.KeyDBClient, pathVars(cfg), cfg.UseAliases)

	imports := strings.Join([]string{
		"import { fileURLToPath } from 'node:url'",
		"import { seed } from 'drizzle-seed'",
		fmt.Sprintf("import { useDrizzle } from '%s'", dbPath),
		fmt.Sprintf("import { %s } from '%s'", binding, schemaPath),
	}, "\n")

	options := `export interface SeedOptions {
  count?: number
  teamId?: string
  reset?: boolean
  db?: ReturnType<typeof useDrizzle>
}`

	var b strings.Builder
	fmt.Fprintf(&b, "export async function %s(options: SeedOptions = {}) {\n", seedFn)
	b.WriteString("  const db = options.db ?? useDrizzle()\n")
	fmt.Fprintf(&b, "  const count = options.count ?? %d\n", cfg.SeedCount)
	fmt.Fprintf(&b, "  const teamId = options.teamId ?? '%s'\n\n", cfg.TeamID)
	fmt.Fprintf(&b, "  if (options.reset) {\n    await db.delete(%s)\n  }\n\n", binding)
	fmt.Fprintf(&b, "  await seed(db, { %s }).refine((f) => ({\n", binding)
	fmt.Fprintf(&b, "    %s: {\n", binding)
	b.WriteString("      count,\n")
	b.WriteString("      columns: {\n")
	b.WriteString(seedColumns(fields, cfg))
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  }))\n")
	b.WriteString("}")

	guard := fmt.Sprintf(`// Runs the seed when invoked directly, not when imported.
if (process.argv[1] === fileURLToPath(import.meta.url)) {
  %s({ reset: false })
    .then(() => process.exit(0))
    .catch((err) => {
      console.error(err)
      process.exit(1)
    })
}`, seedFn)

	return []section{
		{"header", header(cfg)},
		{"imports", imports},
		{"options", options},
		{"seedFn", b.String()},
		{"guard", guard},
	}
}

func seedColumns(fields []schema.Field, cfg config.Config) string {
	var b strings.Builder

	// Fixed tenant and audit values come first, mirroring column order in
	// the generated schema.
	b.WriteString("        teamId: f.default({ defaultValue: teamId }),\n")
	b.WriteString("        owner: f.default({ defaultValue: 'seed-script' }),\n")
	if cfg.UseMetadata {
		b.WriteString("        createdBy: f.default({ defaultValue: 'seed-script' }),\n")
		b.WriteString("        updatedBy: f.default({ defaultValue: 'seed-script' }),\n")
	}

	if cfg.Hierarchy.Enabled {
		h := cfg.Hierarchy
		b.WriteString("        // all seeded rows are roots; build parent links by editing this script\n")
		fmt.Fprintf(&b, "        %s: f.default({ defaultValue: null }),\n", h.ParentField)
		fmt.Fprintf(&b, "        %s: f.default({ defaultValue: '/' }),\n", h.PathField)
		fmt.Fprintf(&b, "        %s: f.default({ defaultValue: 0 }),\n", h.DepthField)
		fmt.Fprintf(&b, "        %s: f.default({ defaultValue: 0 }),\n", h.OrderField)
	} else if cfg.Sortable.Enabled {
		fmt.Fprintf(&b, "        %s: f.int({ minValue: 0, maxValue: %d }),\n", cfg.Sortable.OrderField, cfg.SeedCount)
	}

	for _, f := range fields {
		if f.Meta.References != "" {
			fmt.Fprintf(&b, "        // placeholder value; replace with real %s ids before seeding\n", f.Meta.References)
			fmt.Fprintf(&b, "        %s: f.default({ defaultValue: 'placeholder-%s-id' }),\n", f.Name, f.Meta.References)
			continue
		}
		fmt.Fprintf(&b, "        %s: %s,\n", f.Name, seed.Expr(f.Name, f.Type))
	}

	return b.String()
}
