package generator

import (
	"fmt"
	"strings"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/naming"
	"github.com/example/crouton/internal/paths"
	"github.com/example/crouton/internal/schema"
)

// Queries emits the persistence module the API handlers delegate to. All
// reads and writes are filtered by teamId. For SQLite the insert generates a
// client-side short ID; PostgreSQL relies on the uuid column default.
func Queries(fields []schema.Field, cfg config.Config) Artifact {
	return Artifact{
		Path:    "server/database/queries.ts",
		Content: joinSections(queriesSections(fields, cfg)),
	}
}

func queriesSections(fields []schema.Field, cfg config.Config) []section {
	binding := cfg.TableBinding()
	pascal := naming.Pascal(binding)
	fns := queryFnNames(cfg)
	sqlite := cfg.Dialect == "sqlite"

	schemaPath := paths.ImportPath(paths.KeyDatabaseSchema, pathVars(cfg), cfg.UseAliases)
	dbPath := paths.ImportPath(paths.KeyDBClient, pathVars(cfg), cfg.UseAliases)

	var imports strings.Builder
	imports.WriteString("import { and, eq } from 'drizzle-orm'\n")
	if sqlite {
		imports.WriteString("import { createId } from '@paralleldrive/cuid2'\n")
	}
	fmt.Fprintf(&imports, "import { useDrizzle } from '%s'\n", dbPath)
	fmt.Fprintf(&imports, "import { %s, type %sInsert } from '%s'", binding, pascal, schemaPath)

	idValue := ""
	if sqlite {
		idValue = " id: createId(),"
	}

	updateStamp := ""
	if cfg.UseMetadata {
		updateStamp = " updatedAt: new Date(),"
	}
	createStamps := ""
	if cfg.UseMetadata {
		createStamps = " createdAt: new Date(), updatedAt: new Date(),"
	}

	list := fmt.Sprintf(`export async function %s(teamId: string) {
  return useDrizzle()
    .select()
    .from(%s)
    .where(eq(%s.teamId, teamId))
}`, fns.list, binding, binding)

	get := fmt.Sprintf(`export async function %s(teamId: string, id: string) {
  const rows = await useDrizzle()
    .select()
    .from(%s)
    .where(and(eq(%s.teamId, teamId), eq(%s.id, id)))
  return rows[0]
}`, fns.get, binding, binding, binding)

	create := fmt.Sprintf(`export async function %s(data: %sInsert) {
  const [row] = await useDrizzle()
    .insert(%s)
    .values({%s%s ...data })
    .returning()
  return row
}`, fns.create, pascal, binding, idValue, createStamps)

	update := fmt.Sprintf(`export async function %s(teamId: string, id: string, data: Partial<%sInsert>) {
  const [row] = await useDrizzle()
    .update(%s)
    .set({%s ...data })
    .where(and(eq(%s.teamId, teamId), eq(%s.id, id)))
    .returning()
  return row
}`, fns.update, pascal, binding, updateStamp, binding, binding)

	remove := fmt.Sprintf(`export async function %s(teamId: string, id: string) {
  await useDrizzle()
    .delete(%s)
    .where(and(eq(%s.teamId, teamId), eq(%s.id, id)))
}`, fns.remove, binding, binding, binding)

	return []section{
		{"header", header(cfg)},
		{"imports", imports.String()},
		{"list", list},
		{"get", get},
		{"create", create},
		{"update", update},
		{"delete", remove},
	}
}
