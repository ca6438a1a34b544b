package generator

import (
	"fmt"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/paths"
	"github.com/example/crouton/internal/schema"
)

// Endpoints emits the four team-scoped REST handlers for a collection. Every
// handler resolves team membership before touching data; the resolver throws
// on failure, so an unauthorized request never reaches the queries module.
func Endpoints(fields []schema.Field, cfg config.Config) []Artifact {
	base := fmt.Sprintf("server/api/teams/[id]/%s", cfg.Cases().Plural)
	fns := queryFnNames(cfg)
	authPath := paths.ImportPath(paths.KeyTeamAuth, pathVars(cfg), cfg.UseAliases)
	queriesPath := paths.ImportPath(paths.KeyServerQueries, pathVars(cfg), cfg.UseAliases)

	return []Artifact{
		{base + "/index.get.ts", getHandler(cfg, fns, authPath, queriesPath)},
		{base + "/index.post.ts", postHandler(cfg, fns, authPath, queriesPath)},
		{base + "/[id].patch.ts", patchHandler(cfg, fns, authPath, queriesPath)},
		{base + "/[id].delete.ts", deleteHandler(cfg, fns, authPath, queriesPath)},
	}
}

func getHandler(cfg config.Config, fns queryFns, authPath, queriesPath string) string {
	return fmt.Sprintf(`%s

import { resolveTeamAndCheckMembership } from '%s'
import { %s } from '%s'

export default defineEventHandler(async (event) => {
  const { team } = await resolveTeamAndCheckMembership(event)

  return %s(team.id)
})
`, header(cfg), authPath, fns.list, queriesPath, fns.list)
}

func postHandler(cfg config.Config, fns queryFns, authPath, queriesPath string) string {
	stamps := "    teamId: team.id,\n    owner: user.id,\n"
	if cfg.UseMetadata {
		stamps += "    createdBy: user.id,\n    updatedBy: user.id,\n"
	}
	return fmt.Sprintf(`%s

import { resolveTeamAndCheckMembership } from '%s'
import { %s } from '%s'

export default defineEventHandler(async (event) => {
  const { team, user } = await resolveTeamAndCheckMembership(event)
  const body = await readBody(event)

  return %s({
    ...body,
%s  })
})
`, header(cfg), authPath, fns.create, queriesPath, fns.create, stamps)
}

func patchHandler(cfg config.Config, fns queryFns, authPath, queriesPath string) string {
	stamp := ""
	resolved := "{ team }"
	if cfg.UseMetadata {
		stamp = "\n    updatedBy: user.id,"
		resolved = "{ team, user }"
	}
	return fmt.Sprintf(`%s

import { resolveTeamAndCheckMembership } from '%s'
import { %s } from '%s'

export default defineEventHandler(async (event) => {
  const %s = await resolveTeamAndCheckMembership(event)
  const id = getRouterParam(event, 'id')
  const body = await readBody(event)

  return %s(team.id, id, {
    ...body,%s
  })
})
`, header(cfg), authPath, fns.update, queriesPath, resolved, fns.update, stamp)
}

func deleteHandler(cfg config.Config, fns queryFns, authPath, queriesPath string) string {
	return fmt.Sprintf(`%s

import { resolveTeamAndCheckMembership } from '%s'
import { %s } from '%s'

export default defineEventHandler(async (event) => {
  const { team } = await resolveTeamAndCheckMembership(event)
  const id = getRouterParam(event, 'id')

  await %s(team.id, id)
  return { ok: true }
})
`, header(cfg), authPath, fns.remove, queriesPath, fns.remove)
}
