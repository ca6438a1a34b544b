// Package paths resolves import paths between generated files, either through
// Nuxt layer aliases or through hardcoded relative fallbacks.
package paths

import (
	"regexp"
	"strings"

	"github.com/example/crouton/internal/logging"
)

// Import path keys understood by ImportPath.
const (
	KeyDatabaseSchema       = "databaseSchema"
	KeyServerQueries        = "serverQueries"
	KeyTeamAuth             = "teamAuth"
	KeyDBClient             = "dbClient"
	KeyCollectionComposable = "collectionComposable"
)

// aliasPatterns are the preferred, alias-based import patterns. They address
// a virtual layer namespace keyed by the combined layer-collection name.
var aliasPatterns = map[string]string{
	KeyDatabaseSchema:       "#layers/{layerName}/server/database/schema",
	KeyServerQueries:        "#layers/{layerName}/server/database/queries",
	KeyCollectionComposable: "#layers/{layerName}/app/composables/use{collectionPascalPlural}",
}

// fallbackPaths are used when aliases are disabled or a key has no alias
// pattern. They are fixed relative paths and ignore variables entirely.
var fallbackPaths = map[string]string{
	KeyDatabaseSchema: "../../database/schema",
	KeyServerQueries:  "../../database/queries",
	KeyTeamAuth:       "~~/server/utils/teamAuth",
	KeyDBClient:       "~~/server/utils/db",
}

var placeholderRe = regexp.MustCompile(`\{[a-zA-Z][a-zA-Z0-9]*\}`)

// Resolve substitutes every {varName} placeholder in pattern with the value
// from vars. A variable appearing multiple times is substituted at every
// occurrence. A missing variable is non-fatal: a warning is logged and the
// placeholder text is left intact, so callers may re-validate the result
// before writing it to disk.
func Resolve(pattern string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(pattern, func(token string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(token, "{"), "}")
		if v, ok := vars[name]; ok {
			return v
		}
		logging.Logger.Warnf("unresolved variable %s in pattern %q", token, pattern)
		return token
	})
}

// ImportPath returns the import path for key. With useAliases it prefers the
// alias pattern, substituting vars; otherwise (or when the key has no alias)
// it falls back to the hardcoded relative path. A key known to neither table
// is logged as an error and yields an empty string, which callers must check
// before emitting an import statement.
func ImportPath(key string, vars map[string]string, useAliases bool) string {
	if useAliases {
		if pattern, ok := aliasPatterns[key]; ok {
			return Resolve(pattern, vars)
		}
	}
	if fallback, ok := fallbackPaths[key]; ok {
		return fallback
	}
	logging.Logger.Errorf("unknown import path key %q", key)
	return ""
}

// LayerName derives the virtual layer namespace for a layer/collection pair.
// It is a plain concatenation; no case transform is applied.
func LayerName(layer, collection string) string {
	return layer + "-" + collection
}
