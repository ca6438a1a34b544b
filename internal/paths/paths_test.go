package paths

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		vars    map[string]string
		want    string
	}{
		{
			"single variable",
			"#layers/{layerName}/server/database/schema",
			map[string]string{"layerName": "shop-products"},
			"#layers/shop-products/server/database/schema",
		},
		{
			"repeated variable",
			"{name}/{name}/file",
			map[string]string{"name": "shop"},
			"shop/shop/file",
		},
		{
			"missing variable left intact",
			"#layers/{layerName}/app",
			map[string]string{},
			"#layers/{layerName}/app",
		},
		{
			"no placeholders",
			"~~/server/utils/teamAuth",
			map[string]string{"layerName": "ignored"},
			"~~/server/utils/teamAuth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.pattern, tt.vars); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImportPathAliases(t *testing.T) {
	vars := map[string]string{"layerName": "shop-products"}

	got := ImportPath(KeyServerQueries, vars, true)
	want := "#layers/shop-products/server/database/queries"
	if got != want {
		t.Errorf("ImportPath() = %q, want %q", got, want)
	}
}

func TestImportPathFallbackIgnoresVars(t *testing.T) {
	// The fallback must not depend on variables: extraneous vars produce
	// identical output to an empty map.
	empty := ImportPath(KeyServerQueries, map[string]string{}, false)
	noisy := ImportPath(KeyServerQueries, map[string]string{"layerName": "x", "junk": "y"}, false)

	if empty != noisy {
		t.Errorf("fallback differs with vars: %q vs %q", empty, noisy)
	}
	if empty != "../../database/queries" {
		t.Errorf("ImportPath() fallback = %q, want %q", empty, "../../database/queries")
	}
}

func TestImportPathNoAliasUsesFallback(t *testing.T) {
	// teamAuth has no alias pattern; with aliases enabled it still resolves
	// through the fallback table.
	got := ImportPath(KeyTeamAuth, nil, true)
	if got != "~~/server/utils/teamAuth" {
		t.Errorf("ImportPath(teamAuth) = %q, want %q", got, "~~/server/utils/teamAuth")
	}
}

func TestImportPathUnknownKey(t *testing.T) {
	if got := ImportPath("nonsense", nil, true); got != "" {
		t.Errorf("ImportPath(nonsense) = %q, want empty", got)
	}
	if got := ImportPath("nonsense", nil, false); got != "" {
		t.Errorf("ImportPath(nonsense, no aliases) = %q, want empty", got)
	}
}

func TestLayerName(t *testing.T) {
	if got := LayerName("shop", "products"); got != "shop-products" {
		t.Errorf("LayerName() = %q, want %q", got, "shop-products")
	}
}
