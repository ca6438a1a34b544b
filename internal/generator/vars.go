package generator

import (
	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/naming"
)

// pathVars are the substitution variables handed to the path resolver.
func pathVars(cfg config.Config) map[string]string {
	return map[string]string{
		"layerName":              cfg.LayerName(),
		"collectionPascalPlural": cfg.Cases().PascalCasePlural,
	}
}

// queryFns holds the generated query function names for one collection,
// e.g. list "getShopProducts", create "createShopProduct".
type queryFns struct {
	list   string
	get    string
	create string
	update string
	remove string
}

func queryFnNames(cfg config.Config) queryFns {
	cases := cfg.Cases()
	layer := naming.Pascal(cfg.Layer)
	return queryFns{
		list:   "get" + layer + cases.PascalCasePlural,
		get:    "get" + layer + cases.PascalCase,
		create: "create" + layer + cases.PascalCase,
		update: "update" + layer + cases.PascalCase,
		remove: "delete" + layer + cases.PascalCase,
	}
}
