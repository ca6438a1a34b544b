package generator

import (
	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/dialect"
	"github.com/example/crouton/internal/schema"
)

// All runs every generator for one collection and returns the complete
// artifact set in a stable order.
func All(fields []schema.Field, cfg config.Config) ([]Artifact, error) {
	profile, err := dialect.ForName(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		Schema(fields, profile, cfg),
		Composable(fields, cfg),
		Queries(fields, cfg),
	}
	artifacts = append(artifacts, Endpoints(fields, cfg)...)
	artifacts = append(artifacts, SeedFile(fields, cfg), DDL(fields, cfg))

	return artifacts, nil
}
