// Package config defines the generation options consumed by every generator
// and applies their defaults in one place, at the boundary. Generator bodies
// never re-check for missing values.
package config

import (
	"fmt"
	"time"

	"github.com/example/crouton/internal/naming"
)

// Defaults applied by Normalize.
const (
	DefaultSeedCount   = 6
	DefaultTeamID      = "placeholder-team"
	DefaultParentField = "parentId"
	DefaultPathField   = "path"
	DefaultDepthField  = "depth"
	DefaultOrderField  = "order"
	DefaultDialect     = "sqlite"
)

// Hierarchy configures tree-structured collections.
type Hierarchy struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	ParentField string `yaml:"parentField,omitempty" json:"parentField,omitempty"`
	PathField   string `yaml:"pathField,omitempty" json:"pathField,omitempty"`
	DepthField  string `yaml:"depthField,omitempty" json:"depthField,omitempty"`
	OrderField  string `yaml:"orderField,omitempty" json:"orderField,omitempty"`
}

// Sortable configures flat drag-reorder collections.
type Sortable struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	OrderField string `yaml:"orderField,omitempty" json:"orderField,omitempty"`
}

// Options is the raw, partially-specified input from flags or a config file.
// Pointer fields distinguish "unset" from an explicit false/zero.
type Options struct {
	Layer           string     `yaml:"layer" json:"layer"`
	Collection      string     `yaml:"collection" json:"collection"`
	Dialect         string     `yaml:"dialect,omitempty" json:"dialect,omitempty"`
	UseMetadata     *bool      `yaml:"useMetadata,omitempty" json:"useMetadata,omitempty"`
	UseTranslations *bool      `yaml:"useTranslations,omitempty" json:"useTranslations,omitempty"`
	UseAliases      *bool      `yaml:"useAliases,omitempty" json:"useAliases,omitempty"`
	Hierarchy       *Hierarchy `yaml:"hierarchy,omitempty" json:"hierarchy,omitempty"`
	Sortable        *Sortable  `yaml:"sortable,omitempty" json:"sortable,omitempty"`
	SeedCount       *int       `yaml:"seedCount,omitempty" json:"seedCount,omitempty"`
	TeamID          string     `yaml:"teamId,omitempty" json:"teamId,omitempty"`
}

// Config is the fully-resolved generation configuration. Every generator
// treats it as read-only and complete.
type Config struct {
	Layer           string
	Collection      string
	Dialect         string
	UseMetadata     bool
	UseTranslations bool
	UseAliases      bool
	Hierarchy       Hierarchy
	Sortable        Sortable
	SeedCount       int
	TeamID          string

	// GeneratedAt stamps the emitted file headers. The orchestrator sets it
	// once per run; tests inject a fixed time so output is byte-identical.
	GeneratedAt time.Time
}

// Normalize validates o and fills in every default. Hierarchy and sortable
// are mutually exclusive; when both are enabled, hierarchy wins and sortable
// is cleared.
func (o Options) Normalize() (Config, error) {
	if o.Layer == "" {
		return Config{}, fmt.Errorf("layer is required")
	}
	if o.Collection == "" {
		return Config{}, fmt.Errorf("collection is required")
	}

	dialect := o.Dialect
	if dialect == "" {
		dialect = DefaultDialect
	}
	if dialect != "sqlite" && dialect != "pg" {
		return Config{}, fmt.Errorf("unknown dialect %q (valid: sqlite, pg)", dialect)
	}

	cfg := Config{
		Layer:           o.Layer,
		Collection:      o.Collection,
		Dialect:         dialect,
		UseMetadata:     boolOr(o.UseMetadata, true),
		UseTranslations: boolOr(o.UseTranslations, false),
		UseAliases:      boolOr(o.UseAliases, true),
		SeedCount:       intOr(o.SeedCount, DefaultSeedCount),
		TeamID:          o.TeamID,
	}
	if cfg.TeamID == "" {
		cfg.TeamID = DefaultTeamID
	}
	if cfg.SeedCount <= 0 {
		cfg.SeedCount = DefaultSeedCount
	}

	if o.Hierarchy != nil && o.Hierarchy.Enabled {
		cfg.Hierarchy = *o.Hierarchy
		if cfg.Hierarchy.ParentField == "" {
			cfg.Hierarchy.ParentField = DefaultParentField
		}
		if cfg.Hierarchy.PathField == "" {
			cfg.Hierarchy.PathField = DefaultPathField
		}
		if cfg.Hierarchy.DepthField == "" {
			cfg.Hierarchy.DepthField = DefaultDepthField
		}
		if cfg.Hierarchy.OrderField == "" {
			cfg.Hierarchy.OrderField = DefaultOrderField
		}
	} else if o.Sortable != nil && o.Sortable.Enabled {
		cfg.Sortable = *o.Sortable
		if cfg.Sortable.OrderField == "" {
			cfg.Sortable.OrderField = DefaultOrderField
		}
	}

	return cfg, nil
}

// Cases returns the derived case forms of the collection name.
func (c Config) Cases() naming.CaseForms {
	return naming.ToCase(c.Collection)
}

// TableBinding is the exported TypeScript binding for the table, e.g. layer
// "shop" + collection "products" -> "shopProducts".
func (c Config) TableBinding() string {
	return naming.Camel(c.Layer) + c.Cases().PascalCasePlural
}

// TableName is the physical snake_case table name, e.g. "shop_products".
func (c Config) TableName() string {
	return naming.Snake(c.TableBinding())
}

// LayerName is the virtual layer namespace for import aliases.
func (c Config) LayerName() string {
	return c.Layer + "-" + c.Collection
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}
