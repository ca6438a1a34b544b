package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target is one collection to generate in config-file mode.
type Target struct {
	Options    `yaml:",inline"`
	FieldsFile string `yaml:"fieldsFile" json:"fieldsFile"`
}

// File is the multi-target configuration document. Top-level values act as
// defaults for every target; a target may override any of them.
type File struct {
	Dialect         string   `yaml:"dialect,omitempty"`
	UseMetadata     *bool    `yaml:"useMetadata,omitempty"`
	UseTranslations *bool    `yaml:"useTranslations,omitempty"`
	UseAliases      *bool    `yaml:"useAliases,omitempty"`
	SeedCount       *int     `yaml:"seedCount,omitempty"`
	TeamID          string   `yaml:"teamId,omitempty"`
	OutputDir       string   `yaml:"outputDir,omitempty"`
	Targets         []Target `yaml:"targets"`
}

// LoadFile reads a crouton config file. YAML is a superset of JSON, so both
// formats parse through the same path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(f.Targets) == 0 {
		return nil, fmt.Errorf("config %s defines no targets", path)
	}
	for i, t := range f.Targets {
		if t.Layer == "" || t.Collection == "" {
			return nil, fmt.Errorf("target %d: layer and collection are required", i)
		}
		if t.FieldsFile == "" {
			return nil, fmt.Errorf("target %d (%s/%s): fieldsFile is required", i, t.Layer, t.Collection)
		}
	}

	return &f, nil
}

// TargetOptions merges the file-level defaults into one target's options.
// Target values win over file-level values.
func (f *File) TargetOptions(t Target) Options {
	opts := t.Options

	if opts.Dialect == "" {
		opts.Dialect = f.Dialect
	}
	if opts.UseMetadata == nil {
		opts.UseMetadata = f.UseMetadata
	}
	if opts.UseTranslations == nil {
		opts.UseTranslations = f.UseTranslations
	}
	if opts.UseAliases == nil {
		opts.UseAliases = f.UseAliases
	}
	if opts.SeedCount == nil {
		opts.SeedCount = f.SeedCount
	}
	if opts.TeamID == "" {
		opts.TeamID = f.TeamID
	}

	return opts
}
