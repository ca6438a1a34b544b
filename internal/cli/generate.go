package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/dbapply"
	"github.com/example/crouton/internal/generator"
	"github.com/example/crouton/internal/logging"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/version"
)

// generateFlags are the root-command flags, shared with config mode where it
// makes sense.
type generateFlags struct {
	fieldsFile     string
	dialect        string
	noTranslations bool
	noMetadata     bool
	noAliases      bool
	hierarchy      bool
	sortable       bool
	seedCount      int
	teamID         string
	outputDir      string
	dryRun         bool
	force          bool
	noDB           bool
	dbDSN          string
	verbose        bool
}

var genFlags generateFlags

// RootCmd builds the crouton-generate root command. Generation itself lives
// on the root: `crouton-generate <layer> <collection> --fields-file=...`.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "crouton-generate <layer> <collection>",
		Short:   "Generate collection boilerplate from a field schema",
		Version: version.String(),
		Long: `crouton-generate emits the full source set for one CRUD collection:
the drizzle table schema, zod validation composable, team-scoped REST
handlers, queries module, seed script, and raw SQL DDL.

Examples:
  crouton-generate shop products --fields-file ./schemas/products.json
  crouton-generate shop categories --fields-file ./schemas/categories.json --hierarchy --dialect pg
  crouton-generate config ./crouton.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetVerbose(genFlags.verbose)
			return runGenerate(cmd.Context(), args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&genFlags.fieldsFile, "fields-file", "", "Path to the schema JSON file (required)")
	cmd.Flags().StringVar(&genFlags.dialect, "dialect", config.DefaultDialect, "Target SQL dialect: sqlite or pg")
	cmd.Flags().BoolVar(&genFlags.noTranslations, "no-translations", false, "Skip the translations column")
	cmd.Flags().BoolVar(&genFlags.noMetadata, "no-metadata", false, "Skip the audit metadata columns")
	cmd.Flags().BoolVar(&genFlags.noAliases, "no-aliases", false, "Use relative import paths instead of layer aliases")
	cmd.Flags().BoolVar(&genFlags.hierarchy, "hierarchy", false, "Generate a tree-structured collection")
	cmd.Flags().BoolVar(&genFlags.sortable, "sortable", false, "Generate a drag-reorderable collection")
	cmd.Flags().IntVar(&genFlags.seedCount, "seed-count", config.DefaultSeedCount, "Default row count for the seed script")
	cmd.Flags().StringVar(&genFlags.teamID, "team-id", "", "Team id default baked into the seed script")
	cmd.Flags().StringVar(&genFlags.outputDir, "output-dir", ".", "Directory the layers tree is written under")
	cmd.Flags().BoolVar(&genFlags.dryRun, "dry-run", false, "Preview without writing files")
	cmd.Flags().BoolVar(&genFlags.force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&genFlags.noDB, "no-db", false, "Skip pushing the generated DDL to the dev database")
	cmd.Flags().StringVar(&genFlags.dbDSN, "db", "", "Dev database DSN (sqlite file path or pg connection string)")
	cmd.Flags().BoolVar(&genFlags.verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(ConfigCmd())

	return cmd
}

func runGenerate(ctx context.Context, layer, collection string) error {
	if genFlags.fieldsFile == "" {
		return fmt.Errorf("--fields-file is required")
	}

	fields, err := loadFields(genFlags.fieldsFile)
	if err != nil {
		return err
	}

	opts := config.Options{
		Layer:      layer,
		Collection: collection,
		Dialect:    genFlags.dialect,
		TeamID:     genFlags.teamID,
	}
	// The flag disables translations; flag-driven runs default them on.
	translations := !genFlags.noTranslations
	opts.UseTranslations = &translations
	if genFlags.noMetadata {
		f := false
		opts.UseMetadata = &f
	}
	if genFlags.noAliases {
		f := false
		opts.UseAliases = &f
	}
	if genFlags.hierarchy {
		opts.Hierarchy = &config.Hierarchy{Enabled: true}
	}
	if genFlags.sortable {
		opts.Sortable = &config.Sortable{Enabled: true}
	}
	if genFlags.seedCount > 0 {
		opts.SeedCount = &genFlags.seedCount
	}

	cfg, err := opts.Normalize()
	if err != nil {
		return err
	}
	cfg.GeneratedAt = time.Now()

	if genFlags.hierarchy && genFlags.sortable {
		logging.Logger.Warn("--hierarchy and --sortable are mutually exclusive; hierarchy wins")
	}

	return generateOne(ctx, fields, cfg, writeOptions{
		outputDir: genFlags.outputDir,
		dryRun:    genFlags.dryRun,
		force:     genFlags.force,
	}, genFlags.noDB, genFlags.dbDSN)
}

// generateOne runs every generator for one collection, writes the artifact
// set, and optionally pushes the DDL to the dev database.
func generateOne(ctx context.Context, fields []schema.Field, cfg config.Config, wopts writeOptions, noDB bool, dbDSN string) error {
	arts, err := generator.All(fields, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Generating %s/%s (%d fields, dialect %s)\n\n", cfg.Layer, cfg.Collection, len(fields), cfg.Dialect)

	root := filepath.Join(wopts.outputDir, "layers", cfg.LayerName())
	if err := writeArtifacts(root, arts, wopts); err != nil {
		return err
	}

	if wopts.dryRun || noDB {
		return nil
	}
	return pushDDL(ctx, cfg, arts, wopts.outputDir, dbDSN)
}

func pushDDL(ctx context.Context, cfg config.Config, arts []generator.Artifact, outputDir, dsn string) error {
	var ddl string
	for _, a := range arts {
		if strings.HasSuffix(a.Path, ".sql") {
			ddl = a.Content
			break
		}
	}
	if ddl == "" {
		return nil
	}

	if dsn == "" {
		if cfg.Dialect == "sqlite" {
			dsn = filepath.Join(outputDir, ".data", "dev.db")
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return fmt.Errorf("failed to create db directory: %w", err)
			}
		} else {
			logging.Logger.Warn("no --db DSN for pg dialect; skipping DDL push")
			return nil
		}
	}

	if err := dbapply.Apply(ctx, cfg.Dialect, dsn, ddl); err != nil {
		return fmt.Errorf("failed to push schema for %s: %w", cfg.TableName(), err)
	}
	fmt.Printf("✓ Pushed %s schema to %s\n", cfg.TableName(), dsn)
	return nil
}

func loadFields(path string) ([]schema.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fields file: %w", err)
	}
	defer f.Close()

	fields, err := schema.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: schema defines no fields", path)
	}
	return fields, nil
}
