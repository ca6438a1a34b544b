package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/logging"
	"github.com/example/crouton/internal/schema"
)

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Generate every target listed in a crouton config file",
	Long: `Read a multi-target config file and generate all collections it lists.
Top-level values act as defaults; each target may override them.

Example config:

  dialect: pg
  useTranslations: true
  targets:
    - layer: shop
      collection: products
      fieldsFile: ./schemas/products.json
    - layer: shop
      collection: categories
      fieldsFile: ./schemas/categories.json
      hierarchy:
        enabled: true`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "crouton.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		logging.SetVerbose(genFlags.verbose)
		return runConfig(cmd, path)
	},
}

func init() {
	configCmd.Flags().BoolVar(&genFlags.dryRun, "dry-run", false, "Preview without writing files")
	configCmd.Flags().BoolVar(&genFlags.force, "force", false, "Overwrite existing files")
	configCmd.Flags().BoolVar(&genFlags.noDB, "no-db", false, "Skip pushing generated DDL to the dev database")
	configCmd.Flags().StringVar(&genFlags.dbDSN, "db", "", "Dev database DSN")
	configCmd.Flags().StringVar(&genFlags.outputDir, "output-dir", "", "Override the config file's output directory")
	configCmd.Flags().BoolVar(&genFlags.verbose, "verbose", false, "Enable debug logging")
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}

// target bundles everything one generation run needs, resolved up front so
// the parallel phase is pure generation plus writes.
type target struct {
	fields []schema.Field
	cfg    config.Config
}

func runConfig(cmd *cobra.Command, path string) error {
	file, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	outputDir := file.OutputDir
	if genFlags.outputDir != "" {
		outputDir = genFlags.outputDir
	}
	if outputDir == "" {
		outputDir = "."
	}

	baseDir := filepath.Dir(path)
	generatedAt := time.Now()

	// Resolve and validate every target before generating anything, so a
	// broken target fails the run without partial output.
	targets := make([]target, 0, len(file.Targets))
	for _, t := range file.Targets {
		cfg, err := file.TargetOptions(t).Normalize()
		if err != nil {
			return fmt.Errorf("target %s/%s: %w", t.Layer, t.Collection, err)
		}
		cfg.GeneratedAt = generatedAt

		fieldsPath := t.FieldsFile
		if !filepath.IsAbs(fieldsPath) {
			fieldsPath = filepath.Join(baseDir, fieldsPath)
		}
		fields, err := loadFields(fieldsPath)
		if err != nil {
			return fmt.Errorf("target %s/%s: %w", t.Layer, t.Collection, err)
		}

		targets = append(targets, target{fields: fields, cfg: cfg})
	}

	// Generation is pure per collection, so targets run in parallel. Dry
	// runs stay sequential to keep the preview output readable.
	if genFlags.dryRun {
		for _, t := range targets {
			if err := generateTarget(cmd.Context(), t, outputDir); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, t := range targets {
		t := t
		g.Go(func() error {
			if err := generateTarget(ctx, t, outputDir); err != nil {
				return fmt.Errorf("%s/%s: %w", t.cfg.Layer, t.cfg.Collection, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func generateTarget(ctx context.Context, t target, outputDir string) error {
	return generateOne(ctx, t.fields, t.cfg, writeOptions{
		outputDir: outputDir,
		dryRun:    genFlags.dryRun,
		force:     genFlags.force,
	}, genFlags.noDB, genFlags.dbDSN)
}
