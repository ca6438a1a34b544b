package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/example/crouton/internal/generator"
)

// writeOptions controls how artifacts reach the filesystem.
type writeOptions struct {
	outputDir string
	dryRun    bool
	force     bool
}

// writeArtifacts writes a generated artifact set under root. Without force,
// any pre-existing target file aborts the whole write before anything is
// touched, so a run never leaves a half-written collection behind.
func writeArtifacts(root string, arts []generator.Artifact, opts writeOptions) error {
	if opts.dryRun {
		fmt.Println("(dry-run mode - no files written)")
		fmt.Println()
		for _, a := range arts {
			fmt.Printf("--- %s ---\n", filepath.Join(root, a.Path))
			fmt.Println(a.Content)
		}
		return nil
	}

	if !opts.force {
		for _, a := range arts {
			path := filepath.Join(root, a.Path)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
	}

	for _, a := range arts {
		path := filepath.Join(root, a.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}

		existed := false
		if _, err := os.Stat(path); err == nil {
			existed = true
		}

		if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		if existed {
			fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("✓ Overwrote"), path)
		} else {
			fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("✓ Created"), path)
		}
	}

	return nil
}
