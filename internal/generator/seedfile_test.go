package generator

import (
	"strings"
	"testing"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

func TestSeedFileBasics(t *testing.T) {
	cfg := minimalConfig(t)
	fields := []schema.Field{
		{Name: "email", Type: typemap.TypeString},
		{Name: "unknownField", Type: typemap.TypeText},
	}

	art := SeedFile(fields, cfg)

	if art.Path != "server/database/seed.ts" {
		t.Errorf("Path = %q", art.Path)
	}

	mustContain := []string{
		"import { seed } from 'drizzle-seed'",
		"export interface SeedOptions {",
		"export async function seedShopProducts(options: SeedOptions = {}) {",
		"const count = options.count ?? 6",
		"const teamId = options.teamId ?? 'placeholder-team'",
		"await db.delete(shopProducts)",
		"teamId: f.default({ defaultValue: teamId }),",
		"owner: f.default({ defaultValue: 'seed-script' }),",
		"createdBy: f.default({ defaultValue: 'seed-script' }),",
		"updatedBy: f.default({ defaultValue: 'seed-script' }),",
		"email: f.email(),",
		"unknownField: f.loremIpsum({ sentencesCount: 3 }),",
		"if (process.argv[1] === fileURLToPath(import.meta.url)) {",
	}
	for _, want := range mustContain {
		if !strings.Contains(art.Content, want) {
			t.Errorf("seed output missing %q", want)
		}
	}
}

func TestSeedFileReferencePlaceholders(t *testing.T) {
	cfg := minimalConfig(t)
	fields := []schema.Field{
		{Name: "categoryId", Type: typemap.TypeString, Meta: schema.Meta{References: "categories"}},
	}

	content := SeedFile(fields, cfg).Content

	if !strings.Contains(content, "categoryId: f.default({ defaultValue: 'placeholder-categories-id' }),") {
		t.Error("reference placeholder missing")
	}
	if !strings.Contains(content, "replace with real categories ids") {
		t.Error("placeholder comment missing")
	}
}

func TestSeedFileHierarchyRootsOnly(t *testing.T) {
	cfg, err := config.Options{
		Layer:      "shop",
		Collection: "categories",
		Hierarchy:  &config.Hierarchy{Enabled: true},
	}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := SeedFile(nil, cfg).Content

	mustContain := []string{
		"all seeded rows are roots",
		"parentId: f.default({ defaultValue: null }),",
		"path: f.default({ defaultValue: '/' }),",
		"depth: f.default({ defaultValue: 0 }),",
	}
	for _, want := range mustContain {
		if !strings.Contains(content, want) {
			t.Errorf("hierarchy seed missing %q", want)
		}
	}
}

func TestSeedFileCustomCountAndTeam(t *testing.T) {
	count := 12
	cfg, err := config.Options{
		Layer:      "crm",
		Collection: "contacts",
		SeedCount:  &count,
		TeamID:     "team-xyz",
	}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := SeedFile(nil, cfg).Content

	if !strings.Contains(content, "options.count ?? 12") {
		t.Error("custom seed count not emitted")
	}
	if !strings.Contains(content, "options.teamId ?? 'team-xyz'") {
		t.Error("custom team id not emitted")
	}
}

func TestSeedFileDeterministic(t *testing.T) {
	cfg := minimalConfig(t)
	a := SeedFile(productFields(), cfg).Content
	b := SeedFile(productFields(), cfg).Content

	if a != b {
		t.Error("SeedFile() output differs across identical invocations")
	}
}
