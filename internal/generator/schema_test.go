package generator

import (
	"strings"
	"testing"

	"github.com/example/crouton/internal/config"
	"github.com/example/crouton/internal/dialect"
	"github.com/example/crouton/internal/schema"
	"github.com/example/crouton/internal/typemap"
)

func minimalConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Options{Layer: "shop", Collection: "products"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return cfg
}

func productFields() []schema.Field {
	return []schema.Field{
		{Name: "name", Type: typemap.TypeString, Meta: schema.Meta{Required: true}},
		{Name: "price", Type: typemap.TypeDecimal},
		{Name: "active", Type: typemap.TypeBoolean},
	}
}

func TestSchemaMinimal(t *testing.T) {
	cfg := minimalConfig(t)
	art := Schema(productFields(), dialect.SQLite(), cfg)

	if art.Path != "server/database/schema.ts" {
		t.Errorf("Path = %q", art.Path)
	}

	mustContain := []string{
		"export const shopProducts = sqliteTable('shop_products', {",
		"import { sqliteTable, text, integer, real } from 'drizzle-orm/sqlite-core'",
		"id: text('id').primaryKey(),",
		"teamId: text('team_id').notNull(),",
		"owner: text('owner').notNull(),",
		"createdAt: integer('created_at', { mode: 'timestamp' }).notNull(),",
		"updatedBy: text('updated_by').notNull(),",
		"name: text('name').notNull(),",
		"price: real('price'),",
		"active: integer('active', { mode: 'boolean' }),",
		"export type ShopProductsSelect = typeof shopProducts.$inferSelect",
		"export type ShopProductsInsert = typeof shopProducts.$inferInsert",
	}
	for _, want := range mustContain {
		if !strings.Contains(art.Content, want) {
			t.Errorf("schema output missing %q", want)
		}
	}

	if strings.Contains(art.Content, "translations") {
		t.Error("translations column present without useTranslations")
	}
}

func TestSchemaColumnOrder(t *testing.T) {
	cfg := minimalConfig(t)
	content := Schema(productFields(), dialect.SQLite(), cfg).Content

	// id, team scoping, metadata, then schema fields in input order.
	ordered := []string{"id:", "teamId:", "owner:", "createdAt:", "updatedAt:", "createdBy:", "updatedBy:", "name:", "price:", "active:"}
	last := -1
	for _, marker := range ordered {
		idx := strings.Index(content, marker)
		if idx < 0 {
			t.Fatalf("schema output missing %q", marker)
		}
		if idx < last {
			t.Errorf("column %q out of order", marker)
		}
		last = idx
	}
}

func TestSchemaPostgres(t *testing.T) {
	cfg, err := config.Options{Layer: "shop", Collection: "products", Dialect: "pg"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := Schema(productFields(), dialect.Postgres(), cfg).Content

	mustContain := []string{
		"export const shopProducts = pgTable('shop_products', {",
		"from 'drizzle-orm/pg-core'",
		"id: uuid('id').primaryKey().defaultRandom(),",
		"teamId: uuid('team_id').notNull(),",
		"createdAt: timestamp('created_at', { withTimezone: true }).notNull(),",
		"name: varchar('name', { length: 255 }).notNull(),",
		"price: numeric('price'),",
		"active: boolean('active'),",
	}
	for _, want := range mustContain {
		if !strings.Contains(content, want) {
			t.Errorf("pg schema output missing %q", want)
		}
	}
}

func TestSchemaHierarchy(t *testing.T) {
	cfg, err := config.Options{
		Layer:      "shop",
		Collection: "categories",
		Hierarchy:  &config.Hierarchy{Enabled: true},
	}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := Schema(nil, dialect.SQLite(), cfg).Content

	mustContain := []string{
		"parentId: text('parent_id'),",
		"path: text('path').notNull().default('/'),",
		"depth: integer('depth').notNull().default(0),",
		"order: integer('order').notNull().default(0),",
	}
	for _, want := range mustContain {
		if !strings.Contains(content, want) {
			t.Errorf("hierarchy schema missing %q", want)
		}
	}
}

func TestSchemaSortable(t *testing.T) {
	cfg, err := config.Options{
		Layer:      "shop",
		Collection: "banners",
		Sortable:   &config.Sortable{Enabled: true},
	}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := Schema(nil, dialect.SQLite(), cfg).Content

	if !strings.Contains(content, "order: integer('order').notNull().default(0),") {
		t.Error("sortable schema missing order column")
	}
	if strings.Contains(content, "parentId") {
		t.Error("sortable schema contains hierarchy columns")
	}
}

func TestSchemaHierarchyExcludesSortable(t *testing.T) {
	// Even with both feature blocks set on the raw config, hierarchy wins
	// and the sortable-only column must not be emitted twice.
	cfg := minimalConfig(t)
	cfg.Hierarchy = config.Hierarchy{
		Enabled: true, ParentField: "parentId", PathField: "path", DepthField: "depth", OrderField: "order",
	}
	cfg.Sortable = config.Sortable{Enabled: true, OrderField: "order"}

	content := Schema(nil, dialect.SQLite(), cfg).Content

	if !strings.Contains(content, "parentId:") {
		t.Error("hierarchy columns missing")
	}
	if strings.Count(content, "order: integer('order')") != 1 {
		t.Errorf("order column emitted %d times, want 1", strings.Count(content, "order: integer('order')"))
	}
}

func TestSchemaTranslations(t *testing.T) {
	useTranslations := true
	cfg, err := config.Options{
		Layer:           "shop",
		Collection:      "products",
		UseTranslations: &useTranslations,
	}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := Schema(nil, dialect.SQLite(), cfg).Content

	if !strings.Contains(content, "translations: text('translations', { mode: 'json' }),") {
		t.Error("translations column missing")
	}
	if !strings.Contains(content, "{ [locale]: { [key]: string } }") {
		t.Error("translations shape comment missing")
	}
}

func TestSchemaNoMetadata(t *testing.T) {
	useMetadata := false
	cfg, err := config.Options{Layer: "shop", Collection: "products", UseMetadata: &useMetadata}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	content := Schema(productFields(), dialect.SQLite(), cfg).Content

	if strings.Contains(content, "createdAt") {
		t.Error("audit columns present with useMetadata=false")
	}
	// Team scoping is unconditional.
	if !strings.Contains(content, "teamId:") || !strings.Contains(content, "owner:") {
		t.Error("team-scoping columns missing")
	}
}

func TestSchemaDeterministic(t *testing.T) {
	cfg := minimalConfig(t)
	a := Schema(productFields(), dialect.SQLite(), cfg)
	b := Schema(productFields(), dialect.SQLite(), cfg)

	if a.Content != b.Content {
		t.Error("Schema() output differs across identical invocations")
	}
}
