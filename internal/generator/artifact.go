// Package generator emits the source artifacts for one collection: the
// drizzle schema, the client composable, the team-scoped API handlers, the
// queries module, the seed script, and the raw SQL DDL.
//
// Every generator here is a pure function of (fields, config): no I/O, no
// clock reads, no mutable package state. Identical inputs produce identical
// output text, so concurrent generation of different collections is safe.
package generator

import (
	"strings"

	"github.com/example/crouton/internal/config"
)

// Artifact is one generated file: a repo-relative path plus its full source
// text. Artifacts are created fresh on every invocation and fully replace
// whatever was generated before.
type Artifact struct {
	Path    string
	Content string
}

// section is one structural block of a generated file. Files are assembled
// from an ordered section list so tests can assert on blocks independently.
type section struct {
	name string
	body string
}

// joinSections concatenates non-empty section bodies, one blank line apart.
func joinSections(sections []section) string {
	var parts []string
	for _, s := range sections {
		if s.body != "" {
			parts = append(parts, s.body)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// findSection returns the body of a named section, for tests.
func findSection(sections []section, name string) string {
	for _, s := range sections {
		if s.name == name {
			return s.body
		}
	}
	return ""
}

// header is the shared first line of every generated file. The timestamp
// comes from the config so output stays reproducible under test.
func header(cfg config.Config) string {
	h := "// Generated by crouton-generate for " + cfg.Layer + "/" + cfg.Collection + ". Do not edit by hand."
	if !cfg.GeneratedAt.IsZero() {
		h += "\n// Generated at " + cfg.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z") + "."
	}
	return h
}

// sqlHeader is the DDL variant of header.
func sqlHeader(cfg config.Config) string {
	h := "-- Generated by crouton-generate for " + cfg.Layer + "/" + cfg.Collection + ". Do not edit by hand."
	if !cfg.GeneratedAt.IsZero() {
		h += "\n-- Generated at " + cfg.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z") + "."
	}
	return h
}
