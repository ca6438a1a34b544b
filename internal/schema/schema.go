// Package schema defines the field model consumed by every generator and the
// order-preserving parser for schema JSON files.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/crouton/internal/typemap"
)

// Meta carries the optional per-field metadata from a schema file.
// A missing meta block behaves as the zero value throughout.
type Meta struct {
	Required   bool   `json:"required,omitempty"`
	Unique     bool   `json:"unique,omitempty"`
	PrimaryKey bool   `json:"primaryKey,omitempty"`
	MaxLength  int    `json:"maxLength,omitempty"`
	Precision  int    `json:"precision,omitempty"`
	Scale      int    `json:"scale,omitempty"`
	Label      string `json:"label,omitempty"`
	References string `json:"references,omitempty"` // referenced collection name
}

// Field is one schema field after normalization. Type is always one of the
// nine canonical types.
type Field struct {
	Name string
	Type typemap.FieldType
	Meta Meta
}

// rawField mirrors the JSON shape of a single field entry.
type rawField struct {
	Type string `json:"type"`
	Meta Meta   `json:"meta"`
}

// Parse reads a schema JSON document of the form
//
//	{ "<fieldName>": { "type": "<type>", "meta": { ... } }, ... }
//
// and returns the fields in document order. encoding/json maps drop key
// order, so the object is walked token by token. Unknown types normalize to
// string; a duplicate field name is an error.
func Parse(r io.Reader) ([]Field, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("schema root must be a JSON object, got %v", tok)
	}

	var fields []Field
	seen := make(map[string]bool)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read field name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in schema object", tok)
		}
		if name == "" {
			return nil, fmt.Errorf("empty field name in schema")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate field %q in schema", name)
		}
		seen[name] = true

		var raw rawField
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse field %q: %w", name, err)
		}

		fields = append(fields, Field{
			Name: name,
			Type: typemap.Normalize(raw.Type),
			Meta: raw.Meta,
		})
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	return fields, nil
}
