package schema

import (
	"strings"
	"testing"

	"github.com/example/crouton/internal/typemap"
)

func TestParsePreservesOrder(t *testing.T) {
	input := `{
		"name": { "type": "string", "meta": { "required": true } },
		"price": { "type": "decimal", "meta": { "precision": 10, "scale": 2 } },
		"active": { "type": "boolean" },
		"publishedAt": { "type": "date" }
	}`

	fields, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantOrder := []string{"name", "price", "active", "publishedAt"}
	if len(fields) != len(wantOrder) {
		t.Fatalf("Parse() got %d fields, want %d", len(fields), len(wantOrder))
	}
	for i, want := range wantOrder {
		if fields[i].Name != want {
			t.Errorf("fields[%d].Name = %q, want %q", i, fields[i].Name, want)
		}
	}

	if !fields[0].Meta.Required {
		t.Error("fields[0].Meta.Required = false, want true")
	}
	if fields[1].Type != typemap.TypeDecimal {
		t.Errorf("fields[1].Type = %q, want %q", fields[1].Type, typemap.TypeDecimal)
	}
	if fields[1].Meta.Precision != 10 || fields[1].Meta.Scale != 2 {
		t.Errorf("fields[1].Meta = %+v, want precision 10 scale 2", fields[1].Meta)
	}
}

func TestParseNormalizesUnknownType(t *testing.T) {
	input := `{ "whatever": { "type": "varchar" } }`

	fields, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fields[0].Type != typemap.TypeString {
		t.Errorf("fields[0].Type = %q, want %q", fields[0].Type, typemap.TypeString)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an object", `[1, 2]`},
		{"duplicate field", `{ "a": { "type": "string" }, "a": { "type": "text" } }`},
		{"truncated", `{ "a": { "type":`},
		{"empty name", `{ "": { "type": "string" } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestParseReferences(t *testing.T) {
	input := `{ "categoryId": { "type": "string", "meta": { "references": "categories" } } }`

	fields, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fields[0].Meta.References != "categories" {
		t.Errorf("References = %q, want %q", fields[0].Meta.References, "categories")
	}
}
