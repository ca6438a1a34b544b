// Package seed maps field names and types to fake-data generator expressions
// for the emitted seed scripts. Expressions target the drizzle-seed `f.`
// generator namespace.
package seed

import (
	"strings"

	"github.com/example/crouton/internal/typemap"
)

// nameRule pairs a set of field names with a generator expression. Rules are
// evaluated in order: every rule is tried as an exact match first, then the
// whole list is retried with substring matching, so `userEmail` still picks
// up the email generator after exact matches have had their chance.
type nameRule struct {
	names []string
	expr  string
}

var nameRules = []nameRule{
	{[]string{"email"}, "f.email()"},
	{[]string{"firstName"}, "f.firstName()"},
	{[]string{"lastName"}, "f.lastName()"},
	{[]string{"name", "fullName"}, "f.fullName()"},
	{[]string{"title"}, "f.loremIpsum({ sentencesCount: 1 })"},
	{[]string{"description", "content"}, "f.loremIpsum({ sentencesCount: 3 })"},
	{[]string{"phone", "phoneNumber"}, "f.phoneNumber()"},
	{[]string{"price", "amount"}, "f.number({ minValue: 1, maxValue: 1000, precision: 100 })"},
	{[]string{"quantity", "count"}, "f.int({ minValue: 0, maxValue: 100 })"},
	{[]string{"address"}, "f.streetAddress()"},
	{[]string{"city"}, "f.city()"},
	{[]string{"status"}, "f.valuesFromArray({ values: ['active', 'inactive', 'pending'] })"},
}

var typeFallbacks = map[typemap.FieldType]string{
	typemap.TypeString:   "f.loremIpsum({ sentencesCount: 1 })",
	typemap.TypeText:     "f.loremIpsum({ sentencesCount: 3 })",
	typemap.TypeNumber:   "f.int({ minValue: 0, maxValue: 1000 })",
	typemap.TypeDecimal:  "f.number({ minValue: 0, maxValue: 1000, precision: 100 })",
	typemap.TypeBoolean:  "f.boolean()",
	typemap.TypeDate:     "f.date({ minDate: '2020-01-01', maxDate: '2025-12-31' })",
	typemap.TypeJSON:     "f.default({ defaultValue: [{}] })",
	typemap.TypeRepeater: "f.default({ defaultValue: [{}] })",
	typemap.TypeArray:    "f.default({ defaultValue: [] })",
}

// Expr returns a generator expression for a field. Resolution order: exact
// name match, substring name match, then fallback by type. Every (name, type)
// pair produces a non-empty expression.
func Expr(name string, t typemap.FieldType) string {
	lower := strings.ToLower(name)

	for _, rule := range nameRules {
		for _, n := range rule.names {
			if lower == strings.ToLower(n) {
				return rule.expr
			}
		}
	}
	for _, rule := range nameRules {
		for _, n := range rule.names {
			if strings.Contains(lower, strings.ToLower(n)) {
				return rule.expr
			}
		}
	}

	if expr, ok := typeFallbacks[t]; ok {
		return expr
	}
	return typeFallbacks[typemap.TypeString]
}
