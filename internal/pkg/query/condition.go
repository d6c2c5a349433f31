package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations render an SQL fragment and hand every value to the Binder,
// which decides the placeholder syntax (@p0 for Spanner, ? for database/sql).
type Condition interface {
	// SQL returns the SQL fragment for this condition.
	SQL(b Binder) string
}

// comparison implements binary comparisons (field <op> value).
type comparison struct {
	field string
	op    string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "active") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &comparison{field: field, op: "=", value: value}
}

// Gte creates a WHERE condition for "greater than or equal".
// Example: Gte("price", 10.0) generates "price >= @p0"
func Gte(field string, value interface{}) Condition {
	return &comparison{field: field, op: ">=", value: value}
}

// Lte creates a WHERE condition for "less than or equal".
// Example: Lte("price", 50.0) generates "price <= @p0"
func Lte(field string, value interface{}) Condition {
	return &comparison{field: field, op: "<=", value: value}
}

// Like creates a WHERE condition for pattern matching.
// The pattern is bound as-is, callers add the % wildcards.
// Example: Like("LOWER(name)", "%red%") generates "LOWER(name) LIKE @p0"
func Like(field string, pattern string) Condition {
	return &comparison{field: field, op: "LIKE", value: pattern}
}

// SQL generates the SQL fragment for the comparison.
func (c *comparison) SQL(b Binder) string {
	return fmt.Sprintf("%s %s %s", c.field, c.op, b.Bind(c.value))
}

// orCondition joins conditions with OR inside parentheses.
type orCondition struct {
	conditions []Condition
}

// Or creates a WHERE condition that matches when any of the given conditions match.
// Example: Or(Eq("a", 1), Eq("b", 2)) generates "(a = @p0 OR b = @p1)"
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

// SQL generates the SQL fragment for the disjunction.
func (c *orCondition) SQL(b Binder) string {
	parts := make([]string, 0, len(c.conditions))
	for _, condition := range c.conditions {
		parts = append(parts, condition.SQL(b))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}
