package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// String returns the SQL keyword for the direction.
func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

type joinClause struct {
	kind  string
	table string
	on    string
}

type orderKey struct {
	column    string
	direction Direction
}

// Builder constructs SQL SELECT queries for Cloud Spanner and database/sql.
// It provides a fluent API for building queries with JOIN, WHERE, GROUP BY,
// multi-key ORDER BY and LIMIT clauses. Every method returns a new Builder,
// so a partially built query can be shared safely.
type Builder struct {
	table        string
	selectCols   []string
	joins        []joinClause
	whereClauses []Condition
	groupByCols  []string
	orderKeys    []orderKey
	limitVal     int64
}

// From creates a new Builder for the specified table.
// The table may carry an alias, e.g. From("products p").
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = append(newBuilder.selectCols, columns...)
	return newBuilder
}

// LeftJoin adds a LEFT JOIN clause.
func (b *Builder) LeftJoin(table, on string) *Builder {
	newBuilder := b.clone()
	newBuilder.joins = append(newBuilder.joins, joinClause{kind: "LEFT JOIN", table: table, on: on})
	return newBuilder
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, condition)
	return newBuilder
}

// GroupBy adds GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	newBuilder := b.clone()
	newBuilder.groupByCols = append(newBuilder.groupByCols, columns...)
	return newBuilder
}

// OrderBy appends a sort key. Keys are applied in the order they were added,
// so the first call is the primary sort key.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderKeys = append(newBuilder.orderKeys, orderKey{column: column, direction: direction})
	return newBuilder
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Build constructs the final spanner.Statement with SQL and named parameters.
func (b *Builder) Build() spanner.Statement {
	binder := newNamedBinder()
	sql := b.render(binder)
	return spanner.Statement{
		SQL:    sql,
		Params: binder.params,
	}
}

// BuildSQL constructs the query for database/sql drivers using ? placeholders.
func (b *Builder) BuildSQL() (string, []interface{}) {
	binder := &positionalBinder{}
	sql := b.render(binder)
	return sql, binder.args
}

func (b *Builder) render(binder Binder) string {
	var sql strings.Builder

	// SELECT clause
	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	// FROM clause
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	// JOIN clauses
	for _, join := range b.joins {
		fmt.Fprintf(&sql, " %s %s ON %s", join.kind, join.table, join.on)
	}

	// WHERE clause
	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		for _, condition := range b.whereClauses {
			whereParts = append(whereParts, condition.SQL(binder))
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	// GROUP BY clause
	if len(b.groupByCols) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(b.groupByCols, ", "))
	}

	// ORDER BY clause
	if len(b.orderKeys) > 0 {
		sql.WriteString(" ORDER BY ")
		keys := make([]string, 0, len(b.orderKeys))
		for _, key := range b.orderKeys {
			keys = append(keys, key.column+" "+key.direction.String())
		}
		sql.WriteString(strings.Join(keys, ", "))
	}

	// LIMIT clause
	if b.limitVal > 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(binder.Bind(b.limitVal))
	}

	return sql.String()
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		joins:        make([]joinClause, len(b.joins)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		groupByCols:  make([]string, len(b.groupByCols)),
		orderKeys:    make([]orderKey, len(b.orderKeys)),
		limitVal:     b.limitVal,
	}
	copy(newBuilder.selectCols, b.selectCols)
	copy(newBuilder.joins, b.joins)
	copy(newBuilder.whereClauses, b.whereClauses)
	copy(newBuilder.groupByCols, b.groupByCols)
	copy(newBuilder.orderKeys, b.orderKeys)
	return newBuilder
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
