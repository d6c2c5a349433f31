package query

import "fmt"

// Binder collects bound values and returns the placeholder to embed in SQL.
type Binder interface {
	Bind(value interface{}) string
}

// namedBinder produces Spanner named parameters (@p0, @p1, ...).
type namedBinder struct {
	params map[string]interface{}
}

func newNamedBinder() *namedBinder {
	return &namedBinder{params: make(map[string]interface{})}
}

// Bind stores the value under the next parameter name.
func (b *namedBinder) Bind(value interface{}) string {
	name := fmt.Sprintf("p%d", len(b.params))
	b.params[name] = value
	return "@" + name
}

// positionalBinder produces database/sql positional placeholders (?).
type positionalBinder struct {
	args []interface{}
}

// Bind appends the value to the argument list.
func (b *positionalBinder) Bind(value interface{}) string {
	b.args = append(b.args, value)
	return "?"
}
