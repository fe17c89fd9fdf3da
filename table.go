package perfprof

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single table cell.
//
// The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	str  string
	flag bool
}

// Null returns a missing value.
func Null() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric value from an integer.
func Int(i int) Value { return Value{kind: KindNumber, num: float64(i)} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind reports the type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is missing. NaN numbers count as missing.
func (v Value) IsNull() bool {
	return v.kind == KindNull || (v.kind == KindNumber && math.IsNaN(v.num))
}

// Float returns the numeric value and whether v holds a number.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Truth returns the boolean value and whether v holds a bool.
func (v Value) Truth() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// String renders the value for keys and reports.
// Whole numbers render without a fractional part, so 1.0 and 1 produce the same key.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		if v.flag {
			return "True"
		}
		return "False"
	default:
		return "NaN"
	}
}

// Column is a named sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// Table is an in-memory column-oriented table with named columns of equal length.
//
// Example:
//
//	t := perfprof.NewTable()
//	_ = t.AddColumn(perfprof.IntColumn("problem", 1, 1, 2, 2))
//	_ = t.AddColumn(perfprof.StringColumn("method", "A", "B", "A", "B"))
//	_ = t.AddColumn(perfprof.FloatColumn("obj", 2, 20, 25, 5))
type Table struct {
	order   []string
	columns map[string]Column
	rows    int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{columns: make(map[string]Column)}
}

// AddColumn appends a column. The first column fixes the row count.
func (t *Table) AddColumn(c Column) error {
	if _, ok := t.columns[c.Name]; ok {
		return fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)
	}
	if len(t.order) > 0 && len(c.Values) != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d: %w",
			c.Name, len(c.Values), t.rows, ErrColumnLength)
	}
	if len(t.order) == 0 {
		t.rows = len(c.Values)
	}
	t.order = append(t.order, c.Name)
	t.columns[c.Name] = c
	return nil
}

// SetConstant sets every row of the named column to v, adding the column if needed.
func (t *Table) SetConstant(name string, v Value) {
	values := make([]Value, t.rows)
	for i := range values {
		values[i] = v
	}
	if _, ok := t.columns[name]; !ok {
		t.order = append(t.order, name)
	}
	t.columns[name] = Column{Name: name, Values: values}
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Has reports whether the table has the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.columns[name]
	return c, ok
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.order))
	for j, name := range t.order {
		row[j] = t.columns[name].Values[i]
	}
	return row
}

// FloatColumn builds a numeric column.
func FloatColumn(name string, values ...float64) Column {
	c := Column{Name: name, Values: make([]Value, len(values))}
	for i, f := range values {
		c.Values[i] = Number(f)
	}
	return c
}

// IntColumn builds a numeric column from integers.
func IntColumn(name string, values ...int) Column {
	c := Column{Name: name, Values: make([]Value, len(values))}
	for i, n := range values {
		c.Values[i] = Int(n)
	}
	return c
}

// StringColumn builds a string column.
func StringColumn(name string, values ...string) Column {
	c := Column{Name: name, Values: make([]Value, len(values))}
	for i, s := range values {
		c.Values[i] = String(s)
	}
	return c
}

// BoolColumn builds a boolean column.
func BoolColumn(name string, values ...bool) Column {
	c := Column{Name: name, Values: make([]Value, len(values))}
	for i, b := range values {
		c.Values[i] = Bool(b)
	}
	return c
}
