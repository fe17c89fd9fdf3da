package perfprof

import (
	"fmt"
	"strconv"
	"strings"
)

// keySep joins key parts internally. It cannot appear in rendered numbers or bools.
const keySep = "\x1f"

// Key identifies a problem instance or a method by the values of one or more columns.
//
// Keys built from the same column values compare equal with ==, so they can be
// used directly as map keys.
type Key struct {
	id    string
	parts int
}

// Parts returns the individual column values of the key.
func (k Key) Parts() []string {
	if k.parts == 0 {
		return nil
	}
	return strings.SplitN(k.id, keySep, k.parts)
}

// String renders the key. Composite keys render as a tuple: "(1, 2)".
// A part holding a comma, parenthesis or quote is quoted so that distinct
// keys never render alike.
func (k Key) String() string {
	if k.parts <= 1 {
		return k.id
	}
	parts := k.Parts()
	for i, p := range parts {
		if strings.ContainsAny(p, ",()\"") {
			parts[i] = strconv.Quote(p)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// NewKey builds a key from already-rendered parts.
func NewKey(parts ...string) Key {
	return Key{id: strings.Join(parts, keySep), parts: len(parts)}
}

// keyer builds keys for table rows from a fixed set of columns.
type keyer struct {
	columns []Column
}

func newKeyer(t *Table, names []string) (keyer, error) {
	k := keyer{columns: make([]Column, 0, len(names))}
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return keyer{}, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
		}
		k.columns = append(k.columns, c)
	}
	return k, nil
}

func (k keyer) key(row int) Key {
	parts := make([]string, len(k.columns))
	for i, c := range k.columns {
		parts[i] = c.Values[row].String()
	}
	return NewKey(parts...)
}

// keyIndex assigns dense indices to keys in order of first appearance.
type keyIndex struct {
	keys  []Key
	index map[Key]int
}

func newKeyIndex() *keyIndex {
	return &keyIndex{index: make(map[Key]int)}
}

func (ki *keyIndex) add(k Key) int {
	if i, ok := ki.index[k]; ok {
		return i
	}
	i := len(ki.keys)
	ki.keys = append(ki.keys, k)
	ki.index[k] = i
	return i
}

// GroupRows groups row indices of t by the key formed from the named columns.
// Groups are returned in order of first appearance; rows within a group keep table order.
func GroupRows(t *Table, columns []string) ([]Key, [][]int, error) {
	k, err := newKeyer(t, columns)
	if err != nil {
		return nil, nil, err
	}

	ki := newKeyIndex()
	var groups [][]int
	for row := 0; row < t.Len(); row++ {
		i := ki.add(k.key(row))
		if i == len(groups) {
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], row)
	}
	return ki.keys, groups, nil
}
