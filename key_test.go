package perfprof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_String(t *testing.T) {
	if got := NewKey("1").String(); got != "1" {
		t.Errorf("Single key renders %q, want 1", got)
	}
	if got := NewKey("1", "2").String(); got != "(1, 2)" {
		t.Errorf("Composite key renders %q, want (1, 2)", got)
	}
	if NewKey("1", "2") != NewKey("1", "2") {
		t.Error("Equal parts must give equal keys")
	}
	if NewKey("1", "2") == NewKey("12") {
		t.Error("Part boundaries must matter")
	}

	parts := NewKey("a", "b", "c").Parts()
	if len(parts) != 3 || parts[2] != "c" {
		t.Errorf("Unexpected parts: %v", parts)
	}
	if (Key{}).Parts() != nil {
		t.Error("Zero key has no parts")
	}
}

func TestGroupRows_Composite(t *testing.T) {
	tbl := scenarioTwo(t)

	keys, groups, err := GroupRows(tbl, []string{"var_1", "var_2"})
	require.NoError(t, err)

	if len(keys) != 6 {
		t.Fatalf("Expected 6 groups, got %d", len(keys))
	}
	for i, g := range groups {
		if len(g) != 2 {
			t.Errorf("group %s has %d rows, want 2", keys[i], len(g))
		}
		if g[0] != 2*i || g[1] != 2*i+1 {
			t.Errorf("group %s rows %v, want [%d %d]", keys[i], g, 2*i, 2*i+1)
		}
	}
}

func TestGroupRows_OrderOfFirstAppearance(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.AddColumn(StringColumn("problem", "z", "a", "z", "m")))

	keys, groups, err := GroupRows(tbl, []string{"problem"})
	require.NoError(t, err)

	want := []string{"z", "a", "m"}
	for i, k := range keys {
		if k.String() != want[i] {
			t.Errorf("key %d = %s, want %s", i, k, want[i])
		}
	}
	if len(groups[0]) != 2 || groups[0][1] != 2 {
		t.Errorf("Expected z rows [0 2], got %v", groups[0])
	}

	_, _, err = GroupRows(tbl, []string{"missing"})
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestKey_StringQuotesSeparators(t *testing.T) {
	a := NewKey("a, b", "c")
	b := NewKey("a", "b, c")

	if a.String() == b.String() {
		t.Fatalf("Distinct keys render alike: %s", a)
	}
	if got := a.String(); got != `("a, b", c)` {
		t.Errorf("Composite key renders %s, want (\"a, b\", c)", got)
	}
	if got := NewKey("x(1)", "y").String(); got != `("x(1)", y)` {
		t.Errorf("Parenthesised part renders %s", got)
	}
	if got := NewKey("a, b").String(); got != "a, b" {
		t.Errorf("Single key should render as-is, got %s", got)
	}
}
