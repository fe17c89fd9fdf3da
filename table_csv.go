package perfprof

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads a table with a header row.
//
// Each column gets one type, inferred from its non-empty cells in this order:
// bool (true/false, any case), number, string. Empty cells and "NaN" become null.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	raw := make([][]string, len(header))
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		for i := range header {
			raw[i] = append(raw[i], strings.TrimSpace(record[i]))
		}
	}

	t := NewTable()
	for i, name := range header {
		if err := t.AddColumn(inferColumn(strings.TrimSpace(name), raw[i])); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func inferColumn(name string, cells []string) Column {
	c := Column{Name: name, Values: make([]Value, len(cells))}

	switch {
	case allCells(cells, isBoolCell):
		for i, s := range cells {
			if isNullCell(s) {
				continue
			}
			c.Values[i] = Bool(strings.EqualFold(s, "true"))
		}
	case allCells(cells, isNumberCell):
		for i, s := range cells {
			if isNullCell(s) {
				continue
			}
			f, _ := strconv.ParseFloat(s, 64)
			c.Values[i] = Number(f)
		}
	default:
		for i, s := range cells {
			if s == "" {
				continue
			}
			c.Values[i] = String(s)
		}
	}
	return c
}

// allCells reports whether every non-null cell satisfies ok and at least one exists.
func allCells(cells []string, ok func(string) bool) bool {
	seen := false
	for _, s := range cells {
		if isNullCell(s) {
			continue
		}
		if !ok(s) {
			return false
		}
		seen = true
	}
	return seen
}

func isNullCell(s string) bool { return s == "" || s == "NaN" }

func isBoolCell(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

func isNumberCell(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
