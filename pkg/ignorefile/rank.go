package ignorefile

import (
	"cmp"
	"slices"
)

// Compare orders rows by count only. It returns a negative number when r has
// fewer entries than o, zero when counts are equal and a positive number
// otherwise.
func (r Row) Compare(o Row) int {
	return cmp.Compare(r.Count, o.Count)
}

// Rank returns the table rows by descending count. Rows with equal counts
// keep the order in which their keys were first seen.
func Rank(t *Table) []Row {
	rows := t.Rows()
	slices.SortStableFunc(rows, func(a, b Row) int { return b.Compare(a) })
	return rows
}

// Window selects part of a ranked slice: all rows for n == 0, the first n
// rows for n > 0 and the last -n rows for n < 0. Asking for more rows than
// there are returns all of them.
func Window[T any](rows []T, n int) []T {
	switch {
	case n > 0 && n < len(rows):
		return rows[:n]
	case n < 0 && n > -len(rows):
		return rows[len(rows)+n:]
	default:
		return rows
	}
}
