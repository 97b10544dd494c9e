package ignorefile

import (
	"fmt"
	"io"
	"strings"
)

// countWidth is the minimum width of the right-justified count column.
const countWidth = 6

// String renders the row as the count followed by the non-empty key parts.
func (r Row) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%*d", countWidth, r.Count)
	if r.File != "" {
		b.WriteByte(' ')
		b.WriteString(r.File)
	}
	if r.Check != "" {
		b.WriteByte(' ')
		b.WriteString(r.Check)
	}
	return b.String()
}

// Render writes one line per row.
func Render(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
