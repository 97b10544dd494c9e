package ignorefile

// Grouping controls how entries collapse into report rows.
type Grouping struct {
	// Depth keeps only the first Depth path segments of each filename.
	// Zero or less groups by the full filename.
	Depth int

	// SuppressFiles drops the filename from the grouping key.
	SuppressFiles bool

	// SuppressChecks drops the check from the grouping key.
	SuppressChecks bool
}

// Key is the grouping identity of a row. Suppressed dimensions are empty.
type Key struct {
	File  string
	Check string
}

// KeyOf derives the grouping key of e.
func (g Grouping) KeyOf(e Entry) Key {
	var k Key
	if !g.SuppressFiles {
		k.File = e.FilePart(g.Depth)
	}
	if !g.SuppressChecks {
		k.Check = e.CheckCode()
	}
	return k
}

// Row is one line of the report: a key and the number of entries folded
// into it.
type Row struct {
	Key
	Count int
}

// Table accumulates rows by key and remembers the order in which keys were
// first seen. The zero value is not usable; see NewTable.
type Table struct {
	grouping Grouping
	rows     []*Row
	index    map[Key]*Row
	total    int
}

// NewTable returns an empty table using g to derive keys.
func NewTable(g Grouping) *Table {
	return &Table{grouping: g, index: make(map[Key]*Row)}
}

// Add folds e into the row for its key, creating it with count 1 on first
// sight.
func (t *Table) Add(e Entry) {
	k := t.grouping.KeyOf(e)
	t.total++
	if r, ok := t.index[k]; ok {
		r.Count++
		return
	}
	r := &Row{Key: k, Count: 1}
	t.index[k] = r
	t.rows = append(t.rows, r)
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.rows) }

// Total returns the number of entries added.
func (t *Table) Total() int { return t.total }

// Rows returns a copy of the rows in first-seen order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = *r
	}
	return out
}

// Aggregate folds entries into a table grouped by g.
func Aggregate(entries []Entry, g Grouping) *Table {
	t := NewTable(g)
	for _, e := range entries {
		t.Add(e)
	}
	return t
}
