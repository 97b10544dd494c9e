package ignorefile

import (
	"io"
	"time"

	"github.com/andebox/andebox/pkg/observability"
)

// Options configures one statistics run.
type Options struct {
	Dir      string    // directory holding the ignore files, usually SanityDir
	Version  string    // version token: "", Stdin or an explicit version
	Stdin    io.Reader // read when Version is Stdin
	Filter   Filter
	Grouping Grouping
	Head     int // window size: 0 all, >0 leading, <0 trailing
}

// Result holds the outcome of a run.
type Result struct {
	Sources []string // names of the sources read, in order
	Entries int      // entries that survived filtering
	Ranked  []Row    // every row, ranked
	Rows    []Row    // the windowed rows to display
}

// Report runs the whole pipeline: resolve sources, parse every line, group,
// rank and window. Every source is fully read before grouping starts, so a
// malformed line anywhere means no rows at all.
func Report(opts Options) (*Result, error) {
	sources, err := Sources(opts.Dir, opts.Version, opts.Stdin)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	var entries []Entry
	for _, s := range sources {
		start := time.Now()
		got, err := s.Read(opts.Filter)
		observability.Ignores().OnSourceRead(s.Name, len(got), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		res.Sources = append(res.Sources, s.Name)
		entries = append(entries, got...)
	}

	t := Aggregate(entries, opts.Grouping)
	res.Entries = t.Total()
	res.Ranked = Rank(t)
	observability.Ignores().OnReport(len(res.Ranked), res.Entries)

	res.Rows = Window(res.Ranked, opts.Head)
	return res, nil
}
