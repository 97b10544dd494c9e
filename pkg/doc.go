// Package pkg provides the libraries behind the andebox command-line tool.
//
// # Overview
//
// andebox helps Ansible collection developers with the chores around
// ansible-test. The pkg directory is organized by concern:
//
//  1. [ignorefile] - Sanity test ignore files: parsing, grouping, ranking, rendering
//  2. [collection] - Collection metadata (galaxy.yml) and plugin routing (meta/runtime.yml)
//  3. [workspace] - Scratch ansible_collections trees for running ansible-test
//  4. [toolrun] and [toxini] - External tools (ansible-test, tox) and the default tox configuration
//  5. [config], [errors], [observability], [buildinfo] - Ambient support
//
// # Architecture
//
// The ignores report is a straight pipeline:
//
//	tests/sanity/ignore-<version>.txt (or stdin)
//	         ↓
//	    [ignorefile.Sources]   (select the files)
//	         ↓
//	    [ignorefile.Parse]     (one Entry per line, filters applied)
//	         ↓
//	    [ignorefile.Aggregate] (group by file part and check)
//	         ↓
//	    [ignorefile.Rank] / [ignorefile.Window]
//	         ↓
//	    [ignorefile.Render]    (one line per row)
//
// # Quick Start
//
//	f, _ := ignorefile.NewFilter("^plugins/modules/", "")
//	res, err := ignorefile.Report(ignorefile.Options{
//	    Dir:      ignorefile.SanityDir,
//	    Filter:   f,
//	    Grouping: ignorefile.Grouping{Depth: 3, SuppressChecks: true},
//	    Head:     10,
//	})
//	if err != nil {
//	    return err
//	}
//	ignorefile.Render(os.Stdout, res.Rows)
//
// # Observability
//
// Libraries report progress through [observability] hooks; nothing is logged
// unless the caller registers hooks. The andebox CLI does so with --verbose.
//
// [ignorefile]: https://pkg.go.dev/github.com/andebox/andebox/pkg/ignorefile
// [collection]: https://pkg.go.dev/github.com/andebox/andebox/pkg/collection
// [workspace]: https://pkg.go.dev/github.com/andebox/andebox/pkg/workspace
// [toolrun]: https://pkg.go.dev/github.com/andebox/andebox/pkg/toolrun
// [toxini]: https://pkg.go.dev/github.com/andebox/andebox/pkg/toxini
// [config]: https://pkg.go.dev/github.com/andebox/andebox/pkg/config
// [errors]: https://pkg.go.dev/github.com/andebox/andebox/pkg/errors
// [observability]: https://pkg.go.dev/github.com/andebox/andebox/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/andebox/andebox/pkg/buildinfo
package pkg
