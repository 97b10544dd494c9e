// Package ignorefile computes statistics over Ansible sanity-test ignore
// files.
//
// Collections keep one ignore file per ansible-core version under
// tests/sanity, named ignore-<version>.txt. Each line exempts one file from
// one sanity check:
//
//	plugins/modules/foo.py validate-modules:no-default # tracked in #123
//
// # Pipeline
//
// A report is produced in five synchronous stages:
//
//  1. [Sources] resolves a version token into the files (or stdin) to read.
//  2. [Parse] turns each line into an [Entry], rejecting malformed lines and
//     dropping lines that do not pass the [Filter].
//  3. [Aggregate] folds entries into a [Table] keyed by [Grouping].
//  4. [Rank] orders rows by descending count and [Window] selects the
//     leading or trailing part.
//  5. [Render] prints each [Row].
//
// [Report] chains all of them.
//
// # Ordering
//
// Rows with equal counts are listed in the order their keys first appeared
// in the input, so the same files always produce the same report.
package ignorefile
