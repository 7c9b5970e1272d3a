// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export orchestrates survey exports.

For each survey it reads one consistent vote snapshot, reconstructs
respondents (package respondents), plans the column layout (package
layout), and renders a block (package sheet), then serializes the
workbook.

Two entry points:

	data, name, err := exporter.ExportSurvey(id) // ErrNotFound on bad id
	data, name, err := exporter.ExportAll()      // ErrNoContent when empty

ExportAll writes sequential blocks into one sheet with exactly one blank
row between consecutive blocks and skips surveys whose vote data cannot
be read. All other irregularities (missing answers, stale option
indexes, zero questions) degrade to blank or placeholder cells inside
the lower layers; only the two sentinel errors above reach the caller.
*/
package export
