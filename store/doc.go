// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds every SQL query behind one struct.

	st := store.New(conn)

Handlers never touch *sql.DB directly; the export pipeline sees the
store only through the small interfaces in package export. ListVotes is
a single ordered query per call, so one export reads one consistent
snapshot of the vote log.

Queries use ascending positional $n placeholders, which bind the same
way on lib/pq and modernc.org/sqlite. Lookups for a missing survey
return an error wrapping sql.ErrNoRows; callers branch with errors.Is.
*/
package store
