// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package respondents rebuilds logical respondents from the flat vote log.

A vote event carries at most one reliable identity signal: an explicit
session token. Events from legacy kiosk clients have none, so the package
falls back to clustering anonymous events by client address within a
10-minute window (AnonWindow). The result is one RespondentRow per
inferred person, holding every choice they made, in vote order.

	rows := respondents.Reconstruct(events, respondents.QuestionsByID(questions))

Guarantees:

  - A non-empty session token always wins: all events sharing it land in
    one row, regardless of time gaps or addresses.
  - No event is dropped. A stale option index (question edited after the
    vote) records PlaceholderText next to the raw index.
  - Output order is first-appearance order, so re-running on the same
    input yields the same rows.

Reconstruct is pure: no storage, no clock, no side effects.
*/
package respondents
