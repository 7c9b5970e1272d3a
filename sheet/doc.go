// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet renders survey blocks into an XLSX worksheet via excelize.

A block is: a title banner merged across every column, a question header
tier (multi-select headers merged over their option columns), an option
sub-header tier when the survey has a multi-select question, then one
data row per respondent. Two metadata columns lead each block: the row
ordinal and the respondent's first-seen timestamp.

The cell contract matters more than the styling: single-choice cells hold
the first chosen option's text, multi-select option cells hold
SelectedMark or stay blank, and unanswered questions stay blank. Existing
downstream consumers parse exports on those rules.
*/
package sheet
