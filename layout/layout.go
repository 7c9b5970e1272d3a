// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package layout

import "github.com/Neolvie/PollKiosk/models"

// ColumnSpec describes one data column of an export block.
// OptionIndex is nil for a single_choice question's column and set to the
// option's index for each of a multi_select question's columns.
type ColumnSpec struct {
	QuestionID  int64
	Label       string
	OptionIndex *int
}

// QuestionSpan records which contiguous columns a question occupies.
// Start is a 0-based offset into the plan's column sequence.
type QuestionSpan struct {
	QuestionID  int64
	Text        string
	Start       int
	Width       int
	MultiSelect bool
}

// ColumnPlan is the derived column layout for one survey's question list.
type ColumnPlan struct {
	Specs []ColumnSpec
	Spans []QuestionSpan
}

// Plan derives the column layout for a survey's ordered question list:
// one column per single_choice question, one column per option for a
// multi_select question. Offsets are assigned sequentially, so the same
// input always yields the same plan.
func Plan(questions []models.Question) ColumnPlan {
	var plan ColumnPlan

	for _, q := range questions {
		start := len(plan.Specs)

		switch q.Kind {
		case models.KindMultiSelect:
			for i, opt := range q.Options {
				idx := i
				plan.Specs = append(plan.Specs, ColumnSpec{
					QuestionID:  q.ID,
					Label:       opt,
					OptionIndex: &idx,
				})
			}
			plan.Spans = append(plan.Spans, QuestionSpan{
				QuestionID:  q.ID,
				Text:        q.Text,
				Start:       start,
				Width:       len(q.Options),
				MultiSelect: true,
			})
		default:
			// single_choice (and anything unrecognized degrades to it)
			plan.Specs = append(plan.Specs, ColumnSpec{
				QuestionID: q.ID,
				Label:      q.Text,
			})
			plan.Spans = append(plan.Spans, QuestionSpan{
				QuestionID: q.ID,
				Text:       q.Text,
				Start:      start,
				Width:      1,
			})
		}
	}

	return plan
}

// Width returns the total number of data columns.
func (p ColumnPlan) Width() int {
	return len(p.Specs)
}

// HasMultiSelect reports whether any question needs an option sub-header
// row.
func (p ColumnPlan) HasMultiSelect() bool {
	for _, span := range p.Spans {
		if span.MultiSelect {
			return true
		}
	}
	return false
}
