// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package respondents

import (
	"strconv"
	"time"

	"github.com/Neolvie/PollKiosk/models"
)

const (
	// AnonWindow is the maximum gap between two anonymous votes from the
	// same client address for them to count as one sitting. Beyond it a
	// fresh respondent is assumed. Best-effort heuristic, not identity:
	// it can merge two people behind one NAT and split one person whose
	// network changed.
	AnonWindow = 10 * time.Minute

	// PlaceholderText stands in for an option text when a vote's index no
	// longer resolves against the question's option list (the list was
	// edited after the vote was cast). The raw index is still recorded.
	PlaceholderText = "invalid option"

	// Bucket for anonymous events that carry no client address at all.
	missingAddress = "unknown-address"
)

type anonState struct {
	lastSeenAt time.Time
	groupKey   string
}

// Reconstruct groups a time-ordered vote event stream into logical
// respondents. Events with a session token always join that token's row;
// anonymous events are clustered per client address with AnonWindow.
// Rows come back ordered by first appearance. No event is ever dropped.
func Reconstruct(events []models.VoteEvent, questions map[int64]models.Question) []models.RespondentRow {
	rows := make(map[string]*models.RespondentRow)
	order := []string{}

	anon := make(map[string]anonState)
	anonSeq := 0

	for _, ev := range events {
		key := ev.SessionToken
		if key == "" {
			key = anonKey(anon, &anonSeq, ev)
		}

		row, ok := rows[key]
		if !ok {
			row = &models.RespondentRow{
				GroupKey:    key,
				FirstSeenAt: ev.OccurredAt,
				Answers:     make(map[int64]models.AnswerCell),
			}
			rows[key] = row
			order = append(order, key)
		}

		cell := row.Answers[ev.QuestionID]
		cell.ChosenIndices = append(cell.ChosenIndices, ev.OptionIndex)
		cell.ChosenTexts = append(cell.ChosenTexts, optionText(questions, ev))
		row.Answers[ev.QuestionID] = cell
	}

	out := make([]models.RespondentRow, 0, len(order))
	for _, key := range order {
		out = append(out, *rows[key])
	}
	return out
}

// anonKey resolves the group key for an event without a session token,
// minting a new numbered key when the address was quiet longer than
// AnonWindow.
func anonKey(anon map[string]anonState, anonSeq *int, ev models.VoteEvent) string {
	addr := ev.ClientAddress
	if addr == "" {
		addr = missingAddress
	}

	state, seen := anon[addr]
	if seen && ev.OccurredAt.Sub(state.lastSeenAt) <= AnonWindow {
		anon[addr] = anonState{lastSeenAt: ev.OccurredAt, groupKey: state.groupKey}
		return state.groupKey
	}

	*anonSeq++
	key := "anon-" + strconv.Itoa(*anonSeq)
	anon[addr] = anonState{lastSeenAt: ev.OccurredAt, groupKey: key}
	return key
}

func optionText(questions map[int64]models.Question, ev models.VoteEvent) string {
	q, ok := questions[ev.QuestionID]
	if !ok || ev.OptionIndex < 0 || ev.OptionIndex >= len(q.Options) {
		return PlaceholderText
	}
	return q.Options[ev.OptionIndex]
}

// QuestionsByID indexes a survey's question list for Reconstruct.
func QuestionsByID(questions []models.Question) map[int64]models.Question {
	byID := make(map[int64]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID
}
