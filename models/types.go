// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Question kind constants
const (
	KindSingleChoice = "single_choice"
	KindMultiSelect  = "multi_select"
)

// Request types

type CreateSurveyRequest struct {
	Title     string                  `json:"title"`
	ShowTitle bool                    `json:"show_title"`
	Questions []CreateQuestionRequest `json:"questions"`
}

type CreateQuestionRequest struct {
	Text    string   `json:"text"`
	Kind    string   `json:"kind"`
	Options []string `json:"options"`
}

type SubmitVoteRequest struct {
	SurveyID    int64 `json:"survey_id"`
	QuestionID  int64 `json:"question_id"`
	OptionIndex int   `json:"option_index"`
}

type SetCurrentSurveyRequest struct {
	SurveyID *int64 `json:"survey_id"`
}

// Response types

type CreateSurveyResponse struct {
	SurveyID int64 `json:"survey_id"`
}

type CreateSessionResponse struct {
	SessionToken string `json:"session_token"`
}

type SubmitVoteResponse struct {
	Success bool `json:"success"`
}

type SurveyListResponse struct {
	Surveys         []SurveyWithQuestions `json:"surveys"`
	CurrentSurveyID *int64                `json:"current_survey_id"`
}

type SurveyStatsResponse struct {
	Survey      SurveyWithQuestions `json:"survey"`
	Stats       SurveyStats         `json:"stats"`
	Respondents int                 `json:"respondents"`
}

// Domain types

type Survey struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ShowTitle bool      `json:"show_title"`
	CreatedAt time.Time `json:"created_at"`
}

type Question struct {
	ID       int64    `json:"id"`
	SurveyID int64    `json:"survey_id"`
	Position int      `json:"position"`
	Text     string   `json:"text"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options"`
}

type SurveyWithQuestions struct {
	Survey    Survey     `json:"survey"`
	Questions []Question `json:"questions"`
}

// VoteEvent is one recorded answer action. Events are append-only and
// never mutated after insertion.
type VoteEvent struct {
	ID            int64     `json:"id"`
	QuestionID    int64     `json:"question_id"`
	OptionIndex   int       `json:"option_index"`
	SessionToken  string    `json:"-"` // Never expose in JSON
	ClientAddress string    `json:"-"` // Never expose in JSON
	OccurredAt    time.Time `json:"occurred_at"`
}

// AnswerCell accumulates every vote one respondent cast on one question,
// in vote order. ChosenIndices and ChosenTexts stay index-aligned.
type AnswerCell struct {
	ChosenIndices []int    `json:"chosen_indices"`
	ChosenTexts   []string `json:"chosen_texts"`
}

// RespondentRow is one reconstructed logical respondent: the full set of
// answers attributed to a single group key.
type RespondentRow struct {
	GroupKey    string               `json:"group_key"`
	FirstSeenAt time.Time            `json:"first_seen_at"`
	Answers     map[int64]AnswerCell `json:"answers"`
}

// Stats types

type OptionCount struct {
	OptionIndex int    `json:"option_index"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
}

type QuestionStats struct {
	QuestionID int64         `json:"question_id"`
	Text       string        `json:"text"`
	Counts     []OptionCount `json:"counts"`
}

type RecentVote struct {
	QuestionID    int64     `json:"question_id"`
	OptionIndex   int       `json:"option_index"`
	ClientAddress string    `json:"client_address,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type SurveyStats struct {
	TotalVotes  int             `json:"total_votes"`
	Questions   []QuestionStats `json:"questions"`
	RecentVotes []RecentVote    `json:"recent_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
