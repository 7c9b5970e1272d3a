// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateSurveyRequest: title, show_title, questions
  - CreateQuestionRequest: text, kind, options
  - SubmitVoteRequest: survey_id, question_id, option_index
  - SetCurrentSurveyRequest: survey_id (null clears the pointer)

# Response Types

Types for JSON responses:

  - CreateSurveyResponse: survey_id
  - CreateSessionResponse: session_token
  - SubmitVoteResponse: success
  - SurveyListResponse: surveys, current_survey_id
  - SurveyStatsResponse: survey, stats, respondents
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Survey: survey metadata
  - Question: question text, kind, and fixed option list
  - VoteEvent: one append-only vote record
  - AnswerCell: every choice a respondent made on one question
  - RespondentRow: one reconstructed respondent across a survey
  - SurveyStats: aggregate counts for the admin panel

# Constants

Question kinds:

	KindSingleChoice = "single_choice"
	KindMultiSelect  = "multi_select"

A single_choice question occupies one export column; a multi_select
question occupies one column per option.
*/
package models
