package util

import "errors"

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrResponseNotFound       = errors.New("response not found")
	ErrVideoNotFound          = errors.New("video not found")
	ErrSurveyNotActive        = errors.New("survey is not currently active")
	ErrResponseComplete       = errors.New("response already completed")
	ErrQuestionHasAnswers     = errors.New("question has recorded answers and cannot be removed")
	ErrAnswerTargetAmbiguous  = errors.New("exactly one of project_question_id or custom_question_id is required")
	ErrPortalPasswordRequired = errors.New("client portal password required")
	ErrPortalPasswordInvalid  = errors.New("invalid client portal password")
)
