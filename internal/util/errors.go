package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrReportNotFound      = errors.New("report not found")
	ErrAttemptCompleted    = errors.New("attempt already completed")
	ErrAttemptNotCompleted = errors.New("attempt not completed")
	ErrLinkNotFound        = errors.New("shared link not found")
	ErrCommentNotFound     = errors.New("comment not found")
)
