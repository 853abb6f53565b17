package repositories

import "errors"

// Sentinel errors shared across repositories. Handlers map these onto
// HTTP status codes with errors.Is.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrShareNotFound        = errors.New("share not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrAccessDenied = errors.New("access denied")

	ErrAlreadyShared   = errors.New("post already shared by user")
	ErrInvalidParent   = errors.New("parent comment invalid")
	ErrIndexOutOfRange = errors.New("question index out of range")
)
