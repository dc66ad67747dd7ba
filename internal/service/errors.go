package service

import "errors"

var (
	ErrParamInvalid = errors.New("invalid parameters")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserExists    = errors.New("user already registered")

	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileExists       = errors.New("profile already exists")
	ErrProfileKindMismatch = errors.New("profile kind does not match account type")
	ErrProfileNoChanges    = errors.New("no profile fields to update")

	ErrFollowSelf       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")

	ErrInvalidActivityKind = errors.New("unknown activity kind")

	ErrTrainingSelfRequest     = errors.New("cannot request training from yourself")
	ErrNotATrainer             = errors.New("target user is not an individual trainer")
	ErrTrainingNotOffered      = errors.New("target user does not offer training")
	ErrTrainingRequested       = errors.New("training request already exists")
	ErrTrainingRequestNotFound = errors.New("training request not found")
	ErrTrainingRequestClosed   = errors.New("training request already decided")

	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthorized   = errors.New("not authorized for this resource")

	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageSelf          = errors.New("cannot message yourself")

	ErrTokenInvalid = errors.New("invalid or expired token")

	UnExpectedError = errors.New("unexpected error")
)

// ErrorMap binds service errors to business codes for the response layer.
var ErrorMap = map[error]int{
	ErrParamInvalid: 400,

	ErrUserNotFound:  404,
	ErrUsernameTaken: 400,
	ErrUserExists:    400,

	ErrProfileNotFound:     404,
	ErrProfileExists:       400,
	ErrProfileKindMismatch: 400,
	ErrProfileNoChanges:    400,

	ErrFollowSelf:       400,
	ErrAlreadyFollowing: 400,
	ErrNotFollowing:     400,

	ErrInvalidActivityKind: 400,

	ErrTrainingSelfRequest:     400,
	ErrNotATrainer:             400,
	ErrTrainingNotOffered:      400,
	ErrTrainingRequested:       400,
	ErrTrainingRequestNotFound: 404,
	ErrTrainingRequestClosed:   400,

	ErrPostNotFound:    404,
	ErrCommentNotFound: 404,
	ErrNotAuthorized:   403,

	ErrConversationNotFound: 404,
	ErrMessageSelf:          400,

	ErrTokenInvalid: 401,

	UnExpectedError: 500,
}
