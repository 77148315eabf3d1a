package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired   = errors.New("token is expired")
	ErrTokenIsMalformed = errors.New("token is malformed")

	ErrUnknownLikeType   = errors.New("unknown like type")
	ErrUnknownLikeAction = errors.New("unknown like action")
)
