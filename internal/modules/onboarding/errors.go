package onboarding

import "errors"

var (
	ErrEmptyUpdate  = errors.New("no profile fields to update")
	ErrUserNotFound = errors.New("user not found")
)
