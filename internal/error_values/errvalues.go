package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrDayNotFound      = errors.New("day record doesn't exist")
	ErrActivityNotFound = errors.New("activity type doesn't exist")
	ErrActivityExists   = errors.New("activity type already exists")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidDateRange = errors.New("invalid start or end date")
)
