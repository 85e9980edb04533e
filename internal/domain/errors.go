package domain

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict")
	// ErrNoData means a window had no samples. It is an expected outcome,
	// not a failure: multi-night queries skip such nights silently.
	ErrNoData = errors.New("no data for window")
	// ErrGoalNotConfigured means the user's sleep goal or wake time is
	// unset. Goal-relative derivations refuse to run instead of
	// defaulting.
	ErrGoalNotConfigured = errors.New("sleep goal not configured")
	ErrInvalidInput      = errors.New("invalid input")
)
