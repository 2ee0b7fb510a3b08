package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid password")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTooManyAttempts     = errors.New("too many login attempts")
)

// Stage markers wrapped around internal failures so handlers can pick the
// per-endpoint message without inspecting the cause.
var (
	ErrHashPassword    = errors.New("hash password")
	ErrComparePassword = errors.New("compare password")
	ErrIssueToken      = errors.New("issue token")
)
