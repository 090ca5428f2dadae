package service

import "errors"

var (
	// ErrValidation covers missing or empty request fields.
	ErrValidation = errors.New("all fields are required")

	// ErrEmailTaken signals a signup against an existing email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers single-use codes that are unknown, expired or
	// already consumed. The three cases are deliberately indistinguishable.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrEmailNotFound is returned by password recovery for unregistered
	// emails.
	ErrEmailNotFound = errors.New("email not found")
)
