package model

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to register a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when attempting to register a taken email
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect.
	// Deliberately covers both unknown username and wrong password so the
	// login form cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPostNotFound is returned when a blog post cannot be found
	ErrPostNotFound = errors.New("post not found")
)
