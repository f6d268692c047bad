package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login; deliberately does not
	// distinguish unknown user from wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
)
