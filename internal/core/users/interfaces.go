package users

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates an account with a bcrypt-hashed password.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and issues a signed access token.
	Login(ctx context.Context, req LoginRequest) (*Session, error)

	// GetByID loads a user profile.
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Repository defines the data access interface for users
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
