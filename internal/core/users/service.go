package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 8
	maxUsernameLen = 32
	tokenIssuer    = "ember"
)

type userService struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewUserService creates a new user service. secret signs HS256 access
// tokens; ttl bounds their lifetime.
func NewUserService(repo Repository, secret []byte, ttl time.Duration) Service {
	return &userService{
		repo:      repo,
		jwtSecret: secret,
		tokenTTL:  ttl,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" || len(username) > maxUsernameLen {
		return nil, NewValidationError("username", fmt.Sprintf("must be 1-%d characters", maxUsernameLen))
	}
	if !validUsername(username) {
		return nil, NewValidationError("username", "may contain only letters, digits, '-' and '_'")
	}
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "invalid email address")
	}
	if len(req.Password) < minPasswordLen {
		return nil, NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLen))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	name := strings.ToLower(strings.TrimSpace(req.Username))

	var (
		user *User
		err  error
	)
	if strings.Contains(name, "@") {
		user, err = s.repo.GetByEmail(ctx, name)
	} else {
		user, err = s.repo.GetByUsername(ctx, name)
	}
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().UTC().Add(s.tokenTTL)
	token, err := s.issueToken(user.ID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// issueToken signs an HS256 access token with the user ID as subject.
func (s *userService) issueToken(userID int64, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func validUsername(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
