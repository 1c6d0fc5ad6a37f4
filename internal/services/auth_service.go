package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
	MinUsernameLen = 3
)

type AuthService struct {
	Users          repository.UserRepository
	EmailValidator EmailValidator
}

func NewAuthService(users repository.UserRepository, validator EmailValidator) *AuthService {
	return &AuthService{Users: users, EmailValidator: validator}
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

func (s *AuthService) validateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username too short: must be at least %d characters", MinUsernameLen)
	}
	return nil
}

// Register creates a user account. Email and username uniqueness are checked
// independently so the caller can tell which field collided. The password is
// stored only as a bcrypt hash and is excluded from every response.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := s.validateUsername(username); err != nil {
		return nil, err
	}
	if err := s.EmailValidator.Validate(ctx, email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	emailTaken, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, ErrEmailTaken
	}
	usernameTaken, err := s.Users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       model.DefaultAvatar,
		Provider:     model.DefaultProvider,
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email + password. A missing user and a wrong
// password produce the identical error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether the email exists
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.Users.GetByID(ctx, userID)
}

// RoleOf reports the role currently stored for a user. Authorization reads
// it here instead of trusting a role baked into an old credential.
func (s *AuthService) RoleOf(ctx context.Context, userID string) (string, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// UpdateDetails changes username and/or email; blank fields keep their
// current values. Moving to a taken value fails with the same per-field
// conflict Register reports.
func (s *AuthService) UpdateDetails(ctx context.Context, userID, username, email string) (*model.User, error) {
	current, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if username == "" {
		username = current.Username
	}
	if email == "" {
		email = current.Email
	}
	if err := s.validateUsername(username); err != nil {
		return nil, err
	}
	if err := s.EmailValidator.Validate(ctx, email); err != nil {
		return nil, err
	}

	if email != current.Email {
		taken, err := s.Users.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}
	if username != current.Username {
		taken, err := s.Users.UsernameExists(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
	}

	return s.Users.UpdateDetails(ctx, userID, username, email)
}
