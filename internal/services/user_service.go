package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

// userService handles user-related business logic.
type userService struct {
	users repositories.UserRepository
}

// NewUserService creates a new UserServicer.
func NewUserService(users repositories.UserRepository) UserServicer {
	return &userService{users: users}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *userService) CreateUser(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "email and password are required")
	}

	email = strings.ToLower(email)
	exists, err := s.users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		IsActive: true,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

// AttemptLogin verifies the credentials and returns the matching active
// user. Every failure mode reports the same INVALID_CREDENTIALS error so
// that login responses do not reveal which accounts exist.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(strings.ToLower(email))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// StoreRefreshTokenHash persists the hash of the user's current refresh token.
func (s *userService) StoreRefreshTokenHash(userID uint, tokenHash string) error {
	return s.users.UpdateRefreshTokenHash(userID, tokenHash)
}

// GetRefreshTokenHash returns the stored refresh token hash for the user.
func (s *userService) GetRefreshTokenHash(userID uint) (string, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}
