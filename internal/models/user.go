package models

import (
	"strings"

	apperrors "fintrack/internal/errors"
)

// User represents an account holder. Transactions and salaries hang off a
// user by foreign key; collections are queried on demand, never cached.
type User struct {
	Base
	Email            string        `gorm:"uniqueIndex;not null" json:"email"`
	Password         string        `gorm:"not null" json:"-"`
	IsActive         bool          `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string        `gorm:"size:64" json:"-"`
	Transactions     []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Salaries         []Salary      `gorm:"foreignKey:UserID" json:"salaries,omitempty"`
}

// Validate checks the user's business invariants. The password field holds
// the bcrypt hash, never the plaintext.
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return apperrors.WithMessage(apperrors.ErrValidation, "email must contain @")
	}
	if u.Password == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "hashed password is required")
	}
	return nil
}

// Activate marks the user as active.
func (u *User) Activate() { u.IsActive = true }

// Deactivate marks the user as inactive. Inactive users cannot log in.
func (u *User) Deactivate() { u.IsActive = false }
