package services

import (
	"testing"

	"fintrack/internal/repositories"
	"fintrack/internal/testutil"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserServicer {
	return NewUserService(repositories.NewUserRepository(db))
}

func TestCreateUser(t *testing.T) {
	t.Run("creates_user_with_hashed_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		user, err := svc.CreateUser("alice@example.com", "supersecret")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Password == "supersecret" {
			t.Error("expected password to be hashed")
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
	})

	t.Run("lowercases_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		user, err := svc.CreateUser("Bob@Example.COM", "supersecret")
		testutil.AssertNoError(t, err)
		if user.Email != "bob@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		_, err := svc.CreateUser("carol@example.com", "supersecret")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Carol@example.com", "differentpass")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("empty_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		_, err := svc.CreateUser("", "supersecret")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.CreateUser("dave@example.com", "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		created, err := svc.CreateUser("eve@example.com", "supersecret")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("eve@example.com", "supersecret")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		_, err := svc.CreateUser("frank@example.com", "supersecret")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("frank@example.com", "wrongpass")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email_reports_same_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)

		_, err := svc.AttemptLogin("nobody@example.com", "whatever")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("store_and_read_back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newUserService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

		hash, err := svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123" {
			t.Errorf("expected stored hash, got %q", hash)
		}
	})
}
