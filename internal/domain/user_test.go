package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("test@example.com", "correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "correct horse battery staple", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.WithinDuration(t, time.Now().UTC(), user.CreatedAt, time.Minute)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty email",
			email:    "",
			password: "password123",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			email:    "not-an-email",
			password: "password123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			email:    "user@localhost",
			password: "password123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email ending in at sign",
			email:    "user@",
			password: "password123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "empty password",
			email:    "test@example.com",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
		{
			name:     "password over bcrypt limit",
			email:    "test@example.com",
			password: strings.Repeat("a", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestUserValidateLoadedFromStorage(t *testing.T) {
	t.Parallel()

	// A user read back from storage carries only the hash.
	user := &User{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}

func TestUserValidateRequiresID(t *testing.T) {
	t.Parallel()

	user := &User{Email: "test@example.com", Password: "password123"}
	assert.ErrorIs(t, user.Validate(), ErrEmptyUserID)
}
