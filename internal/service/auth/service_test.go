package auth

import (
	"context"
	"testing"

	"github.com/itschool-lms/lms-backend-go/internal/domain/auth"
	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by login ID
}

func (r *fakeUserRepo) GetByLoginID(_ context.Context, loginID string) (user.User, error) {
	u, ok := r.users[loginID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newLoginFixture(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	traineeID := "t-1"
	repo := &fakeUserRepo{users: map[string]user.User{
		"student01": {
			ID:           "u-1",
			TraineeID:    &traineeID,
			LoginID:      "student01",
			Name:         "Student One",
			PasswordHash: string(hash),
			Role:         user.RoleStudent,
		},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
}

func TestLoginSuccess(t *testing.T) {
	svc := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		LoginID:  "student01",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, "Student One", resp.Name)
	assert.Equal(t, string(user.RoleStudent), resp.Role)
	assert.Equal(t, "t-1", resp.TraineeID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		LoginID:  "student01",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		LoginID:  "nobody",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}
