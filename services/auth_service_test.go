package services

import (
	"testing"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthService(t)

	token, user, err := svc.Signup(&SignupIn{
		Email: "Amina@Example.com", Password: "password123", Name: "Amina",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "amina@example.com", user.Email)
	require.Equal(t, entity.RoleCustomer, user.Role)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, entity.RoleCustomer, claims.Role)

	_, got, err := svc.Login("amina@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Signup(&SignupIn{Email: "a@b.com", Password: "password123", Name: "A"})
	require.NoError(t, err)

	_, _, err = svc.Login("a@b.com", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("unknown@b.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Signup(&SignupIn{Email: "a@b.com", Password: "password123", Name: "A"})
	require.NoError(t, err)

	_, _, err = svc.Signup(&SignupIn{Email: "A@B.COM", Password: "password456", Name: "A2"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupWithRole(t *testing.T) {
	svc := newAuthService(t)

	_, user, err := svc.Signup(&SignupIn{
		Email: "rider@b.com", Password: "password123", Name: "Rider", Role: entity.RoleCourier,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleCourier, user.Role)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.GetProfile(42)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
