package service_test

import (
	"context"
	"testing"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (service.AuthService, *MockUserRepo, security.TokenManager) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("unit-test-secret-0123456789abcdef", time.Hour, 24*time.Hour)
	return service.NewAuthService(userRepo, tokens), userRepo, tokens
}

func activeUser(id int32, password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           id,
		Email:        "vol@test.com",
		PasswordHash: string(hash),
		Name:         "Val",
		Role:         domain.UserRoleVolunteer,
		IsActive:     true,
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPasswordAndIssuesTokens", func(t *testing.T) {
		svc, userRepo, tokens := newAuthService()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "vol@test.com" &&
				u.PasswordHash != "hunter2pass" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2pass")) == nil &&
				u.IsActive
		})).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Val", " Vol@Test.com ", "hunter2pass", domain.UserRoleVolunteer)
		require.NoError(t, err)
		assert.Equal(t, "vol@test.com", user.Email)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, domain.UserRoleVolunteer, claims.Role)

		claims, err = tokens.ValidateToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
		userRepo.AssertExpectations(t)
	})

	t.Run("RejectsShortPassword", func(t *testing.T) {
		svc, _, _ := newAuthService()
		_, _, _, err := svc.Signup(ctx, "Val", "vol@test.com", "short", domain.UserRoleVolunteer)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("RejectsModeratorSelfSignup", func(t *testing.T) {
		svc, _, _ := newAuthService()
		_, _, _, err := svc.Signup(ctx, "Val", "vol@test.com", "hunter2pass", domain.UserRoleModerator)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, tokens := newAuthService()
		userRepo.On("GetByEmail", ctx, "vol@test.com").Return(activeUser(1, "hunter2pass"), nil)

		access, refresh, err := svc.Login(ctx, "Vol@Test.com", "hunter2pass")
		require.NoError(t, err)
		assert.NotEmpty(t, refresh)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, userRepo, _ := newAuthService()
		userRepo.On("GetByEmail", ctx, "vol@test.com").Return(activeUser(1, "hunter2pass"), nil)

		_, _, err := svc.Login(ctx, "vol@test.com", "not-the-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, userRepo, _ := newAuthService()
		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost@test.com", "hunter2pass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("DeactivatedAccount", func(t *testing.T) {
		svc, userRepo, _ := newAuthService()
		user := activeUser(1, "hunter2pass")
		user.IsActive = false
		userRepo.On("GetByEmail", ctx, "vol@test.com").Return(user, nil)

		_, _, err := svc.Login(ctx, "vol@test.com", "hunter2pass")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("RotatesTokens", func(t *testing.T) {
		svc, userRepo, tokens := newAuthService()
		userRepo.On("GetByID", ctx, int32(1)).Return(activeUser(1, "hunter2pass"), nil)
		refresh, err := tokens.GenerateRefreshToken(1, "vol@test.com", domain.UserRoleVolunteer)
		require.NoError(t, err)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("RejectsAccessTokenAsRefresh", func(t *testing.T) {
		svc, _, tokens := newAuthService()
		access, err := tokens.GenerateAccessToken(1, "vol@test.com", domain.UserRoleVolunteer)
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("DeactivationInvalidatesRefresh", func(t *testing.T) {
		svc, userRepo, tokens := newAuthService()
		user := activeUser(1, "hunter2pass")
		user.IsActive = false
		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		refresh, err := tokens.GenerateRefreshToken(1, "vol@test.com", domain.UserRoleVolunteer)
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
