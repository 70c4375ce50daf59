package services_test

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, testJWTSecret, time.Hour)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)
	ctx := context.Background()

	var storedHash string
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*models.User)
			user.ID = "3f5e2a6c-1111-4c5e-9a55-0c1d7f6c2b10"
			storedHash = user.Password
		}).
		Return(nil).Once()

	result, err := authService.Register(ctx, services.RegisterInput{
		Email:    "  Test1@Google.com ",
		Password: "Abc123",
		FullName: "Test One",
	})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)

	assert.Equal(t, "test1@google.com", result.Email)
	assert.Empty(t, result.Password)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.StringList{"user"}, result.Roles)
	assert.True(t, result.IsActive)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("Abc123")))
	cost, err := bcrypt.Cost([]byte(storedHash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	claims, err := authService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "3f5e2a6c-1111-4c5e-9a55-0c1d7f6c2b10", claims["id"])
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)
	ctx := context.Background()

	dup := &repositories.DuplicateError{Detail: "Key (email)=(test1@google.com) already exists."}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(errors.Join(errors.New("failed to create user"), dup)).Once()

	result, err := authService.Register(ctx, services.RegisterInput{Email: "test1@google.com", Password: "Abc123", FullName: "Test One"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrConflict)

	var svcErr *services.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Key (email)=(test1@google.com) already exists.", svcErr.Message)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{
		ID:       "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		Email:    "test1@google.com",
		Password: hashed(t, "Abc123"),
		FullName: "Test One",
		IsActive: true,
		Roles:    models.StringList{"user"},
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := newAuthService(mockRepo)
		copyUser := *user
		mockRepo.On("GetByEmail", ctx, "test1@google.com").Return(&copyUser, nil).Once()

		result, err := authService.Login(ctx, "Test1@google.com", "Abc123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.ID)
		assert.Empty(t, result.Password)
		assert.NotEmpty(t, result.Token)
		mockRepo.AssertExpectations(t)
	})

	failures := []struct {
		name     string
		found    *models.User
		findErr  error
		password string
	}{
		{name: "unknown email", findErr: repositories.ErrNotFound, password: "Abc123"},
		{name: "wrong password", found: user, password: "wrong"},
		{name: "inactive user", found: &models.User{ID: user.ID, Email: user.Email, Password: user.Password, IsActive: false}, password: "Abc123"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			authService := newAuthService(mockRepo)
			if tc.found != nil {
				found := *tc.found
				mockRepo.On("GetByEmail", ctx, "test1@google.com").Return(&found, nil).Once()
			} else {
				mockRepo.On("GetByEmail", ctx, "test1@google.com").Return(nil, tc.findErr).Once()
			}

			result, err := authService.Login(ctx, "test1@google.com", tc.password)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, services.ErrUnauthorized)

			var svcErr *services.Error
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, "Credentials are not valid", svcErr.Message)
		})
	}
}

func TestAuthService_Login_StoreFailureIsInternal(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "test1@google.com").Return(nil, errors.New("connection refused")).Once()

	_, err := authService.Login(ctx, "test1@google.com", "Abc123")
	assert.ErrorIs(t, err, services.ErrInternal)
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	token, err := authService.IssueToken("user-1")
	require.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["id"])

	other := services.NewAuthService(new(MockUserRepository), "another_secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	expired := services.NewAuthService(new(MockUserRepository), testJWTSecret, -time.Minute)
	expiredToken, err := expired.IssueToken("user-1")
	require.NoError(t, err)
	_, err = authService.ValidateToken(expiredToken)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": "user-1"})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = authService.ValidateToken(noneToken)
	assert.Error(t, err)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	active := &models.User{ID: "active-id", FullName: "Active", IsActive: true}
	inactive := &models.User{ID: "inactive-id", FullName: "Inactive", IsActive: false}
	mockRepo.On("GetByID", ctx, "active-id").Return(active, nil)
	mockRepo.On("GetByID", ctx, "inactive-id").Return(inactive, nil)
	mockRepo.On("GetByID", ctx, "gone-id").Return(nil, repositories.ErrNotFound)

	token, _ := authService.IssueToken("active-id")
	user, err := authService.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, active, user)

	token, _ = authService.IssueToken("inactive-id")
	_, err = authService.Authenticate(ctx, token)
	var svcErr *services.Error
	require.ErrorAs(t, err, &svcErr)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Equal(t, "User is inactive, talk with an admin", svcErr.Message)

	token, _ = authService.IssueToken("gone-id")
	_, err = authService.Authenticate(ctx, token)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Token not valid", svcErr.Message)

	_, err = authService.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestAuthService_CheckStatus(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	result, err := authService.CheckStatus(context.Background(), &models.User{ID: "user-1", Password: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.Password)

	_, err = authService.CheckStatus(context.Background(), nil)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}
