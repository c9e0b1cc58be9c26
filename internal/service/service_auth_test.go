package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/linkboard/internal/config"
	"github.com/MKhiriev/linkboard/internal/logger"
	"github.com/MKhiriev/linkboard/internal/mock"
	"github.com/MKhiriev/linkboard/internal/store"
	"github.com/MKhiriev/linkboard/internal/utils"
	"github.com/MKhiriev/linkboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "linkboard-test",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(mockUsers, cfg, logger.Nop()).(*authService)
	return svc, mockUsers
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{Login: "john", Password: "s3cret", Name: "John"}

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, stored models.User) (models.User, error) {
			// plaintext must never reach the repository
			assert.Empty(t, stored.Password)
			assert.True(t, utils.CheckPassword(stored.PasswordHash, "s3cret"))

			stored.UserID = 7
			return stored, nil
		})

	registered, err := svc.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
	assert.Equal(t, "john", registered.Login)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
	}{
		{"empty login", models.User{Password: "s3cret"}},
		{"empty password", models.User{Login: "john"}},
		{"both empty", models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Login: "john", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Login: "john", PasswordHash: hash}
	mockUsers.EXPECT().
		FindUserByLogin(ctx, gomock.Any()).
		Return(stored, nil)

	got, err := svc.Login(ctx, models.User{Login: "john", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByLogin(ctx, gomock.Any()).
		Return(models.User{UserID: 7, Login: "john", PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, models.User{Login: "john", Password: "not-s3cret"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByLogin(ctx, gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "ghost", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByID(ctx, int64(7)).
		Return(models.User{UserID: 7, Login: "john", Name: "John"}, nil)

	got, err := svc.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "john", got.Login)

	mockUsers.EXPECT().
		FindUserByID(ctx, int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.GetUser(ctx, 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7, Login: "john"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	parsedUserID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsedUserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name        string
		tokenString string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.tokenString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("someone-else", 7, time.Hour, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
