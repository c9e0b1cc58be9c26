package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/linkboard/internal/service"
	"github.com/MKhiriev/linkboard/internal/store"
	"github.com/MKhiriev/linkboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 1, Login: "john"}, nil)
	mockAuth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{UserID: 1, SignedString: "signed-jwt"}, nil)

	body := strings.NewReader(`{"login":"john","password":"s3cret","name":"John"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestRegister_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	body := strings.NewReader(`{"login":"john","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 1, Login: "john"}, nil)
	mockAuth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{UserID: 1, SignedString: "signed-jwt"}, nil)

	body := strings.NewReader(`{"login":"john","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestLogin_BadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
	}{
		{"unknown user", store.ErrNoUserWasFound},
		{"wrong password", service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
			router := h.Init()

			mockAuth.EXPECT().
				Login(gomock.Any(), gomock.Any()).
				Return(models.User{}, tt.loginErr)

			body := strings.NewReader(`{"login":"john","password":"nope"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "token").
		Return(models.Token{UserID: 1}, nil)
	mockAuth.EXPECT().
		GetUser(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Login: "jane", Name: "Jane"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/7", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "jane", got.Login)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "token").
		Return(models.Token{UserID: 1}, nil)
	mockAuth.EXPECT().
		GetUser(gomock.Any(), int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodGet, "/api/user/404", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	mockAuth.EXPECT().
		ParseToken(gomock.Any(), "token").
		Return(models.Token{UserID: 42}, nil)
	mockAuth.EXPECT().
		GetUser(gomock.Any(), int64(42)).
		Return(models.User{UserID: 42, Login: "john"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.UserID)
}
