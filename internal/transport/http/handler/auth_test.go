package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/auth"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) SendSignupOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockAuthSvc) VerifySignupOTP(ctx context.Context, req auth.SignupRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.String(1), args.Error(2)
	}
	return nil, "", args.Error(2)
}
func (m *mockAuthSvc) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.String(1), args.Error(2)
	}
	return nil, "", args.Error(2)
}
func (m *mockAuthSvc) GoogleSignIn(ctx context.Context, idToken string) (*domain.User, string, error) {
	args := m.Called(ctx, idToken)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.String(1), args.Error(2)
	}
	return nil, "", args.Error(2)
}
func (m *mockAuthSvc) SendResetOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockAuthSvc) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func postJSON(target string, v interface{}) *http.Request {
	body, _ := json.Marshal(v)
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
}

// --- SendOTP ---

func TestSendOTP_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{})
	r := httptest.NewRequest(http.MethodPost, "/api/auth/send-otp", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.SendOTP(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendOTP_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{})
	rr := httptest.NewRecorder()
	h.SendOTP(rr, postJSON("/api/auth/send-otp", map[string]string{"email": "not-an-email"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendOTP_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendSignupOTP", mock.Anything, "a@b.com").Return(nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.SendOTP(rr, postJSON("/api/auth/send-otp", map[string]string{"email": "a@b.com"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "OTP sent successfully", resp.Message)
	svc.AssertExpectations(t)
}

// --- VerifyOTP ---

func TestVerifyOTP_MissingFields(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{})
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", map[string]string{"email": "a@b.com"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOTP_AccountExists(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifySignupOTP", mock.Anything, mock.Anything).Return(nil, "", domain.ErrAccountExists)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", auth.SignupRequest{
		Name: "A", Email: "a@b.com", Password: "p", OTP: "123456",
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifySignupOTP", mock.Anything, mock.Anything).Return(nil, "", domain.ErrInvalidCode)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", auth.SignupRequest{
		Name: "A", Email: "a@b.com", Password: "p", OTP: "000000",
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOTP_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	u := &domain.User{UserID: "u1", Name: "Alice", Email: "a@b.com", PasswordHash: "secret"}
	svc.On("VerifySignupOTP", mock.Anything, mock.Anything).Return(u, "bearer-token", nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, postJSON("/api/auth/verify-otp", auth.SignupRequest{
		Name: "Alice", Email: "a@b.com", Password: "secret123", OTP: "123456",
	}))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Account created successfully", resp.Message)
	assert.Equal(t, "bearer-token", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)

	// The password hash must never leak through the envelope.
	assert.NotContains(t, rr.Body.String(), "secret")
}

// --- SignIn ---

func TestSignIn_WrongCredentials(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SignIn", mock.Anything, "a@b.com", "wrong").Return(nil, "", domain.ErrBadRequest)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.SignIn(rr, postJSON("/api/auth/signin", map[string]string{"email": "a@b.com", "password": "wrong"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignIn_GoogleOnlyAccount(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SignIn", mock.Anything, "a@b.com", "pw").Return(nil, "", domain.ErrNoPassword)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.SignIn(rr, postJSON("/api/auth/signin", map[string]string{"email": "a@b.com", "password": "pw"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignIn_HappyPath_AdminFlag(t *testing.T) {
	svc := &mockAuthSvc{}
	u := &domain.User{UserID: "u1", Name: "Alice", Email: "a@b.com", IsAdmin: true}
	svc.On("SignIn", mock.Anything, "a@b.com", "secret123").Return(u, "bearer-token", nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.SignIn(rr, postJSON("/api/auth/signin", map[string]string{"email": "a@b.com", "password": "secret123"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, "bearer-token", resp.Token)
}

// --- GoogleSignIn ---

func TestGoogleSignIn_MissingToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{})
	rr := httptest.NewRecorder()
	h.GoogleSignIn(rr, postJSON("/api/auth/google-signin", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGoogleSignIn_InvalidToken(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleSignIn", mock.Anything, "bad").Return(nil, "", domain.ErrUnauthorized)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.GoogleSignIn(rr, postJSON("/api/auth/google-signin", map[string]string{"id_token": "bad"}))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// --- SendResetOTP ---

func TestSendResetOTP_UnknownAccount(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendResetOTP", mock.Anything, "x@x.com").Return(domain.ErrNotFound)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.SendResetOTP(rr, postJSON("/api/auth/send-reset-otp", map[string]string{"email": "x@x.com"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// --- ResetPassword ---

func TestResetPassword_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResetPassword", mock.Anything, mock.Anything).Return(nil)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.ResetPassword(rr, postJSON("/api/auth/reset-password", auth.ResetPasswordRequest{
		Email: "a@b.com", OTP: "123456", NewPassword: "brandnew",
	}))
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestResetPassword_ExpiredCode(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResetPassword", mock.Anything, mock.Anything).Return(domain.ErrCodeExpired)
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.ResetPassword(rr, postJSON("/api/auth/reset-password", auth.ResetPasswordRequest{
		Email: "a@b.com", OTP: "123456", NewPassword: "brandnew",
	}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
