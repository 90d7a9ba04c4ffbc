package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elitecart/storefront/internal/auth"
	"github.com/elitecart/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, env *testEnv) domain.User {
	rec := env.do(t, http.MethodPost, "/api/auth/login", LoginRequestDTO{
		Email:    auth.DemoEmail,
		Password: auth.DemoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	return user
}

func TestAuthHandler_LoginLogout(t *testing.T) {
	env := newTestEnv(t)

	user := login(t, env)
	assert.Equal(t, "user_123", user.ID)

	rec := env.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_LoginRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", LoginRequestDTO{
		Email:    auth.DemoEmail,
		Password: "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", auth.RegisterData{
		Name:     "New User",
		Email:    "new@example.com",
		Phone:    "+91 90000 00000",
		Password: "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.NotEmpty(t, user.ID)

	// missing fields are rejected
	rec = env.do(t, http.MethodPost, "/api/auth/register", auth.RegisterData{Name: "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Addresses(t *testing.T) {
	env := newTestEnv(t)
	login(t, env)

	rec := env.do(t, http.MethodPost, "/api/auth/addresses", domain.Address{
		Type:    domain.AddressWork,
		Name:    "Demo User",
		Address: "42 Office Park",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var address domain.Address
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&address))
	require.NotEmpty(t, address.ID)

	address.City = "Nashik"
	rec = env.do(t, http.MethodPut, "/api/auth/addresses/"+address.ID, address)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/auth/addresses/"+address.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/auth/addresses/"+address.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHandler_AddressesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/addresses", domain.Address{City: "Pune"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_OTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/otp/send", OTPRequestDTO{Phone: "+91 98765 43210"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/otp/verify", OTPRequestDTO{
		Phone: "+91 98765 43210",
		Code:  auth.DemoOTP,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/otp/verify", OTPRequestDTO{
		Phone: "+91 98765 43210",
		Code:  "000000",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/password/reset", ResetPasswordRequestDTO{Email: auth.DemoEmail})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/password/reset", ResetPasswordRequestDTO{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
