package auth

import (
	"context"
	"testing"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/elitecart/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, storage.KV) {
	kv := storage.NewMemoryStore()
	svc := NewService(kv, zap.NewNop())
	svc.Delay = 0
	svc.Hydrate(context.Background())
	return svc, kv
}

func TestService_Login_DemoCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	user, err := svc.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)

	assert.Equal(t, "user_123", user.ID)
	assert.Equal(t, "Demo User", user.Name)
	require.Len(t, user.Addresses, 1)
	assert.True(t, user.Addresses[0].IsDefault)
	assert.Equal(t, "Mumbai", user.Addresses[0].City)

	current, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestService_Login_EmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "Demo@EliteCart.in", DemoPassword)
	assert.NoError(t, err)
}

func TestService_Login_RejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, DemoEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "someone@example.com", DemoPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	user, err := svc.Register(ctx, RegisterData{
		Name:     "New User",
		Email:    "new@example.com",
		Phone:    "+91 90000 00000",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "New User", user.Name)
	assert.Empty(t, user.Addresses)
	assert.False(t, user.CreatedAt.IsZero())

	_, ok := svc.CurrentUser()
	assert.True(t, ok)
}

func TestService_SessionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(t)

	_, err := svc.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)

	reloaded := NewService(kv, zap.NewNop())
	reloaded.Hydrate(ctx)

	user, ok := reloaded.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "user_123", user.ID)
	assert.Len(t, user.Addresses, 1)
}

func TestService_LogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(t)

	_, err := svc.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)

	svc.Logout(ctx)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	// the session record is gone from durable storage too
	_, err = kv.Load(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestService_HydrateCorruptSessionFallsBackToLoggedOut(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Save(ctx, storage.KeyUser, []byte("not json")))

	svc := NewService(kv, zap.NewNop())
	svc.Hydrate(ctx)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.UpdateProfile(ctx, ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)

	name := "Renamed User"
	user, err := svc.UpdateProfile(ctx, ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed User", user.Name)
	assert.Equal(t, DemoEmail, user.Email, "unset fields are kept")
}

func TestService_AddressLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)

	added, err := svc.AddAddress(ctx, domain.Address{
		Type:    domain.AddressWork,
		Name:    "Demo User",
		Address: "42 Office Park",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	user, _ := svc.CurrentUser()
	assert.Len(t, user.Addresses, 2)

	added.City = "Nashik"
	require.NoError(t, svc.UpdateAddress(ctx, added))

	user, _ = svc.CurrentUser()
	assert.Equal(t, "Nashik", user.Addresses[1].City)

	require.NoError(t, svc.DeleteAddress(ctx, added.ID))
	user, _ = svc.CurrentUser()
	assert.Len(t, user.Addresses, 1)

	assert.ErrorIs(t, svc.DeleteAddress(ctx, added.ID), ErrAddressNotFound)
	assert.ErrorIs(t, svc.UpdateAddress(ctx, added), ErrAddressNotFound)
}

func TestService_OTPFlow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.SendOTP(ctx, "+91 98765 43210"))

	assert.NoError(t, svc.VerifyOTP(ctx, "+91 98765 43210", DemoOTP))
	assert.ErrorIs(t, svc.VerifyOTP(ctx, "+91 98765 43210", "000000"), ErrInvalidOTP)
}

func TestService_ResetPassword(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.ResetPassword(context.Background(), "demo@elitecart.in"))
}
