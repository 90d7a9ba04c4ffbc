package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/elitecart/storefront/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrInvalidOTP         = errors.New("invalid verification code")
	ErrAddressNotFound    = errors.New("address not found")
)

// Demo backend: the only accepted login and the only valid OTP.
const (
	DemoEmail    = "demo@elitecart.in"
	DemoPassword = "demo123"
	DemoOTP      = "123456"
)

// DefaultDelay models the mocked backend's round-trip latency.
const DefaultDelay = 1500 * time.Millisecond

type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileUpdate carries partial profile changes; nil fields are kept.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Service is the mocked authentication backend. The session record is
// persisted under the user key on every change and cleared on logout.
type Service struct {
	mu     sync.Mutex
	kv     storage.KV
	logger *zap.Logger
	user   *domain.User

	// Delay is the simulated backend latency. Zero it in tests.
	Delay time.Duration
}

func NewService(kv storage.KV, logger *zap.Logger) *Service {
	return &Service{
		kv:     kv,
		logger: logger,
		Delay:  DefaultDelay,
	}
}

// Hydrate restores the persisted session, if any. Corrupt data falls
// back to logged-out; Hydrate never fails.
func (s *Service) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Load(ctx, storage.KeyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load session", zap.Error(err))
		}
		return
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn("discarding corrupt session", zap.Error(err))
		return
	}
	s.user = &user
}

// Login authenticates against the demo credentials and persists the
// session.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	if err := wait(ctx, s.Delay); err != nil {
		return domain.User{}, err
	}

	if !strings.EqualFold(email, DemoEmail) || password != DemoPassword {
		return domain.User{}, ErrInvalidCredentials
	}

	user := demoUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.persist(ctx)
	return user, nil
}

func demoUser() domain.User {
	return domain.User{
		ID:     "user_123",
		Name:   "Demo User",
		Email:  DemoEmail,
		Phone:  "+91 98765 43210",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		Addresses: []domain.Address{
			{
				ID:        "addr_1",
				Type:      domain.AddressHome,
				Name:      "Demo User",
				Phone:     "+91 98765 43210",
				Address:   "123 Main Street, Andheri West",
				City:      "Mumbai",
				State:     "Maharashtra",
				Pincode:   "400058",
				IsDefault: true,
			},
		},
		CreatedAt: time.Now(),
	}
}

// Register creates a fresh account and logs it in.
func (s *Service) Register(ctx context.Context, data RegisterData) (domain.User, error) {
	if err := wait(ctx, s.Delay); err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:        newID("user"),
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Addresses: []domain.Address{},
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.persist(ctx)
	return user, nil
}

// Logout clears the session, in memory and in durable storage.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Delete(ctx, storage.KeyUser); err != nil {
		s.logger.Warn("failed to clear session", zap.Error(err))
	}
}

// CurrentUser returns the logged-in profile, if any.
func (s *Service) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, ErrNotAuthenticated
	}

	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.Phone != nil {
		s.user.Phone = *update.Phone
	}
	if update.Avatar != nil {
		s.user.Avatar = *update.Avatar
	}

	s.persist(ctx)
	return *s.user, nil
}

// AddAddress appends a new address and returns it with its generated id.
func (s *Service) AddAddress(ctx context.Context, address domain.Address) (domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.Address{}, ErrNotAuthenticated
	}

	address.ID = newID("addr")
	s.user.Addresses = append(s.user.Addresses, address)
	s.persist(ctx)
	return address, nil
}

// UpdateAddress replaces the address with the matching id.
func (s *Service) UpdateAddress(ctx context.Context, address domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotAuthenticated
	}

	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == address.ID {
			s.user.Addresses[i] = address
			s.persist(ctx)
			return nil
		}
	}
	return ErrAddressNotFound
}

func (s *Service) DeleteAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotAuthenticated
	}

	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == id {
			s.user.Addresses = append(s.user.Addresses[:i], s.user.Addresses[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return ErrAddressNotFound
}

// SendOTP pretends to text a verification code to the phone.
func (s *Service) SendOTP(ctx context.Context, phone string) error {
	if err := wait(ctx, s.Delay); err != nil {
		return err
	}
	s.logger.Info("otp sent", zap.String("phone", phone))
	return nil
}

// VerifyOTP accepts only the demo code.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) error {
	if err := wait(ctx, s.Delay); err != nil {
		return err
	}
	if code != DemoOTP {
		return ErrInvalidOTP
	}
	s.logger.Info("phone verified", zap.String("phone", phone))
	return nil
}

// ResetPassword pretends to email reset instructions; always succeeds.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if err := wait(ctx, s.Delay); err != nil {
		return err
	}
	s.logger.Info("password reset requested", zap.String("email", email))
	return nil
}

// persist writes the session record through to durable storage. Must be
// called with the lock held and a non-nil user.
func (s *Service) persist(ctx context.Context) {
	data, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Warn("failed to marshal session", zap.Error(err))
		return
	}
	if err := s.kv.Save(ctx, storage.KeyUser, data); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
