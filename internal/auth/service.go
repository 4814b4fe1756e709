package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
)

// Storage keys. These are the on-disk contract and must not change.
const (
	userKey            = "lifepilot_user"
	registeredUsersKey = "lifepilot_registered_users"
	intendedRouteKey   = "lifepilot_intended_route"
)

// User is the session-facing account record. The stored credential record
// additionally carries the password and never leaves this package.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
}

type credentialUser struct {
	User
	Password string `json:"password"`
}

// Demo account present on first run.
var mockUsers = []credentialUser{
	{
		User: User{
			ID:        "1",
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
		},
		Password: "Password123!",
	},
}

// Service verifies and registers credentials and owns the single
// current-session slot. Lookups are case-sensitive exact matches over the
// registered set, which is fine at personal scale.
type Service struct {
	store   *storage.Store
	latency time.Duration
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store, latency: time.Second}
}

// SetLatency adjusts the simulated network delay applied to credential
// operations. Zero disables it.
func (s *Service) SetLatency(d time.Duration) {
	s.latency = d
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) registeredUsers(ctx context.Context) ([]credentialUser, error) {
	def := append([]credentialUser(nil), mockUsers...)
	return storage.Get(ctx, s.store, registeredUsersKey, def)
}

// VerifyCredentials scans the registered set for an exact email/password
// match and returns the matching user with the password stripped.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (*User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i].User
			return &u, nil
		}
	}
	return nil, CredentialsError{}
}

// Register appends a new credential record and returns the stripped user.
// Ids come from a random generator, never from the collection size.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password string) (*User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return nil, EmailTakenError{Email: email}
		}
	}

	cu := credentialUser{
		User: User{
			ID:        uuid.NewString(),
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
		},
		Password: password,
	}
	users = append(users, cu)
	if err := storage.Set(ctx, s.store, registeredUsersKey, users); err != nil {
		return nil, err
	}

	u := cu.User
	return &u, nil
}

// ForgotPassword checks that the email is registered. No token is issued
// or stored; a real implementation would email a reset link here.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	users, err := s.registeredUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == email {
			return nil
		}
	}
	return UserNotFoundError{Email: email}
}

// ResetPassword accepts any token and mutates nothing. The reset flow is a
// stub end to end.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	return s.wait(ctx)
}

// CurrentUser returns the active-session user, or nil when logged out.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	u, ok, err := storage.Load[User](ctx, s.store, userKey)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (s *Service) SaveCurrentUser(ctx context.Context, u User) error {
	return storage.Set(ctx, s.store, userKey, u)
}

func (s *Service) RemoveCurrentUser(ctx context.Context) error {
	return s.store.Remove(ctx, userKey)
}

// IsAuthenticated derives from the presence of a current user.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	u, err := s.CurrentUser(ctx)
	return u != nil, err
}

// RecordIntendedRoute remembers the destination an unauthenticated caller
// was refused. It is only recorded; nothing consumes it automatically.
func (s *Service) RecordIntendedRoute(ctx context.Context, route string) error {
	return storage.Set(ctx, s.store, intendedRouteKey, route)
}
