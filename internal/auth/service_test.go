package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devMohamedYusri/life-pilot-evolved-app/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	svc := NewService(kv)
	svc.SetLatency(0)
	return svc
}

func TestSeededDemoAccount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.VerifyCredentials(ctx, "john@example.com", "Password123!")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	if u.FirstName != "John" || u.LastName != "Doe" {
		t.Fatalf("user=%+v, want John Doe", u)
	}
}

func TestRegisterThenVerify(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "difference-engine")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.ID == "" {
		t.Fatalf("registered user has empty id")
	}

	u, err := svc.VerifyCredentials(ctx, "ada@example.com", "difference-engine")
	if err != nil {
		t.Fatalf("VerifyCredentials after register: %v", err)
	}
	if u.ID != reg.ID || u.Email != "ada@example.com" {
		t.Fatalf("verified user=%+v, want registered %+v", u, reg)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com", "one"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "Another", "Ada", "ada@example.com", "completely-different")
	var taken EmailTakenError
	if !errors.As(err, &taken) {
		t.Fatalf("err=%v, want EmailTakenError", err)
	}
	if taken.Email != "ada@example.com" {
		t.Fatalf("EmailTakenError.Email=%q", taken.Email)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.VerifyCredentials(ctx, "john@example.com", "nope")
	var bad CredentialsError
	if !errors.As(err, &bad) {
		t.Fatalf("err=%v, want CredentialsError", err)
	}
}

func TestVerifyIsCaseSensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.VerifyCredentials(ctx, "John@Example.com", "Password123!"); err == nil {
		t.Fatalf("expected failure for differently cased email")
	}
}

func TestRegisteredIDsAreUnique(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		u, err := svc.Register(ctx, "F", "L", email, "pw")
		if err != nil {
			t.Fatalf("Register %s: %v", email, err)
		}
		if seen[u.ID] {
			t.Fatalf("duplicate id %q", u.ID)
		}
		seen[u.ID] = true
	}
}

func TestForgotPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "john@example.com"); err != nil {
		t.Fatalf("ForgotPassword known email: %v", err)
	}

	err := svc.ForgotPassword(ctx, "stranger@example.com")
	var nf UserNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want UserNotFoundError", err)
	}
}

func TestResetPasswordIsAStub(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.ResetPassword(ctx, "any-token", "new-password"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	// The stub must not have touched the stored credential.
	if _, err := svc.VerifyCredentials(ctx, "john@example.com", "Password123!"); err != nil {
		t.Fatalf("original password no longer verifies: %v", err)
	}
}

func TestCurrentUserLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if u, err := svc.CurrentUser(ctx); err != nil || u != nil {
		t.Fatalf("CurrentUser initial=(%v, %v), want (nil, nil)", u, err)
	}
	if ok, _ := svc.IsAuthenticated(ctx); ok {
		t.Fatalf("IsAuthenticated=true before login")
	}

	want := User{ID: "42", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}
	if err := svc.SaveCurrentUser(ctx, want); err != nil {
		t.Fatalf("SaveCurrentUser: %v", err)
	}
	got, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("CurrentUser=%+v, want %+v", got, want)
	}
	if ok, _ := svc.IsAuthenticated(ctx); !ok {
		t.Fatalf("IsAuthenticated=false after login")
	}

	if err := svc.RemoveCurrentUser(ctx); err != nil {
		t.Fatalf("RemoveCurrentUser: %v", err)
	}
	if u, _ := svc.CurrentUser(ctx); u != nil {
		t.Fatalf("CurrentUser after logout=%+v, want nil", u)
	}
}

func TestLatencyHonorsCancellation(t *testing.T) {
	svc := newTestService(t)
	svc.SetLatency(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.VerifyCredentials(ctx, "john@example.com", "Password123!")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (CredentialsError{}).Error(); !strings.Contains(got, "invalid email or password") {
		t.Fatalf("CredentialsError message %q", got)
	}
	if got := (EmailTakenError{Email: "x@y.z"}).Error(); !strings.Contains(got, "x@y.z") {
		t.Fatalf("EmailTakenError message %q", got)
	}
}
