package session

import (
	"context"
	"testing"
	"time"
)

const testSecret = "test-session-secret"

func TestIssueAndResolve(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, testSecret, time.Hour, false)
	ctx := context.Background()

	value, err := mgr.Issue(ctx, 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sess, err := mgr.Resolve(ctx, value)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sess.UserID != 42 {
		t.Errorf("UserID = %d, want 42", sess.UserID)
	}
}

func TestResolveRejectsTamperedCookie(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, testSecret, time.Hour, false)
	ctx := context.Background()

	value, err := mgr.Issue(ctx, 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Signed with a different secret: must fail before any store lookup.
	other := NewManager(store, "other-secret", time.Hour, false)
	if _, err := other.Resolve(ctx, value); err != ErrNotFound {
		t.Errorf("Resolve with wrong secret = %v, want ErrNotFound", err)
	}

	if _, err := mgr.Resolve(ctx, "garbage"); err != ErrNotFound {
		t.Errorf("Resolve with garbage cookie = %v, want ErrNotFound", err)
	}
}

func TestRollingExpiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	mgr := NewManager(store, testSecret, time.Hour, false)
	ctx := context.Background()

	value, err := mgr.Issue(ctx, 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Activity 50 minutes in restarts the clock.
	now = now.Add(50 * time.Minute)
	if _, err := mgr.Resolve(ctx, value); err != nil {
		t.Fatalf("Resolve before expiry: %v", err)
	}

	// 50 more minutes: inside the refreshed window.
	now = now.Add(50 * time.Minute)
	if _, err := mgr.Resolve(ctx, value); err != nil {
		t.Fatalf("Resolve within refreshed window: %v", err)
	}

	// Idle past the full TTL: gone.
	now = now.Add(61 * time.Minute)
	if _, err := mgr.Resolve(ctx, value); err != ErrNotFound {
		t.Errorf("Resolve after expiry = %v, want ErrNotFound", err)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, testSecret, time.Hour, false)
	ctx := context.Background()

	value, err := mgr.Issue(ctx, 3)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if err := mgr.Destroy(ctx, value); err != nil {
		t.Fatalf("first Destroy: %v", err)
	}
	if err := mgr.Destroy(ctx, value); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
	if err := mgr.Destroy(ctx, "not-even-a-jwt"); err != nil {
		t.Fatalf("Destroy with garbage cookie: %v", err)
	}

	if _, err := mgr.Resolve(ctx, value); err != ErrNotFound {
		t.Errorf("Resolve after Destroy = %v, want ErrNotFound", err)
	}
}
