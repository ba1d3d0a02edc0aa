package http

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowAndRefill(t *testing.T) {

	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatalf("expected first two requests to pass")
	}
	if rl.Allow("1.1.1.1") {
		t.Errorf("expected third request to be limited")
	}
	if !rl.Allow("2.2.2.2") {
		t.Errorf("expected other clients to be unaffected")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Errorf("expected a new window after one minute")
	}
}

func TestRateLimiter_FixedWindow(t *testing.T) {

	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("1.1.1.1")
	rl.Allow("1.1.1.1")

	// a mitad de ventana no se devuelve nada
	now = now.Add(59 * time.Second)
	if rl.Allow("1.1.1.1") {
		t.Errorf("expected no partial refill inside the window")
	}

	now = now.Add(time.Second)
	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Errorf("expected full allowance in the new window")
	}
	if rl.Allow("1.1.1.1") {
		t.Errorf("expected new window to be capped at capacity")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {

	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("1.1.1.1")
	now = now.Add(2 * time.Hour)
	rl.Allow("2.2.2.2")

	rl.cleanup()

	if rl.Clients() != 1 {
		t.Errorf("expected stale client to be dropped, got %d clients", rl.Clients())
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {

	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	rl.Stop()
}
