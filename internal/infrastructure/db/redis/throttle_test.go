package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, limit int64, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, limit, window), mr
}

func TestLoginThrottle_LocksAfterLimit(t *testing.T) {
	throttle, _ := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := throttle.RecordFailure(ctx, "ana"); err != nil {
			t.Fatalf("record failure: %v", err)
		}
		locked, err := throttle.TooManyAttempts(ctx, "ana")
		if err != nil {
			t.Fatalf("check: %v", err)
		}
		if locked {
			t.Fatalf("locked after %d failures, limit is 3", i+1)
		}
	}

	if err := throttle.RecordFailure(ctx, "ana"); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	locked, err := throttle.TooManyAttempts(ctx, "ana")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !locked {
		t.Fatalf("expected lockout after reaching the limit")
	}
}

func TestLoginThrottle_PerIdentifier(t *testing.T) {
	throttle, _ := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "ana"); err != nil {
		t.Fatalf("record failure: %v", err)
	}

	locked, err := throttle.TooManyAttempts(ctx, "bob")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("failures for one identifier must not lock another")
	}
}

func TestLoginThrottle_Reset(t *testing.T) {
	throttle, _ := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "ana"); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	if locked, _ := throttle.TooManyAttempts(ctx, "ana"); !locked {
		t.Fatalf("expected lockout before reset")
	}

	if err := throttle.Reset(ctx, "ana"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	locked, err := throttle.TooManyAttempts(ctx, "ana")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("reset should clear the counter")
	}
}

func TestLoginThrottle_WindowExpiry(t *testing.T) {
	throttle, mr := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "ana"); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	if locked, _ := throttle.TooManyAttempts(ctx, "ana"); !locked {
		t.Fatalf("expected lockout inside the window")
	}

	mr.FastForward(2 * time.Minute)

	locked, err := throttle.TooManyAttempts(ctx, "ana")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if locked {
		t.Fatalf("lockout should clear once the window expires")
	}
}
