package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterEnforcesLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Fourth request within the window should be denied")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("First client should be allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("A different client must have its own window")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("First client should be over its limit")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("First request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("Second request inside the window should be denied")
	}

	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("Request after the window expired should be allowed")
	}
}
