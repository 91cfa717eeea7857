package ratelimiter

import (
	"testing"
	"time"

	"github.com/sealteck/doortrack/internal/config"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := limiter.Allow("10.0.0.1")
	if allowed {
		t.Error("fourth request should be blocked")
	}
	if retryAfter != time.Minute {
		t.Errorf("retryAfter = %v, want %v", retryAfter, time.Minute)
	}

	// Another client has its own window
	if allowed, _ := limiter.Allow("10.0.0.2"); !allowed {
		t.Error("different client should not be affected")
	}
}

func TestFixedWindowLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	for i := 0; i < 10; i++ {
		if allowed, _ := limiter.Allow("10.0.0.1"); !allowed {
			t.Fatal("disabled limiter must allow everything")
		}
	}
}
