package ratelimiter

import (
	"sync"
	"time"

	"github.com/sealteck/doortrack/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// window. The count resets when the window expires; bursts at a window edge
// can briefly see up to twice the limit, which is acceptable here.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		cfg:     cfg,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed, and how long until the
// current window resets when it may not.
func (rl *FixedWindowRateLimiter) Allow(clientId string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.RLock()
	count, exists := rl.clients[clientId]
	rl.RUnlock()

	if !exists || count < rl.cfg.RequestsPerTimeFrame {
		rl.Lock()
		if !exists {
			go rl.resetCount(clientId)
		}
		rl.clients[clientId]++
		rl.Unlock()

		return true, 0
	}

	return false, rl.cfg.TimeFrame
}

func (rl *FixedWindowRateLimiter) resetCount(clientId string) {
	time.Sleep(rl.cfg.TimeFrame)
	rl.Lock()
	delete(rl.clients, clientId)
	rl.Unlock()
}
