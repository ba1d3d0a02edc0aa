package http

import (
	"sync"
	"time"
)

const (
	idleClientTTL   = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

// clientWindow counts what a client has left in its current window.
type clientWindow struct {
	remaining int
	start     time.Time
}

// RateLimiter is a fixed-window limiter: each client gets capacity requests
// per window, and the full allowance comes back once the window has elapsed.
// Requests are not refilled gradually.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillDur   time.Duration
	clients     map[string]*clientWindow
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		refillDur:   refillDur,
		clients:     make(map[string]*clientWindow),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, window := range r.clients {
		if now.Sub(window.start) > idleClientTTL {
			delete(r.clients, ip)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	window, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientWindow{
			remaining: r.capacity - 1,
			start:     now,
		}
		return true
	}

	// ventana vencida: se abre una nueva con la cuota completa
	if now.Sub(window.start) >= r.refillDur {
		window.remaining = r.capacity
		window.start = now
	}

	if window.remaining <= 0 {
		return false
	}

	window.remaining--
	return true
}

// Clients reports how many clients are being tracked.
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}
