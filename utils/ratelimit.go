// utils/ratelimit.go
package utils

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a per-client-IP token bucket middleware for the API
// routes. Standard RateLimit-* headers are set on every response so the
// frontend can back off before hitting the limit.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastSweep = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		// Drop buckets for clients idle longer than 10 minutes. Swept
		// in-request so the middleware owns no background goroutine.
		if time.Since(lastSweep) > time.Minute {
			for addr, cl := range clients {
				if time.Since(cl.lastSeen) > 10*time.Minute {
					delete(clients, addr)
				}
			}
			lastSweep = time.Now()
		}

		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		remaining := int(math.Max(0, cl.limiter.Tokens()))
		mu.Unlock()

		c.Header("RateLimit-Limit", strconv.Itoa(burst))
		c.Header("RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("RateLimit-Reset", "1")

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too_many_requests"})
			return
		}

		c.Next()
	}
}
