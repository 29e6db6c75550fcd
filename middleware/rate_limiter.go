package middleware

import (
	"net/http"
	"sync"
	"time"

	"quadrafacil/config"
	"quadrafacil/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients   = make(map[string]*clientLimiter)
	clientsMu sync.Mutex
)

// RateLimiter limits each client IP to the configured number of requests per
// minute. Idle entries are evicted by a background sweep.
func RateLimiter() gin.HandlerFunc {
	perMinute := config.AppConfig.MaxRequestsPerMin
	if perMinute <= 0 {
		perMinute = 60
	}

	go cleanupClients()

	return func(c *gin.Context) {
		ip := GetClientIP(c)

		clientsMu.Lock()
		entry, ok := clients[ip]
		if !ok {
			entry = &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
			}
			clients[ip] = entry
		}
		entry.lastSeen = time.Now()
		clientsMu.Unlock()

		if !entry.limiter.Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "Too many requests", "Rate limit exceeded, slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupClients() {
	for {
		time.Sleep(time.Minute)
		clientsMu.Lock()
		for ip, entry := range clients {
			if time.Since(entry.lastSeen) > 3*time.Minute {
				delete(clients, ip)
			}
		}
		clientsMu.Unlock()
	}
}
