package middlewares

import (
	"math/rand"
	"strings"
	"time"

	"github.com/alvinmajawa241/foodlink/pkg/resp"

	"github.com/gin-gonic/gin"
)

// SimConfig tunes the demo-flavour request simulation: every API call waits
// an artificial latency and fails with a uniform probability. Both knobs are
// zero in tests.
type SimConfig struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64 // probability of an injected network error, [0,1)
}

// Simulate injects latency and random failures before the handler runs, so
// a failed call never leaves partial state behind. Websocket and health
// routes are exempt.
func Simulate(cfg SimConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || strings.HasPrefix(path, "/ws/") {
			c.Next()
			return
		}

		if cfg.MaxLatency > 0 {
			d := cfg.MinLatency
			if spread := cfg.MaxLatency - cfg.MinLatency; spread > 0 {
				d += time.Duration(rand.Int63n(int64(spread)))
			}
			time.Sleep(d)
		}

		if cfg.FailureRate > 0 && rand.Float64() < cfg.FailureRate {
			resp.Unavailable(c, "network error occurred")
			c.Abort()
			return
		}

		c.Next()
	}
}
