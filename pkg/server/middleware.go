package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	loggerKey       = "logger"
	requestIDHeader = "X-Request-ID"
)

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// accessLog tags every request with an id, echoed in the response, and
// hands handlers a logger carrying it.
func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		reqLog := log.With(zap.String("request_id", id))
		c.Set(loggerKey, reqLog)
		c.Next()
		reqLog.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func getLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(loggerKey); ok {
		if log, ok := l.(*zap.Logger); ok {
			return log
		}
	}
	return zap.NewNop()
}

func jsonError(c *gin.Context, status int, message, details string) {
	getLogger(c).Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// maxLimiters bounds the per-client map. Past it, buckets that have fully
// refilled are dropped; a fresh bucket behaves the same.
const maxLimiters = 1024

// limiterStore holds one token bucket per client address.
type limiterStore struct {
	limit rate.Limit
	burst int
	max   int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterStore(perSecond float64, burst int) *limiterStore {
	if burst < 1 {
		burst = 1
	}
	return &limiterStore{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		max:      maxLimiters,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[ip]
	if !ok {
		if len(s.limiters) >= s.max {
			s.sweepLocked()
		}
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

func (s *limiterStore) sweepLocked() {
	for ip, l := range s.limiters {
		if l.Tokens() >= float64(s.burst) {
			delete(s.limiters, ip)
		}
	}
}

// allow takes a token for the client, answering 429 when none is left.
func (s *limiterStore) allow(c *gin.Context) bool {
	ip := c.ClientIP()
	if s.get(ip).Allow() {
		return true
	}
	getLogger(c).Warn("rate limit exceeded", zap.String("ip", ip))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
		Message: "too many events, slow down",
	})
	return false
}
