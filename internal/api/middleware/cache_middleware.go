package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/infrastructure/cache"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CacheMiddleware serves document GETs from Redis and invalidates on
// mutations. With a nil cache client both middlewares are pass-through.
type CacheMiddleware struct {
	cache  *cache.RedisClient
	logger *logger.Logger
	ttl    time.Duration
}

func NewCacheMiddleware(cache *cache.RedisClient, log *logger.Logger, ttl time.Duration) *CacheMiddleware {
	return &CacheMiddleware{cache: cache, logger: log, ttl: ttl}
}

// responseBuffer is a custom ResponseWriter that also stores the response
type responseBuffer struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBuffer) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseBuffer) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// CacheResponse caches successful GET responses keyed by request path.
func (m *CacheMiddleware) CacheResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if cached, err := m.cache.Get(c.Request.Context(), key); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		buff := &responseBuffer{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = buff

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := m.cache.Set(c.Request.Context(), key, buff.body.Bytes(), m.ttl); err != nil {
				m.logger.Error("failed to cache response",
					zap.String("key", key),
					zap.Error(err))
			}
		}
	}
}

// CacheInvalidate drops the given cached paths after a successful
// mutation.
func (m *CacheMiddleware) CacheInvalidate(paths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if m.cache == nil {
			return
		}
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			if err := m.cache.Delete(c.Request.Context(), paths...); err != nil {
				m.logger.Error("failed to invalidate cache",
					zap.Strings("paths", paths),
					zap.Error(err))
			}
		}
	}
}
