package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"todoapi/internal/core/port"
	"todoapi/pkg/metrics"
)

type ResponseCacheConfig struct {
	TTL     time.Duration
	Enabled bool
}

// ResponseCache keeps short-lived copies of GET responses keyed by
// path and caller. The backing store is pluggable (memory or redis).
type ResponseCache struct {
	store   port.CacheRepository
	config  map[string]ResponseCacheConfig
	metrics *metrics.AppMetrics
}

type CachedResponse struct {
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewResponseCache(store port.CacheRepository, m *metrics.AppMetrics) *ResponseCache {
	configs := map[string]ResponseCacheConfig{
		"/todos": {
			TTL:     3 * time.Second,
			Enabled: true,
		},
		"default": {
			TTL:     time.Second,
			Enabled: false,
		},
	}

	return &ResponseCache{
		store:   store,
		config:  configs,
		metrics: m,
	}
}

// SetConfig overrides the cache policy for a single route path.
func (rc *ResponseCache) SetConfig(path string, config ResponseCacheConfig) {
	rc.config[path] = config
}

func (rc *ResponseCache) CacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		config, exists := rc.config[path]

		if !exists {
			config = rc.config["default"]
		}

		if !config.Enabled {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rc.cacheKey(c, path)

		if raw, err := rc.store.Get(ctx, key); err == nil {
			var cached CachedResponse

			if json.Unmarshal(raw, &cached) == nil && time.Since(cached.Timestamp) < config.TTL {
				rc.metrics.RecordCacheHit(path)
				c.Header("X-Cache", "HIT")
				c.Data(cached.StatusCode, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		rc.metrics.RecordCacheMiss(path)
		c.Header("X-Cache", "MISS")

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if writer.Status() != 200 {
			return
		}

		cached := CachedResponse{
			StatusCode:  writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
			Timestamp:   time.Now(),
		}

		if raw, err := json.Marshal(cached); err == nil {
			rc.store.Set(ctx, key, raw, config.TTL)
		}
	}
}

func (rc *ResponseCache) cacheKey(c *gin.Context, path string) string {
	userID := c.GetString(ContextUserID)
	sum := md5.Sum([]byte(c.Request.URL.RequestURI()))

	return fmt.Sprintf("response:%s:%s:%x", path, userID, sum)
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *bodyCaptureWriter) WriteString(data string) (int, error) {
	w.body.WriteString(data)
	return w.ResponseWriter.WriteString(data)
}
