package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var cache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration
	Methods    []string
	KeyFunc    func(*gin.Context) string
}

// DefaultCacheConfig caches GET responses for five minutes
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

// defaultKeyFunc keys the cache on path plus sorted query parameters
func defaultKeyFunc(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	key := path + "?" + queryString

	hasher := md5.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Cache creates a response cache middleware
func Cache(config ...CacheConfig) gin.HandlerFunc {
	var cfg CacheConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultCacheConfig
	}

	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		methodAllowed := false
		for _, method := range cfg.Methods {
			if c.Request.Method == method {
				methodAllowed = true
				break
			}
		}

		if !methodAllowed {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)

		cache.RLock()
		entry, found := cache.items[key]
		cache.RUnlock()

		if found && entry.Expiration.After(time.Now()) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		// Only successful responses are cached
		if c.Writer.Status() == http.StatusOK {
			content := writer.body.Bytes()
			cache.Lock()
			cache.items[key] = cacheEntry{
				Content:    content,
				Expiration: time.Now().Add(cfg.Expiration),
			}
			cache.Unlock()
		}
	}
}
