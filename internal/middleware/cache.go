package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/wedspace/wedspace-api/internal/config"
)

// responseRecorder tees the response body into a buffer while writing
// through to the client.  Bodies past limit are let through but not
// buffered; an oversized response is simply not cached rather than
// cached truncated.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	body    bytes.Buffer
	written int64
	limit   int64
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.written += int64(len(b))
	if r.limit <= 0 || r.written <= r.limit {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) overflowed() bool { return r.limit > 0 && r.written > r.limit }

// NewRedisCache caches successful venue-listing responses in Redis so
// repeated browsing with the same filters does not hit MySQL.  Status,
// headers and body are stored as one entry so a hit replays the exact
// response.  Without Redis, or when disabled, it is a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				if replayEntry(c, raw) {
					return nil
				}
			}

			rec := &responseRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          int64(cfg.MaxBodyBytes),
			}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK && !rec.overflowed() {
				if entry, err := encodeEntry(rec.status, c.Response().Header(), rec.body.Bytes()); err == nil {
					// Detached context: the request may already be done.
					_ = rdb.SetEx(context.Background(), key, entry, ttl).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey hashes the route plus the raw query string; the venue
// filters live in the query, so each filter combination caches under
// its own key.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// Entries are framed as [status u32][headerLen u32][headerJSON][body].

func encodeEntry(status int, header http.Header, body []byte) ([]byte, error) {
	hdr, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	entry := make([]byte, 8, 8+len(hdr)+len(body))
	binary.BigEndian.PutUint32(entry[0:4], uint32(status))
	binary.BigEndian.PutUint32(entry[4:8], uint32(len(hdr)))
	entry = append(entry, hdr...)
	entry = append(entry, body...)
	return entry, nil
}

func decodeEntry(raw []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(raw) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(raw[0:4]))
	hlen := int(binary.BigEndian.Uint32(raw[4:8]))
	if hlen < 0 || 8+hlen > len(raw) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(raw[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, raw[8+hlen:], true
}

func replayEntry(c echo.Context, raw []byte) bool {
	status, header, body, ok := decodeEntry(raw)
	if !ok {
		return false
	}
	out := c.Response().Header()
	for k, vals := range header {
		if strings.EqualFold(k, "Content-Length") { // Echo recomputes it
			continue
		}
		for _, v := range vals {
			out.Add(k, v)
		}
	}
	out.Set("X-Cache", "HIT")
	c.Response().WriteHeader(status)
	if len(body) > 0 {
		_, _ = c.Response().Write(body)
	}
	return true
}
