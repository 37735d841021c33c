package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyHeader    = "Idempotency-Key"
	idempotencyReplayed  = "Idempotent-Replayed"
	maxIdempotencyKeyLen = 128
)

// IdempotencyStore is backed by Redis in production.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type cachedResponse struct {
	StatusCode  int             `json:"status_code"`
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
	Location    string          `json:"location,omitempty"`
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first response for a repeated Idempotency-Key.
// Keys are scoped to the authenticated user, so it must run after RequireAuth.
// A nil store turns the middleware into a no-op.
func Idempotency(store IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if store == nil || key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"message": "Idempotency-Key is too long"},
			})
			return
		}

		scope := "anonymous"
		if userID, ok := GetUserID(c); ok {
			scope = userID.String()
		}
		cacheKey := scope + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key
		ctx := c.Request.Context()

		raw, found, err := store.Get(ctx, cacheKey)
		if err != nil {
			slog.Warn("idempotency lookup failed, processing request", "error", err.Error())
		}
		if found {
			var cached cachedResponse
			if err = json.Unmarshal(raw, &cached); err == nil {
				if cached.Location != "" {
					c.Header("Location", cached.Location)
				}
				c.Header(idempotencyReplayed, "true")
				c.Data(cached.StatusCode, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
			slog.Warn("discarding unreadable idempotency entry", "error", err.Error())
		}

		w := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusInternalServerError {
			return
		}
		payload, err := json.Marshal(cachedResponse{
			StatusCode:  status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
			Location:    w.Header().Get("Location"),
		})
		if err != nil {
			slog.Warn("failed to encode idempotent response", "error", err.Error())
			return
		}
		if err = store.Set(ctx, cacheKey, payload, ttl); err != nil {
			slog.Warn("failed to store idempotent response", "error", err.Error())
		}
	}
}
