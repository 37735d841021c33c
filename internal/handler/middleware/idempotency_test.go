//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

type idempotencyFixture struct {
	engine *gin.Engine
	calls  int
	status int
}

func newIdempotencyFixture(store middleware.IdempotencyStore, userID uuid.UUID) *idempotencyFixture {
	gin.SetMode(gin.TestMode)
	f := &idempotencyFixture{status: http.StatusCreated}
	f.engine = gin.New()
	identify := func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			middleware.SetIdentity(c, uuid.MustParse(id), user.RoleCustomer)
		} else {
			middleware.SetIdentity(c, userID, user.RoleCustomer)
		}
		c.Next()
	}
	f.engine.POST("/api/bookings", identify, middleware.Idempotency(store, time.Hour), func(c *gin.Context) {
		f.calls++
		c.Header("Location", "/api/bookings/42")
		c.JSON(f.status, gin.H{"call": f.calls})
	})
	return f
}

func (f *idempotencyFixture) post(key string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysFirstResponse(t *testing.T) {
	store := newMemoryStore()
	f := newIdempotencyFixture(store, uuid.New())

	first := f.post("key-1")
	second := f.post("key-1")

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get("Idempotent-Replayed"))

	assert.Equal(t, 1, f.calls, "handler runs once")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, "/api/bookings/42", second.Header().Get("Location"))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	for _, ttl := range store.ttls {
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestIdempotency_KeysAreScopedPerUser(t *testing.T) {
	f := newIdempotencyFixture(newMemoryStore(), uuid.New())

	f.post("shared-key")
	f.post("shared-key", "X-Test-User", uuid.New().String())

	assert.Equal(t, 2, f.calls)
}

func TestIdempotency_WithoutKeyOrStore(t *testing.T) {
	t.Run("no header", func(t *testing.T) {
		store := newMemoryStore()
		f := newIdempotencyFixture(store, uuid.New())

		f.post("")
		f.post("")

		assert.Equal(t, 2, f.calls)
		assert.Empty(t, store.data)
	})

	t.Run("nil store", func(t *testing.T) {
		f := newIdempotencyFixture(nil, uuid.New())

		f.post("key-1")
		rec := f.post("key-1")

		assert.Equal(t, 2, f.calls)
		assert.Empty(t, rec.Header().Get("Idempotent-Replayed"))
	})
}

func TestIdempotency_RejectsOversizedKey(t *testing.T) {
	f := newIdempotencyFixture(newMemoryStore(), uuid.New())

	rec := f.post(strings.Repeat("k", 129))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.calls)
}

func TestIdempotency_ServerErrorsAreNotCached(t *testing.T) {
	store := newMemoryStore()
	f := newIdempotencyFixture(store, uuid.New())
	f.status = http.StatusInternalServerError

	f.post("key-1")
	f.status = http.StatusCreated
	rec := f.post("key-1")

	assert.Equal(t, 2, f.calls)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIdempotency_StoreFailureFallsThrough(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("connection refused")
	f := newIdempotencyFixture(store, uuid.New())

	rec := f.post("key-1")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, f.calls)
}
