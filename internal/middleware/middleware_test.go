package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func init() { gin.SetMode(gin.TestMode) }

func token(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := middleware.GenerateToken(secret, middleware.Claims{
		UserID: "user-1", EmployeeID: "emp-1", Role: role,
	}, ttl)
	require.NoError(t, err)
	return tok
}

type fakeEnforcer struct {
	allow map[string]bool
	err   error
}

func (f fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.allow[req.Role+":"+req.Resource+":"+req.Action], f.err
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AuthMiddleware(secret))
	r.GET("/me", func(c *gin.Context) {
		md := contextutil.ExtractMetadata(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"employee_id": md.EmployeeID, "role": md.Role, "request_id": md.RequestID})
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "HR", time.Hour))
		req.Header.Set("X-Request-ID", "rid-9")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "emp-1", body["employee_id"])
		assert.Equal(t, "HR", body["role"])
		assert.Equal(t, "rid-9", body["request_id"])
		assert.Equal(t, "rid-9", w.Header().Get("X-Request-ID"))
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "HR", -time.Minute))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := middleware.GenerateToken("other", middleware.Claims{UserID: "u", EmployeeID: "e", Role: "HR"}, time.Hour)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRBACAuthorize(t *testing.T) {
	enf := fakeEnforcer{allow: map[string]bool{"HR:payroll:manage": true}}

	run := func(role string, e middleware.RBACService) int {
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set(middleware.KeyRole, role); c.Next() })
		r.POST("/x", middleware.RBACAuthorize(e, "payroll", "manage"), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, run("HR", enf))
	assert.Equal(t, http.StatusForbidden, run("Employee", enf))
	assert.Equal(t, http.StatusUnauthorized, run("", enf))
	assert.Equal(t, http.StatusInternalServerError, run("HR", fakeEnforcer{err: errors.New("boom")}))
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.KeyUserID, "u-1"); c.Next() })
	r.POST("/check-in", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodPost, "/check-in", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/check-in", nil))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
}

func TestIdempotency(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/generate:u-1:key-1"

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.KeyUserID, "u-1"); c.Next() })
	r.POST("/generate", middleware.Idempotency(rdb), func(c *gin.Context) {
		middleware.StoreIdempotentResult(c, rdb, gin.H{"net": "100.00"})
		c.JSON(http.StatusCreated, gin.H{"net": "100.00"})
	})

	t.Run("first request runs handler and stores result", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"net":"100.00"}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns cached body", func(t *testing.T) {
		mock.ExpectGet(cacheKey).SetVal(`{"net":"100.00"}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.Contains(t, w.Body.String(), "100.00")
	})

	t.Run("in flight duplicate is rejected", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
