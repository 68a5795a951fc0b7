package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/app/config"
	"backoffice/internal/app/ds"
	"backoffice/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type fakeBlacklist map[string]bool

func (f fakeBlacklist) IsJWTBlacklisted(_ context.Context, jwtStr string) (bool, error) {
	return f[jwtStr], nil
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{
		Token:         "secret",
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}}
}

func signToken(t *testing.T, secret string, r role.Role, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: expires.Unix()},
		UserPID:        uuid.New(),
		Role:           r,
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newRouter(am *AuthMiddleware, roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", am.WithAuthCheck(roles...), func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, user.Role.String())
	})
	return router
}

func doRequest(router http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck(t *testing.T) {
	cfg := testConfig()
	revoked := signToken(t, "secret", role.Operator, time.Now().Add(time.Hour))
	am := NewAuthMiddleware(fakeBlacklist{revoked: true}, cfg)

	cases := []struct {
		name   string
		token  string
		roles  []role.Role
		status int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"garbage", "not-a-jwt", nil, http.StatusUnauthorized},
		{"wrong secret", signToken(t, "other", role.Admin, time.Now().Add(time.Hour)), nil, http.StatusUnauthorized},
		{"expired", signToken(t, "secret", role.Admin, time.Now().Add(-time.Minute)), nil, http.StatusUnauthorized},
		{"revoked", revoked, nil, http.StatusUnauthorized},
		{"operator on admin route", signToken(t, "secret", role.Operator, time.Now().Add(time.Hour)), []role.Role{role.Admin}, http.StatusForbidden},
		{"admin on admin route", signToken(t, "secret", role.Admin, time.Now().Add(time.Hour)), []role.Role{role.Admin}, http.StatusOK},
		{"any role", signToken(t, "secret", role.Operator, time.Now().Add(time.Hour)), nil, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(newRouter(am, tc.roles...), tc.token)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(1, 1)

	router := gin.New()
	router.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
	if code := send("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other ip: expected 200, got %d", code)
	}
}

func TestRateLimiterRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(6, 1)

	router := gin.New()
	router.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var last *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.9:1"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", last.Code)
	}
	if got := last.Header().Get("Retry-After"); got != "11" {
		t.Fatalf("expected Retry-After 11, got %q", got)
	}
}
