package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"backoffice/internal/app/backup"
	"backoffice/internal/app/config"
	"backoffice/internal/app/dbtest"
	"backoffice/internal/app/dto"
	"backoffice/internal/app/middleware"
	"backoffice/internal/app/redis"
	"backoffice/internal/app/repository"
	"backoffice/internal/app/role"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type testServer struct {
	router *gin.Engine
	repo   *repository.Repository
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		LoginRate: config.RateConfig{PerMinute: 600, Burst: 100},
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: port, DialTimeout: time.Second, ReadTimeout: time.Second}
	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })

	repo := repository.NewWithDB(dbtest.Open(t))
	backups := backup.NewService(repo.DB(), backup.DirStore{Root: t.TempDir()})

	authHandler := NewAuthHandler(repo, redisClient, cfg)
	api := NewAPIHandler(repo, backups, authHandler)

	router := gin.New()
	api.RegisterAPIRoutes(router, authHandler.Auth, middleware.NewRateLimiter(cfg.LoginRate.PerMinute, cfg.LoginRate.Burst))

	return &testServer{router: router, repo: repo, cfg: cfg}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func (s *testServer) login(t *testing.T, login, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Login: login, Password: password})
	expectStatus(t, w, http.StatusOK)

	var resp dto.LoginResponse
	decode(t, w, &resp)
	return resp.Token
}

// operatorToken регистрирует оператора и возвращает его токен
func (s *testServer) operatorToken(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Login: "operator", Password: "secret1", Name: "Op"})
	expectStatus(t, w, http.StatusCreated)
	return s.login(t, "operator", "secret1")
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	hash, err := HashPassword("admin-pass")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.repo.CreateUser(context.Background(), "admin", hash, "Admin", role.Admin); err != nil {
		t.Fatal(err)
	}
	return s.login(t, "admin", "admin-pass")
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/ping", "", nil)
	expectStatus(t, w, http.StatusOK)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/processes/all", "/api/orders/all", "/api/clients/all", "/api/auth/current"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestErrorBody(t *testing.T) {
	s := newTestServer(t)
	token := s.operatorToken(t)

	w := s.do(t, http.MethodGet, "/api/sellers/not-a-uuid", token, nil)
	expectStatus(t, w, http.StatusBadRequest)

	var resp dto.ErrorResponse
	decode(t, w, &resp)
	if resp.Status != "error" || resp.Description == "" {
		t.Fatalf("unexpected error body %+v", resp)
	}
}
