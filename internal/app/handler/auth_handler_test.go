package handler

import (
	"net/http"
	"testing"

	"backoffice/internal/app/dto"
)

func TestRegisterLoginCurrentLogout(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Login: "maria", Password: "secret1", Name: "Maria"})
	expectStatus(t, w, http.StatusCreated)

	var registered dto.UserView
	decode(t, w, &registered)
	if registered.Role != "operator" {
		t.Fatalf("registration must create an operator, got %s", registered.Role)
	}

	token := s.login(t, "maria", "secret1")

	w = s.do(t, http.MethodGet, "/api/auth/current", token, nil)
	expectStatus(t, w, http.StatusOK)
	var current dto.UserView
	decode(t, w, &current)
	if current.PID != registered.PID || current.Login != "maria" {
		t.Fatalf("unexpected current user %+v", current)
	}

	w = s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	expectStatus(t, w, http.StatusOK)

	w = s.do(t, http.MethodGet, "/api/auth/current", token, nil)
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	s := newTestServer(t)
	body := dto.RegisterRequest{Login: "maria", Password: "secret1", Name: "Maria"}

	expectStatus(t, s.do(t, http.MethodPost, "/api/auth/register", "", body), http.StatusCreated)
	expectStatus(t, s.do(t, http.MethodPost, "/api/auth/register", "", body), http.StatusConflict)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Login: "ab", Password: "1", Name: "X"})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.operatorToken(t)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Login: "operator", Password: "wrong"})
	expectStatus(t, w, http.StatusUnauthorized)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Login: "nobody", Password: "wrong"})
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestLoginResponse(t *testing.T) {
	s := newTestServer(t)
	s.operatorToken(t)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Login: "operator", Password: "secret1"})
	expectStatus(t, w, http.StatusOK)

	var resp dto.LoginResponse
	decode(t, w, &resp)
	if resp.TokenType != "Bearer" || resp.ExpiresIn != 3600 || resp.Token == "" {
		t.Fatalf("unexpected login response %+v", resp)
	}
}
