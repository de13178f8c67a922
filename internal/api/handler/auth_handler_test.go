package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

type stubSessionStore struct {
	establishFn func(ctx context.Context, creds ports.Credentials) (*domain.Identity, error)
	currentFn   func(ctx context.Context, token string) (*domain.Identity, error)
	cleared     []string
}

func (s *stubSessionStore) Establish(ctx context.Context, creds ports.Credentials) (*domain.Identity, error) {
	return s.establishFn(ctx, creds)
}

func (s *stubSessionStore) Current(ctx context.Context, token string) (*domain.Identity, error) {
	return s.currentFn(ctx, token)
}

func (s *stubSessionStore) Clear(_ context.Context, token string) {
	s.cleared = append(s.cleared, token)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		establishFn: func(ctx context.Context, creds ports.Credentials) (*domain.Identity, error) {
			if creds.Email != "alice@example.com" || creds.Password != "secret" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			return &domain.Identity{
				UserID:   "user-1",
				Username: "alice",
				Email:    creds.Email,
				Role:     domain.RoleCandidate,
				Token:    "token123",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["token"] != "token123" || data["username"] != "alice" || data["role"] != domain.RoleCandidate {
		t.Fatalf("unexpected identity payload: %+v", data)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		establishFn: func(ctx context.Context, creds ports.Credentials) (*domain.Identity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"alice@example.com","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to surface, got %v", err)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		establishFn: func(ctx context.Context, creds ports.Credentials) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email","password":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		establishFn: func(ctx context.Context, creds ports.Credentials) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		currentFn: func(ctx context.Context, token string) (*domain.Identity, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.Identity{UserID: "user-1", Username: "alice", Role: domain.RoleCandidate}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", "token123")

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	if data["username"] != "alice" {
		t.Fatalf("unexpected identity payload: %+v", data)
	}
	if _, ok := data["token"]; ok {
		t.Fatalf("token must not be echoed back: %+v", data)
	}
}

func TestAuthHandler_Logout_ClearsSession(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", "token123")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.cleared) != 1 || stub.cleared[0] != "token123" {
		t.Fatalf("session not cleared: %+v", stub.cleared)
	}
}
