package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/spinhouse/roulette-backend/internal/api/handler"
	"github.com/spinhouse/roulette-backend/internal/core/domain"
	"github.com/spinhouse/roulette-backend/internal/core/ports"
)

type fakeAccounts struct{ balances map[string]int64 }

func (f *fakeAccounts) Signup(ctx context.Context, username, password string) error {
	if _, ok := f.balances[username]; ok {
		return domain.ErrUserExists
	}
	f.balances[username] = domain.StartingBalance
	return nil
}

func (f *fakeAccounts) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	b, ok := f.balances[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &ports.LoginResult{Balance: b}, nil
}

func (f *fakeAccounts) UpdateBalance(ctx context.Context, username string, amount int64, isAdd bool) (int64, error) {
	if _, ok := f.balances[username]; !ok {
		return 0, domain.ErrUserNotFound
	}
	if !isAdd {
		amount = -amount
	}
	f.balances[username] += amount
	return f.balances[username], nil
}

func (f *fakeAccounts) GetBalance(ctx context.Context, username string) (int64, error) {
	b, ok := f.balances[username]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	return b, nil
}

type fakeSpins struct{ spins []domain.Spin }

func (f *fakeSpins) SaveSpin(ctx context.Context, n int) (*domain.Spin, error) {
	s := domain.Spin{ID: int64(len(f.spins) + 1), WinningNumber: n, SpinTime: time.Now().UTC()}
	f.spins = append([]domain.Spin{s}, f.spins...)
	return &s, nil
}

func (f *fakeSpins) History(ctx context.Context) ([]domain.Spin, error) {
	return f.spins, nil
}

func newTestRouter(requireToken bool) *httptestServer {
	accounts := &fakeAccounts{balances: map[string]int64{}}
	e := NewRouter(RouterConfig{
		Accounts:     accounts,
		Spins:        &fakeSpins{},
		Checks:       map[string]handler.DependencyCheck{"postgres": func(context.Context) error { return nil }},
		Log:          zerolog.Nop(),
		RequireToken: requireToken,
		JWTSecret:    "secret",
		Registry:     prometheus.NewRegistry(),
	})
	return &httptestServer{handler: e}
}

type httptestServer struct{ handler http.Handler }

func (s *httptestServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AccountFlow(t *testing.T) {
	srv := newTestRouter(false)

	if rec := srv.do(http.MethodPost, "/signup", `{"username":"alice","password":"pw"}`); rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", rec.Code)
	}
	if rec := srv.do(http.MethodPost, "/signup", `{"username":"alice","password":"pw"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected 400, got %d", rec.Code)
	}
	if rec := srv.do(http.MethodPost, "/update-balance", `{"username":"alice","amount":50,"isAdd":true}`); rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}

	rec := srv.do(http.MethodPost, "/get-balance", `{"username":"alice"}`)
	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["balance"] != 1050 {
		t.Fatalf("expected 1050, got %d", resp["balance"])
	}
}

func TestRouter_SpinFlow(t *testing.T) {
	srv := newTestRouter(false)

	if rec := srv.do(http.MethodPost, "/save-spin", `{"winningNumber":17}`); rec.Code != http.StatusCreated {
		t.Fatalf("save-spin: expected 201, got %d", rec.Code)
	}

	rec := srv.do(http.MethodGet, "/spin-history", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"winning_number":17`) {
		t.Fatalf("unexpected history %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_UnknownRouteRendersErrorEnvelope(t *testing.T) {
	srv := newTestRouter(false)

	rec := srv.do(http.MethodGet, "/does-not-exist", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestRouter_Probes(t *testing.T) {
	srv := newTestRouter(false)

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		if rec := srv.do(http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_RequireToken(t *testing.T) {
	srv := newTestRouter(true)
	srv.do(http.MethodPost, "/signup", `{"username":"alice","password":"pw"}`)

	if rec := srv.do(http.MethodPost, "/get-balance", `{"username":"alice"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	auth := []string{"Authorization", "Bearer " + signed}

	if rec := srv.do(http.MethodPost, "/get-balance", `{"username":"alice"}`, auth...); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
	if rec := srv.do(http.MethodPost, "/update-balance", `{"username":"bob","amount":5,"isAdd":true}`, auth...); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign username, got %d", rec.Code)
	}

	// Login and signup stay open.
	if rec := srv.do(http.MethodPost, "/login", `{"username":"alice","password":"pw"}`); rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
}
