package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/oyugibear/bofa-backend/pkg/auth"
	"github.com/oyugibear/bofa-backend/pkg/config"
	"github.com/oyugibear/bofa-backend/pkg/enums"
	"github.com/oyugibear/bofa-backend/pkg/logger"
)

type stubSessionChecker struct {
	active bool
}

func (s stubSessionChecker) HasSession(context.Context, string) (bool, error) {
	return s.active, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "bofa-test",
			ExpirationMinutes: 15,
		},
	}
}

func testRouter(t *testing.T, sessions stubSessionChecker) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})
	return NewRouter(testConfig(), logg, nil, nil, sessions, Services{})
}

func mintToken(t *testing.T, cfg *config.Config, role enums.MemberRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := testRouter(t, stubSessionChecker{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPublicPingNeedsNoToken(t *testing.T) {
	router := testRouter(t, stubSessionChecker{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/public/ping", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAuthedRoutesRejectMissingToken(t *testing.T) {
	router := testRouter(t, stubSessionChecker{})

	for _, target := range []string{"/api/v1/cart", "/api/v1/bookings", "/api/v1/me"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", target, resp.Code)
		}
	}
}

func TestAuthedRouteRejectsRevokedSession(t *testing.T) {
	router := testRouter(t, stubSessionChecker{active: false})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testConfig(), enums.MemberRoleCustomer))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAdminRoutesRejectCustomers(t *testing.T) {
	router := testRouter(t, stubSessionChecker{active: true})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testConfig(), enums.MemberRoleCustomer))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestAdminPingAllowsAdmins(t *testing.T) {
	router := testRouter(t, stubSessionChecker{active: true})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testConfig(), enums.MemberRoleAdmin))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
