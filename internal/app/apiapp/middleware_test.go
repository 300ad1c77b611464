package apiapp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
)

func TestAuthMiddlewarePassesIdentity(t *testing.T) {
	jwtManager := authsvc.NewJWTManager("test-secret", time.Minute)
	token, _, err := jwtManager.GenerateAccessToken(101, "sid-1", "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	mw := AuthMiddleware(jwtManager, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/rencontre/candidates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := authsvc.IdentityFromContext(r.Context())
		if !ok {
			t.Fatalf("identity missing in context")
		}
		if identity.AccountID != 101 || identity.SID != "sid-1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusNoContent)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	mw := AuthMiddleware(authsvc.NewJWTManager("test-secret", time.Minute), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/rencontre/candidates", nil)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not be called without a token")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsForeignToken(t *testing.T) {
	otherManager := authsvc.NewJWTManager("other-secret", time.Minute)
	token, _, err := otherManager.GenerateAccessToken(101, "sid-1", "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	mw := AuthMiddleware(authsvc.NewJWTManager("test-secret", time.Minute), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/rencontre/candidates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not be called with a foreign token")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}
