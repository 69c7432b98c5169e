package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubSeedService struct {
	resets int
	err    error
}

func (s *stubSeedService) EnsureSeeded(ctx context.Context) error {
	return s.err
}

func (s *stubSeedService) Reset(ctx context.Context) error {
	s.resets++
	return s.err
}

// viewerAuth installs a non-admin identity, for exercising the admin gate.
func viewerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserEmailKey, "viewer@example.com")
		ctx = context.WithValue(ctx, middleware.UserRoleKey, "viewer")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestSeedReset_RegeneratesCollections(t *testing.T) {
	svc := &stubSeedService{}
	router := chi.NewRouter()
	NewSeedHandler(svc, zap.NewNop()).RegisterRoutes(router, passthroughAuth)

	req := httptest.NewRequest(http.MethodPost, "/api/seed/reset", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if svc.resets != 1 {
		t.Errorf("resets = %d, want 1", svc.resets)
	}
}

func TestSeedReset_RequiresAdminRole(t *testing.T) {
	svc := &stubSeedService{}
	router := chi.NewRouter()
	NewSeedHandler(svc, zap.NewNop()).RegisterRoutes(router, viewerAuth)

	req := httptest.NewRequest(http.MethodPost, "/api/seed/reset", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if svc.resets != 0 {
		t.Error("reset must not run for non-admin callers")
	}
}

func TestSeedReset_ReportsFailure(t *testing.T) {
	svc := &stubSeedService{err: errors.New("store unavailable")}
	router := chi.NewRouter()
	NewSeedHandler(svc, zap.NewNop()).RegisterRoutes(router, passthroughAuth)

	req := httptest.NewRequest(http.MethodPost, "/api/seed/reset", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
