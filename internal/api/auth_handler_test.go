package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// stubAuthService answers every call with a fixed error, enough to
// exercise the handler's status mapping.
type stubAuthService struct {
	err error
}

func (s *stubAuthService) Register(_ context.Context, _ service.RegisterInput) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return "token", &domain.User{Role: domain.RoleAthlete}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return "token", &domain.User{Role: domain.RoleAthlete}, nil
}

func postRegister(svc service.AuthService) *httptest.ResponseRecorder {
	router := gin.New()
	handler := NewAuthHandler(svc)
	router.POST("/api/auth/register", handler.Register)

	body := `{"name":"Asha","email":"asha@example.com","password":"secret123","role":"athlete"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterDuplicateEmailIsBadRequest(t *testing.T) {
	rec := postRegister(&stubAuthService{err: service.ErrUserAlreadyExists})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already exists") {
		t.Errorf("body = %s, want the duplicate-email message", rec.Body.String())
	}
}

func TestRegisterSucceeds(t *testing.T) {
	rec := postRegister(&stubAuthService{})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}
