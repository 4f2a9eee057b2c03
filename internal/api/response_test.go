package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
)

func errorStatus(t *testing.T, err error) (int, apiResponse) {
	t.Helper()
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		respondServiceError(c, err)
	})
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return rec.Code, body
}

func TestServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"not authorized", service.ErrNotAuthorized, http.StatusForbidden},
		{"invalid reference", service.ErrInvalidReference, http.StatusBadRequest},
		{"conflicting state", domain.ErrConflictingState, http.StatusBadRequest},
		{"unknown", errors.New("database on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := errorStatus(t, tc.err)
			if status != tc.want {
				t.Errorf("status = %d, want %d", status, tc.want)
			}
			if body.Success {
				t.Error("error responses must have success=false")
			}
		})
	}
}

func TestUnknownErrorsNeverLeakDetails(t *testing.T) {
	_, body := errorStatus(t, errors.New("dial tcp 10.0.0.5: connection refused"))
	if body.Message != "An internal error occurred" {
		t.Errorf("message = %q, want the generic one", body.Message)
	}
}

func TestFieldErrorsAreItemized(t *testing.T) {
	fieldErrs := domain.FieldErrors{}
	fieldErrs.Add("title", "please provide a title")
	fieldErrs.Add("endDate", "end date must be after start date")

	status, body := errorStatus(t, fieldErrs)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if len(body.Errors) != 2 {
		t.Errorf("errors = %v, want both fields", body.Errors)
	}
	if body.Errors["title"] != "please provide a title" {
		t.Errorf("title error = %q", body.Errors["title"])
	}
}
