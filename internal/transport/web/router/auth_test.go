package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/askwall/askwall/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewAuthMiddleware(t *testing.T) {
	echoUserID := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(domain.UserIDFromContext(r.Context())))
	})

	cases := []struct {
		name       string
		validators []AuthValidator
		wantStatus int
		wantBody   string
	}{
		{
			name: "first_matching_validator_wins",
			validators: []AuthValidator{
				func(r *http.Request) (*AuthResult, error) { return nil, nil },
				func(r *http.Request) (*AuthResult, error) { return &AuthResult{UserID: "user123"}, nil },
			},
			wantStatus: http.StatusOK,
			wantBody:   "user123",
		},
		{
			name: "validation_failure_rejects",
			validators: []AuthValidator{
				func(r *http.Request) (*AuthResult, error) { return nil, errors.New("bad credentials") },
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no_validator_matches_passes_through_anonymously",
			validators: nil,
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthMiddleware(tc.validators)(echoUserID)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewDevHeaderValidator(t *testing.T) {
	validate := NewDevHeaderValidator()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	result, err := validate(req)
	assert.NoError(t, err)
	assert.Nil(t, result)

	req.Header.Set("X-User-ID", "user123")
	result, err = validate(req)
	assert.NoError(t, err)
	assert.Equal(t, &AuthResult{UserID: "user123"}, result)
}

func TestRequireAuthMiddleware(t *testing.T) {
	handler := requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(domain.ContextWithUserID(req.Context(), "user123"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
