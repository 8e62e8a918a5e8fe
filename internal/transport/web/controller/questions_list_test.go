package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/askwall/askwall/internal/datasources/mocks"
	"github.com/askwall/askwall/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func TestQuestionsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		target       string
		setupContext func(r *http.Request) *http.Request
		wantOwner    string
		snapshots    []domain.QuestionSnapshot
		listErr      error
		skipList     bool
		wantStatus   int
		wantData     []domain.QuestionSnapshot
	}{
		{
			name:         "owner_from_query",
			target:       "/v1/questions?owner=user123",
			setupContext: testContext(),
			wantOwner:    "user123",
			snapshots: []domain.QuestionSnapshot{
				{ID: "q1", Description: "first?", Likes: 2, Dislikes: 0},
				{ID: "q2", Description: "second?", Likes: 0, Dislikes: 1},
			},
			wantStatus: http.StatusOK,
			wantData: []domain.QuestionSnapshot{
				{ID: "q1", Description: "first?", Likes: 2, Dislikes: 0},
				{ID: "q2", Description: "second?", Likes: 0, Dislikes: 1},
			},
		},
		{
			name:         "owner_defaults_to_authenticated_user",
			target:       "/v1/questions",
			setupContext: testContextWithUserID("user456"),
			wantOwner:    "user456",
			snapshots:    []domain.QuestionSnapshot{{ID: "q1", Description: "mine?"}},
			wantStatus:   http.StatusOK,
			wantData:     []domain.QuestionSnapshot{{ID: "q1", Description: "mine?"}},
		},
		{
			name:         "no_owner_anywhere",
			target:       "/v1/questions",
			setupContext: testContext(),
			skipList:     true,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "empty_list_serialises_as_empty_array",
			target:       "/v1/questions?owner=user123",
			setupContext: testContext(),
			wantOwner:    "user123",
			snapshots:    nil,
			wantStatus:   http.StatusOK,
			wantData:     []domain.QuestionSnapshot{},
		},
		{
			name:         "list_error",
			target:       "/v1/questions?owner=user123",
			setupContext: testContext(),
			wantOwner:    "user123",
			listErr:      errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockOwnerQuestionLister(t)

			if !tc.skipList {
				lister.EXPECT().
					ListQuestionsByOwner(mock.Anything, tc.wantOwner).
					Return(tc.snapshots, tc.listErr)
			}

			controller := QuestionsList{Lister: lister}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp QuestionsListResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				require.NoError(t, err)
				assert.Equal(t, tc.wantData, resp.Data)
			}
		})
	}
}
