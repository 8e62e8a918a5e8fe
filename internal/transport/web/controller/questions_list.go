package controller

import (
	"encoding/json"
	"net/http"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

type QuestionsList struct {
	Lister datasources.OwnerQuestionLister
}

type QuestionsListResponse struct {
	Data     []domain.QuestionSnapshot `json:"data"`
	Metadata QuestionsListMetadata     `json:"metadata"`
}

type QuestionsListMetadata struct{}

func (c QuestionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner")
	if ownerID == "" {
		ownerID = domain.UserIDFromContext(r.Context())
	}
	if ownerID == "" {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "no owner in query string and no authenticated user")

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	questions, err := c.Lister.ListQuestionsByOwner(r.Context(), ownerID)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch questions", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if questions == nil {
		questions = []domain.QuestionSnapshot{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(QuestionsListResponse{
		Data:     questions,
		Metadata: QuestionsListMetadata{},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write questions to response", "error", err)
	}
}
