package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/askwall/askwall/internal/command"
	"github.com/askwall/askwall/internal/domain"
)

type QuestionCreate struct {
	Creator *command.CreateQuestion
}

type QuestionCreateRequest struct {
	Description string `json:"description"`
}

func (c QuestionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body QuestionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to parse question create request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	snapshot, err := c.Creator.Execute(ctx, command.CreateQuestionRequest{
		OwnerID:     domain.UserIDFromContext(ctx),
		Description: body.Description,
	})
	if err != nil {
		if errors.Is(err, command.ErrEmptyDescription) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		logger.ErrorContext(ctx, "unable to create question", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logger.ErrorContext(ctx, "unable to write question to response", "error", err)
	}
}
