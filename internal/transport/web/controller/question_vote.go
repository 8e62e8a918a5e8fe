package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/askwall/askwall/internal/command"
	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
	"github.com/gorilla/mux"
)

// ErrorResponse is the body sent with 4xx rejections that carry a reason.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageNotEnoughBalance is the rejection reason for a dislike attempted
// with a non-positive balance.
const MessageNotEnoughBalance = "NOT_ENOUGH_BALANCE"

type QuestionVote struct {
	Direction domain.VoteDirection
	Caster    *command.CastVote
}

func (c QuestionVote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["question_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("question_id", id))

	snapshot, err := c.Caster.Execute(ctx, command.CastVoteRequest{
		QuestionID: id,
		VoterID:    domain.UserIDFromContext(r.Context()),
		Direction:  c.Direction,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrQuestionNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrInsufficientFunds):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Message: MessageNotEnoughBalance}); err != nil {
			logger.ErrorContext(ctx, "unable to write rejection to response", "error", err)
		}
		return
	case errors.Is(err, datasources.ErrConflict):
		logger.ErrorContext(ctx, "vote event still contended after retries", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	default:
		logger.ErrorContext(ctx, "unable to apply vote", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logger.ErrorContext(ctx, "unable to write question to response", "error", err)
	}
}
