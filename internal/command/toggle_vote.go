package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

// ToggleVoteRequest is the request for the ToggleVote command.
type ToggleVoteRequest struct {
	QuestionID string
	VoterID    string
	Direction  domain.VoteDirection
}

// ToggleVote flips a single voter's like or dislike on a question and
// persists the updated vote record. Counters and membership land as one
// commit. The caller must hold the question's guard for the duration of
// Execute; ToggleVote itself takes no locks.
type ToggleVote struct {
	Questions interface {
		datasources.QuestionFetcher
		datasources.VoteRecordUpdater
	}
}

// Execute loads the question, applies the toggle, and stores the result.
// Returns the question as committed. A storage conflict rolls the write
// back without committing, so the whole load-toggle-store sequence is
// retried from scratch a bounded number of times.
func (c *ToggleVote) Execute(ctx context.Context, req ToggleVoteRequest) (domain.Question, error) {
	var question domain.Question
	err := retryConflicts(ctx, "vote toggle", func() error {
		var err error
		question, err = c.toggleOnce(ctx, req)
		return err
	})
	if err != nil {
		return domain.Question{}, err
	}

	return question, nil
}

func (c *ToggleVote) toggleOnce(ctx context.Context, req ToggleVoteRequest) (domain.Question, error) {
	logger := domain.LoggerFromContext(ctx)

	question, err := c.Questions.FetchQuestionByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return domain.Question{}, err
		}
		return domain.Question{}, fmt.Errorf("fetching question for toggle: %w", err)
	}

	toggle := question.Toggle(req.VoterID, req.Direction)

	if err := c.Questions.UpdateVoteRecord(ctx, question, toggle); err != nil {
		return domain.Question{}, fmt.Errorf("storing vote record: %w", err)
	}

	logger.DebugContext(ctx, "vote toggled",
		"question_id", question.ID,
		"direction", req.Direction,
		"cast", toggle.Cast,
		"likes", question.Likes,
		"dislikes", question.Dislikes,
	)

	return question, nil
}
