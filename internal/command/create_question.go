package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

// CreateQuestionRequest is the request for the CreateQuestion command.
type CreateQuestionRequest struct {
	OwnerID     string
	Description string
}

// ErrEmptyDescription is returned when a question is submitted without any
// text.
var ErrEmptyDescription = errors.New("question description must not be empty")

// CreateQuestion stores a new question with an empty vote record. User
// records live outside this service, so the owner's wallet entry is
// provisioned here on first use.
type CreateQuestion struct {
	Questions datasources.QuestionCreator
	Wallets   interface {
		datasources.WalletFetcher
		datasources.WalletCreator
	}
}

// Execute creates the question and returns its snapshot.
func (c *CreateQuestion) Execute(ctx context.Context, req CreateQuestionRequest) (domain.QuestionSnapshot, error) {
	if req.Description == "" {
		return domain.QuestionSnapshot{}, ErrEmptyDescription
	}

	question := domain.Question{
		ID:          uuid.New().String(),
		OwnerID:     req.OwnerID,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.Questions.CreateQuestion(ctx, question); err != nil {
		return domain.QuestionSnapshot{}, fmt.Errorf("storing question: %w", err)
	}

	if _, err := c.Wallets.FetchWalletByUser(ctx, req.OwnerID); errors.Is(err, domain.ErrWalletNotFound) {
		if err := c.Wallets.CreateWallet(ctx, domain.NewWallet(req.OwnerID)); err != nil {
			return domain.QuestionSnapshot{}, fmt.Errorf("provisioning owner wallet: %w", err)
		}
	} else if err != nil {
		return domain.QuestionSnapshot{}, fmt.Errorf("checking owner wallet: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "question created",
		"question_id", question.ID, "owner_id", req.OwnerID)

	return question.Snapshot(), nil
}
