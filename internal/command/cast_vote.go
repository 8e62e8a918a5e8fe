package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
	"github.com/askwall/askwall/internal/keylock"
)

// CastVoteRequest is the request for the CastVote command.
type CastVoteRequest struct {
	QuestionID string
	VoterID    string
	Direction  domain.VoteDirection
}

// CastVote runs one complete vote event: balance gate, vote toggle, and
// wallet settlement, guarded so that concurrent events on the same question
// or wallet are linearized. The question guard is always taken before any
// wallet guard; wallet guards are taken in ascending user-ID order.
//
// The event itself is never replayed: each store write inside it retries
// its own conflicts before committing, so a conflict surfacing here means
// the event stopped at a clean point with nothing to undo.
type CastVote struct {
	QuestionLocks *keylock.Registry
	WalletLocks   *keylock.Registry

	Questions datasources.QuestionFetcher
	Wallets   interface {
		datasources.WalletFetcher
		datasources.WalletCreator
	}
	Toggler *ToggleVote
	Settler *SettleWallet
}

// Execute applies the vote event and returns the updated question snapshot.
func (c *CastVote) Execute(ctx context.Context, req CastVoteRequest) (domain.QuestionSnapshot, error) {
	if !req.Direction.Valid() {
		return domain.QuestionSnapshot{}, fmt.Errorf("invalid vote direction %q", req.Direction)
	}

	releaseQuestion := c.QuestionLocks.Lock(req.QuestionID)
	defer releaseQuestion()

	question, err := c.Questions.FetchQuestionByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return domain.QuestionSnapshot{}, err
		}
		return domain.QuestionSnapshot{}, fmt.Errorf("fetching question: %w", err)
	}

	// A like settles the owner's wallet; a dislike debits the voter's.
	walletID := question.OwnerID
	if req.Direction == domain.VoteDislike {
		walletID = req.VoterID
	}
	releaseWallets := c.WalletLocks.LockOrdered(walletID)
	defer releaseWallets()

	if req.Direction == domain.VoteDislike {
		wallet, err := c.Wallets.FetchWalletByUser(ctx, req.VoterID)
		if errors.Is(err, domain.ErrWalletNotFound) {
			// First vote activity from this user: provision the wallet
			// lazily, under the wallet guard, the same way CreateQuestion
			// does for owners.
			wallet = domain.NewWallet(req.VoterID)
			if err := c.Wallets.CreateWallet(ctx, wallet); err != nil {
				return domain.QuestionSnapshot{}, fmt.Errorf("provisioning voter wallet: %w", err)
			}
		} else if err != nil {
			return domain.QuestionSnapshot{}, fmt.Errorf("fetching voter wallet for gate: %w", err)
		}
		if !wallet.CanSpend() {
			// Gate rejection: the vote record stays untouched.
			return domain.QuestionSnapshot{}, domain.ErrInsufficientFunds
		}
	}

	question, err = c.Toggler.Execute(ctx, ToggleVoteRequest{
		QuestionID: req.QuestionID,
		VoterID:    req.VoterID,
		Direction:  req.Direction,
	})
	if err != nil {
		return domain.QuestionSnapshot{}, err
	}

	switch req.Direction {
	case domain.VoteLike:
		if _, err := c.Settler.SettleOwner(ctx, question.OwnerID); err != nil {
			return domain.QuestionSnapshot{}, err
		}
	case domain.VoteDislike:
		if _, err := c.Settler.DebitVoter(ctx, req.VoterID); err != nil {
			return domain.QuestionSnapshot{}, err
		}
	}

	return question.Snapshot(), nil
}
