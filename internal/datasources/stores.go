package datasources

import (
	"context"
	"errors"

	"github.com/askwall/askwall/internal/domain"
)

// ErrConflict is returned by store implementations when a write aborts due
// to concurrent access (deadlock or serialization failure). Callers retry
// the whole toggle+settle sequence a bounded number of times.
var ErrConflict = errors.New("storage conflict")

type QuestionFetcher interface {
	// FetchQuestionByID returns the question with its full vote record.
	// Returns domain.ErrQuestionNotFound when absent.
	FetchQuestionByID(ctx context.Context, questionID string) (domain.Question, error)
}

type QuestionCreator interface {
	CreateQuestion(ctx context.Context, question domain.Question) error
}

type OwnerQuestionLister interface {
	// ListQuestionsByOwner returns snapshots of a user's questions, newest
	// first. Membership sets are not hydrated.
	ListQuestionsByOwner(ctx context.Context, ownerID string) ([]domain.QuestionSnapshot, error)
}

type LatestQuestionLister interface {
	// ListLatestQuestions returns the newest questions across all owners.
	// Membership sets are not hydrated.
	ListLatestQuestions(ctx context.Context, limit int) ([]domain.Question, error)
}

type VoteRecordUpdater interface {
	// UpdateVoteRecord persists the counters of the question and the single
	// membership change described by toggle as one commit. No reader may
	// observe the counter change without the membership change.
	UpdateVoteRecord(ctx context.Context, question domain.Question, toggle domain.VoteToggle) error
}

type OwnerVoteTotaler interface {
	// TotalOwnerVotes aggregates likes and dislikes across every question
	// the owner has posted.
	TotalOwnerVotes(ctx context.Context, ownerID string) (likes, dislikes int, err error)
}

type WalletFetcher interface {
	// FetchWalletByUser returns domain.ErrWalletNotFound when the user has
	// no wallet entry.
	FetchWalletByUser(ctx context.Context, userID string) (domain.Wallet, error)
}

type WalletCreator interface {
	CreateWallet(ctx context.Context, wallet domain.Wallet) error
}

type WalletUpdater interface {
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error
}

// QuestionStore is the full persistence surface for questions and their
// vote records.
type QuestionStore interface {
	QuestionFetcher
	QuestionCreator
	OwnerQuestionLister
	LatestQuestionLister
	VoteRecordUpdater
	OwnerVoteTotaler
}

// WalletStore is the full persistence surface for wallet balances.
type WalletStore interface {
	WalletFetcher
	WalletCreator
	WalletUpdater
}

// Repository is implemented by the storage drivers.
type Repository interface {
	QuestionStore
	WalletStore
}
