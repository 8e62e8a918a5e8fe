// Package memory implements the question and wallet stores in process
// memory. It backs the "memory" store driver for local development and is
// the store used by unit tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

var _ datasources.Repository = (*Store)(nil)

type Store struct {
	mu        sync.RWMutex
	questions map[string]domain.Question
	wallets   map[string]domain.Wallet
}

func New() *Store {
	return &Store{
		questions: make(map[string]domain.Question),
		wallets:   make(map[string]domain.Wallet),
	}
}

func (s *Store) FetchQuestionByID(_ context.Context, questionID string) (domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[questionID]
	if !ok {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	return cloneQuestion(q), nil
}

func (s *Store) CreateQuestion(_ context.Context, question domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions[question.ID] = cloneQuestion(question)
	return nil
}

func (s *Store) ListQuestionsByOwner(_ context.Context, ownerID string) ([]domain.QuestionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owned []domain.Question
	for _, q := range s.questions {
		if q.OwnerID == ownerID {
			owned = append(owned, q)
		}
	}
	sortNewestFirst(owned)

	snapshots := make([]domain.QuestionSnapshot, 0, len(owned))
	for _, q := range owned {
		snapshots = append(snapshots, q.Snapshot())
	}
	return snapshots, nil
}

func (s *Store) ListLatestQuestions(_ context.Context, limit int) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		all = append(all, domain.Question{
			ID:          q.ID,
			OwnerID:     q.OwnerID,
			Description: q.Description,
			Likes:       q.Likes,
			Dislikes:    q.Dislikes,
			CreatedAt:   q.CreatedAt,
		})
	}
	sortNewestFirst(all)

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// UpdateVoteRecord overwrites the stored vote record in one step under the
// store lock; the counters and membership change land together or not at
// all.
func (s *Store) UpdateVoteRecord(_ context.Context, question domain.Question, _ domain.VoteToggle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[question.ID]; !ok {
		return domain.ErrQuestionNotFound
	}
	s.questions[question.ID] = cloneQuestion(question)
	return nil
}

func (s *Store) TotalOwnerVotes(_ context.Context, ownerID string) (likes, dislikes int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.questions {
		if q.OwnerID == ownerID {
			likes += q.Likes
			dislikes += q.Dislikes
		}
	}
	return likes, dislikes, nil
}

func (s *Store) FetchWalletByUser(_ context.Context, userID string) (domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wallets[userID]
	if !ok {
		return domain.Wallet{}, domain.ErrWalletNotFound
	}
	return w, nil
}

func (s *Store) CreateWallet(_ context.Context, wallet domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallets[wallet.UserID] = wallet
	return nil
}

func (s *Store) UpdateWallet(_ context.Context, wallet domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[wallet.UserID]; !ok {
		return domain.ErrWalletNotFound
	}
	s.wallets[wallet.UserID] = wallet
	return nil
}

func cloneQuestion(q domain.Question) domain.Question {
	q.Likers = slices.Clone(q.Likers)
	q.Dislikers = slices.Clone(q.Dislikers)
	return q
}

func sortNewestFirst(questions []domain.Question) {
	slices.SortFunc(questions, func(a, b domain.Question) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
