package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/datasources/memory"
	"github.com/askwall/askwall/internal/domain"
	"github.com/askwall/askwall/internal/keylock"
)

func TestToggleVote_Execute(t *testing.T) {
	cases := []struct {
		name         string
		direction    domain.VoteDirection
		priorVoters  []string
		voter        string
		wantCount    int
		wantMembers  []string
		wantOpposite int
	}{
		{
			name:        "cast_like",
			direction:   domain.VoteLike,
			voter:       "voterA",
			wantCount:   1,
			wantMembers: []string{"voterA"},
		},
		{
			name:        "retract_like",
			direction:   domain.VoteLike,
			priorVoters: []string{"voterA"},
			voter:       "voterA",
			wantCount:   0,
			wantMembers: nil,
		},
		{
			name:        "cast_alongside_existing_votes",
			direction:   domain.VoteDislike,
			priorVoters: []string{"voterA"},
			voter:       "voterB",
			wantCount:   2,
			wantMembers: []string{"voterA", "voterB"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.New()
			q := domain.Question{ID: "q1", OwnerID: "owner"}
			for _, v := range tc.priorVoters {
				q.Toggle(v, tc.direction)
			}
			require.NoError(t, store.CreateQuestion(testContext(), q))

			toggler := &ToggleVote{Questions: store}
			got, err := toggler.Execute(testContext(), ToggleVoteRequest{
				QuestionID: "q1", VoterID: tc.voter, Direction: tc.direction,
			})
			require.NoError(t, err)

			members := got.Likers
			count := got.Likes
			if tc.direction == domain.VoteDislike {
				members = got.Dislikers
				count = got.Dislikes
			}
			assert.Equal(t, tc.wantCount, count)
			assert.Equal(t, tc.wantMembers, members)

			// The committed record matches what was returned.
			stored, err := store.FetchQuestionByID(testContext(), "q1")
			require.NoError(t, err)
			assert.Equal(t, got, stored)
		})
	}
}

func TestToggleVote_QuestionNotFound(t *testing.T) {
	toggler := &ToggleVote{Questions: memory.New()}

	_, err := toggler.Execute(testContext(), ToggleVoteRequest{
		QuestionID: "missing", VoterID: "voterA", Direction: domain.VoteLike,
	})
	require.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

// flakyStore fails the first conflictsLeft vote-record writes with
// ErrConflict, then defers to the wrapped store.
type flakyStore struct {
	*memory.Store
	conflictsLeft int
}

func (s *flakyStore) UpdateVoteRecord(ctx context.Context, q domain.Question, toggle domain.VoteToggle) error {
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return datasources.ErrConflict
	}
	return s.Store.UpdateVoteRecord(ctx, q, toggle)
}

func TestCastVote_RetriesStorageConflicts(t *testing.T) {
	store := memory.New()
	flaky := &flakyStore{Store: store, conflictsLeft: 2}

	castVote := &CastVote{
		QuestionLocks: keylock.NewRegistry(),
		WalletLocks:   keylock.NewRegistry(),
		Questions:     store,
		Wallets:       store,
		Toggler:       &ToggleVote{Questions: flaky},
		Settler:       &SettleWallet{Wallets: store, Totals: store},
	}

	seedQuestion(t, store, "q1", "owner")
	seedWallet(t, store, "owner")

	snap, err := castVote.Execute(testContext(), CastVoteRequest{
		QuestionID: "q1", VoterID: "voterA", Direction: domain.VoteLike,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Likes)
}

// flakyWalletStore fails the first conflictsLeft wallet writes with
// ErrConflict, then defers to the wrapped store.
type flakyWalletStore struct {
	*memory.Store
	conflictsLeft int
}

func (s *flakyWalletStore) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return datasources.ErrConflict
	}
	return s.Store.UpdateWallet(ctx, wallet)
}

func TestCastVote_WalletConflictDoesNotReplayToggle(t *testing.T) {
	store := memory.New()
	flaky := &flakyWalletStore{Store: store, conflictsLeft: 1}

	castVote := &CastVote{
		QuestionLocks: keylock.NewRegistry(),
		WalletLocks:   keylock.NewRegistry(),
		Questions:     store,
		Wallets:       store,
		Toggler:       &ToggleVote{Questions: store},
		Settler:       &SettleWallet{Wallets: flaky, Totals: store},
	}

	seedQuestion(t, store, "q1", "owner")
	seedWallet(t, store, "owner")

	// The settlement write conflicts once after the toggle has committed.
	// Only the wallet write is retried: the like must stay cast.
	snap, err := castVote.Execute(testContext(), CastVoteRequest{
		QuestionID: "q1", VoterID: "voterA", Direction: domain.VoteLike,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Likes)

	q, err := store.FetchQuestionByID(testContext(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Likes)
	assert.Equal(t, []string{"voterA"}, q.Likers)

	wallet, err := store.FetchWalletByUser(testContext(), "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialGrant+1, wallet.Balance)
}

func TestCastVote_WalletConflictChargesDislikeExactlyOnce(t *testing.T) {
	store := memory.New()
	flaky := &flakyWalletStore{Store: store, conflictsLeft: 1}

	castVote := &CastVote{
		QuestionLocks: keylock.NewRegistry(),
		WalletLocks:   keylock.NewRegistry(),
		Questions:     store,
		Wallets:       store,
		Toggler:       &ToggleVote{Questions: store},
		Settler:       &SettleWallet{Wallets: flaky, Totals: store},
	}

	seedQuestion(t, store, "q1", "owner")
	seedWallet(t, store, "voterA")

	snap, err := castVote.Execute(testContext(), CastVoteRequest{
		QuestionID: "q1", VoterID: "voterA", Direction: domain.VoteDislike,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Dislikes)

	q, err := store.FetchQuestionByID(testContext(), "q1")
	require.NoError(t, err)
	assert.Equal(t, []string{"voterA"}, q.Dislikers)

	// The conflicted write rolled back before committing, so the retried
	// debit lands once.
	wallet, err := store.FetchWalletByUser(testContext(), "voterA")
	require.NoError(t, err)
	assert.Equal(t, 1, wallet.UnitsSpent)
	assert.Equal(t, domain.InitialGrant-1, wallet.Balance)
}

func TestCastVote_SurfacesConflictAfterBoundedRetries(t *testing.T) {
	store := memory.New()
	flaky := &flakyStore{Store: store, conflictsLeft: maxConflictRetries}

	castVote := &CastVote{
		QuestionLocks: keylock.NewRegistry(),
		WalletLocks:   keylock.NewRegistry(),
		Questions:     store,
		Wallets:       store,
		Toggler:       &ToggleVote{Questions: flaky},
		Settler:       &SettleWallet{Wallets: store, Totals: store},
	}

	seedQuestion(t, store, "q1", "owner")
	seedWallet(t, store, "owner")

	_, err := castVote.Execute(testContext(), CastVoteRequest{
		QuestionID: "q1", VoterID: "voterA", Direction: domain.VoteLike,
	})
	require.ErrorIs(t, err, datasources.ErrConflict)

	// A clean rollback: the aborted event left no partial state.
	q, err := store.FetchQuestionByID(testContext(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 0, q.Likes)
	assert.Empty(t, q.Likers)
}
