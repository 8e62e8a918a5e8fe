package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/askwall/askwall/internal/command"
	"github.com/askwall/askwall/internal/datasources/memory"
	"github.com/askwall/askwall/internal/domain"
	"github.com/askwall/askwall/internal/keylock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoteController(t *testing.T, direction domain.VoteDirection) (*memory.Store, QuestionVote) {
	t.Helper()

	store := memory.New()
	caster := &command.CastVote{
		QuestionLocks: keylock.NewRegistry(),
		WalletLocks:   keylock.NewRegistry(),
		Questions:     store,
		Wallets:       store,
		Toggler:       &command.ToggleVote{Questions: store},
		Settler:       &command.SettleWallet{Wallets: store, Totals: store},
	}

	return store, QuestionVote{Direction: direction, Caster: caster}
}

func voteRequest(t *testing.T, direction domain.VoteDirection, questionID, userID string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost,
		"/v1/questions/"+questionID+"/"+string(direction), nil)
	req = testContextWithUserID(userID)(req)
	return mux.SetURLVars(req, map[string]string{"question_id": questionID})
}

func TestQuestionVote_LikeTogglesAndReturnsSnapshot(t *testing.T) {
	store, controller := newVoteController(t, domain.VoteLike)

	require.NoError(t, store.CreateQuestion(context.Background(), domain.Question{
		ID: "q1", OwnerID: "owner", Description: "a question?", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, store.CreateWallet(context.Background(), domain.NewWallet("owner")))

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, voteRequest(t, domain.VoteLike, "q1", "voterA"))

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot domain.QuestionSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
	assert.Equal(t, domain.QuestionSnapshot{
		ID: "q1", Description: "a question?", Likes: 1, Dislikes: 0,
	}, snapshot)

	// Voting again retracts.
	rec = httptest.NewRecorder()
	controller.ServeHTTP(rec, voteRequest(t, domain.VoteLike, "q1", "voterA"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
	assert.Equal(t, 0, snapshot.Likes)
}

func TestQuestionVote_QuestionNotFound(t *testing.T) {
	_, controller := newVoteController(t, domain.VoteLike)

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, voteRequest(t, domain.VoteLike, "missing", "voterA"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuestionVote_DislikeRejectedWithoutBalance(t *testing.T) {
	store, controller := newVoteController(t, domain.VoteDislike)
	ctx := context.Background()

	require.NoError(t, store.CreateQuestion(ctx, domain.Question{
		ID: "q1", OwnerID: "owner", Description: "a question?", CreatedAt: time.Now().UTC(),
	}))

	// Voter with an exhausted wallet.
	wallet := domain.NewWallet("voterA")
	for range domain.InitialGrant {
		wallet.Spend()
	}
	require.NoError(t, store.CreateWallet(ctx, wallet))

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, voteRequest(t, domain.VoteDislike, "q1", "voterA"))

	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, MessageNotEnoughBalance, resp.Message)

	// The vote record stays untouched.
	question, err := store.FetchQuestionByID(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, 0, question.Dislikes)
}

func TestQuestionVote_DislikeWithoutWalletUsesInitialGrant(t *testing.T) {
	store, controller := newVoteController(t, domain.VoteDislike)
	ctx := context.Background()

	require.NoError(t, store.CreateQuestion(ctx, domain.Question{
		ID: "q1", OwnerID: "owner", Description: "a question?", CreatedAt: time.Now().UTC(),
	}))

	// The voter has no wallet row. The wallet endpoint reports the initial
	// grant for such users, so the dislike must spend from it rather than
	// being rejected.
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, voteRequest(t, domain.VoteDislike, "q1", "voterA"))

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot domain.QuestionSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
	assert.Equal(t, 1, snapshot.Dislikes)

	wallet, err := store.FetchWalletByUser(ctx, "voterA")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialGrant-1, wallet.Balance)
}

func TestQuestionVote_DislikeChargesVoter(t *testing.T) {
	store, controller := newVoteController(t, domain.VoteDislike)
	ctx := context.Background()

	require.NoError(t, store.CreateQuestion(ctx, domain.Question{
		ID: "q1", OwnerID: "owner", Description: "a question?", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, store.CreateWallet(ctx, domain.NewWallet("voterA")))

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, voteRequest(t, domain.VoteDislike, "q1", "voterA"))

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot domain.QuestionSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
	assert.Equal(t, 1, snapshot.Dislikes)

	wallet, err := store.FetchWalletByUser(ctx, "voterA")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialGrant-1, wallet.Balance)
}
