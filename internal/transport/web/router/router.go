package router

import (
	"net/http"
	"time"

	"github.com/askwall/askwall/internal/cache"
	"github.com/askwall/askwall/internal/command"
	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
	"github.com/askwall/askwall/internal/keylock"
	"github.com/askwall/askwall/internal/transport/web/controller"
	"github.com/gorilla/mux"
)

const rssFeedLimit = 50

func MakeRouter(
	repo datasources.Repository,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	questionLocks := keylock.NewRegistry()
	walletLocks := keylock.NewRegistry()

	castVote := &command.CastVote{
		QuestionLocks: questionLocks,
		WalletLocks:   walletLocks,
		Questions:     repo,
		Wallets:       repo,
		Toggler:       &command.ToggleVote{Questions: repo},
		Settler:       &command.SettleWallet{Wallets: repo, Totals: repo},
	}

	feedCache, err := cache.New[string](16, latestCacheMaxAge)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/questions", requireAuthMiddleware(controller.QuestionCreate{
		Creator: &command.CreateQuestion{Questions: repo, Wallets: repo},
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/questions", controller.QuestionsList{
		Lister: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/questions/{question_id}", controller.QuestionGet{
		Fetcher:     repo,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/questions/{question_id}/like", requireAuthMiddleware(controller.QuestionVote{
		Direction: domain.VoteLike,
		Caster:    castVote,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/questions/{question_id}/dislike", requireAuthMiddleware(controller.QuestionVote{
		Direction: domain.VoteDislike,
		Caster:    castVote,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/wallet", requireAuthMiddleware(controller.WalletGet{
		Fetcher: repo,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		FeedLimit:       rssFeedLimit,
		Lister:          repo,
		Cache:           feedCache,
		CacheMaxAge:     latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
