package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

type WalletGet struct {
	Fetcher datasources.WalletFetcher
}

type WalletGetResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}

func (c WalletGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	wallet, err := c.Fetcher.FetchWalletByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			// A user with no activity still has the initial grant.
			wallet = domain.NewWallet(userID)
		} else {
			logger := domain.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "unable to fetch wallet", "error", err)

			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(WalletGetResponse{
		UserID:  wallet.UserID,
		Balance: wallet.Balance,
	}); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write wallet to response", "error", err)
	}
}
