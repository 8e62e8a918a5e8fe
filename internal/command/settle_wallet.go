package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

// SettleWallet recomputes wallet balances after a vote event. The caller
// must hold the affected wallet's guard for the duration of either method.
type SettleWallet struct {
	Wallets interface {
		datasources.WalletFetcher
		datasources.WalletUpdater
	}
	Totals datasources.OwnerVoteTotaler
}

// SettleOwner re-derives the question owner's balance from their aggregate
// vote totals. A full re-derivation rather than a delta: settlements missed
// or replayed by earlier events converge on the next one. A conflicted
// wallet write rolls back without committing and the re-derivation is
// retried whole. Returns the new balance.
func (c *SettleWallet) SettleOwner(ctx context.Context, ownerID string) (int, error) {
	var balance int
	err := retryConflicts(ctx, "owner settlement", func() error {
		var err error
		balance, err = c.settleOwnerOnce(ctx, ownerID)
		return err
	})
	return balance, err
}

func (c *SettleWallet) settleOwnerOnce(ctx context.Context, ownerID string) (int, error) {
	wallet, err := c.Wallets.FetchWalletByUser(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("fetching owner wallet: %w", err)
	}

	likes, dislikes, err := c.Totals.TotalOwnerVotes(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("aggregating owner vote totals: %w", err)
	}

	wallet.Settle(likes, dislikes)

	if err := c.Wallets.UpdateWallet(ctx, wallet); err != nil {
		return 0, fmt.Errorf("storing owner wallet: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "owner wallet settled",
		"owner_id", ownerID, "balance", wallet.Balance)

	return wallet.Balance, nil
}

// DebitVoter charges the voter one unit and re-derives their balance.
// The charge applies to every dislike toggle, cast or retraction alike.
// A conflicted write rolls back uncommitted, so each retry re-fetches the
// wallet and applies the single charge to fresh state. Returns the new
// balance.
func (c *SettleWallet) DebitVoter(ctx context.Context, voterID string) (int, error) {
	var balance int
	err := retryConflicts(ctx, "voter debit", func() error {
		var err error
		balance, err = c.debitVoterOnce(ctx, voterID)
		return err
	})
	return balance, err
}

func (c *SettleWallet) debitVoterOnce(ctx context.Context, voterID string) (int, error) {
	wallet, err := c.Wallets.FetchWalletByUser(ctx, voterID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("fetching voter wallet: %w", err)
	}

	wallet.Spend()

	if err := c.Wallets.UpdateWallet(ctx, wallet); err != nil {
		return 0, fmt.Errorf("storing voter wallet: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "voter wallet debited",
		"voter_id", voterID, "balance", wallet.Balance)

	return wallet.Balance, nil
}
