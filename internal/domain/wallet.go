package domain

// InitialGrant is the balance every wallet starts from before any vote
// activity. Dislikes cost one unit each, so a fresh user can spend this
// many before needing likes on their own questions.
const InitialGrant = 10

// Wallet is a user's spendable balance together with the vote activity it
// derives from. Balance is never adjusted by deltas: every settlement
// re-derives it in full from the recorded activity, so replayed or missed
// updates converge to the same value.
type Wallet struct {
	UserID           string
	Balance          int
	LikesReceived    int
	DislikesReceived int
	UnitsSpent       int
}

// DeriveBalance is the settlement function: the balance a user's recorded
// vote activity implies. Deterministic and idempotent under re-derivation.
func DeriveBalance(likesReceived, dislikesReceived, unitsSpent int) int {
	return InitialGrant + likesReceived - dislikesReceived - unitsSpent
}

// Settle replaces the wallet's received totals with freshly aggregated ones
// and re-derives the balance.
func (w *Wallet) Settle(likesReceived, dislikesReceived int) {
	w.LikesReceived = likesReceived
	w.DislikesReceived = dislikesReceived
	w.Balance = DeriveBalance(w.LikesReceived, w.DislikesReceived, w.UnitsSpent)
}

// Spend records one spent unit and re-derives the balance.
func (w *Wallet) Spend() {
	w.UnitsSpent++
	w.Balance = DeriveBalance(w.LikesReceived, w.DislikesReceived, w.UnitsSpent)
}

// CanSpend reports whether the wallet passes the dislike gate. The gate is
// a precondition check: a non-positive balance rejects the event before any
// vote state is touched.
func (w *Wallet) CanSpend() bool {
	return w.Balance > 0
}

// NewWallet returns a wallet with no recorded activity.
func NewWallet(userID string) Wallet {
	return Wallet{
		UserID:  userID,
		Balance: DeriveBalance(0, 0, 0),
	}
}
