package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

// maxConflictRetries bounds how many times a contended store write is
// retried before the conflict is surfaced.
const maxConflictRetries = 3

// retryConflicts runs fn up to maxConflictRetries times, retrying only on
// datasources.ErrConflict. A conflicted write has rolled back without
// committing, so fn must re-read its inputs and re-apply from scratch.
// fn must never be used to wrap work that spans a commit: once any write
// of an event has committed, the remainder gets its own retry scope.
func retryConflicts(ctx context.Context, op string, fn func() error) error {
	logger := domain.LoggerFromContext(ctx)

	var lastErr error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err := fn()
		if err == nil || !errors.Is(err, datasources.ErrConflict) {
			return err
		}

		lastErr = err
		logger.WarnContext(ctx, "storage conflict, retrying",
			"op", op, "attempt", attempt+1)
	}

	return fmt.Errorf("%s still contended after %d attempts: %w",
		op, maxConflictRetries, lastErr)
}
