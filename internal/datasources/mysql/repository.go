package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"

	"github.com/askwall/askwall/internal/datasources"
	"github.com/askwall/askwall/internal/domain"
)

var _ datasources.Repository = (*Repository)(nil)

// MySQL error numbers that indicate the statement lost a race with a
// concurrent transaction and is safe to retry.
const (
	errLockWaitTimeout = 1205
	errDeadlock        = 1213
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchQuestionByID(ctx context.Context, questionID string) (domain.Question, error) {
	return r.fetchQuestion(ctx, r.db, questionID, false)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *Repository) fetchQuestion(
	ctx context.Context, q querier, questionID string, forUpdate bool,
) (domain.Question, error) {
	sb := sqlbuilder.Select("id", "owner_id", "description", "likes", "dislikes", "created_at")
	sb.From("questions")
	sb.Where(sb.Equal("id", questionID))
	if forUpdate {
		sb.ForUpdate()
	}

	query, args := sb.Build()
	row := q.QueryRowContext(ctx, query, args...)

	var question domain.Question
	err := row.Scan(
		&question.ID,
		&question.OwnerID,
		&question.Description,
		&question.Likes,
		&question.Dislikes,
		&question.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	if err != nil {
		return domain.Question{}, fmt.Errorf("scanning question: %w", err)
	}

	if err := r.hydrateMembership(ctx, q, &question); err != nil {
		return domain.Question{}, err
	}

	return question, nil
}

func (r *Repository) hydrateMembership(ctx context.Context, q querier, question *domain.Question) error {
	sb := sqlbuilder.Select("user_id", "direction")
	sb.From("question_votes")
	sb.Where(sb.Equal("question_id", question.ID))

	query, args := sb.Build()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running vote membership query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var userID, direction string
		if err := rows.Scan(&userID, &direction); err != nil {
			return fmt.Errorf("scanning vote membership: %w", err)
		}
		switch domain.VoteDirection(direction) {
		case domain.VoteLike:
			question.Likers = append(question.Likers, userID)
		case domain.VoteDislike:
			question.Dislikers = append(question.Dislikers, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating vote membership rows: %w", err)
	}

	return nil
}

func (r *Repository) CreateQuestion(ctx context.Context, question domain.Question) error {
	ib := sqlbuilder.InsertInto("questions")
	ib.Cols("id", "owner_id", "description", "likes", "dislikes", "created_at")
	ib.Values(
		question.ID,
		question.OwnerID,
		question.Description,
		question.Likes,
		question.Dislikes,
		question.CreatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting question: %w", wrapConflict(err))
	}
	return nil
}

func (r *Repository) ListQuestionsByOwner(ctx context.Context, ownerID string) ([]domain.QuestionSnapshot, error) {
	sb := sqlbuilder.Select("id", "description", "likes", "dislikes")
	sb.From("questions")
	sb.Where(sb.Equal("owner_id", ownerID))
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running owner questions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snapshots := []domain.QuestionSnapshot{}
	for rows.Next() {
		var snap domain.QuestionSnapshot
		if err := rows.Scan(&snap.ID, &snap.Description, &snap.Likes, &snap.Dislikes); err != nil {
			return nil, fmt.Errorf("scanning question snapshot: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating question rows: %w", err)
	}

	return snapshots, nil
}

func (r *Repository) ListLatestQuestions(ctx context.Context, limit int) ([]domain.Question, error) {
	sb := sqlbuilder.Select("id", "owner_id", "description", "likes", "dislikes", "created_at")
	sb.From("questions")
	sb.OrderBy("created_at DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running latest questions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.OwnerID, &q.Description, &q.Likes, &q.Dislikes, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating question rows: %w", err)
	}

	return questions, nil
}

// UpdateVoteRecord writes the new counters and the single membership change
// in one transaction, with the question row locked for the duration. The
// counters can never be observed without the matching membership row.
func (r *Repository) UpdateVoteRecord(
	ctx context.Context, question domain.Question, toggle domain.VoteToggle,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting vote transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Lock the row for the duration of the transaction. The counters being
	// written were computed before this transaction opened, so the lock
	// guards against statement interleaving, not against a concurrent
	// instance that also read pre-transaction state; serialization of whole
	// vote events is the caller's per-key guard, within one process.
	if _, err := r.fetchQuestion(ctx, tx, question.ID, true); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return err
		}
		return wrapConflict(err)
	}

	ub := sqlbuilder.Update("questions")
	ub.Set(
		ub.Assign("likes", question.Likes),
		ub.Assign("dislikes", question.Dislikes),
	)
	ub.Where(ub.Equal("id", question.ID))

	query, args := ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating vote counters: %w", wrapConflict(err))
	}

	if toggle.Cast {
		ib := sqlbuilder.InsertInto("question_votes")
		ib.Cols("question_id", "user_id", "direction")
		ib.Values(question.ID, toggle.VoterID, string(toggle.Direction))
		query, args = ib.Build()
	} else {
		db := sqlbuilder.DeleteFrom("question_votes")
		db.Where(
			db.Equal("question_id", question.ID),
			db.Equal("user_id", toggle.VoterID),
			db.Equal("direction", string(toggle.Direction)),
		)
		query, args = db.Build()
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating vote membership: %w", wrapConflict(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing vote transaction: %w", wrapConflict(err))
	}

	return nil
}

func (r *Repository) TotalOwnerVotes(ctx context.Context, ownerID string) (likes, dislikes int, err error) {
	sb := sqlbuilder.Select("COALESCE(SUM(likes), 0)", "COALESCE(SUM(dislikes), 0)")
	sb.From("questions")
	sb.Where(sb.Equal("owner_id", ownerID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&likes, &dislikes); err != nil {
		return 0, 0, fmt.Errorf("aggregating owner vote totals: %w", err)
	}

	return likes, dislikes, nil
}

func (r *Repository) FetchWalletByUser(ctx context.Context, userID string) (domain.Wallet, error) {
	sb := sqlbuilder.Select("user_id", "balance", "likes_received", "dislikes_received", "units_spent")
	sb.From("wallets")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var wallet domain.Wallet
	err := row.Scan(
		&wallet.UserID,
		&wallet.Balance,
		&wallet.LikesReceived,
		&wallet.DislikesReceived,
		&wallet.UnitsSpent,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Wallet{}, domain.ErrWalletNotFound
	}
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("scanning wallet: %w", err)
	}

	return wallet, nil
}

func (r *Repository) CreateWallet(ctx context.Context, wallet domain.Wallet) error {
	ib := sqlbuilder.InsertInto("wallets")
	ib.Cols("user_id", "balance", "likes_received", "dislikes_received", "units_spent")
	ib.Values(
		wallet.UserID,
		wallet.Balance,
		wallet.LikesReceived,
		wallet.DislikesReceived,
		wallet.UnitsSpent,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting wallet: %w", wrapConflict(err))
	}
	return nil
}

func (r *Repository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	ub := sqlbuilder.Update("wallets")
	ub.Set(
		ub.Assign("balance", wallet.Balance),
		ub.Assign("likes_received", wallet.LikesReceived),
		ub.Assign("dislikes_received", wallet.DislikesReceived),
		ub.Assign("units_spent", wallet.UnitsSpent),
	)
	ub.Where(ub.Equal("user_id", wallet.UserID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating wallet: %w", wrapConflict(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking wallet update result: %w", err)
	}
	if affected == 0 {
		if _, err := r.FetchWalletByUser(ctx, wallet.UserID); errors.Is(err, domain.ErrWalletNotFound) {
			return domain.ErrWalletNotFound
		}
	}

	return nil
}

// wrapConflict maps retryable MySQL errors onto datasources.ErrConflict so
// the command layer can retry the whole vote event.
func wrapConflict(err error) error {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case errDeadlock, errLockWaitTimeout:
			return fmt.Errorf("%w: %s", datasources.ErrConflict, mysqlErr.Message)
		}
	}
	return err
}
