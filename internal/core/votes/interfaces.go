package votes

import "context"

// Service defines the business logic interface for the voting ledger.
// Validates idea existence and self-vote rules before touching storage.
type Service interface {
	// Cast records or overwrites the caller's vote and returns fresh stats.
	// Idempotent: re-casting the same type leaves exactly one row.
	Cast(ctx context.Context, userID, ideaID int64, voteType VoteType) (*Stats, error)

	// Switch flips an existing vote to the opposite direction.
	// Fails with ErrVoteNotFound when the caller has no vote on the idea.
	Switch(ctx context.Context, userID, ideaID int64) (*Stats, error)

	// Remove deletes the caller's vote.
	// Fails with ErrVoteNotFound when no vote exists.
	Remove(ctx context.Context, userID, ideaID int64) (*Stats, error)

	// StatsFor computes the live aggregate for an idea. When userID is
	// non-nil the caller's own vote state is included.
	StatsFor(ctx context.Context, ideaID int64, userID *int64) (*Stats, error)

	// ListByUser returns a user's voting history, newest first.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*Vote, error)
}

// Repository defines the data access interface for vote rows. Each mutation
// is a transaction scope that also re-synchronizes the idea's denormalized
// vote_count column.
type Repository interface {
	// Cast upserts on the (user_id, idea_id) uniqueness constraint as a
	// single atomic statement, refreshing the timestamp on overwrite.
	Cast(ctx context.Context, vote *Vote) error

	// Switch flips vote_type with one conditional UPDATE and returns the
	// new direction. ErrVoteNotFound when no row matched.
	Switch(ctx context.Context, userID, ideaID int64) (VoteType, error)

	// Remove deletes the vote. ErrVoteNotFound when no row matched.
	Remove(ctx context.Context, userID, ideaID int64) error

	// GetByUserAndIdea is the point lookup backing Stats.UserVote.
	GetByUserAndIdea(ctx context.Context, userID, ideaID int64) (*Vote, error)

	// CountByIdea runs the conditional-count aggregate over the idea's votes.
	CountByIdea(ctx context.Context, ideaID int64) (upvotes, downvotes int64, err error)

	// ListByUser returns a user's votes, newest first.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*Vote, error)
}
