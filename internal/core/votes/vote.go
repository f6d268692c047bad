package votes

import "time"

// VoteType is the direction of a ballot.
type VoteType string

const (
	VoteTypeUp   VoteType = "upvote"
	VoteTypeDown VoteType = "downvote"
)

// Valid reports whether t is one of the two permitted directions.
func (t VoteType) Valid() bool {
	return t == VoteTypeUp || t == VoteTypeDown
}

// Opposite returns the flipped direction.
func (t VoteType) Opposite() VoteType {
	if t == VoteTypeUp {
		return VoteTypeDown
	}
	return VoteTypeUp
}

// Vote is one user's ballot on one idea. At most one row exists per
// (UserID, IdeaID) pair at any time; re-casting overwrites Type in place.
type Vote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	IdeaID    int64     `json:"ideaId"`
	Type      VoteType  `json:"voteType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the live aggregate for one idea, recomputed from the votes table
// on every read. UserVote is nil when the caller is anonymous or has not
// voted.
type Stats struct {
	Upvotes   int64     `json:"upvotes"`
	Downvotes int64     `json:"downvotes"`
	Total     int64     `json:"total"`
	UserVote  *VoteType `json:"userVote"`
}
