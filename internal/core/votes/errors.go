package votes

import "errors"

var (
	// ErrVoteNotFound indicates a remove or switch on an absent vote
	ErrVoteNotFound = errors.New("no vote found")

	// ErrIdeaNotFound indicates the idea being voted on doesn't exist
	ErrIdeaNotFound = errors.New("idea not found")

	// ErrInvalidVoteType indicates the type is not "upvote" or "downvote"
	ErrInvalidVoteType = errors.New("invalid vote type: must be 'upvote' or 'downvote'")

	// ErrSelfVote indicates a user tried to vote on their own idea
	ErrSelfVote = errors.New("cannot vote on your own idea")
)
