package ideas

import (
	"strings"
	"time"
)

// Idea is a community proposal. VoteCount is denormalized from the votes
// table and re-synchronized inside every vote mutation's transaction scope,
// so sort-by-votes agrees with the live aggregate.
type Idea struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml,omitempty"`
	AuthorID        int64     `json:"authorId"`
	Tags            []string  `json:"tags"`
	VoteCount       int64     `json:"voteCount"`
	Archived        bool      `json:"archived"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateIdeaRequest carries validated handler input into the service.
type CreateIdeaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// UpdateIdeaRequest updates only non-nil fields.
type UpdateIdeaRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Archived    *bool     `json:"archived"`
}

// ListRequest filters, sorts, and paginates ideas.
type ListRequest struct {
	// Tag matches substrings inside the serialized tag list, so "go" also
	// matches ideas tagged "golang". Kept from the original system.
	Tag             string
	Sort            string // "votes", "newest" (default), "oldest"
	IncludeArchived bool
	Limit           int
	Offset          int
}

// JoinTags serializes a tag set into its stored comma-joined form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags parses the stored form back into a tag set.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
