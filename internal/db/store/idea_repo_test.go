package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Ember/internal/core/ideas"
	"Ember/internal/core/votes"
)

func TestIdeaRepo_CreateAndGet(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")

	now := time.Now().UTC()
	idea := &ideas.Idea{
		Title:       "Better onboarding",
		Description: "Ship a guided tour",
		AuthorID:    author,
		Tags:        []string{"ux", "onboarding"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(ctx, idea))
	assert.NotZero(t, idea.ID, "ID should be populated after insert")
	assert.Zero(t, idea.VoteCount)

	got, err := repo.GetByID(ctx, idea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Better onboarding", got.Title)
	assert.Equal(t, []string{"ux", "onboarding"}, got.Tags)
	assert.False(t, got.Archived)
}

func TestIdeaRepo_GetByID_NotFound(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ideas.ErrIdeaNotFound)
}

func TestIdeaRepo_List_TagSubstringMatch(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")

	now := time.Now().UTC()
	for _, spec := range []struct {
		title string
		tags  []string
	}{
		{"Go service", []string{"golang", "backend"}},
		{"Board game night", []string{"go", "games"}},
		{"CSS cleanup", []string{"frontend"}},
	} {
		idea := &ideas.Idea{
			Title:       spec.title,
			Description: "d",
			AuthorID:    author,
			Tags:        spec.tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		require.NoError(t, repo.Create(ctx, idea))
	}

	// Substring semantics: filtering on "go" also matches "golang".
	list, err := repo.List(ctx, ideas.ListRequest{Tag: "go", Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)

	titles := []string{list[0].Title, list[1].Title}
	assert.Contains(t, titles, "Go service")
	assert.Contains(t, titles, "Board game night")
}

func TestIdeaRepo_List_SortByVotes(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	voteRepo := NewVoteRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")
	createTestIdea(t, exec, author, "Quiet idea")
	popular := createTestIdea(t, exec, author, "Popular idea")

	for _, name := range []string{"v1", "v2", "v3"} {
		voter := createTestUser(t, exec, name)
		require.NoError(t, voteRepo.Cast(ctx, newVote(voter, popular, votes.VoteTypeUp)))
	}

	list, err := repo.List(ctx, ideas.ListRequest{Sort: "votes", Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Popular idea", list[0].Title)
	assert.Equal(t, int64(3), list[0].VoteCount)
	assert.Equal(t, "Quiet idea", list[1].Title)
}

func TestIdeaRepo_List_Pagination(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")
	for i := 0; i < 5; i++ {
		now := time.Now().UTC().Add(time.Duration(i) * time.Minute)
		idea := &ideas.Idea{
			Title:       "Idea " + string(rune('A'+i)),
			Description: "d",
			AuthorID:    author,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		require.NoError(t, repo.Create(ctx, idea))
	}

	first, err := repo.List(ctx, ideas.ListRequest{Sort: "oldest", Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Idea A", first[0].Title)

	second, err := repo.List(ctx, ideas.ListRequest{Sort: "oldest", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "Idea C", second[0].Title)
}

func TestIdeaRepo_List_ArchivedHiddenByDefault(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")
	liveID := createTestIdea(t, exec, author, "Live idea")
	archivedID := createTestIdea(t, exec, author, "Archived idea")

	archived, err := repo.GetByID(ctx, archivedID)
	require.NoError(t, err)
	archived.Archived = true
	archived.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, archived))

	list, err := repo.List(ctx, ideas.ListRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, liveID, list[0].ID)

	all, err := repo.List(ctx, ideas.ListRequest{IncludeArchived: true, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestIdeaRepo_UpdateAndDelete(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")
	id := createTestIdea(t, exec, author, "Original title")

	idea, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	idea.Title = "Updated title"
	idea.Tags = []string{"updated"}
	idea.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, idea))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, []string{"updated"}, got.Tags)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ideas.ErrIdeaNotFound)

	// Missing rows are reported, not silently ignored.
	assert.ErrorIs(t, repo.Update(ctx, idea), ideas.ErrIdeaNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), ideas.ErrIdeaNotFound)
}

func TestIdeaRepo_DeleteCascadesVotesAndComments(t *testing.T) {
	exec := setupTestDB(t)
	repo := NewIdeaRepository(exec)
	voteRepo := NewVoteRepository(exec)
	ctx := context.Background()

	author := createTestUser(t, exec, "author")
	voter := createTestUser(t, exec, "voter")
	id := createTestIdea(t, exec, author, "Doomed idea")

	require.NoError(t, voteRepo.Cast(ctx, newVote(voter, id, votes.VoteTypeUp)))
	require.NoError(t, repo.Delete(ctx, id))

	var voteRows int64
	require.NoError(t, exec.QueryRow(ctx,
		"SELECT COUNT(*) FROM votes WHERE idea_id = $1", id).Scan(&voteRows))
	assert.Zero(t, voteRows, "Votes should cascade away with their idea")
}
