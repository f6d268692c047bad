package ideas

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdeaRepo is an in-memory Repository
type fakeIdeaRepo struct {
	byID   map[int64]*Idea
	nextID int64
}

func newFakeIdeaRepo() *fakeIdeaRepo {
	return &fakeIdeaRepo{byID: make(map[int64]*Idea)}
}

func (f *fakeIdeaRepo) Create(_ context.Context, idea *Idea) error {
	f.nextID++
	idea.ID = f.nextID
	stored := *idea
	f.byID[idea.ID] = &stored
	return nil
}

func (f *fakeIdeaRepo) GetByID(_ context.Context, id int64) (*Idea, error) {
	idea, ok := f.byID[id]
	if !ok {
		return nil, ErrIdeaNotFound
	}
	copied := *idea
	return &copied, nil
}

func (f *fakeIdeaRepo) List(_ context.Context, req ListRequest) ([]*Idea, error) {
	var out []*Idea
	for _, idea := range f.byID {
		copied := *idea
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeIdeaRepo) Update(_ context.Context, idea *Idea) error {
	if _, ok := f.byID[idea.ID]; !ok {
		return ErrIdeaNotFound
	}
	stored := *idea
	f.byID[idea.ID] = &stored
	return nil
}

func (f *fakeIdeaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return ErrIdeaNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestIdeaService_Create(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo())

	idea, err := svc.Create(context.Background(), 1, CreateIdeaRequest{
		Title:       "  Dark mode  ",
		Description: "Please add **dark mode**",
		Tags:        []string{"UI", " theme "},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dark mode", idea.Title, "Title is trimmed")
	assert.Equal(t, []string{"ui", "theme"}, idea.Tags, "Tags are lowercased and trimmed")
	assert.Contains(t, idea.DescriptionHTML, "<strong>dark mode</strong>")
}

func TestIdeaService_Create_Validation(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateIdeaRequest
	}{
		{"empty title", CreateIdeaRequest{Title: "   "}},
		{"long title", CreateIdeaRequest{Title: strings.Repeat("x", 201)}},
		{"long description", CreateIdeaRequest{Title: "ok", Description: strings.Repeat("x", 20001)}},
		{"too many tags", CreateIdeaRequest{Title: "ok", Tags: []string{"a", "b", "c", "d", "e", "f"}}},
		{"comma in tag", CreateIdeaRequest{Title: "ok", Tags: []string{"a,b"}}},
		{"long tag", CreateIdeaRequest{Title: "ok", Tags: []string{strings.Repeat("x", 41)}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tc.req)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestIdeaService_Create_SanitizesScript(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo())

	idea, err := svc.Create(context.Background(), 1, CreateIdeaRequest{
		Title:       "XSS attempt",
		Description: `hello <script>alert("pwn")</script> world`,
	})
	require.NoError(t, err)
	assert.NotContains(t, idea.DescriptionHTML, "<script>")
	assert.Contains(t, idea.DescriptionHTML, "hello")
}

func TestIdeaService_Update_OnlyAuthor(t *testing.T) {
	repo := newFakeIdeaRepo()
	svc := NewIdeaService(repo)
	ctx := context.Background()

	idea, err := svc.Create(ctx, 1, CreateIdeaRequest{Title: "Mine"})
	require.NoError(t, err)

	newTitle := "Stolen"
	_, err = svc.Update(ctx, 2, idea.ID, UpdateIdeaRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotAuthor)

	updated, err := svc.Update(ctx, 1, idea.ID, UpdateIdeaRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Stolen", updated.Title)
}

func TestIdeaService_Update_PartialFields(t *testing.T) {
	repo := newFakeIdeaRepo()
	svc := NewIdeaService(repo)
	ctx := context.Background()

	idea, err := svc.Create(ctx, 1, CreateIdeaRequest{
		Title:       "Original",
		Description: "original text",
		Tags:        []string{"keep"},
	})
	require.NoError(t, err)

	archived := true
	updated, err := svc.Update(ctx, 1, idea.ID, UpdateIdeaRequest{Archived: &archived})
	require.NoError(t, err)
	assert.True(t, updated.Archived)
	assert.Equal(t, "Original", updated.Title, "Omitted fields stay untouched")
	assert.Equal(t, []string{"keep"}, updated.Tags)
}

func TestIdeaService_Delete_OnlyAuthor(t *testing.T) {
	repo := newFakeIdeaRepo()
	svc := NewIdeaService(repo)
	ctx := context.Background()

	idea, err := svc.Create(ctx, 1, CreateIdeaRequest{Title: "Mine"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 2, idea.ID), ErrNotAuthor)
	require.NoError(t, svc.Delete(ctx, 1, idea.ID))
	assert.ErrorIs(t, svc.Delete(ctx, 1, idea.ID), ErrIdeaNotFound)
}

func TestIdeaService_List_InvalidSort(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo())

	_, err := svc.List(context.Background(), ListRequest{Sort: "alphabetical"})
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestRenderDescription(t *testing.T) {
	html := renderDescription("a [link](https://example.com)")
	assert.Contains(t, html, `href="https://example.com"`)
	assert.Contains(t, html, `rel=`, "External links carry rel attributes")

	html = renderDescription(`<img src=x onerror=alert(1)>`)
	assert.NotContains(t, html, "onerror")
}
