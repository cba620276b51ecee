package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/couchcryptid/blog-graphql-api/internal/model"
	"github.com/couchcryptid/blog-graphql-api/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestStore() *Store {
	return New(observability.NewTestMetrics())
}

func testPost(id string) model.Post {
	return model.Post{
		ID:          id,
		Title:       "title-" + id,
		Body:        "body-" + id,
		Author:      model.User{ID: "user-1", Name: "髙橋慶祐"},
		Tags:        []string{"go", "graphql"},
		PublishedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func TestInsertAndGetPost(t *testing.T) {
	s := newTestStore()
	want := testPost("p1")
	s.InsertPost(want)

	got, ok := s.Post("p1")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetPost_Missing(t *testing.T) {
	s := newTestStore()
	_, ok := s.Post("nope")
	assert.False(t, ok)
}

func TestAllPosts_Snapshot(t *testing.T) {
	s := newTestStore()
	s.InsertPost(testPost("p1"))
	s.InsertPost(testPost("p2"))

	posts := s.AllPosts()
	require.Len(t, posts, 2)

	// Mutating the snapshot must not leak back into the store.
	posts[0].Title = "mutated"
	posts[0].Tags[0] = "mutated"

	stored, ok := s.Post(posts[0].ID)
	require.True(t, ok)
	assert.Equal(t, "title-"+posts[0].ID, stored.Title)
	assert.Equal(t, "go", stored.Tags[0])
}

func TestInsertPost_CallerCannotMutateStored(t *testing.T) {
	s := newTestStore()
	p := testPost("p1")
	s.InsertPost(p)

	p.Tags[0] = "mutated"

	stored, ok := s.Post("p1")
	require.True(t, ok)
	assert.Equal(t, "go", stored.Tags[0])
}

func TestGetOrInsertUser(t *testing.T) {
	s := newTestStore()

	u := s.GetOrInsertUser("user-9", func() model.User {
		return model.User{ID: "user-9", Name: "user-9"}
	})
	assert.Equal(t, "user-9", u.Name)

	// Second call must return the stored record, not invoke the fallback.
	u = s.GetOrInsertUser("user-9", func() model.User {
		t.Fatal("fallback invoked for existing user")
		return model.User{}
	})
	assert.Equal(t, "user-9", u.ID)
}

func TestUser_CallerCannotMutateStored(t *testing.T) {
	s := newTestStore()
	avatar := "https://example.com/a.png"
	s.GetOrInsertUser("user-1", func() model.User {
		return model.User{ID: "user-1", Name: "Alice", AvatarURL: &avatar}
	})

	u, ok := s.User("user-1")
	require.True(t, ok)
	require.NotNil(t, u.AvatarURL)
	*u.AvatarURL = "mutated"

	again, ok := s.User("user-1")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", *again.AvatarURL)
}

func TestGetOrInsertUser_ReturnedCopyDoesNotAlias(t *testing.T) {
	s := newTestStore()
	avatar := "https://example.com/a.png"
	fallback := func() model.User {
		return model.User{ID: "user-1", Name: "Alice", AvatarURL: &avatar}
	}

	u := s.GetOrInsertUser("user-1", fallback)
	require.NotNil(t, u.AvatarURL)
	*u.AvatarURL = "mutated"

	stored, ok := s.User("user-1")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", *stored.AvatarURL)
}

func TestUser_Missing(t *testing.T) {
	s := newTestStore()
	_, ok := s.User("ghost")
	assert.False(t, ok)
}

func TestSeed(t *testing.T) {
	s := newTestStore()
	Seed(s)

	u, ok := s.User("user-1")
	require.True(t, ok)
	assert.Equal(t, "髙橋慶祐", u.Name)
	assert.Nil(t, u.AvatarURL)

	posts := s.AllPosts()
	require.Len(t, posts, 2)
	seen := map[string]bool{}
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate post id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Title)
		_, err := time.Parse(time.RFC3339, p.PublishedAt)
		assert.NoError(t, err)
	}
}

func TestCheckReadiness(t *testing.T) {
	s := newTestStore()
	assert.NoError(t, s.CheckReadiness(context.Background()))
}

func TestConcurrentInserts(t *testing.T) {
	s := newTestStore()

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("p%d", i)
		g.Go(func() error {
			s.InsertPost(testPost(id))
			s.GetOrInsertUser(id, func() model.User {
				return model.User{ID: id, Name: id}
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	posts := s.AllPosts()
	assert.Len(t, posts, 50)
	ids := map[string]bool{}
	for _, p := range posts {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
}
