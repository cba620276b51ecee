package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/couchcryptid/blog-graphql-api/internal/model"
	"github.com/couchcryptid/blog-graphql-api/internal/observability"
)

// Store holds all posts and users in memory. The two collections are
// guarded independently; an operation that ever needs both locks must
// acquire posts before users.
//
// Every read returns a copy, so callers can never mutate internal state.
type Store struct {
	metrics *observability.Metrics

	postsMu sync.Mutex
	posts   map[string]model.Post

	usersMu sync.Mutex
	users   map[string]model.User
}

// New creates an empty store with the given metrics.
func New(m *observability.Metrics) *Store {
	return &Store{
		metrics: m,
		posts:   make(map[string]model.Post),
		users:   make(map[string]model.User),
	}
}

func (s *Store) observe(operation string, start time.Time) {
	s.metrics.StoreOpDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// AllPosts returns a snapshot of every post. Order is unspecified.
func (s *Store) AllPosts() []model.Post {
	defer s.observe("all_posts", time.Now())
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	posts := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p.Clone())
	}
	return posts
}

// Post returns the post with the given id, or false if none exists.
func (s *Store) Post(id string) (model.Post, bool) {
	defer s.observe("get_post", time.Now())
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return model.Post{}, false
	}
	return p.Clone(), true
}

// User returns the user with the given id, or false if none exists.
func (s *Store) User(id string) (model.User, bool) {
	defer s.observe("get_user", time.Now())
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, false
	}
	return u.Clone(), true
}

// InsertPost stores a post keyed by its id.
func (s *Store) InsertPost(p model.Post) {
	defer s.observe("insert_post", time.Now())
	s.postsMu.Lock()
	defer s.postsMu.Unlock()

	s.posts[p.ID] = p.Clone()
	s.metrics.StoreEntries.WithLabelValues("posts").Set(float64(len(s.posts)))
}

// GetOrInsertUser returns the stored user for id, creating it from
// fallback when absent. Read and create happen under one lock hold.
func (s *Store) GetOrInsertUser(id string, fallback func() model.User) model.User {
	defer s.observe("get_or_insert_user", time.Now())
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if u, ok := s.users[id]; ok {
		return u.Clone()
	}
	u := fallback()
	s.users[id] = u.Clone()
	s.metrics.StoreEntries.WithLabelValues("users").Set(float64(len(s.users)))
	return u
}

// CheckReadiness implements observability.ReadinessChecker. The store is
// ready as soon as it is constructed.
func (s *Store) CheckReadiness(ctx context.Context) error {
	if s.posts == nil || s.users == nil {
		return errors.New("store not initialized")
	}
	return nil
}
