package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/couchcryptid/blog-graphql-api/internal/store"
)

// Resolver is the root resolver for all queries and mutations.
type Resolver struct {
	Store *store.Store
}

// Posts returns every post currently in the store.
func (r *Resolver) Posts() []*PostResolver {
	posts := r.Store.AllPosts()
	out := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		out = append(out, &PostResolver{post: p})
	}
	return out
}

// Post returns the post with the given id, or nil.
func (r *Resolver) Post(args struct{ ID graphql.ID }) *PostResolver {
	p, ok := r.Store.Post(string(args.ID))
	if !ok {
		return nil
	}
	return &PostResolver{post: p}
}

// User returns the user with the given id, or nil.
func (r *Resolver) User(args struct{ ID graphql.ID }) *UserResolver {
	u, ok := r.Store.User(string(args.ID))
	if !ok {
		return nil
	}
	return &UserResolver{user: u}
}
