package graph

import (
	"time"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/couchcryptid/blog-graphql-api/internal/model"
)

// CreatePostInput mirrors the schema's CreatePostInput type.
type CreatePostInput struct {
	Title    string
	Body     string
	Tags     *[]string
	AuthorID graphql.ID
}

// CreatePost creates a post and returns it. The author is resolved from
// the user store; for an unknown authorId a user is synthesized from the
// display-name table and embedded in the post without being persisted, so
// a later user(id) lookup for the same id still returns null.
//
// Touches the user store read-only and writes exactly one post. Were a
// future operation to hold both collection locks, it must take posts
// before users.
func (r *Resolver) CreatePost(args struct{ Input CreatePostInput }) *PostResolver {
	in := args.Input
	authorID := string(in.AuthorID)

	author, ok := r.Store.User(authorID)
	if !ok {
		author = model.User{
			ID:   authorID,
			Name: authorDisplayName(authorID),
		}
	}

	tags := []string{}
	if in.Tags != nil {
		tags = append(tags, *in.Tags...)
	}

	post := model.Post{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Body:        in.Body,
		Author:      author,
		Tags:        tags,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}

	r.Store.InsertPost(post)
	return &PostResolver{post: post}
}
