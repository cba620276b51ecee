package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/couchcryptid/blog-graphql-api/internal/model"
)

// PostResolver shapes a model.Post into the schema's Post type.
type PostResolver struct {
	post model.Post
}

func (r *PostResolver) ID() graphql.ID {
	return graphql.ID(r.post.ID)
}

func (r *PostResolver) Title() string {
	return r.post.Title
}

func (r *PostResolver) Body() string {
	return r.post.Body
}

func (r *PostResolver) Author() *UserResolver {
	return &UserResolver{user: r.post.Author}
}

func (r *PostResolver) Tags() []string {
	return r.post.Tags
}

func (r *PostResolver) PublishedAt() string {
	return r.post.PublishedAt
}

// UserResolver shapes a model.User into the schema's User type.
type UserResolver struct {
	user model.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID)
}

func (r *UserResolver) Name() string {
	return r.user.Name
}

func (r *UserResolver) AvatarURL() *string {
	return r.user.AvatarURL
}
