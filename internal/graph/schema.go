package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Query protection limits.
const (
	// MaxQueryDepth bounds selection-set nesting. The schema only nests
	// two levels deep (post → author), so 7 leaves generous headroom.
	MaxQueryDepth = 7

	// MaxParallelism bounds concurrent resolver execution within a
	// single query.
	MaxParallelism = 10
)

// Schema is the GraphQL schema in SDL form. Field names are part of the
// public contract and must stay camelCase exactly as written.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		"All posts, in unspecified order."
		posts: [Post!]!
		"A single post by id, or null if it does not exist."
		post(id: ID!): Post
		"A single user by id, or null if it does not exist."
		user(id: ID!): User
	}

	type Mutation {
		"Creates a post. The id and publishedAt fields are server-assigned."
		createPost(input: CreatePostInput!): Post!
	}

	type User {
		id: ID!
		name: String!
		avatarUrl: String
	}

	type Post {
		id: ID!
		title: String!
		body: String!
		"""
		Snapshot of the author at creation time. When the author was
		synthesized, its id may not resolve via the user query.
		"""
		author: User!
		tags: [String!]!
		"RFC 3339 timestamp assigned at creation."
		publishedAt: String!
	}

	input CreatePostInput {
		title: String!
		body: String!
		tags: [String!]
		authorId: ID!
	}
`

// NewSchema parses the schema against the resolver and applies the query
// protection limits. Panics on a schema/resolver mismatch, which is a
// programming error caught at startup.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r,
		graphql.MaxDepth(MaxQueryDepth),
		graphql.MaxParallelism(MaxParallelism),
	)
}
