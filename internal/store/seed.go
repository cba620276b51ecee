package store

import (
	"time"

	"github.com/couchcryptid/blog-graphql-api/internal/model"
	"github.com/google/uuid"
)

// Seed loads the fixed sample data set: five authors and two posts.
// Post ids are freshly generated on every start; the store is transient.
func Seed(s *Store) {
	authors := []model.User{
		{ID: "user-1", Name: "髙橋慶祐"},
		{ID: "user-2", Name: "佐藤太郎"},
		{ID: "user-3", Name: "鈴木花子"},
		{ID: "user-4", Name: "松本次郎"},
		{ID: "user-5", Name: "後藤優子"},
	}
	for _, u := range authors {
		s.GetOrInsertUser(u.ID, func() model.User { return u })
	}

	now := time.Now().UTC().Format(time.RFC3339)

	s.InsertPost(model.Post{
		ID:          uuid.NewString(),
		Title:       "最初のブログ投稿",
		Body:        "これは最初のブログ投稿の内容です。\n\nGraphQLとReact Queryを使用したミニブログ管理ダッシュボードのサンプルです。",
		Author:      authors[0],
		Tags:        []string{"GraphQL", "React"},
		PublishedAt: now,
	})

	s.InsertPost(model.Post{
		ID:          uuid.NewString(),
		Title:       "2番目のブログ投稿",
		Body:        "これは2番目のブログ投稿の内容です。\n\nzodとreact-hook-formを使用したバリデーション機能も実装されています。",
		Author:      authors[1],
		Tags:        []string{"TypeScript", "React"},
		PublishedAt: now,
	})
}
