package model

// User is a blog author. AvatarURL is nil when the author has no avatar.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Post is a published blog entry. Author is a snapshot of the user at
// creation time, not a live reference into the user store.
type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Author      User     `json:"author"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
}

// Clone returns a copy of the user whose AvatarURL pointer does not
// alias the receiver's.
func (u User) Clone() User {
	out := u
	if u.AvatarURL != nil {
		v := *u.AvatarURL
		out.AvatarURL = &v
	}
	return out
}

// Clone returns a copy of the post sharing no mutable state with the
// receiver: the tags slice and the author's AvatarURL are copied.
func (p Post) Clone() Post {
	out := p
	out.Author = p.Author.Clone()
	if p.Tags != nil {
		out.Tags = make([]string, len(p.Tags))
		copy(out.Tags, p.Tags)
	}
	return out
}
