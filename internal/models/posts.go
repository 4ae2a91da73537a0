package models

import (
	"time"

	"github.com/vaughan-dsouza/BlogPosts/internal/apperr"
)

const MsgRequiredFields = "Title, content, and category are required"

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostFields are the mutable fields of a post, as written to the store.
type PostFields struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

// PostInput is the request body of create and update. Pointers tell an
// absent field apart from an empty one.
type PostInput struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

func (in PostInput) Validate() error {
	if blank(in.Title) || blank(in.Content) || blank(in.Category) {
		return apperr.Validation(MsgRequiredFields)
	}
	return nil
}

// Fields replaces every mutable field; missing tags become an empty list.
func (in PostInput) Fields() PostFields {
	f := PostFields{Tags: []string{}}
	if in.Title != nil {
		f.Title = *in.Title
	}
	if in.Content != nil {
		f.Content = *in.Content
	}
	if in.Category != nil {
		f.Category = *in.Category
	}
	if in.Tags != nil {
		f.Tags = in.Tags
	}
	return f
}

func blank(s *string) bool {
	return s == nil || *s == ""
}
