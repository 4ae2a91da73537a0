package store

import (
	"context"

	"github.com/vaughan-dsouza/BlogPosts/internal/models"
)

// PostStore maps each post operation onto a single store call.
// Ids are validated by the backend; a malformed id is a store error.
type PostStore interface {
	Create(ctx context.Context, f models.PostFields) (models.Post, error)
	Find(ctx context.Context, filter Filter) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (models.Post, error)
	Replace(ctx context.Context, id string, f models.PostFields) (models.Post, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Filter selects posts whose title, content or category contains Term,
// ignoring case. An empty Term selects every post.
type Filter struct {
	Term string
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
