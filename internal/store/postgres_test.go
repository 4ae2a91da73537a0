package store

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/BlogPosts/internal/apperr"
	"github.com/vaughan-dsouza/BlogPosts/internal/models"
)

func setupPGStore(t *testing.T) *PGPostStore {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewPGPostStore(db)
	require.NoError(t, s.EnsureSchema(context.Background()))
	_, err = db.Exec(`TRUNCATE posts`)
	require.NoError(t, err)
	return s
}

func TestPGPostStoreLifecycle(t *testing.T) {
	s := setupPGStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, models.PostFields{
		Title: "My First Blog Post", Content: "Hello world", Category: "Technology", Tags: []string{"Tech"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, []string{"Tech"}, got.Tags)

	updated, err := s.Replace(ctx, created.ID, models.PostFields{Title: "Updated", Content: "Hello world", Category: "Technology"})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, []string{}, updated.Tags)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(s.Delete(ctx, created.ID)))

	_, err = s.FindByID(ctx, created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPGPostStoreSearch(t *testing.T) {
	s := setupPGStore(t)
	ctx := context.Background()

	for _, f := range []models.PostFields{
		{Title: "Go tips", Content: "channels", Category: "Programming"},
		{Title: "Travel", Content: "HELLO from Lisbon", Category: "Life"},
		{Title: "Recipes", Content: "soup", Category: "Food_and_Drink"},
	} {
		_, err := s.Create(ctx, f)
		require.NoError(t, err)
	}

	all, err := s.Find(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tests := []struct {
		term   string
		titles []string
	}{
		{"hello", []string{"Travel"}},
		{"PROGRAM", []string{"Go tips"}},
		{"o", []string{"Go tips", "Travel", "Recipes"}},
		{"_and_", []string{"Recipes"}},
		{"%", nil},
		{"nothing matches", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			posts, err := s.Find(ctx, Filter{Term: tt.term})
			require.NoError(t, err)

			var titles []string
			for _, p := range posts {
				titles = append(titles, p.Title)
			}
			assert.ElementsMatch(t, tt.titles, titles)
		})
	}
}

func TestPGPostStoreMalformedID(t *testing.T) {
	s := setupPGStore(t)

	_, err := s.FindByID(context.Background(), "not-a-uuid")
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
}
