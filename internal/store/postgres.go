package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/BlogPosts/internal/apperr"
	"github.com/vaughan-dsouza/BlogPosts/internal/models"
)

// Posts are kept as JSONB documents so both backends share one data shape.
const pgSchema = `
CREATE TABLE IF NOT EXISTS posts (
    id         UUID PRIMARY KEY,
    doc        JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)`

type pgDoc struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type pgRow struct {
	ID        string    `db:"id"`
	Doc       []byte    `db:"doc"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r pgRow) model() (models.Post, error) {
	var d pgDoc
	if err := json.Unmarshal(r.Doc, &d); err != nil {
		return models.Post{}, fmt.Errorf("decode post %s: %w", r.ID, err)
	}
	return models.Post{
		ID:        r.ID,
		Title:     d.Title,
		Content:   d.Content,
		Category:  d.Category,
		Tags:      nonNilTags(d.Tags),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func encodeDoc(f models.PostFields) (string, error) {
	b, err := json.Marshal(pgDoc{
		Title:    f.Title,
		Content:  f.Content,
		Category: f.Category,
		Tags:     nonNilTags(f.Tags),
	})
	return string(b), err
}

type PGPostStore struct {
	DB *sqlx.DB
}

func NewPGPostStore(db *sqlx.DB) *PGPostStore {
	return &PGPostStore{DB: db}
}

// EnsureSchema creates the posts table when it is missing.
func (s *PGPostStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, pgSchema); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

func (s *PGPostStore) Create(ctx context.Context, f models.PostFields) (models.Post, error) {
	doc, err := encodeDoc(f)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	ts := time.Now().UTC()

	var row pgRow
	err = s.DB.GetContext(ctx, &row, `
        INSERT INTO posts (id, doc, created_at, updated_at)
        VALUES ($1, $2, $3, $3)
        RETURNING id, doc, created_at, updated_at
    `, uuid.New(), doc, ts)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return s.post(row)
}

func (s *PGPostStore) Find(ctx context.Context, filter Filter) ([]models.Post, error) {
	var rows []pgRow
	err := s.DB.SelectContext(ctx, &rows, `
        SELECT id, doc, created_at, updated_at FROM posts
        WHERE $1::text = ''
           OR strpos(lower(doc->>'title'), lower($1::text)) > 0
           OR strpos(lower(doc->>'content'), lower($1::text)) > 0
           OR strpos(lower(doc->>'category'), lower($1::text)) > 0
        ORDER BY created_at
    `, filter.Term)
	if err != nil {
		return nil, apperr.Store(err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, r := range rows {
		p, err := s.post(r)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *PGPostStore) FindByID(ctx context.Context, id string) (models.Post, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}

	var row pgRow
	err = s.DB.GetContext(ctx, &row, `SELECT id, doc, created_at, updated_at FROM posts WHERE id=$1`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, apperr.PostNotFound()
	}
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return s.post(row)
}

func (s *PGPostStore) Replace(ctx context.Context, id string, f models.PostFields) (models.Post, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	doc, err := encodeDoc(f)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}

	var row pgRow
	err = s.DB.GetContext(ctx, &row, `
        UPDATE posts
        SET doc=$2, updated_at=$3
        WHERE id=$1
        RETURNING id, doc, created_at, updated_at
    `, uid, doc, time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, apperr.PostNotFound()
	}
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return s.post(row)
}

func (s *PGPostStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.Store(err)
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, uid)
	if err != nil {
		return apperr.Store(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Store(err)
	}
	if n == 0 {
		return apperr.PostNotFound()
	}
	return nil
}

func (s *PGPostStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *PGPostStore) post(r pgRow) (models.Post, error) {
	p, err := r.model()
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return p, nil
}
