package store

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vaughan-dsouza/BlogPosts/internal/apperr"
	"github.com/vaughan-dsouza/BlogPosts/internal/models"
)

const PostsCollection = "posts"

var searchFields = []string{"title", "content", "category"}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Category  string             `bson:"category"`
	Tags      []string           `bson:"tags"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (p mongoPost) model() models.Post {
	return models.Post{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		Tags:      nonNilTags(p.Tags),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type MongoPostStore struct {
	Coll *mongo.Collection
}

func NewMongoPostStore(coll *mongo.Collection) *MongoPostStore {
	return &MongoPostStore{Coll: coll}
}

// now is truncated to what BSON dates can hold.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *MongoPostStore) Create(ctx context.Context, f models.PostFields) (models.Post, error) {
	ts := now()
	doc := mongoPost{
		ID:        primitive.NewObjectID(),
		Title:     f.Title,
		Content:   f.Content,
		Category:  f.Category,
		Tags:      nonNilTags(f.Tags),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := s.Coll.InsertOne(ctx, doc); err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return doc.model(), nil
}

// searchFilter ORs a case-insensitive literal match over the searchable fields.
func searchFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(searchFields))
	for _, field := range searchFields {
		or = append(or, bson.M{field: re})
	}
	return bson.M{"$or": or}
}

func (s *MongoPostStore) Find(ctx context.Context, filter Filter) ([]models.Post, error) {
	cur, err := s.Coll.Find(ctx, searchFilter(filter.Term))
	if err != nil {
		return nil, apperr.Store(err)
	}

	var docs []mongoPost
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperr.Store(err)
	}

	posts := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.model())
	}
	return posts, nil
}

func (s *MongoPostStore) FindByID(ctx context.Context, id string) (models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}

	var doc mongoPost
	err = s.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, apperr.PostNotFound()
	}
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return doc.model(), nil
}

func (s *MongoPostStore) Replace(ctx context.Context, id string, f models.PostFields) (models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}

	update := bson.M{"$set": bson.M{
		"title":     f.Title,
		"content":   f.Content,
		"category":  f.Category,
		"tags":      nonNilTags(f.Tags),
		"updatedAt": now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoPost
	err = s.Coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, apperr.PostNotFound()
	}
	if err != nil {
		return models.Post{}, apperr.Store(err)
	}
	return doc.model(), nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Store(err)
	}

	res, err := s.Coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Store(err)
	}
	if res.DeletedCount == 0 {
		return apperr.PostNotFound()
	}
	return nil
}

func (s *MongoPostStore) Ping(ctx context.Context) error {
	return s.Coll.Database().Client().Ping(ctx, readpref.Primary())
}
