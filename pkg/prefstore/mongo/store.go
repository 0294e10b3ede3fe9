package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/localekit/pkg/prefstore"
)

// defaultCollection holds one document per subject
const defaultCollection = "locale_preferences"

// Store implements prefstore.Store backed by MongoDB
type Store struct {
	coll *mongo.Collection
}

// Option is a functional option for configuring the Store
type Option func(*storeConfig)

type storeConfig struct {
	collection string
}

// WithCollection sets the collection preferences are stored in
func WithCollection(name string) Option {
	return func(c *storeConfig) {
		if name == "" {
			return
		}
		c.collection = name
	}
}

// preference is the stored document shape
type preference struct {
	Subject   string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewStore creates a MongoDB preference store over an existing database
func NewStore(db *mongo.Database, opts ...Option) *Store {
	cfg := &storeConfig{collection: defaultCollection}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Store{coll: db.Collection(cfg.collection)}
}

// Get retrieves the preference stored for a subject
func (s *Store) Get(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", prefstore.ErrEmptySubject
	}

	var doc preference
	err := s.coll.FindOne(ctx, bson.M{"_id": subject}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", prefstore.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

// Set stores the preference for a subject, replacing any previous value
func (s *Store) Set(ctx context.Context, subject, value string) error {
	if subject == "" {
		return prefstore.ErrEmptySubject
	}
	if value == "" {
		return prefstore.ErrEmptyValue
	}

	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": subject},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

// Delete removes the preference stored for a subject
func (s *Store) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return prefstore.ErrEmptySubject
	}

	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": subject})
	return err
}
