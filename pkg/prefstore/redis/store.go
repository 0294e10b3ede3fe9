package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/localekit/pkg/prefstore"
)

// defaultKeyPrefix namespaces preference keys in a shared Redis instance
const defaultKeyPrefix = "localepref:"

// Store implements prefstore.Store backed by Redis
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Option is a functional option for configuring the Store
type Option func(*Store)

// WithKeyPrefix sets the prefix preference keys are stored under
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix == "" {
			return
		}
		s.prefix = prefix
	}
}

// WithTTL sets an expiry on stored preferences; zero keeps them forever
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl < 0 {
			return
		}
		s.ttl = ttl
	}
}

// New creates a Redis preference store over an existing client
func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a store with the keyspace settings cfg carries.
func NewFromConfig(client *redis.Client, cfg Config) *Store {
	return New(client, WithKeyPrefix(cfg.KeyPrefix), WithTTL(cfg.PrefTTL))
}

// Get retrieves the preference stored for a subject
func (s *Store) Get(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", prefstore.ErrEmptySubject
	}

	value, err := s.client.Get(ctx, s.key(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return "", prefstore.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores the preference for a subject, replacing any previous value
func (s *Store) Set(ctx context.Context, subject, value string) error {
	if subject == "" {
		return prefstore.ErrEmptySubject
	}
	if value == "" {
		return prefstore.ErrEmptyValue
	}

	return s.client.Set(ctx, s.key(subject), value, s.ttl).Err()
}

// Delete removes the preference stored for a subject
func (s *Store) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return prefstore.ErrEmptySubject
	}

	return s.client.Del(ctx, s.key(subject)).Err()
}

func (s *Store) key(subject string) string {
	return s.prefix + subject
}
