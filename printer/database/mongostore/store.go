// Package mongostore keeps custom cards, saved decks and generation history
// in MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/database/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customCardsCollection = "custom_cards"
	decksCollection       = "saved_decks"
	historyCollection     = "generation_history"
)

type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Connect opens the database and verifies the connection.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	slog.Info("Connected to MongoDB",
		slog.String("type", "db"),
		slog.String("database", database))

	return &Store{
		client:  client,
		db:      client.Database(database),
		timeout: config.DefaultQueryTimeout,
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the list queries sort on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string]mongo.IndexModel{
		customCardsCollection: {Keys: bson.D{{Key: "created_at", Value: -1}}},
		decksCollection:       {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}}},
		historyCollection:     {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	for name, index := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("failed to index %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) CustomCards() *CustomCardStore {
	return &CustomCardStore{store: s, coll: s.db.Collection(customCardsCollection)}
}

func (s *Store) Decks() *DeckStore {
	return &DeckStore{store: s, coll: s.db.Collection(decksCollection)}
}

func (s *Store) History() *HistoryStore {
	return &HistoryStore{store: s, coll: s.db.Collection(historyCollection)}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// handleError maps driver errors onto the repository error types.
func handleError(operation, entity string, id interface{}, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &repositories.NotFoundError{Entity: entity, ID: id}
	}
	return repositories.WrapError(operation, entity, id, err)
}

func logQuery(operation, collection string, start time.Time, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("collection", collection),
		slog.Duration("took", time.Since(start)),
	}
	if err != nil {
		slog.Error("Mongo query failed", append(attrs, slog.Any("error", err))...)
		return
	}
	slog.Debug("Mongo query executed", attrs...)
}
