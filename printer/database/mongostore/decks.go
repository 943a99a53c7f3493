package mongostore

import (
	"context"
	"time"

	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/database/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	deckEntity    = "saved_deck"
	historyEntity = "generation_history"
)

type DeckStore struct {
	store *Store
	coll  *mongo.Collection
}

func (s *DeckStore) Create(ctx context.Context, deck *models.SavedDeck) error {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	_, err := s.coll.InsertOne(ctx, deck)
	logQuery("insert", decksCollection, start, err)
	return handleError("create", deckEntity, deck.ID, err)
}

func (s *DeckStore) Update(ctx context.Context, deck *models.SavedDeck) error {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        deck.Name,
		"description": deck.Description,
		"cards":       deck.Cards,
		"updated_at":  deck.UpdatedAt,
	}}

	start := time.Now()
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": deck.ID}, update)
	logQuery("update", decksCollection, start, err)
	if err != nil {
		return handleError("update", deckEntity, deck.ID, err)
	}
	if result.MatchedCount == 0 {
		return &repositories.NotFoundError{Entity: deckEntity, ID: deck.ID}
	}
	return nil
}

func (s *DeckStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	logQuery("delete", decksCollection, start, err)
	if err != nil {
		return handleError("delete", deckEntity, id, err)
	}
	if result.DeletedCount == 0 {
		return &repositories.NotFoundError{Entity: deckEntity, ID: id}
	}
	return nil
}

func (s *DeckStore) GetByID(ctx context.Context, id string) (*models.SavedDeck, error) {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	deck := new(models.SavedDeck)
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(deck); err != nil {
		return nil, handleError("get", deckEntity, id, err)
	}
	return deck, nil
}

func (s *DeckStore) GetByUserID(ctx context.Context, userID string) ([]*models.SavedDeck, error) {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, handleError("list", deckEntity, userID, err)
	}

	decks := []*models.SavedDeck{}
	if err := cursor.All(ctx, &decks); err != nil {
		return nil, handleError("list", deckEntity, userID, err)
	}
	return decks, nil
}

// HistoryStore is append-only.
type HistoryStore struct {
	store *Store
	coll  *mongo.Collection
}

func (s *HistoryStore) Create(ctx context.Context, entry *models.GenerationHistory) error {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	_, err := s.coll.InsertOne(ctx, entry)
	logQuery("insert", historyCollection, start, err)
	return handleError("create", historyEntity, entry.ID, err)
}

func (s *HistoryStore) GetByUserID(ctx context.Context, userID string, limit int) ([]*models.GenerationHistory, error) {
	if limit <= 0 {
		limit = config.HistoryLimit
	}

	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, handleError("list", historyEntity, userID, err)
	}

	entries := []*models.GenerationHistory{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, handleError("list", historyEntity, userID, err)
	}
	return entries, nil
}
