package mongostore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/database/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const customCardEntity = "custom_card"

type CustomCardStore struct {
	store *Store
	coll  *mongo.Collection
}

func (s *CustomCardStore) Create(ctx context.Context, card *models.CustomCard) error {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	_, err := s.coll.InsertOne(ctx, card)
	logQuery("insert", customCardsCollection, start, err)
	return handleError("create", customCardEntity, card.ID, err)
}

func (s *CustomCardStore) GetByID(ctx context.Context, id string) (*models.CustomCard, error) {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	card := new(models.CustomCard)
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(card); err != nil {
		return nil, handleError("get", customCardEntity, id, err)
	}
	return card, nil
}

// Search matches keyword case-insensitively against name or description,
// newest first. An empty keyword lists every card.
func (s *CustomCardStore) Search(ctx context.Context, keyword string, limit int) ([]*models.CustomCard, error) {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	start := time.Now()
	cursor, err := s.coll.Find(ctx, searchFilter(keyword), opts)
	logQuery("find", customCardsCollection, start, err)
	if err != nil {
		return nil, handleError("search", customCardEntity, keyword, err)
	}

	cards := []*models.CustomCard{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, handleError("search", customCardEntity, keyword, err)
	}
	return cards, nil
}

func (s *CustomCardStore) GetAll(ctx context.Context) ([]*models.CustomCard, error) {
	return s.Search(ctx, "", 0)
}

func (s *CustomCardStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	logQuery("delete", customCardsCollection, start, err)
	if err != nil {
		return handleError("delete", customCardEntity, id, err)
	}
	if result.DeletedCount == 0 {
		return &repositories.NotFoundError{Entity: customCardEntity, ID: id}
	}
	return nil
}

func searchFilter(keyword string) bson.M {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}
}
