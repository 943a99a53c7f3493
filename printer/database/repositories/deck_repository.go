package repositories

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
)

const deckEntity = "saved_deck"

type DeckRepository struct {
	*BaseRepository
}

func NewDeckRepository(db *bun.DB) *DeckRepository {
	return &DeckRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *DeckRepository) Create(ctx context.Context, deck *models.SavedDeck) error {
	return r.run(ctx, "create", deckEntity, func(ctx context.Context) error {
		_, err := r.db.NewInsert().Model(deck).Exec(ctx)
		return err
	})
}

// Update rewrites name, description and cards of an existing deck.
func (r *DeckRepository) Update(ctx context.Context, deck *models.SavedDeck) error {
	return r.runOne(ctx, "update", deckEntity, deck.ID, func(ctx context.Context) error {
		result, err := r.db.NewUpdate().
			Model(deck).
			Column("name", "description", "cards", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		return affectedOne(result, deckEntity, deck.ID)
	})
}

func (r *DeckRepository) Delete(ctx context.Context, id string) error {
	return r.runOne(ctx, "delete", deckEntity, id, func(ctx context.Context) error {
		result, err := r.db.NewDelete().
			Model((*models.SavedDeck)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		return affectedOne(result, deckEntity, id)
	})
}

func (r *DeckRepository) GetByID(ctx context.Context, id string) (*models.SavedDeck, error) {
	deck := new(models.SavedDeck)
	err := r.runOne(ctx, "get", deckEntity, id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(deck).
			Where("id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}

func (r *DeckRepository) GetByUserID(ctx context.Context, userID string) ([]*models.SavedDeck, error) {
	var decks []*models.SavedDeck
	err := r.run(ctx, "list", deckEntity, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&decks).
			Where("user_id = ?", userID).
			Order("updated_at DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return decks, nil
}
