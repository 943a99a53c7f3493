package repositories

import (
	"context"
	"strings"

	"github.com/uptrace/bun"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
)

const customCardEntity = "custom_card"

type CustomCardRepository struct {
	*BaseRepository
}

func NewCustomCardRepository(db *bun.DB) *CustomCardRepository {
	return &CustomCardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *CustomCardRepository) Create(ctx context.Context, card *models.CustomCard) error {
	return r.run(ctx, "create", customCardEntity, func(ctx context.Context) error {
		_, err := r.db.NewInsert().Model(card).Exec(ctx)
		return err
	})
}

func (r *CustomCardRepository) GetByID(ctx context.Context, id string) (*models.CustomCard, error) {
	card := new(models.CustomCard)
	err := r.runOne(ctx, "get", customCardEntity, id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(card).
			Where("id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Search matches keyword against name or description, newest first. An
// empty keyword lists every card.
func (r *CustomCardRepository) Search(ctx context.Context, keyword string, limit int) ([]*models.CustomCard, error) {
	var cards []*models.CustomCard
	err := r.run(ctx, "search", customCardEntity, func(ctx context.Context) error {
		query := r.db.NewSelect().
			Model(&cards).
			Order("created_at DESC")

		if keyword = strings.TrimSpace(keyword); keyword != "" {
			pattern := "%" + escapeLike(keyword) + "%"
			query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("name ILIKE ?", pattern).
					WhereOr("description ILIKE ?", pattern)
			})
		}
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *CustomCardRepository) GetAll(ctx context.Context) ([]*models.CustomCard, error) {
	return r.Search(ctx, "", 0)
}

func (r *CustomCardRepository) Delete(ctx context.Context, id string) error {
	return r.runOne(ctx, "delete", customCardEntity, id, func(ctx context.Context) error {
		result, err := r.db.NewDelete().
			Model((*models.CustomCard)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		return affectedOne(result, customCardEntity, id)
	})
}

// escapeLike escapes the LIKE wildcards in s.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
