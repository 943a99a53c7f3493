package repositories

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
)

const historyEntity = "generation_history"

// HistoryRepository is append-only.
type HistoryRepository struct {
	*BaseRepository
}

func NewHistoryRepository(db *bun.DB) *HistoryRepository {
	return &HistoryRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *models.GenerationHistory) error {
	return r.run(ctx, "create", historyEntity, func(ctx context.Context) error {
		_, err := r.db.NewInsert().Model(entry).Exec(ctx)
		return err
	})
}

func (r *HistoryRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*models.GenerationHistory, error) {
	if limit <= 0 {
		limit = config.HistoryLimit
	}

	var entries []*models.GenerationHistory
	err := r.run(ctx, "list", historyEntity, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&entries).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(limit).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
