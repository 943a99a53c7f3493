package interfaces

//go:generate mockgen -destination=mock/repositories.go -package=mock . CardDatabaseInterface,CustomCardRepositoryInterface,DeckRepositoryInterface,HistoryRepositoryInterface,ImageStoreInterface

import (
	"context"
	"net/url"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/ygoapi"
)

// CardDatabaseInterface defines the remote card database operations
type CardDatabaseInterface interface {
	SearchCards(ctx context.Context, params url.Values) (*ygoapi.Page, error)
	GetCardByID(ctx context.Context, id int64) (*cards.Card, error)
	GetCardsByIDs(ctx context.Context, ids []int64) ([]cards.Card, []int64)
	GetArchetypes(ctx context.Context) ([]string, error)
	GetBanList(ctx context.Context, format cards.Format) ([]cards.BanListEntry, error)
}

// CustomCardRepositoryInterface defines the custom card store operations
type CustomCardRepositoryInterface interface {
	Create(ctx context.Context, card *models.CustomCard) error
	GetByID(ctx context.Context, id string) (*models.CustomCard, error)
	// Search matches keyword case-insensitively against name or description.
	// An empty keyword matches everything.
	Search(ctx context.Context, keyword string, limit int) ([]*models.CustomCard, error)
	// GetAll returns every card, newest first.
	GetAll(ctx context.Context) ([]*models.CustomCard, error)
	Delete(ctx context.Context, id string) error
}

// DeckRepositoryInterface defines saved deck persistence
type DeckRepositoryInterface interface {
	Create(ctx context.Context, deck *models.SavedDeck) error
	Update(ctx context.Context, deck *models.SavedDeck) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.SavedDeck, error)
	// GetByUserID returns the user's decks, most recently updated first.
	GetByUserID(ctx context.Context, userID string) ([]*models.SavedDeck, error)
}

// HistoryRepositoryInterface defines the export history log
type HistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.GenerationHistory) error
	// GetByUserID returns the latest entries, newest first.
	GetByUserID(ctx context.Context, userID string, limit int) ([]*models.GenerationHistory, error)
}

// ImageStoreInterface defines blob storage for custom card artwork
type ImageStoreInterface interface {
	// UploadCustomCardImage stores the image and returns its public URL.
	UploadCustomCardImage(ctx context.Context, ownerID, ext string, data []byte) (string, error)
}
