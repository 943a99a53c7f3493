package models

import (
	"time"

	"github.com/uptrace/bun"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
)

// SavedDeck stores the full card data of every line item so a deck can be
// reopened without hitting the card database.
type SavedDeck struct {
	bun.BaseModel `bun:"table:saved_decks,alias:sd" bson:"-"`

	ID          string          `bun:"id,pk,type:uuid" bson:"_id"`
	UserID      string          `bun:"user_id,notnull" bson:"user_id"`
	Name        string          `bun:"name,notnull" bson:"name"`
	Description string          `bun:"description" bson:"description,omitempty"`
	Cards       []deck.LineItem `bun:"cards,type:jsonb" bson:"cards"`
	CreatedAt   time.Time       `bun:"created_at,notnull,default:current_timestamp" bson:"created_at"`
	UpdatedAt   time.Time       `bun:"updated_at,notnull,default:current_timestamp" bson:"updated_at"`
}

func (d *SavedDeck) SetTimestamps(created, updated time.Time) {
	d.CreatedAt = created
	d.UpdatedAt = updated
}

func (d *SavedDeck) SetUpdateTimestamp(updated time.Time) {
	d.UpdatedAt = updated
}

// CardCount sums the quantities of every line item.
func (d *SavedDeck) CardCount() int {
	total := 0
	for _, item := range d.Cards {
		total += item.Quantity
	}
	return total
}
