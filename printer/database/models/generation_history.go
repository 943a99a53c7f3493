package models

import (
	"time"

	"github.com/uptrace/bun"
)

// GenerationHistory is appended once per successful export.
type GenerationHistory struct {
	bun.BaseModel `bun:"table:generation_history,alias:gh" bson:"-"`

	ID           string    `bun:"id,pk,type:uuid" bson:"_id"`
	UserID       string    `bun:"user_id,notnull" bson:"user_id"`
	DeckID       *string   `bun:"deck_id,type:uuid" bson:"deck_id,omitempty"`
	DeckName     string    `bun:"deck_name,notnull" bson:"deck_name"`
	CardCount    int       `bun:"card_count,notnull" bson:"card_count"`
	ExportFormat string    `bun:"export_format,notnull" bson:"export_format"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" bson:"created_at"`
}
