package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CustomCard is a user-created card. The bson tags serve the MongoDB store.
type CustomCard struct {
	bun.BaseModel `bun:"table:custom_cards,alias:cc" bson:"-"`

	ID          string    `bun:"id,pk,type:uuid" bson:"_id"`
	UserID      string    `bun:"user_id,notnull" bson:"user_id"`
	Name        string    `bun:"name,notnull" bson:"name"`
	Type        string    `bun:"type,notnull" bson:"type"`
	FrameType   string    `bun:"frame_type,notnull" bson:"frame_type"`
	Description string    `bun:"description" bson:"description,omitempty"`
	Attribute   string    `bun:"attribute" bson:"attribute,omitempty"`
	Race        string    `bun:"race" bson:"race,omitempty"`
	Level       *int      `bun:"level" bson:"level,omitempty"`
	Atk         *int      `bun:"atk" bson:"atk,omitempty"`
	Def         *int      `bun:"def" bson:"def,omitempty"`
	LinkVal     *int      `bun:"link_val" bson:"link_val,omitempty"`
	Scale       *int      `bun:"scale" bson:"scale,omitempty"`
	Archetype   string    `bun:"archetype" bson:"archetype,omitempty"`
	ImageURL    string    `bun:"image_url" bson:"image_url,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" bson:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" bson:"updated_at"`
}

func (c *CustomCard) SetTimestamps(created, updated time.Time) {
	c.CreatedAt = created
	c.UpdatedAt = updated
}
