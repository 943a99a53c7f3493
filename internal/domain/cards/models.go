package cards

import "strings"

// Card is a single card as returned by the card database or converted from
// a user-created record. Positive IDs belong to the card database, negative
// IDs to custom cards.
type Card struct {
	ID          int64        `json:"id"`
	CustomID    string       `json:"custom_id,omitempty"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	FrameType   string       `json:"frameType,omitempty"`
	Desc        string       `json:"desc"`
	Race        string       `json:"race,omitempty"`
	Attribute   string       `json:"attribute,omitempty"`
	Archetype   string       `json:"archetype,omitempty"`
	Atk         *int         `json:"atk,omitempty"`
	Def         *int         `json:"def,omitempty"`
	Level       *int         `json:"level,omitempty"`
	LinkVal     *int         `json:"linkval,omitempty"`
	Scale       *int         `json:"scale,omitempty"`
	LinkMarkers []string     `json:"linkmarkers,omitempty"`
	Images      []CardImage  `json:"card_images,omitempty"`
	Sets        []CardSet    `json:"card_sets,omitempty"`
	Prices      []CardPrice  `json:"card_prices,omitempty"`
	BanList     *BanListInfo `json:"banlist_info,omitempty"`
}

type CardImage struct {
	ID              int64  `json:"id"`
	ImageURL        string `json:"image_url"`
	ImageURLSmall   string `json:"image_url_small"`
	ImageURLCropped string `json:"image_url_cropped"`
}

type CardSet struct {
	SetName       string `json:"set_name"`
	SetCode       string `json:"set_code"`
	SetRarity     string `json:"set_rarity"`
	SetRarityCode string `json:"set_rarity_code"`
	SetPrice      string `json:"set_price"`
}

type CardPrice struct {
	Cardmarket   string `json:"cardmarket_price"`
	TCGPlayer    string `json:"tcgplayer_price"`
	Ebay         string `json:"ebay_price"`
	Amazon       string `json:"amazon_price"`
	CoolStuffInc string `json:"coolstuffinc_price"`
}

type BanListInfo struct {
	TCG  string `json:"ban_tcg,omitempty"`
	OCG  string `json:"ban_ocg,omitempty"`
	GOAT string `json:"ban_goat,omitempty"`
}

// IsCustom reports whether the card was created by a user rather than
// fetched from the card database.
func (c Card) IsCustom() bool {
	return c.ID < 0
}

// ImageURL returns the full-size artwork, or an empty string.
func (c Card) ImageURL() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0].ImageURL
}

// IsMonster reports whether the type string names a monster card.
func (c Card) IsMonster() bool {
	return strings.Contains(strings.ToLower(c.Type), "monster")
}

func Int(v int) *int {
	return &v
}
