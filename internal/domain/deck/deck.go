package deck

import (
	"strings"
	"sync"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
)

type Section string

const (
	Main  Section = "main"
	Extra Section = "extra"
	Side  Section = "side"
)

// Sections lists every section in display order.
var Sections = []Section{Main, Extra, Side}

// ParseSection accepts a section name in any case.
func ParseSection(s string) (Section, bool) {
	switch Section(strings.ToLower(strings.TrimSpace(s))) {
	case Main:
		return Main, true
	case Extra:
		return Extra, true
	case Side:
		return Side, true
	}
	return "", false
}

// MaxCopies is the per-card quantity cap inside one section.
const MaxCopies = 3

const DefaultName = "Untitled Deck"

type LineItem struct {
	Card     cards.Card `json:"card"`
	Quantity int        `json:"quantity"`
	Section  Section    `json:"section"`
}

// Deck owns an ordered collection of line items. Every mutation builds a
// new slice and swaps it in under the lock, so readers always see a
// complete collection.
type Deck struct {
	mu          sync.RWMutex
	id          string
	name        string
	description string
	items       []LineItem
}

func New(name string) *Deck {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return &Deck{name: name}
}

func (d *Deck) ID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.id
}

func (d *Deck) SetID(id string) {
	d.mu.Lock()
	d.id = id
	d.mu.Unlock()
}

func (d *Deck) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}

func (d *Deck) SetName(name string) {
	d.mu.Lock()
	d.name = name
	d.mu.Unlock()
}

func (d *Deck) Description() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.description
}

func (d *Deck) SetDescription(description string) {
	d.mu.Lock()
	d.description = description
	d.mu.Unlock()
}

// AddCard increments the (card, section) line item, or appends a new one
// with quantity 1. Adding past MaxCopies is ignored. It reports whether the
// deck changed.
func (d *Deck) AddCard(card cards.Card, section Section) bool {
	var added bool
	d.replace(func(items []LineItem) []LineItem {
		items, added = addItem(items, card, section)
		return items
	})
	return added
}

// RemoveCard decrements the matching line item, deleting it when the
// quantity reaches zero. Unknown pairs are a no-op.
func (d *Deck) RemoveCard(cardID int64, section Section) {
	d.replace(func(items []LineItem) []LineItem {
		for i, item := range items {
			if item.Card.ID != cardID || item.Section != section {
				continue
			}
			if item.Quantity > 1 {
				items[i].Quantity--
				return items
			}
			return append(items[:i], items[i+1:]...)
		}
		return items
	})
}

// SetItems replaces the whole collection. Duplicate (card, section) pairs
// are merged and quantities clamped to [1, MaxCopies].
func (d *Deck) SetItems(items []LineItem) {
	normalized := make([]LineItem, 0, len(items))
	for _, item := range items {
		for n := 0; n < item.Quantity; n++ {
			var added bool
			normalized, added = addItem(normalized, item.Card, item.Section)
			if !added {
				break
			}
		}
	}

	d.mu.Lock()
	d.items = normalized
	d.mu.Unlock()
}

// Load replaces the deck identity and contents in one step.
func (d *Deck) Load(id, name, description string, items []LineItem) {
	d.SetItems(items)

	d.mu.Lock()
	d.id = id
	d.name = name
	d.description = description
	d.mu.Unlock()
}

// Clear empties the deck and resets its identity and name.
func (d *Deck) Clear() {
	d.mu.Lock()
	d.id = ""
	d.name = DefaultName
	d.description = ""
	d.items = nil
	d.mu.Unlock()
}

// Items returns a copy of every line item in insertion order.
func (d *Deck) Items() []LineItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]LineItem(nil), d.items...)
}

// Cards returns the line items of one section.
func (d *Deck) Cards(section Section) []LineItem {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []LineItem
	for _, item := range d.items {
		if item.Section == section {
			out = append(out, item)
		}
	}
	return out
}

// Quantity returns the copies of a card in a section, zero when absent.
func (d *Deck) Quantity(cardID int64, section Section) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, item := range d.items {
		if item.Card.ID == cardID && item.Section == section {
			return item.Quantity
		}
	}
	return 0
}

// SectionCount sums quantities in one section.
func (d *Deck) SectionCount(section Section) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sectionCount(d.items, section)
}

// TotalCount sums quantities across all sections.
func (d *Deck) TotalCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	total := 0
	for _, item := range d.items {
		total += item.Quantity
	}
	return total
}

// Flatten expands each line item into Quantity copies of its card, in
// insertion order with repeats contiguous.
func (d *Deck) Flatten() []cards.Card {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []cards.Card
	for _, item := range d.items {
		for n := 0; n < item.Quantity; n++ {
			out = append(out, item.Card)
		}
	}
	return out
}

// replace runs fn on a private copy of the items and installs the result.
func (d *Deck) replace(fn func([]LineItem) []LineItem) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := append([]LineItem(nil), d.items...)
	d.items = fn(next)
}

func addItem(items []LineItem, card cards.Card, section Section) ([]LineItem, bool) {
	for i, item := range items {
		if item.Card.ID == card.ID && item.Section == section {
			if item.Quantity >= MaxCopies {
				return items, false
			}
			items[i].Quantity++
			return items, true
		}
	}
	return append(items, LineItem{Card: card, Quantity: 1, Section: section}), true
}

func sectionCount(items []LineItem, section Section) int {
	total := 0
	for _, item := range items {
		if item.Section == section {
			total += item.Quantity
		}
	}
	return total
}
