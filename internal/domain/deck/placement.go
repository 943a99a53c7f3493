package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
)

const (
	MainCapacity  = 60
	ExtraCapacity = 15
	SideCapacity  = 15
)

// Capacity returns the soft size limit of a section.
func Capacity(section Section) int {
	switch section {
	case Main:
		return MainCapacity
	case Extra:
		return ExtraCapacity
	case Side:
		return SideCapacity
	}
	return 0
}

var ErrSectionFull = errors.New("deck section is full")

// CapacityError names the sections that were full when a quick add was
// rejected.
type CapacityError struct {
	Card     string
	Sections []Section
}

func (e *CapacityError) Error() string {
	names := make([]string, len(e.Sections))
	for i, s := range e.Sections {
		names[i] = fmt.Sprintf("%s (%d)", s, Capacity(s))
	}
	return fmt.Sprintf("cannot add %q: %s full", e.Card, strings.Join(names, " and "))
}

func (e *CapacityError) Unwrap() error {
	return ErrSectionFull
}

var extraDeckMarkers = []string{"fusion", "synchro", "xyz", "link"}

// IsExtraDeck reports whether the card's type belongs in the Extra Deck.
func IsExtraDeck(card cards.Card) bool {
	lower := strings.ToLower(card.Type)
	for _, marker := range extraDeckMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// DefaultSection is where a card goes when nothing else decides.
func DefaultSection(card cards.Card) Section {
	if IsExtraDeck(card) {
		return Extra
	}
	return Main
}

// Placement describes where a card ended up.
type Placement struct {
	Section Section
	// Overflow is set when the default section was full and the card went
	// to the Side Deck.
	Overflow bool
	// OverCapacity is set when a drop left the section above its limit.
	OverCapacity bool
	// Added is false when the card was already at MaxCopies.
	Added bool
}

// QuickAdd places the card in its default section, overflowing to Side
// when that is full. When both are full nothing changes and a
// *CapacityError is returned.
func QuickAdd(d *Deck, card cards.Card) (Placement, error) {
	target := DefaultSection(card)

	var (
		placement Placement
		err       error
	)
	d.replace(func(items []LineItem) []LineItem {
		switch {
		case sectionCount(items, target) < Capacity(target):
			placement.Section = target
		case sectionCount(items, Side) < SideCapacity:
			placement.Section = Side
			placement.Overflow = true
		default:
			err = &CapacityError{Card: card.Name, Sections: []Section{target, Side}}
			return items
		}
		items, placement.Added = addItem(items, card, placement.Section)
		return items
	})
	if err != nil {
		return Placement{}, err
	}
	return placement, nil
}

// Drop puts the card exactly where the user dropped it. Capacity is
// reported, not enforced.
func Drop(d *Deck, card cards.Card, section Section) Placement {
	placement := Placement{Section: section}
	d.replace(func(items []LineItem) []LineItem {
		items, placement.Added = addItem(items, card, section)
		placement.OverCapacity = sectionCount(items, section) > Capacity(section)
		return items
	})
	return placement
}
