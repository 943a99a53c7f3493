package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
	"github.com/ygoproxy/ygoproxy/internal/domain/deckfile"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
	"github.com/ygoproxy/ygoproxy/printer/logger"
)

// ImportResult is a deck built from a file plus the ids that could not be
// resolved. Requested counts every id line in the file.
type ImportResult struct {
	Deck      *deck.Deck
	NotFound  []int64
	Requested int
}

// Found is the number of copies that made it into the deck.
func (r *ImportResult) Found() int {
	return r.Deck.TotalCount()
}

// Partial reports whether some ids were not resolved.
func (r *ImportResult) Partial() bool {
	return len(r.NotFound) > 0
}

type DeckImportService struct {
	db     interfaces.CardDatabaseInterface
	logger *slog.Logger
}

func NewDeckImportService(db interfaces.CardDatabaseInterface) *DeckImportService {
	return &DeckImportService{
		db:     db,
		logger: slog.With(slog.String("service", "deck_import")),
	}
}

// ImportFile reads and imports a deck file from disk.
func (s *DeckImportService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}
	return s.Import(ctx, filepath.Base(path), string(content)), nil
}

// Import parses content and resolves every id against the card database.
// Unknown ids are collected rather than failing the import; copies beyond
// the per-section cap are dropped.
func (s *DeckImportService) Import(ctx context.Context, filename, content string) *ImportResult {
	parsed := deckfile.Parse(filename, content)
	d := deck.New(deckName(filename))
	result := &ImportResult{Deck: d, NotFound: []int64{}, Requested: parsed.Len()}

	if parsed.Len() == 0 {
		s.logger.Warn("Deck file contained no card ids", slog.String("file", filename))
		return result
	}

	found, notFound := s.db.GetCardsByIDs(ctx, parsed.All())
	byID := make(map[int64]cards.Card, len(found))
	for _, card := range found {
		byID[card.ID] = card
	}

	sections := []struct {
		section deck.Section
		ids     []int64
	}{
		{deck.Main, parsed.Main},
		{deck.Extra, parsed.Extra},
		{deck.Side, parsed.Side},
	}
	items := make([]deck.LineItem, 0, len(found))
	for _, sec := range sections {
		for _, id := range sec.ids {
			if card, ok := byID[id]; ok {
				items = append(items, deck.LineItem{Card: card, Quantity: 1, Section: sec.section})
			}
		}
	}
	d.SetItems(items)

	if notFound != nil {
		result.NotFound = notFound
	}

	logger.LogDeck("Imported deck",
		slog.String("file", filename),
		slog.Int("requested", result.Requested),
		slog.Int("found", result.Found()),
		slog.Int("not_found", len(result.NotFound)))
	return result
}

func deckName(filename string) string {
	name := strings.TrimSpace(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if name == "" || name == "." {
		return deck.DefaultName
	}
	return name
}
