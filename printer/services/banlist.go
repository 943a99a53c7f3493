package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
)

// BanListService annotates cards with their restriction status. Each
// format's list is fetched at most once per service.
type BanListService struct {
	db     interfaces.CardDatabaseInterface
	logger *slog.Logger

	mu     sync.Mutex
	format cards.Format
	lists  map[cards.Format]map[int64]cards.BanListEntry
}

func NewBanListService(db interfaces.CardDatabaseInterface) *BanListService {
	return &BanListService{
		db:     db,
		logger: slog.With(slog.String("service", "banlist")),
		format: cards.FormatTCG,
		lists:  make(map[cards.Format]map[int64]cards.BanListEntry),
	}
}

func (s *BanListService) Format() cards.Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// SetFormat switches the active format and loads its list if needed.
func (s *BanListService) SetFormat(ctx context.Context, format cards.Format) error {
	if _, err := s.load(ctx, format); err != nil {
		return err
	}
	s.mu.Lock()
	s.format = format
	s.mu.Unlock()
	return nil
}

// Status returns the card's status in the active format. Unknown cards
// and load failures report unrestricted.
func (s *BanListService) Status(ctx context.Context, cardID int64) cards.BanStatus {
	format := s.Format()
	list, err := s.load(ctx, format)
	if err != nil {
		s.logger.Warn("Ban list unavailable",
			slog.String("format", string(format)),
			slog.Any("error", err))
		return ""
	}
	return list[cardID].Status(format)
}

// Entries returns the restricted cards of format.
func (s *BanListService) Entries(ctx context.Context, format cards.Format) ([]cards.BanListEntry, error) {
	list, err := s.load(ctx, format)
	if err != nil {
		return nil, err
	}
	entries := make([]cards.BanListEntry, 0, len(list))
	for _, entry := range list {
		if entry.Status(format) != "" {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *BanListService) load(ctx context.Context, format cards.Format) (map[int64]cards.BanListEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.lists[format]; ok {
		return list, nil
	}

	entries, err := s.db.GetBanList(ctx, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s ban list: %w", format, err)
	}
	list := make(map[int64]cards.BanListEntry, len(entries))
	for _, entry := range entries {
		list[entry.CardID] = entry
	}
	s.lists[format] = list
	return list, nil
}
