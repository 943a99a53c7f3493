package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
	"github.com/ygoproxy/ygoproxy/printer/logger"
)

var ErrEmptyDeck = errors.New("deck has no cards")

// DeckService persists decks for one user.
type DeckService struct {
	repo   interfaces.DeckRepositoryInterface
	userID string
	logger *slog.Logger
	now    func() time.Time
}

func NewDeckService(repo interfaces.DeckRepositoryInterface, userID string) *DeckService {
	return &DeckService{
		repo:   repo,
		userID: userID,
		logger: slog.With(slog.String("service", "decks")),
		now:    time.Now,
	}
}

// Save creates the deck on first save and updates it afterwards. The
// deck's id is set after creation.
func (s *DeckService) Save(ctx context.Context, d *deck.Deck) (*models.SavedDeck, error) {
	name := strings.TrimSpace(d.Name())
	if name == "" {
		return nil, fmt.Errorf("%w: deck name is required", ErrValidation)
	}
	if d.TotalCount() == 0 {
		return nil, ErrEmptyDeck
	}

	now := s.now()
	saved := &models.SavedDeck{
		ID:          d.ID(),
		UserID:      s.userID,
		Name:        name,
		Description: d.Description(),
		Cards:       d.Items(),
	}

	if saved.ID == "" {
		saved.ID = uuid.NewString()
		saved.SetTimestamps(now, now)
		if err := s.repo.Create(ctx, saved); err != nil {
			return nil, fmt.Errorf("failed to create deck: %w", err)
		}
		d.SetID(saved.ID)
		logger.LogDeck("Saved new deck", slog.String("id", saved.ID), slog.Int("cards", saved.CardCount()))
		return saved, nil
	}

	saved.SetUpdateTimestamp(now)
	if err := s.repo.Update(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}
	logger.LogDeck("Updated deck", slog.String("id", saved.ID), slog.Int("cards", saved.CardCount()))
	return saved, nil
}

// Open loads a saved deck into a new Deck.
func (s *DeckService) Open(ctx context.Context, id string) (*deck.Deck, error) {
	saved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", id, err)
	}
	d := deck.New(saved.Name)
	d.Load(saved.ID, saved.Name, saved.Description, saved.Cards)
	return d, nil
}

// List returns the user's decks, most recently updated first.
func (s *DeckService) List(ctx context.Context) ([]*models.SavedDeck, error) {
	decks, err := s.repo.GetByUserID(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

func (s *DeckService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete deck %s: %w", id, err)
	}
	s.logger.Info("Deleted deck", slog.String("id", id))
	return nil
}
