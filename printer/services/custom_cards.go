package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
)

var ErrValidation = errors.New("validation failed")

// CustomCardInput is the data needed to create a custom card. Image is
// optional; ImageExt is its file extension without the dot.
type CustomCardInput struct {
	Name        string
	Type        string
	Description string
	Attribute   string
	Race        string
	Archetype   string
	Level       *int
	Atk         *int
	Def         *int
	LinkVal     *int
	Scale       *int
	Image       []byte
	ImageExt    string
}

func (in CustomCardInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	if len(in.Image) > config.MaxImageSize {
		return fmt.Errorf("%w: image exceeds %d bytes", ErrValidation, config.MaxImageSize)
	}
	return nil
}

// CustomCardService presents user-created cards as regular cards.
type CustomCardService struct {
	repo   interfaces.CustomCardRepositoryInterface
	images interfaces.ImageStoreInterface
	ids    *cards.IDAllocator
	logger *slog.Logger
	now    func() time.Time
}

// NewCustomCardService creates the service. images may be nil, in which
// case cards are created without artwork.
func NewCustomCardService(repo interfaces.CustomCardRepositoryInterface, images interfaces.ImageStoreInterface, ids *cards.IDAllocator) *CustomCardService {
	if ids == nil {
		ids = cards.NewIDAllocator()
	}
	return &CustomCardService{
		repo:   repo,
		images: images,
		ids:    ids,
		logger: slog.With(slog.String("service", "custom_cards")),
		now:    time.Now,
	}
}

// Search matches keyword against names and descriptions. Keywords shorter
// than two characters list the newest cards instead.
func (s *CustomCardService) Search(ctx context.Context, keyword string) []cards.Card {
	keyword = strings.TrimSpace(keyword)
	if utf8.RuneCountInString(keyword) < config.MinKeywordLength {
		keyword = ""
	}

	rows, err := s.repo.Search(ctx, keyword, config.CustomCardSearchLimit)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Custom card search failed",
				slog.String("keyword", keyword),
				slog.Any("error", err))
		}
		return []cards.Card{}
	}
	return s.toCards(rows)
}

// List returns every custom card, newest first.
func (s *CustomCardService) List(ctx context.Context) []cards.Card {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list custom cards", slog.Any("error", err))
		return []cards.Card{}
	}
	return s.toCards(rows)
}

// Create uploads the image, if any, and stores the card. It returns nil
// when validation, the upload or the store fails.
func (s *CustomCardService) Create(ctx context.Context, ownerID string, in CustomCardInput) *models.CustomCard {
	if err := in.validate(); err != nil {
		s.logger.Warn("Rejected custom card", slog.Any("error", err))
		return nil
	}

	var imageURL string
	if len(in.Image) > 0 {
		if s.images == nil {
			s.logger.Error("Custom card image supplied but no image store is configured")
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(in.ImageExt), ".")
		if ext == "" {
			ext = "png"
		}
		url, err := s.images.UploadCustomCardImage(ctx, ownerID, ext, in.Image)
		if err != nil {
			s.logger.Error("Failed to upload custom card image",
				slog.String("owner", ownerID),
				slog.Any("error", err))
			return nil
		}
		imageURL = url
	}

	now := s.now()
	row := &models.CustomCard{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		FrameType:   cards.FrameType(in.Type),
		Description: in.Description,
		Attribute:   in.Attribute,
		Race:        in.Race,
		Level:       in.Level,
		Atk:         in.Atk,
		Def:         in.Def,
		LinkVal:     in.LinkVal,
		Scale:       in.Scale,
		Archetype:   in.Archetype,
		ImageURL:    imageURL,
	}
	row.SetTimestamps(now, now)

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("Failed to store custom card",
			slog.String("name", row.Name),
			slog.Any("error", err))
		return nil
	}

	s.logger.Info("Created custom card",
		slog.String("id", row.ID),
		slog.String("name", row.Name))
	return row
}

// Delete removes the card and reports whether it succeeded.
func (s *CustomCardService) Delete(ctx context.Context, id string) bool {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete custom card",
			slog.String("id", id),
			slog.Any("error", err))
		return false
	}
	return true
}

// ToCard converts a stored row. The same row always receives the same
// negative id within a session.
func (s *CustomCardService) ToCard(row *models.CustomCard) cards.Card {
	id := s.ids.ID(row.ID)

	frameType := row.FrameType
	if frameType == "" {
		frameType = cards.FrameType(row.Type)
	}
	race := row.Race
	if race == "" {
		race = "Unknown"
	}

	card := cards.Card{
		ID:        id,
		CustomID:  row.ID,
		Name:      row.Name,
		Type:      row.Type,
		FrameType: frameType,
		Desc:      row.Description,
		Race:      race,
		Attribute: row.Attribute,
		Archetype: row.Archetype,
		Atk:       row.Atk,
		Def:       row.Def,
		Level:     row.Level,
		LinkVal:   row.LinkVal,
		Scale:     row.Scale,
	}
	if row.ImageURL != "" {
		card.Images = []cards.CardImage{{
			ID:              id,
			ImageURL:        row.ImageURL,
			ImageURLSmall:   row.ImageURL,
			ImageURLCropped: row.ImageURL,
		}}
	}
	return card
}

func (s *CustomCardService) toCards(rows []*models.CustomCard) []cards.Card {
	result := make([]cards.Card, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.ToCard(row))
	}
	return result
}
