package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
	"github.com/ygoproxy/ygoproxy/internal/domain/layout"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/export"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
	"github.com/ygoproxy/ygoproxy/printer/logger"
)

// ImageSource resolves artwork URLs to embeddable sources.
type ImageSource interface {
	FetchAll(ctx context.Context, urls []string) map[string]string
}

// ExportResult describes a written document.
type ExportResult struct {
	Path   string
	Pages  int
	Cards  int
	Format layout.Format
}

// ExportService writes a deck as a printable document and records it in
// the generation history.
type ExportService struct {
	images    ImageSource
	renderers map[layout.Format]export.Renderer
	history   interfaces.HistoryRepositoryInterface
	userID    string
	log       *slog.Logger
	now       func() time.Time
}

// NewExportService creates the service. history may be nil when no store
// is configured; exports are then not recorded.
func NewExportService(images ImageSource, renderers map[layout.Format]export.Renderer, history interfaces.HistoryRepositoryInterface, userID string) *ExportService {
	return &ExportService{
		images:    images,
		renderers: renderers,
		history:   history,
		userID:    userID,
		log:       slog.With(slog.String("service", "export")),
		now:       time.Now,
	}
}

// Export lays out every copy in d and writes the document to outputDir.
func (s *ExportService) Export(ctx context.Context, d *deck.Deck, settings layout.Settings, outputDir string) (*ExportResult, error) {
	list := d.Flatten()
	if len(list) == 0 {
		return nil, ErrEmptyDeck
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	renderer, ok := s.renderers[settings.Format]
	if !ok {
		return nil, fmt.Errorf("%w: no renderer for format %q", ErrValidation, settings.Format)
	}

	start := time.Now()

	urls := make([]string, 0, len(list))
	for _, card := range list {
		urls = append(urls, card.ImageURL())
	}
	var images map[string]string
	if s.images != nil {
		images = s.images.FetchAll(ctx, urls)
	}

	name := d.Name()
	sheet := export.BuildSheet(name, list, settings, images)
	data, err := renderer.Render(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to render deck: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, fileName(name)+"."+renderer.Extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	result := &ExportResult{
		Path:   path,
		Pages:  len(sheet.Pages),
		Cards:  len(list),
		Format: settings.Format,
	}

	logger.LogExport("Exported deck",
		slog.String("path", path),
		slog.Int("cards", result.Cards),
		slog.Int("pages", result.Pages),
		slog.Duration("took", time.Since(start)))

	s.record(ctx, d, result)
	return result, nil
}

func (s *ExportService) record(ctx context.Context, d *deck.Deck, result *ExportResult) {
	if s.history == nil {
		return
	}

	entry := &models.GenerationHistory{
		ID:           uuid.NewString(),
		UserID:       s.userID,
		DeckName:     d.Name(),
		CardCount:    result.Cards,
		ExportFormat: string(result.Format),
		CreatedAt:    s.now(),
	}
	if id := d.ID(); id != "" {
		entry.DeckID = &id
	}

	if err := s.history.Create(ctx, entry); err != nil {
		s.log.Warn("Failed to record export history", slog.Any("error", err))
	}
}

// History lists the latest exports, newest first.
func (s *ExportService) History(ctx context.Context, limit int) ([]*models.GenerationHistory, error) {
	if s.history == nil {
		return []*models.GenerationHistory{}, nil
	}
	if limit <= 0 {
		limit = config.HistoryLimit
	}
	return s.history.GetByUserID(ctx, s.userID, limit)
}

// fileName keeps letters, digits, dashes and underscores of the deck name.
func fileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '_'
		}
		return -1
	}, strings.TrimSpace(name))
	if cleaned == "" {
		return "deck"
	}
	return cleaned
}
