// Package export renders a paginated card sheet to printable documents.
package export

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/internal/domain/layout"
	"github.com/ygoproxy/ygoproxy/printer/config"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"cm": cssCM,
}).ParseFS(templateFS, "templates/*.html"))

// Renderer turns a sheet into document bytes.
type Renderer interface {
	Render(ctx context.Context, sheet *Sheet) ([]byte, error)
	// Extension is the output file extension without the dot.
	Extension() string
}

// Sheet is a deck laid out on pages.
type Sheet struct {
	Title    string
	Settings layout.Settings
	Pages    []SheetPage
}

type SheetPage struct {
	Cards []SheetCard
}

// SheetCard is one printed card. Image is empty when no artwork could be
// loaded; the card is then printed as a grey box carrying Label.
type SheetCard struct {
	Name   string
	Label  string
	Image  template.URL
	Row    int
	Column int
	X      float64
	Y      float64
}

// Rows groups the page's cards by row.
func (p SheetPage) Rows() [][]SheetCard {
	var rows [][]SheetCard
	for _, card := range p.Cards {
		for len(rows) <= card.Row {
			rows = append(rows, nil)
		}
		rows[card.Row] = append(rows[card.Row], card)
	}
	return rows
}

// CardCount is the number of cards across all pages.
func (s *Sheet) CardCount() int {
	n := 0
	for _, page := range s.Pages {
		n += len(page.Cards)
	}
	return n
}

// BuildSheet places list according to settings. images maps artwork URLs
// to embeddable sources; cards whose artwork is missing get a placeholder.
func BuildSheet(title string, list []cards.Card, settings layout.Settings, images map[string]string) *Sheet {
	sheet := &Sheet{Title: title, Settings: settings}
	for _, placements := range layout.Pages(layout.Paginate(len(list), settings)) {
		page := SheetPage{Cards: make([]SheetCard, 0, len(placements))}
		for _, p := range placements {
			card := list[p.Index]
			page.Cards = append(page.Cards, SheetCard{
				Name:   card.Name,
				Label:  placeholderLabel(card.Name),
				Image:  template.URL(images[card.ImageURL()]),
				Row:    p.Row,
				Column: p.Column,
				X:      p.X,
				Y:      p.Y,
			})
		}
		sheet.Pages = append(sheet.Pages, page)
	}
	return sheet
}

// HTML renders the absolutely positioned print sheet.
func (s *Sheet) HTML() ([]byte, error) {
	return execute("sheet.html", s)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func placeholderLabel(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > config.PlaceholderNameSize {
		runes = runes[:config.PlaceholderNameSize]
	}
	return string(runes)
}

func cssCM(v float64) template.CSS {
	return template.CSS(strconv.FormatFloat(v, 'f', -1, 64) + "cm")
}
