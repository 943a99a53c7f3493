package layout

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX, "doc", "word":
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Settings are physical dimensions in centimetres.
type Settings struct {
	CardWidth    float64 `toml:"card_width" json:"card_width"`
	CardHeight   float64 `toml:"card_height" json:"card_height"`
	PageWidth    float64 `toml:"page_width" json:"page_width"`
	PageHeight   float64 `toml:"page_height" json:"page_height"`
	MarginTop    float64 `toml:"margin_top" json:"margin_top"`
	MarginBottom float64 `toml:"margin_bottom" json:"margin_bottom"`
	MarginLeft   float64 `toml:"margin_left" json:"margin_left"`
	MarginRight  float64 `toml:"margin_right" json:"margin_right"`
	Gap          float64 `toml:"gap" json:"gap"`
	Format       Format  `toml:"format" json:"format"`
}

// DefaultSettings fits nine standard cards on an A4 page.
func DefaultSettings() Settings {
	return Settings{
		CardWidth:    5.9,
		CardHeight:   8.6,
		PageWidth:    21,
		PageHeight:   29.7,
		MarginTop:    1,
		MarginBottom: 1,
		MarginLeft:   1,
		MarginRight:  1,
		Gap:          0.2,
		Format:       FormatPDF,
	}
}

// Validate rejects dimensions that cannot hold a single card.
func (s Settings) Validate() error {
	if s.CardWidth <= 0 || s.CardHeight <= 0 {
		return fmt.Errorf("card dimensions must be positive, got %.2fx%.2f", s.CardWidth, s.CardHeight)
	}
	if s.PageWidth <= 0 || s.PageHeight <= 0 {
		return fmt.Errorf("page dimensions must be positive, got %.2fx%.2f", s.PageWidth, s.PageHeight)
	}
	if s.Gap < 0 || s.MarginTop < 0 || s.MarginBottom < 0 || s.MarginLeft < 0 || s.MarginRight < 0 {
		return fmt.Errorf("margins and gap cannot be negative")
	}
	if s.MarginTop+s.CardHeight > s.PageHeight-s.MarginBottom {
		return fmt.Errorf("a %.2fcm card does not fit between the page margins", s.CardHeight)
	}
	return nil
}
