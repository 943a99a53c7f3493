package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/fumiama/go-docx"
)

const (
	twipsPerCM = 1440 / 2.54
	emuPerCM   = 360000

	placeholderFill  = "C8C8C8"
	placeholderColor = "646464"
	// half-points
	placeholderSize = "16"
)

// WordRenderer writes the sheet as an Office Open XML document. Each page
// is a borderless table of fixed-size cells, with spacer rows and columns
// standing in for the gap, since Word has no absolute positioning.
type WordRenderer struct{}

func NewWordRenderer() *WordRenderer {
	return &WordRenderer{}
}

func (r *WordRenderer) Render(ctx context.Context, sheet *Sheet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := docx.New().WithDefaultTheme()
	s := sheet.Settings

	for i, page := range sheet.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 {
			doc.AddParagraph().AddPageBreaks()
		}
		addPageTable(doc, page, sheet)
	}

	doc.Document.Body.Items = append(doc.Document.Body.Items, &docx.SectPr{
		PgSz: &docx.PgSz{W: twips(s.PageWidth), H: twips(s.PageHeight)},
		PgMar: &docx.PgMar{
			Top:    twips(s.MarginTop),
			Left:   twips(s.MarginLeft),
			Bottom: twips(s.MarginBottom),
			Right:  twips(s.MarginRight),
		},
	})

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *WordRenderer) Extension() string {
	return "docx"
}

// addPageTable lays one page out as a grid where even tracks hold cards
// and odd tracks are gap spacers. A zero gap drops the spacers.
func addPageTable(doc *docx.Docx, page SheetPage, sheet *Sheet) {
	s := sheet.Settings
	rows := page.Rows()
	spaced := s.Gap > 0

	heights := tracks(len(rows), twips(s.CardHeight), twips(s.Gap), spaced)
	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	widths := tracks(columns, twips(s.CardWidth), twips(s.Gap), spaced)

	tbl := doc.AddTableTwips(heights, widths, 0, nil)
	tbl.TableProperties.TableBorders = nil
	for _, tr := range tbl.TableRows {
		if tr.TableRowProperties.TableRowHeight != nil {
			tr.TableRowProperties.TableRowHeight.Rule = "exact"
		}
	}

	step := 1
	if spaced {
		step = 2
	}
	filled := make(map[*docx.WTableCell]bool)
	for r, row := range rows {
		for _, card := range row {
			cell := tbl.TableRows[r*step].TableCells[card.Column*step]
			fillCard(cell, card, s.CardWidth, s.CardHeight)
			filled[cell] = true
		}
	}

	// every cell needs a paragraph to be valid
	for _, tr := range tbl.TableRows {
		for _, cell := range tr.TableCells {
			if !filled[cell] {
				cell.AddParagraph()
			}
		}
	}
}

// fillCard puts the artwork in cell, or the grey placeholder when the card
// has none or its image cannot be read.
func fillCard(cell *docx.WTableCell, card SheetCard, width, height float64) {
	if data, ok := decodeDataURI(string(card.Image)); ok && readableImage(data) {
		if run, err := cell.AddParagraph().AddInlineDrawing(data); err == nil {
			if d, ok := run.Children[0].(*docx.Drawing); ok && d.Inline != nil {
				d.Inline.Size(emu(width), emu(height))
			}
			return
		}
		cell.Paragraphs = cell.Paragraphs[:0]
	}
	cell.Shade("clear", "auto", placeholderFill)
	cell.AddParagraph().AddText(card.Label).Size(placeholderSize).Color(placeholderColor)
}

func readableImage(data []byte) bool {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil && cfg.Width > 0 && cfg.Height > 0
}

// tracks returns n card tracks of size, separated by gap tracks when
// spaced.
func tracks(n int, size, gap int, spaced bool) []int64 {
	out := make([]int64, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 && spaced {
			out = append(out, int64(gap))
		}
		out = append(out, int64(size))
	}
	return out
}

// decodeDataURI returns the payload of a base64 data URI.
func decodeDataURI(uri string) ([]byte, bool) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, false
	}
	meta, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func twips(cm float64) int {
	return int(math.Round(cm * twipsPerCM))
}

func emu(cm float64) int64 {
	return int64(math.Round(cm * emuPerCM))
}
