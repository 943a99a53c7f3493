// Package layout places a flat card sequence onto printable pages.
package layout

// Columns is the fixed number of cards per row.
const Columns = 3

// Placement locates one card. Row is relative to its page; X and Y are the
// card's top-left corner in centimetres from the page's top-left corner.
type Placement struct {
	Index  int
	Page   int
	Row    int
	Column int
	X      float64
	Y      float64
}

// Paginate computes the position of n cards. The result depends only on n
// and s.
func Paginate(n int, s Settings) []Placement {
	if n <= 0 {
		return nil
	}

	out := make([]Placement, 0, n)
	page, row, col := 0, 0, 0
	x, y := s.MarginLeft, s.MarginTop

	for i := 0; i < n; i++ {
		out = append(out, Placement{
			Index:  i,
			Page:   page,
			Row:    row,
			Column: col,
			X:      x,
			Y:      y,
		})

		col++
		if col < Columns {
			x += s.CardWidth + s.Gap
			continue
		}

		col = 0
		row++
		x = s.MarginLeft
		y += s.CardHeight + s.Gap

		if y+s.CardHeight > s.PageHeight-s.MarginBottom && i < n-1 {
			page++
			row = 0
			y = s.MarginTop
		}
	}

	return out
}

// PageCount is the number of pages n cards occupy.
func PageCount(n int, s Settings) int {
	placements := Paginate(n, s)
	if len(placements) == 0 {
		return 0
	}
	return placements[len(placements)-1].Page + 1
}

// Pages groups placements by page index.
func Pages(placements []Placement) [][]Placement {
	var pages [][]Placement
	for _, p := range placements {
		for len(pages) <= p.Page {
			pages = append(pages, nil)
		}
		pages[p.Page] = append(pages[p.Page], p)
	}
	return pages
}
