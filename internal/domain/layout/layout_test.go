package layout

import (
	"math"
	"reflect"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPaginate_TenCards(t *testing.T) {
	got := Paginate(10, DefaultSettings())
	if len(got) != 10 {
		t.Fatalf("len(Paginate()) = %d, want 10", len(got))
	}

	type cell struct{ page, row, col int }
	want := []cell{
		{0, 0, 0}, {0, 0, 1}, {0, 0, 2},
		{0, 1, 0}, {0, 1, 1}, {0, 1, 2},
		{0, 2, 0}, {0, 2, 1}, {0, 2, 2},
		{1, 0, 0},
	}
	for i, w := range want {
		p := got[i]
		if p.Index != i || p.Page != w.page || p.Row != w.row || p.Column != w.col {
			t.Errorf("placement %d = page %d row %d col %d, want page %d row %d col %d",
				i, p.Page, p.Row, p.Column, w.page, w.row, w.col)
		}
	}
}

func TestPaginate_Coordinates(t *testing.T) {
	s := DefaultSettings()
	got := Paginate(10, s)

	tests := []struct {
		index int
		x, y  float64
	}{
		{0, 1, 1},
		{1, 1 + 5.9 + 0.2, 1},
		{2, 1 + 2*(5.9+0.2), 1},
		{3, 1, 1 + 8.6 + 0.2},
		{8, 1 + 2*(5.9+0.2), 1 + 2*(8.6+0.2)},
		{9, 1, 1},
	}
	for _, tt := range tests {
		p := got[tt.index]
		if !approx(p.X, tt.x) || !approx(p.Y, tt.y) {
			t.Errorf("placement %d at (%.2f, %.2f), want (%.2f, %.2f)", tt.index, p.X, p.Y, tt.x, tt.y)
		}
	}
}

func TestPaginate_NoTrailingEmptyPage(t *testing.T) {
	s := DefaultSettings()
	if got := PageCount(9, s); got != 1 {
		t.Errorf("PageCount(9) = %d, want 1", got)
	}
	if got := PageCount(18, s); got != 2 {
		t.Errorf("PageCount(18) = %d, want 2", got)
	}
	if got := PageCount(19, s); got != 3 {
		t.Errorf("PageCount(19) = %d, want 3", got)
	}
	if got := PageCount(0, s); got != 0 {
		t.Errorf("PageCount(0) = %d, want 0", got)
	}
}

func TestPaginate_SmallerCardsFitMoreRows(t *testing.T) {
	s := DefaultSettings()
	s.CardHeight = 5
	s.CardWidth = 4

	// rows start at 1, 6.2, 11.4, 16.6, 21.8; a sixth would end at 32
	got := Paginate(16, s)
	if got[14].Page != 0 || got[14].Row != 4 {
		t.Errorf("placement 14 = page %d row %d, want page 0 row 4", got[14].Page, got[14].Row)
	}
	if got[15].Page != 1 || got[15].Row != 0 {
		t.Errorf("placement 15 = page %d row %d, want page 1 row 0", got[15].Page, got[15].Row)
	}
}

func TestPaginate_Deterministic(t *testing.T) {
	s := DefaultSettings()
	if a, b := Paginate(47, s), Paginate(47, s); !reflect.DeepEqual(a, b) {
		t.Errorf("Paginate() is not deterministic")
	}
}

func TestPages(t *testing.T) {
	pages := Pages(Paginate(10, DefaultSettings()))
	if len(pages) != 2 || len(pages[0]) != 9 || len(pages[1]) != 1 {
		t.Errorf("Pages() shape = %d pages, want [9 1]", len(pages))
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Settings) {}, wantErr: false},
		{name: "zero card", mutate: func(s *Settings) { s.CardWidth = 0 }, wantErr: true},
		{name: "negative gap", mutate: func(s *Settings) { s.Gap = -1 }, wantErr: true},
		{name: "card taller than page", mutate: func(s *Settings) { s.CardHeight = 40 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"PDF", FormatPDF, false},
		{"docx", FormatDOCX, false},
		{"word", FormatDOCX, false},
		{"png", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}
