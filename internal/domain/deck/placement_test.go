package deck

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
)

func TestIsExtraDeck(t *testing.T) {
	tests := []struct {
		cardType string
		want     bool
	}{
		{"Synchro Pendulum Effect Monster", true},
		{"Pendulum Effect Monster", false},
		{"Fusion Monster", true},
		{"XYZ Monster", true},
		{"Xyz Pendulum Effect Monster", true},
		{"Link Monster", true},
		{"Synchro Tuner Monster", true},
		{"Effect Monster", false},
		{"Ritual Effect Monster", false},
		{"Spell Card", false},
		{"Trap Card", false},
	}
	for _, tt := range tests {
		t.Run(tt.cardType, func(t *testing.T) {
			if got := IsExtraDeck(cards.Card{Type: tt.cardType}); got != tt.want {
				t.Errorf("IsExtraDeck(%q) = %v, want %v", tt.cardType, got, tt.want)
			}
		})
	}
}

func fill(d *Deck, section Section, n int, base int64) {
	for i := 0; i < n; i++ {
		d.AddCard(cards.Card{ID: base + int64(i), Name: fmt.Sprintf("filler %d", i), Type: "Effect Monster"}, section)
	}
}

func TestQuickAdd(t *testing.T) {
	extraCard := cards.Card{ID: 1, Name: "Decode Talker", Type: "Link Monster"}
	mainCard := cards.Card{ID: 2, Name: "Ash Blossom", Type: "Tuner Effect Monster"}

	tests := []struct {
		name      string
		setup     func(*Deck)
		card      cards.Card
		want      Placement
		wantFull  []Section
		wantTotal int
	}{
		{
			name:      "extra card to extra",
			setup:     func(*Deck) {},
			card:      extraCard,
			want:      Placement{Section: Extra, Added: true},
			wantTotal: 1,
		},
		{
			name:      "main card to main",
			setup:     func(*Deck) {},
			card:      mainCard,
			want:      Placement{Section: Main, Added: true},
			wantTotal: 1,
		},
		{
			name:      "full extra overflows to side",
			setup:     func(d *Deck) { fill(d, Extra, 15, 1000) },
			card:      extraCard,
			want:      Placement{Section: Side, Overflow: true, Added: true},
			wantTotal: 16,
		},
		{
			name:      "full main overflows to side",
			setup:     func(d *Deck) { fill(d, Main, 60, 1000) },
			card:      mainCard,
			want:      Placement{Section: Side, Overflow: true, Added: true},
			wantTotal: 61,
		},
		{
			name: "extra and side full",
			setup: func(d *Deck) {
				fill(d, Extra, 15, 1000)
				fill(d, Side, 15, 2000)
			},
			card:      extraCard,
			wantFull:  []Section{Extra, Side},
			wantTotal: 30,
		},
		{
			name: "main and side full",
			setup: func(d *Deck) {
				fill(d, Main, 60, 1000)
				fill(d, Side, 15, 2000)
			},
			card:      mainCard,
			wantFull:  []Section{Main, Side},
			wantTotal: 75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("")
			tt.setup(d)

			got, err := QuickAdd(d, tt.card)
			if tt.wantFull != nil {
				var capErr *CapacityError
				if !errors.As(err, &capErr) {
					t.Fatalf("QuickAdd() error = %v, want *CapacityError", err)
				}
				if !errors.Is(err, ErrSectionFull) {
					t.Errorf("QuickAdd() error does not wrap ErrSectionFull")
				}
				if !reflect.DeepEqual(capErr.Sections, tt.wantFull) {
					t.Errorf("CapacityError.Sections = %v, want %v", capErr.Sections, tt.wantFull)
				}
			} else {
				if err != nil {
					t.Fatalf("QuickAdd() unexpected error = %v", err)
				}
				if got != tt.want {
					t.Errorf("QuickAdd() = %+v, want %+v", got, tt.want)
				}
			}
			if total := d.TotalCount(); total != tt.wantTotal {
				t.Errorf("TotalCount() = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestQuickAdd_FourthCopyIsIgnored(t *testing.T) {
	d := New("")
	card := cards.Card{ID: 7, Name: "Maxx C", Type: "Effect Monster"}
	for i := 0; i < 3; i++ {
		if _, err := QuickAdd(d, card); err != nil {
			t.Fatalf("QuickAdd() error = %v", err)
		}
	}

	got, err := QuickAdd(d, card)
	if err != nil {
		t.Fatalf("QuickAdd() error = %v", err)
	}
	if got.Added {
		t.Errorf("fourth QuickAdd() reported Added")
	}
	if q := d.Quantity(card.ID, Main); q != 3 {
		t.Errorf("Quantity() = %d, want 3", q)
	}
}

func TestDrop_BypassesPolicy(t *testing.T) {
	d := New("")
	fill(d, Extra, 15, 1000)

	// a main deck card dropped into the full extra deck stays there
	card := cards.Card{ID: 3, Name: "Pot of Greed", Type: "Spell Card"}
	got := Drop(d, card, Extra)

	want := Placement{Section: Extra, OverCapacity: true, Added: true}
	if got != want {
		t.Errorf("Drop() = %+v, want %+v", got, want)
	}
	if q := d.Quantity(card.ID, Extra); q != 1 {
		t.Errorf("Quantity(Extra) = %d, want 1", q)
	}
}

func TestDrop_WithinCapacity(t *testing.T) {
	d := New("")
	card := cards.Card{ID: 3, Name: "Stardust Dragon", Type: "Synchro Monster"}

	got := Drop(d, card, Side)
	want := Placement{Section: Side, Added: true}
	if got != want {
		t.Errorf("Drop() = %+v, want %+v", got, want)
	}
}

func TestCapacityError_Message(t *testing.T) {
	err := &CapacityError{Card: "Ash Blossom", Sections: []Section{Main, Side}}
	want := `cannot add "Ash Blossom": main (60) and side (15) full`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
