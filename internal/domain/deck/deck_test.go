package deck

import (
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
)

var (
	darkMagician = cards.Card{ID: 46986414, Name: "Dark Magician", Type: "Normal Monster"}
	potOfGreed   = cards.Card{ID: 55144522, Name: "Pot of Greed", Type: "Spell Card"}
	stardust     = cards.Card{ID: 44508094, Name: "Stardust Dragon", Type: "Synchro Monster"}
)

func TestNew_DefaultName(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "empty", arg: "", want: DefaultName},
		{name: "blank", arg: "   ", want: DefaultName},
		{name: "named", arg: "Blue-Eyes", want: "Blue-Eyes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.arg).Name(); got != tt.want {
				t.Errorf("New(%q).Name() = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestDeck_AddCard_CapsAtThree(t *testing.T) {
	d := New("")
	for i := 0; i < 3; i++ {
		if !d.AddCard(darkMagician, Main) {
			t.Fatalf("AddCard #%d reported no change", i+1)
		}
	}
	if d.AddCard(darkMagician, Main) {
		t.Errorf("AddCard #4 reported a change")
	}
	if got := d.Quantity(darkMagician.ID, Main); got != 3 {
		t.Errorf("Quantity() = %d, want 3", got)
	}
	if got := len(d.Items()); got != 1 {
		t.Errorf("len(Items()) = %d, want 1", got)
	}
}

func TestDeck_AddCard_SectionsAreIndependent(t *testing.T) {
	d := New("")
	d.AddCard(darkMagician, Main)
	d.AddCard(darkMagician, Side)

	want := []LineItem{
		{Card: darkMagician, Quantity: 1, Section: Main},
		{Card: darkMagician, Quantity: 1, Section: Side},
	}
	if got := d.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestDeck_RemoveCard(t *testing.T) {
	d := New("")
	d.AddCard(darkMagician, Main)
	d.AddCard(darkMagician, Main)
	d.AddCard(potOfGreed, Main)

	d.RemoveCard(darkMagician.ID, Main)
	if got := d.Quantity(darkMagician.ID, Main); got != 1 {
		t.Errorf("after first remove Quantity() = %d, want 1", got)
	}

	d.RemoveCard(darkMagician.ID, Main)
	if got := d.Quantity(darkMagician.ID, Main); got != 0 {
		t.Errorf("after second remove Quantity() = %d, want 0", got)
	}
	want := []LineItem{{Card: potOfGreed, Quantity: 1, Section: Main}}
	if got := d.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}

	// unknown pairs are ignored
	d.RemoveCard(darkMagician.ID, Main)
	d.RemoveCard(potOfGreed.ID, Extra)
	if got := d.TotalCount(); got != 1 {
		t.Errorf("TotalCount() = %d, want 1", got)
	}
}

func TestDeck_QuantityStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	d := New("")
	for i := 0; i < 1000; i++ {
		if r.Intn(2) == 0 {
			d.AddCard(darkMagician, Main)
		} else {
			d.RemoveCard(darkMagician.ID, Main)
		}
		q := d.Quantity(darkMagician.ID, Main)
		if q < 0 || q > MaxCopies {
			t.Fatalf("step %d: quantity %d out of range", i, q)
		}
		if q == 0 && len(d.Items()) != 0 {
			t.Fatalf("step %d: zero quantity left a line item", i)
		}
	}
}

func TestDeck_Counts(t *testing.T) {
	d := New("")
	d.AddCard(darkMagician, Main)
	d.AddCard(darkMagician, Main)
	d.AddCard(potOfGreed, Main)
	d.AddCard(stardust, Extra)
	d.AddCard(potOfGreed, Side)

	tests := []struct {
		section Section
		want    int
	}{
		{Main, 3},
		{Extra, 1},
		{Side, 1},
	}
	for _, tt := range tests {
		if got := d.SectionCount(tt.section); got != tt.want {
			t.Errorf("SectionCount(%s) = %d, want %d", tt.section, got, tt.want)
		}
	}
	if got := d.TotalCount(); got != 5 {
		t.Errorf("TotalCount() = %d, want 5", got)
	}
	if got := len(d.Cards(Main)); got != 2 {
		t.Errorf("len(Cards(Main)) = %d, want 2", got)
	}
}

func TestDeck_Flatten(t *testing.T) {
	d := New("")
	d.AddCard(darkMagician, Main)
	d.AddCard(potOfGreed, Main)
	d.AddCard(darkMagician, Main)
	d.AddCard(stardust, Extra)

	want := []cards.Card{darkMagician, darkMagician, potOfGreed, stardust}
	if got := d.Flatten(); !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestDeck_SetItems_Normalizes(t *testing.T) {
	d := New("")
	d.SetItems([]LineItem{
		{Card: darkMagician, Quantity: 2, Section: Main},
		{Card: potOfGreed, Quantity: 5, Section: Main},
		{Card: darkMagician, Quantity: 2, Section: Main},
		{Card: stardust, Quantity: 0, Section: Extra},
	})

	want := []LineItem{
		{Card: darkMagician, Quantity: 3, Section: Main},
		{Card: potOfGreed, Quantity: 3, Section: Main},
	}
	if got := d.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestDeck_ItemsIsACopy(t *testing.T) {
	d := New("")
	d.AddCard(darkMagician, Main)

	items := d.Items()
	items[0].Quantity = 99
	if got := d.Quantity(darkMagician.ID, Main); got != 1 {
		t.Errorf("Quantity() = %d after mutating a copy, want 1", got)
	}
}

func TestDeck_Clear(t *testing.T) {
	d := New("Combo")
	d.SetID("abc")
	d.SetDescription("desc")
	d.AddCard(darkMagician, Main)
	d.Clear()

	if d.TotalCount() != 0 || d.ID() != "" || d.Name() != DefaultName || d.Description() != "" {
		t.Errorf("Clear() left state behind: id=%q name=%q desc=%q total=%d",
			d.ID(), d.Name(), d.Description(), d.TotalCount())
	}
}

func TestDeck_ConcurrentMutations(t *testing.T) {
	d := New("")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.AddCard(darkMagician, Main)
		}()
		go func() {
			defer wg.Done()
			_ = d.Flatten()
		}()
	}
	wg.Wait()

	if got := d.Quantity(darkMagician.ID, Main); got != MaxCopies {
		t.Errorf("Quantity() = %d, want %d", got, MaxCopies)
	}
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		in     string
		want   Section
		wantOK bool
	}{
		{"main", Main, true},
		{" EXTRA ", Extra, true},
		{"Side", Side, true},
		{"graveyard", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSection(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSection(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
