package utils

import (
	"strings"
)

// CardFilterState is the multi-select filter panel state.
type CardFilterState struct {
	CardTypes      []string
	Attributes     []string
	SpellTrapTypes []string
	MonsterTypes   []string
	SpecialTypes   []string

	LevelMin  *int
	LevelMax  *int
	AtkMin    *int
	AtkMax    *int
	DefMin    *int
	DefMax    *int
	ScaleMin  *int
	ScaleMax  *int
	LinkValue *int
}

// ActiveCount is the number of selected tags plus set bounds.
func (s CardFilterState) ActiveCount() int {
	n := len(s.CardTypes) + len(s.Attributes) + len(s.SpellTrapTypes) + len(s.MonsterTypes) + len(s.SpecialTypes)
	for _, v := range []*int{s.LevelMin, s.LevelMax, s.AtkMin, s.AtkMax, s.DefMin, s.DefMax, s.ScaleMin, s.ScaleMax, s.LinkValue} {
		if v != nil {
			n++
		}
	}
	return n
}

// CardSearchFilters is the flat filter set sent to the card database.
type CardSearchFilters struct {
	Name      string
	Type      string
	Attribute string
	Race      string
	Level     *int
	LevelMax  *int
	AtkMin    *int
	AtkMax    *int
	DefMin    *int
	DefMax    *int
	ScaleMin  *int
	ScaleMax  *int
	LinkValue *int
	Archetype string
}

// HasCriteria reports whether anything besides the name is set.
func (f CardSearchFilters) HasCriteria() bool {
	return f.Type != "" || f.Attribute != "" || f.Race != "" || f.Archetype != "" ||
		f.Level != nil || f.LevelMax != nil || f.AtkMin != nil || f.AtkMax != nil ||
		f.DefMin != nil || f.DefMax != nil || f.ScaleMin != nil || f.ScaleMax != nil || f.LinkValue != nil
}

// TypeRule maps a set of selected tags to one card database type string.
type TypeRule struct {
	Tags []string
	Type string
}

// TypeRules is evaluated top to bottom; the first rule whose tags are all
// selected wins. Tags come from both the card type and special type
// selections.
var TypeRules = []TypeRule{
	{Tags: []string{"Spell"}, Type: "Spell Card"},
	{Tags: []string{"Trap"}, Type: "Trap Card"},
	{Tags: []string{"Link"}, Type: "Link Monster"},
	{Tags: []string{"Xyz", "Pendulum"}, Type: "XYZ Pendulum Effect Monster"},
	{Tags: []string{"Xyz"}, Type: "XYZ Monster"},
	{Tags: []string{"Synchro", "Pendulum"}, Type: "Synchro Pendulum Effect Monster"},
	{Tags: []string{"Synchro", "Tuner"}, Type: "Synchro Tuner Monster"},
	{Tags: []string{"Synchro"}, Type: "Synchro Monster"},
	{Tags: []string{"Fusion"}, Type: "Fusion Monster"},
	{Tags: []string{"Ritual", "Effect"}, Type: "Ritual Effect Monster"},
	{Tags: []string{"Ritual"}, Type: "Ritual Monster"},
	{Tags: []string{"Pendulum", "Normal"}, Type: "Pendulum Normal Monster"},
	{Tags: []string{"Pendulum", "Tuner"}, Type: "Pendulum Tuner Effect Monster"},
	{Tags: []string{"Pendulum", "Flip"}, Type: "Pendulum Flip Effect Monster"},
	{Tags: []string{"Pendulum"}, Type: "Pendulum Effect Monster"},
	{Tags: []string{"Normal"}, Type: "Normal Monster"},
	{Tags: []string{"Tuner"}, Type: "Tuner Monster"},
	{Tags: []string{"Flip"}, Type: "Flip Effect Monster"},
	{Tags: []string{"Spirit"}, Type: "Spirit Monster"},
	{Tags: []string{"Union"}, Type: "Union Effect Monster"},
	{Tags: []string{"Effect"}, Type: "Effect Monster"},
}

// ResolveType returns the type string for the selected tags, or "" when
// no rule applies.
func ResolveType(tags ...[]string) string {
	selected := make(map[string]bool)
	for _, group := range tags {
		for _, tag := range group {
			selected[strings.ToLower(strings.TrimSpace(tag))] = true
		}
	}

	for _, rule := range TypeRules {
		matched := true
		for _, tag := range rule.Tags {
			if !selected[strings.ToLower(tag)] {
				matched = false
				break
			}
		}
		if matched {
			return rule.Type
		}
	}
	return ""
}

// FromFilterState converts panel state into database filters. Single
// selections of spell/trap type, attribute and monster type become exact
// filters; multiple selections are left unfiltered. A single monster type
// overrides a spell/trap race.
func FromFilterState(state CardFilterState, name string) CardSearchFilters {
	filters := CardSearchFilters{
		Name: strings.TrimSpace(name),
		Type: ResolveType(state.CardTypes, state.SpecialTypes),
	}

	if len(state.SpellTrapTypes) == 1 {
		spellTrapType := state.SpellTrapTypes[0]
		filters.Race = strings.Replace(strings.Replace(spellTrapType, " Spell", "", 1), " Trap", "", 1)
		if filters.Type == "" {
			switch {
			case strings.Contains(spellTrapType, "Spell"):
				filters.Type = "Spell Card"
			case strings.Contains(spellTrapType, "Trap"):
				filters.Type = "Trap Card"
			}
		}
	}

	if len(state.Attributes) == 1 {
		filters.Attribute = state.Attributes[0]
	}

	if len(state.MonsterTypes) == 1 {
		filters.Race = state.MonsterTypes[0]
	}

	filters.Level = state.LevelMin
	filters.LevelMax = state.LevelMax
	filters.ScaleMin = state.ScaleMin
	filters.ScaleMax = state.ScaleMax
	filters.LinkValue = state.LinkValue
	filters.AtkMin = state.AtkMin
	filters.AtkMax = state.AtkMax
	filters.DefMin = state.DefMin
	filters.DefMax = state.DefMax

	return filters
}
