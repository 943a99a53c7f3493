package cards

import "strings"

const (
	FrameSpell          = "spell"
	FrameTrap           = "trap"
	FrameFusion         = "fusion"
	FrameSynchro        = "synchro"
	FrameXyz            = "xyz"
	FrameLink           = "link"
	FrameRitual         = "ritual"
	FrameEffectPendulum = "effect_pendulum"
	FrameNormal         = "normal"
	FrameEffect         = "effect"
)

var frameRules = []struct {
	needle string
	frame  string
}{
	{"spell", FrameSpell},
	{"trap", FrameTrap},
	{"fusion", FrameFusion},
	{"synchro", FrameSynchro},
	{"xyz", FrameXyz},
	{"link", FrameLink},
	{"ritual", FrameRitual},
	{"pendulum", FrameEffectPendulum},
	{"normal", FrameNormal},
}

// FrameType derives the card frame from a free-form type string. First
// matching rule wins; anything unrecognised is an effect monster.
func FrameType(cardType string) string {
	lower := strings.ToLower(cardType)
	for _, rule := range frameRules {
		if strings.Contains(lower, rule.needle) {
			return rule.frame
		}
	}
	return FrameEffect
}
