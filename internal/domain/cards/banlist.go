package cards

import "strings"

type BanStatus string

const (
	Banned      BanStatus = "Banned"
	Limited     BanStatus = "Limited"
	SemiLimited BanStatus = "Semi-Limited"
)

type Format string

const (
	FormatTCG Format = "TCG"
	FormatOCG Format = "OCG"
)

// ParseFormat accepts "tcg" or "ocg" in any case.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TCG":
		return FormatTCG, true
	case "OCG":
		return FormatOCG, true
	}
	return "", false
}

// BanListEntry is the restriction status of one card in both formats.
// An empty status means unrestricted.
type BanListEntry struct {
	CardID int64
	TCG    BanStatus
	OCG    BanStatus
	GOAT   BanStatus
}

func (e BanListEntry) Status(format Format) BanStatus {
	if format == FormatOCG {
		return e.OCG
	}
	return e.TCG
}

// MaxCopies is the number of copies the status allows in a deck.
func (s BanStatus) MaxCopies() int {
	switch s {
	case Banned:
		return 0
	case Limited:
		return 1
	case SemiLimited:
		return 2
	}
	return 3
}

// NormalizeBanStatus maps the card database spellings onto BanStatus.
func NormalizeBanStatus(s string) BanStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "banned", "forbidden":
		return Banned
	case "limited":
		return Limited
	case "semi-limited", "semi limited":
		return SemiLimited
	}
	return ""
}

// BanEntry converts the card's embedded ban list info.
func (c Card) BanEntry() BanListEntry {
	entry := BanListEntry{CardID: c.ID}
	if c.BanList != nil {
		entry.TCG = NormalizeBanStatus(c.BanList.TCG)
		entry.OCG = NormalizeBanStatus(c.BanList.OCG)
		entry.GOAT = NormalizeBanStatus(c.BanList.GOAT)
	}
	return entry
}
