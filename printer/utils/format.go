package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/config"
)

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// FormatStats renders the numeric line of a monster, e.g.
// "Lv 8 | ATK 3000 / DEF 2500" or "LINK-3 | ATK 2300". Non-monsters
// return "".
func FormatStats(card cards.Card) string {
	var parts []string
	switch {
	case card.LinkVal != nil:
		parts = append(parts, fmt.Sprintf("LINK-%d", *card.LinkVal))
	case card.Level != nil && strings.Contains(strings.ToLower(card.Type), "xyz"):
		parts = append(parts, fmt.Sprintf("Rank %d", *card.Level))
	case card.Level != nil:
		parts = append(parts, fmt.Sprintf("Lv %d", *card.Level))
	}
	if card.Scale != nil {
		parts = append(parts, fmt.Sprintf("Scale %d", *card.Scale))
	}

	var stats []string
	if card.Atk != nil {
		stats = append(stats, "ATK "+statValue(*card.Atk))
	}
	if card.Def != nil && card.LinkVal == nil {
		stats = append(stats, "DEF "+statValue(*card.Def))
	}
	if len(stats) > 0 {
		parts = append(parts, strings.Join(stats, " / "))
	}
	return strings.Join(parts, " | ")
}

// statValue prints the database's -1 as "?".
func statValue(v int) string {
	if v < 0 {
		return "?"
	}
	return strconv.Itoa(v)
}

// FormatCardLine is the one-line listing used by search and deck output.
func FormatCardLine(card cards.Card) string {
	id := strconv.FormatInt(card.ID, 10)
	if card.IsCustom() {
		id = "custom"
	}

	line := fmt.Sprintf("%-10s %s [%s]", id, card.Name, card.Type)
	if stats := FormatStats(card); stats != "" {
		line += " " + stats
	}
	return line
}

// FormatNotFound previews the first few unresolved ids:
// "12, 34, 56, 78, 90 and 3 more".
func FormatNotFound(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}

	n := min(len(ids), config.NotFoundPreview)
	shown := make([]string, 0, n)
	for _, id := range ids[:n] {
		shown = append(shown, strconv.FormatInt(id, 10))
	}

	out := strings.Join(shown, ", ")
	if rest := len(ids) - n; rest > 0 {
		out += fmt.Sprintf(" and %d more", rest)
	}
	return out
}

// FormatBanStatus renders a status with its copy limit, "" when
// unrestricted.
func FormatBanStatus(status cards.BanStatus) string {
	if status == "" {
		return ""
	}
	return fmt.Sprintf("%s (max %d)", status, status.MaxCopies())
}
