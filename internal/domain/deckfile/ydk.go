package deckfile

import (
	"strconv"
	"strings"
)

const (
	markerMain  = "#main"
	markerExtra = "#extra"
	markerSide  = "!side"
)

// ParseYDK scans the line dialect. Ids before the first section marker,
// comments, blank lines and values that are not positive integers are
// dropped.
func ParseYDK(content string) Parsed {
	result := empty()

	var current *[]int64
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch line {
		case markerMain:
			current = &result.Main
			continue
		case markerExtra:
			current = &result.Extra
			continue
		case markerSide:
			current = &result.Side
			continue
		}

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		id, ok := leadingInt(line)
		if !ok || id <= 0 || current == nil {
			continue
		}
		*current = append(*current, id)
	}

	return result
}

// leadingInt parses an optional sign followed by the leading run of
// digits, ignoring anything after it ("89631139 -- Blue-Eyes" is 89631139).
func leadingInt(s string) (int64, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
