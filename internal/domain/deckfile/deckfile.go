// Package deckfile reads deck lists in the plain .ydk line format and in
// the JSON shapes produced by common deck builders. Parsing never fails:
// malformed input yields empty or partial sections.
package deckfile

import (
	"path/filepath"
	"strings"
)

// Parsed holds card ids per section in file order. Repeated ids mean
// repeated copies.
type Parsed struct {
	Main  []int64 `json:"main"`
	Extra []int64 `json:"extra"`
	Side  []int64 `json:"side"`
}

func empty() Parsed {
	return Parsed{Main: []int64{}, Extra: []int64{}, Side: []int64{}}
}

// Len is the number of ids across all sections.
func (p Parsed) Len() int {
	return len(p.Main) + len(p.Extra) + len(p.Side)
}

// All returns every id, main first, then extra, then side.
func (p Parsed) All() []int64 {
	out := make([]int64, 0, p.Len())
	out = append(out, p.Main...)
	out = append(out, p.Extra...)
	return append(out, p.Side...)
}

// Parse picks the dialect from the file extension.
func Parse(filename, content string) Parsed {
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return ParseJSON(content)
	}
	return ParseYDK(content)
}
