package deckfile

import (
	"encoding/json"
	"math"
	"strings"
)

// ParseJSON accepts a bare array of ids, an object with main/extra/side
// arrays, or an object with a cards array of {"id": n} entries. Anything
// else yields empty sections.
func ParseJSON(content string) Parsed {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil || dec.More() {
		return empty()
	}

	switch v := data.(type) {
	case []any:
		result := empty()
		result.Main = numbers(v)
		return result
	case map[string]any:
		return parseObject(v)
	}
	return empty()
}

func parseObject(obj map[string]any) Parsed {
	result := empty()

	if present(obj["main"]) || present(obj["extra"]) || present(obj["side"]) {
		result.Main = numbers(obj["main"])
		result.Extra = numbers(obj["extra"])
		result.Side = numbers(obj["side"])
		return result
	}

	list, ok := obj["cards"].([]any)
	if !ok {
		return result
	}
	ids := make([]any, 0, len(list))
	for _, entry := range list {
		if card, ok := entry.(map[string]any); ok {
			ids = append(ids, card["id"])
		}
	}
	result.Main = numbers(ids)
	return result
}

// present treats null, false, 0 and "" as absent, the way a loose
// truthiness check on the key would.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case string:
		return x != ""
	}
	return true
}

// numbers keeps the whole-number entries of an array value that fit in
// an int64.
func numbers(v any) []int64 {
	out := []int64{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		n, ok := item.(json.Number)
		if !ok {
			continue
		}
		if id, ok := wholeNumber(n); ok {
			out = append(out, id)
		}
	}
	return out
}

// wholeNumber reads n exactly when it is an integer literal, and otherwise
// accepts forms like 1.0 or 1e3 that are finite and integral.
func wholeNumber(n json.Number) (int64, bool) {
	if id, err := n.Int64(); err == nil {
		return id, true
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// -2^63 is representable, 2^63 is not
	if f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
