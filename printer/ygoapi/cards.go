package ygoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/config"
)

const (
	cardInfoEndpoint   = "/cardinfo.php"
	archetypesEndpoint = "/archetypes.php"
)

type cardInfoResponse struct {
	Data []cards.Card `json:"data"`
	Meta *struct {
		TotalRows int `json:"total_rows"`
	} `json:"meta"`
}

// Page is one page of card search results. TotalRows is -1 when the
// response carried no paging metadata.
type Page struct {
	Cards     []cards.Card
	TotalRows int
}

// SearchCards queries cardinfo.php. A 400 means the filters matched
// nothing and yields an empty page.
func (c *Client) SearchCards(ctx context.Context, params url.Values) (*Page, error) {
	payload, err := c.Get(ctx, cardInfoEndpoint+"?"+params.Encode())
	if err != nil {
		if IsStatus(err, http.StatusBadRequest) {
			return &Page{Cards: []cards.Card{}, TotalRows: 0}, nil
		}
		return nil, err
	}

	var resp cardInfoResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode card search: %w", err)
	}

	page := &Page{Cards: resp.Data, TotalRows: -1}
	if page.Cards == nil {
		page.Cards = []cards.Card{}
	}
	if resp.Meta != nil {
		page.TotalRows = resp.Meta.TotalRows
	}
	return page, nil
}

// GetCardByID returns nil without error when the id is unknown.
func (c *Client) GetCardByID(ctx context.Context, id int64) (*cards.Card, error) {
	found, err := c.fetchIDs(ctx, []int64{id})
	if err != nil {
		if IsStatus(err, http.StatusBadRequest) {
			return nil, nil
		}
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// GetCardsByIDs resolves ids in batches. Duplicates are requested once.
// Ids the database does not know, and ids in batches that failed for any
// other reason, are returned in notFound in first-seen order.
func (c *Client) GetCardsByIDs(ctx context.Context, ids []int64) (found []cards.Card, notFound []int64) {
	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	resolved := make(map[int64]bool, len(unique))
	for start := 0; start < len(unique); start += config.MaxIDsPerRequest {
		end := min(start+config.MaxIDsPerRequest, len(unique))
		for _, card := range c.resolveBatch(ctx, unique[start:end]) {
			if !resolved[card.ID] {
				resolved[card.ID] = true
				found = append(found, card)
			}
		}
	}

	for _, id := range unique {
		if !resolved[id] {
			notFound = append(notFound, id)
		}
	}
	return found, notFound
}

// resolveBatch fetches a batch. The database rejects a whole batch with 400
// when one id is unknown, so such batches are bisected to isolate it.
func (c *Client) resolveBatch(ctx context.Context, batch []int64) []cards.Card {
	found, err := c.fetchIDs(ctx, batch)
	if err == nil {
		return found
	}
	if IsStatus(err, http.StatusBadRequest) && len(batch) > 1 && ctx.Err() == nil {
		mid := len(batch) / 2
		return append(c.resolveBatch(ctx, batch[:mid]), c.resolveBatch(ctx, batch[mid:])...)
	}
	if !IsStatus(err, http.StatusBadRequest) {
		c.logger.Warn("Card batch lookup failed",
			slog.Int("batch_size", len(batch)),
			slog.Any("error", err))
	}
	return nil
}

func (c *Client) fetchIDs(ctx context.Context, ids []int64) ([]cards.Card, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	params := url.Values{}
	params.Set("id", strings.Join(parts, ","))

	payload, err := c.Get(ctx, cardInfoEndpoint+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp cardInfoResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return resp.Data, nil
}

// GetArchetypes lists every archetype name.
func (c *Client) GetArchetypes(ctx context.Context) ([]string, error) {
	payload, err := c.Get(ctx, archetypesEndpoint)
	if err != nil {
		return nil, err
	}

	var resp []struct {
		ArchetypeName string `json:"archetype_name"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode archetypes: %w", err)
	}

	names := make([]string, 0, len(resp))
	for _, a := range resp {
		if a.ArchetypeName != "" {
			names = append(names, a.ArchetypeName)
		}
	}
	return names, nil
}

// GetBanList returns the restricted cards of one format.
func (c *Client) GetBanList(ctx context.Context, format cards.Format) ([]cards.BanListEntry, error) {
	params := url.Values{}
	params.Set("banlist", strings.ToLower(string(format)))

	page, err := c.SearchCards(ctx, params)
	if err != nil {
		return nil, err
	}

	entries := make([]cards.BanListEntry, 0, len(page.Cards))
	for _, card := range page.Cards {
		entries = append(entries, card.BanEntry())
	}
	return entries, nil
}
