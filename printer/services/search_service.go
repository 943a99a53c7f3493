package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/interfaces"
	"github.com/ygoproxy/ygoproxy/printer/utils"
	"github.com/ygoproxy/ygoproxy/printer/ygoapi"
	"golang.org/x/sync/errgroup"
)

// SearchResult is one page of search results.
type SearchResult struct {
	Cards      []cards.Card
	TotalCount int
	HasMore    bool
	Page       int
	PageSize   int
}

func emptyResult(page, pageSize int) *SearchResult {
	return &SearchResult{Cards: []cards.Card{}, Page: page, PageSize: pageSize}
}

// SearchService queries the card database and merges in custom cards.
// It never returns an error: failures are logged and yield an empty page.
type SearchService struct {
	db     interfaces.CardDatabaseInterface
	custom *CustomCardService
	logger *slog.Logger

	archetypesMu sync.Mutex
	archetypes   []string
}

// NewSearchService creates a new search service. custom may be nil when no
// custom card store is configured.
func NewSearchService(db interfaces.CardDatabaseInterface, custom *CustomCardService) *SearchService {
	return &SearchService{
		db:     db,
		custom: custom,
		logger: slog.With(slog.String("service", "search")),
	}
}

// BuildQuery translates filters into card database parameters. Only
// minimum stat bounds are sent, except for a lone attack or level maximum
// which the database accepts as lte<N>. A level range goes out as its
// minimum; a pendulum scale only when both bounds agree. The remaining
// maximums are applied by filterMaxBounds.
func BuildQuery(filters utils.CardSearchFilters, page, pageSize int) url.Values {
	params := url.Values{}
	if name := strings.TrimSpace(filters.Name); name != "" {
		params.Set("fname", name)
	}
	if filters.Type != "" {
		params.Set("type", filters.Type)
	}
	if filters.Attribute != "" {
		params.Set("attribute", filters.Attribute)
	}
	if filters.Race != "" {
		params.Set("race", filters.Race)
	}
	switch {
	case filters.Level != nil && filters.LevelMax != nil && *filters.Level != *filters.LevelMax:
		params.Set("level", "gte"+strconv.Itoa(*filters.Level))
	case filters.Level != nil:
		params.Set("level", strconv.Itoa(*filters.Level))
	case filters.LevelMax != nil:
		params.Set("level", "lte"+strconv.Itoa(*filters.LevelMax))
	}
	if filters.ScaleMin != nil && filters.ScaleMax != nil && *filters.ScaleMin == *filters.ScaleMax {
		params.Set("scale", strconv.Itoa(*filters.ScaleMin))
	}
	if filters.LinkValue != nil {
		params.Set("linkval", strconv.Itoa(*filters.LinkValue))
	}
	if filters.Archetype != "" {
		params.Set("archetype", filters.Archetype)
	}

	switch {
	case filters.AtkMin != nil:
		params.Set("atk", "gte"+strconv.Itoa(*filters.AtkMin))
	case filters.AtkMax != nil:
		params.Set("atk", "lte"+strconv.Itoa(*filters.AtkMax))
	}
	if filters.DefMin != nil {
		params.Set("def", "gte"+strconv.Itoa(*filters.DefMin))
	}

	params.Set("num", strconv.Itoa(pageSize))
	params.Set("offset", strconv.Itoa((page-1)*pageSize))
	return params
}

// Search runs a card database search. A name keyword of at least two
// characters is matched against names and descriptions concurrently, with
// name matches taking precedence.
func (s *SearchService) Search(ctx context.Context, filters utils.CardSearchFilters, page, pageSize int) *SearchResult {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	keyword := strings.TrimSpace(filters.Name)

	if utf8.RuneCountInString(keyword) < config.MinKeywordLength {
		return s.single(ctx, filters, page, pageSize)
	}

	params := BuildQuery(filters, page, pageSize)
	params.Del("fname")

	byName, byDesc, err := s.dualSearch(ctx, params, keyword, pageSize)
	if err != nil {
		if ctx.Err() != nil {
			return emptyResult(page, pageSize)
		}
		s.logger.Warn("Dual search failed, falling back to name search",
			slog.String("keyword", keyword),
			slog.Any("error", err))
		return s.single(ctx, filters, page, pageSize)
	}

	nameCards := filterMaxBounds(byName.Cards, filters)
	total := pageTotal(byName)
	hasMore := remaining(byName, offset)

	var descCards []cards.Card
	if byDesc != nil {
		descCards = filterMaxBounds(byDesc.Cards, filters)
		// cards matching both queries are counted once for the ones seen
		total += pageTotal(byDesc) - overlap(byName.Cards, byDesc.Cards)
		hasMore = hasMore || remaining(byDesc, offset)
	} else {
		// the description query was cut short, its remainder is unknown
		hasMore = true
	}

	return &SearchResult{
		Cards:      mergeCards(pageSize, nameCards, descCards),
		TotalCount: total,
		HasMore:    hasMore,
		Page:       page,
		PageSize:   pageSize,
	}
}

// dualSearch races the name and description queries. When the name query
// alone fills the page the description query is cancelled and byDesc is nil.
func (s *SearchService) dualSearch(ctx context.Context, params url.Values, keyword string, pageSize int) (byName, byDesc *ygoapi.Page, err error) {
	g, gctx := errgroup.WithContext(ctx)
	descCtx, cancelDesc := context.WithCancel(gctx)
	defer cancelDesc()

	var nameFilled atomic.Bool

	g.Go(func() error {
		page, err := s.db.SearchCards(gctx, withParam(params, "fname", keyword))
		if err != nil {
			return err
		}
		byName = page
		if len(page.Cards) >= pageSize {
			nameFilled.Store(true)
			cancelDesc()
		}
		return nil
	})

	g.Go(func() error {
		page, err := s.db.SearchCards(descCtx, withParam(params, "desc", keyword))
		if err != nil {
			if nameFilled.Load() && errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		byDesc = page
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if nameFilled.Load() {
		byDesc = nil
	}
	return byName, byDesc, nil
}

func (s *SearchService) single(ctx context.Context, filters utils.CardSearchFilters, page, pageSize int) *SearchResult {
	offset := (page - 1) * pageSize

	result, err := s.db.SearchCards(ctx, BuildQuery(filters, page, pageSize))
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Card search failed",
				slog.String("name", filters.Name),
				slog.Any("error", err))
		}
		return emptyResult(page, pageSize)
	}

	found := mergeCards(pageSize, filterMaxBounds(result.Cards, filters))
	total := pageTotal(result)
	return &SearchResult{
		Cards:      found,
		TotalCount: total,
		HasMore:    offset+len(found) < total,
		Page:       page,
		PageSize:   pageSize,
	}
}

// SearchAll merges custom cards ahead of database results. Custom cards
// are only listed on the first page.
func (s *SearchService) SearchAll(ctx context.Context, filters utils.CardSearchFilters, page, pageSize int) *SearchResult {
	page, pageSize = normalizePage(page, pageSize)
	if s.custom == nil || page > 1 {
		return s.Search(ctx, filters, page, pageSize)
	}

	var (
		dbResult *SearchResult
		custom   []cards.Card
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dbResult = s.Search(gctx, filters, page, pageSize)
		return nil
	})
	g.Go(func() error {
		custom = s.custom.Search(gctx, filters.Name)
		return nil
	})
	_ = g.Wait()

	merged := mergeCards(len(custom)+len(dbResult.Cards), custom, dbResult.Cards)
	return &SearchResult{
		Cards:      merged,
		TotalCount: dbResult.TotalCount + len(custom),
		HasMore:    dbResult.HasMore,
		Page:       page,
		PageSize:   pageSize,
	}
}

// SuggestArchetypes fuzzy-matches partial against the archetype list. The
// list is fetched once and kept for the service's lifetime.
func (s *SearchService) SuggestArchetypes(ctx context.Context, partial string, limit int) []string {
	if limit <= 0 {
		limit = config.ArchetypeSuggestMax
	}

	names, err := s.loadArchetypes(ctx)
	if err != nil {
		s.logger.Error("Failed to load archetypes", slog.Any("error", err))
		return []string{}
	}

	partial = strings.TrimSpace(partial)
	if partial == "" {
		return append([]string{}, names[:min(limit, len(names))]...)
	}

	matches := fuzzy.Find(partial, names)
	suggestions := make([]string, 0, min(limit, len(matches)))
	for _, match := range matches {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}

func (s *SearchService) loadArchetypes(ctx context.Context) ([]string, error) {
	s.archetypesMu.Lock()
	defer s.archetypesMu.Unlock()

	if s.archetypes != nil {
		return s.archetypes, nil
	}
	names, err := s.db.GetArchetypes(ctx)
	if err != nil {
		return nil, err
	}
	s.archetypes = names
	return names, nil
}

// mergeCards concatenates the lists, keeps the first occurrence of every
// card id and truncates to limit.
func mergeCards(limit int, lists ...[]cards.Card) []cards.Card {
	merged := make([]cards.Card, 0, limit)
	seen := make(map[int64]bool)
	for _, list := range lists {
		for _, card := range list {
			if len(merged) == limit {
				return merged
			}
			if seen[card.ID] {
				continue
			}
			seen[card.ID] = true
			merged = append(merged, card)
		}
	}
	return merged
}

// filterMaxBounds applies the maximum stat bounds the query could not
// carry. Cards without the stat never satisfy a bound.
func filterMaxBounds(list []cards.Card, filters utils.CardSearchFilters) []cards.Card {
	atkMax := filters.AtkMax
	if filters.AtkMin == nil {
		atkMax = nil
	}
	if atkMax == nil && filters.DefMax == nil && filters.LevelMax == nil &&
		filters.ScaleMin == nil && filters.ScaleMax == nil {
		return list
	}

	kept := make([]cards.Card, 0, len(list))
	for _, card := range list {
		if atkMax != nil && (card.Atk == nil || *card.Atk > *atkMax) {
			continue
		}
		if filters.DefMax != nil && (card.Def == nil || *card.Def > *filters.DefMax) {
			continue
		}
		if filters.LevelMax != nil && (card.Level == nil || *card.Level > *filters.LevelMax) {
			continue
		}
		if !withinScale(card, filters.ScaleMin, filters.ScaleMax) {
			continue
		}
		kept = append(kept, card)
	}
	return kept
}

func withinScale(card cards.Card, lo, hi *int) bool {
	if lo == nil && hi == nil {
		return true
	}
	if card.Scale == nil {
		return false
	}
	return (lo == nil || *card.Scale >= *lo) && (hi == nil || *card.Scale <= *hi)
}

// remaining reports whether the query behind page has rows past this one.
func remaining(page *ygoapi.Page, offset int) bool {
	return offset+len(page.Cards) < pageTotal(page)
}

// overlap counts the cards of b that also appear in a.
func overlap(a, b []cards.Card) int {
	ids := make(map[int64]bool, len(a))
	for _, card := range a {
		ids[card.ID] = true
	}
	n := 0
	for _, card := range b {
		if ids[card.ID] {
			n++
		}
	}
	return n
}

func pageTotal(page *ygoapi.Page) int {
	if page.TotalRows >= 0 {
		return page.TotalRows
	}
	return len(page.Cards)
}

func withParam(params url.Values, key, value string) url.Values {
	cloned := make(url.Values, len(params)+1)
	for k, v := range params {
		cloned[k] = append([]string(nil), v...)
	}
	cloned.Set(key, value)
	return cloned
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	return page, pageSize
}
