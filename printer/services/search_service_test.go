package services

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer/database/models"
	"github.com/ygoproxy/ygoproxy/printer/interfaces/mock"
	"github.com/ygoproxy/ygoproxy/printer/utils"
	"github.com/ygoproxy/ygoproxy/printer/ygoapi"
	"go.uber.org/mock/gomock"
)

func card(id int64, name string) cards.Card {
	return cards.Card{ID: id, Name: name, Type: "Effect Monster"}
}

func ids(list []cards.Card) []int64 {
	out := make([]int64, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

// hasParam matches url.Values carrying key=value.
func hasParam(key, value string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		params, ok := x.(url.Values)
		return ok && params.Get(key) == value
	})
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name    string
		filters utils.CardSearchFilters
		page    int
		want    url.Values
	}{
		{
			name: "paging only",
			page: 1,
			want: url.Values{"num": {"50"}, "offset": {"0"}},
		},
		{
			name: "every filter",
			filters: utils.CardSearchFilters{
				Name: " dragon ", Type: "Effect Monster", Attribute: "DARK", Race: "Dragon",
				Level: cards.Int(8), Archetype: "Red-Eyes", AtkMin: cards.Int(2000), AtkMax: cards.Int(3000),
				DefMin: cards.Int(1000), DefMax: cards.Int(2500),
			},
			page: 3,
			want: url.Values{
				"fname": {"dragon"}, "type": {"Effect Monster"}, "attribute": {"DARK"}, "race": {"Dragon"},
				"level": {"8"}, "archetype": {"Red-Eyes"}, "atk": {"gte2000"}, "def": {"gte1000"},
				"num": {"50"}, "offset": {"100"},
			},
		},
		{
			name:    "lone attack maximum is sent",
			filters: utils.CardSearchFilters{AtkMax: cards.Int(1500)},
			page:    1,
			want:    url.Values{"atk": {"lte1500"}, "num": {"50"}, "offset": {"0"}},
		},
		{
			name:    "level range sends its minimum",
			filters: utils.CardSearchFilters{Level: cards.Int(4), LevelMax: cards.Int(8)},
			page:    1,
			want:    url.Values{"level": {"gte4"}, "num": {"50"}, "offset": {"0"}},
		},
		{
			name:    "equal level bounds are exact",
			filters: utils.CardSearchFilters{Level: cards.Int(4), LevelMax: cards.Int(4)},
			page:    1,
			want:    url.Values{"level": {"4"}, "num": {"50"}, "offset": {"0"}},
		},
		{
			name:    "lone level maximum is sent",
			filters: utils.CardSearchFilters{LevelMax: cards.Int(4)},
			page:    1,
			want:    url.Values{"level": {"lte4"}, "num": {"50"}, "offset": {"0"}},
		},
		{
			name:    "scale and link value",
			filters: utils.CardSearchFilters{ScaleMin: cards.Int(8), ScaleMax: cards.Int(8), LinkValue: cards.Int(3)},
			page:    1,
			want:    url.Values{"scale": {"8"}, "linkval": {"3"}, "num": {"50"}, "offset": {"0"}},
		},
		{
			name:    "scale range stays local",
			filters: utils.CardSearchFilters{ScaleMin: cards.Int(1), ScaleMax: cards.Int(4)},
			page:    1,
			want:    url.Values{"num": {"50"}, "offset": {"0"}},
		},
		{
			name:    "defense maximum is never sent",
			filters: utils.CardSearchFilters{DefMax: cards.Int(1500)},
			page:    1,
			want:    url.Values{"num": {"50"}, "offset": {"0"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.filters, tt.page, 50); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearch_MergesNameAndDescriptionResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	a, b, c := card(1, "A"), card(2, "B"), card(3, "C")
	db.EXPECT().SearchCards(gomock.Any(), hasParam("fname", "magician")).
		Return(&ygoapi.Page{Cards: []cards.Card{a, b}, TotalRows: 2}, nil)
	db.EXPECT().SearchCards(gomock.Any(), hasParam("desc", "magician")).
		Return(&ygoapi.Page{Cards: []cards.Card{b, c}, TotalRows: 2}, nil)

	result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "magician"}, 1, 10)

	assert.Equal(t, []int64{1, 2, 3}, ids(result.Cards))
	assert.Equal(t, 3, result.TotalCount, "B matches both queries and is counted once")
	assert.False(t, result.HasMore)
}

func TestSearch_HasMoreFollowsEachQuery(t *testing.T) {
	a, b, c, d := card(1, "A"), card(2, "B"), card(3, "C"), card(4, "D")
	tests := []struct {
		name      string
		byName    *ygoapi.Page
		byDesc    *ygoapi.Page
		pageSize  int
		wantIDs   []int64
		wantTotal int
		wantMore  bool
	}{
		{
			name:      "overlap fits on one page",
			byName:    &ygoapi.Page{Cards: []cards.Card{a, b}, TotalRows: 2},
			byDesc:    &ygoapi.Page{Cards: []cards.Card{b, c}, TotalRows: 2},
			pageSize:  3,
			wantIDs:   []int64{1, 2, 3},
			wantTotal: 3,
			wantMore:  false,
		},
		{
			name:      "description query has further rows",
			byName:    &ygoapi.Page{Cards: []cards.Card{a}, TotalRows: 1},
			byDesc:    &ygoapi.Page{Cards: []cards.Card{c, d}, TotalRows: 5},
			pageSize:  3,
			wantIDs:   []int64{1, 3, 4},
			wantTotal: 6,
			wantMore:  true,
		},
		{
			name:      "identical results",
			byName:    &ygoapi.Page{Cards: []cards.Card{a, b}, TotalRows: 2},
			byDesc:    &ygoapi.Page{Cards: []cards.Card{a, b}, TotalRows: 2},
			pageSize:  3,
			wantIDs:   []int64{1, 2},
			wantTotal: 2,
			wantMore:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := mock.NewMockCardDatabaseInterface(ctrl)
			db.EXPECT().SearchCards(gomock.Any(), hasParam("fname", "sky")).Return(tt.byName, nil)
			db.EXPECT().SearchCards(gomock.Any(), hasParam("desc", "sky")).Return(tt.byDesc, nil)

			result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "sky"}, 1, tt.pageSize)

			assert.Equal(t, tt.wantIDs, ids(result.Cards))
			assert.Equal(t, tt.wantTotal, result.TotalCount)
			assert.Equal(t, tt.wantMore, result.HasMore)
		})
	}
}

func TestSearch_TruncatesToPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), hasParam("fname", "hero")).
		Return(&ygoapi.Page{Cards: []cards.Card{card(1, "A"), card(2, "B")}, TotalRows: 40}, nil)
	db.EXPECT().SearchCards(gomock.Any(), hasParam("desc", "hero")).
		Return(&ygoapi.Page{Cards: []cards.Card{card(3, "C"), card(4, "D")}, TotalRows: 10}, nil)

	result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "hero"}, 1, 3)

	assert.Equal(t, []int64{1, 2, 3}, ids(result.Cards))
	assert.Equal(t, 50, result.TotalCount)
	assert.True(t, result.HasMore)
}

func TestSearch_FullNamePageCancelsDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), hasParam("fname", "dark")).
		Return(&ygoapi.Page{Cards: []cards.Card{card(1, "A"), card(2, "B")}, TotalRows: 30}, nil)
	db.EXPECT().SearchCards(gomock.Any(), hasParam("desc", "dark")).
		DoAndReturn(func(ctx context.Context, _ url.Values) (*ygoapi.Page, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "dark"}, 2, 2)

	assert.Equal(t, []int64{1, 2}, ids(result.Cards))
	assert.Equal(t, 30, result.TotalCount)
	assert.Equal(t, 2, result.Page)
	assert.True(t, result.HasMore)
}

func TestSearch_FallsBackToNameOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), hasParam("desc", "blue")).
		Return(nil, errors.New("connection reset"))
	// The name query runs twice: once in the race and once as the fallback.
	db.EXPECT().SearchCards(gomock.Any(), hasParam("fname", "blue")).
		Return(&ygoapi.Page{Cards: []cards.Card{card(7, "Blue")}, TotalRows: -1}, nil).
		Times(2)

	result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "blue"}, 1, 10)

	assert.Equal(t, []int64{7}, ids(result.Cards))
	assert.Equal(t, 1, result.TotalCount)
	assert.False(t, result.HasMore)
}

func TestSearch_FailureYieldsEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("retries exhausted")).
		AnyTimes()

	result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "blue"}, 1, 10)

	require.NotNil(t, result)
	assert.Empty(t, result.Cards)
	assert.Equal(t, 0, result.TotalCount)
	assert.False(t, result.HasMore)
}

func TestSearch_ShortKeywordRunsSingleQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), gomock.Cond(func(x any) bool {
		params := x.(url.Values)
		return params.Get("fname") == "a" && params.Get("desc") == "" && params.Get("type") == "Spell Card"
	})).Return(&ygoapi.Page{Cards: []cards.Card{card(1, "A")}, TotalRows: 120}, nil)

	result := NewSearchService(db, nil).Search(context.Background(), utils.CardSearchFilters{Name: "a", Type: "Spell Card"}, 1, 50)

	assert.Equal(t, 120, result.TotalCount)
	assert.True(t, result.HasMore)
}

func TestSearch_AppliesMaximumBoundsLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	weak := cards.Card{ID: 1, Atk: cards.Int(1200), Def: cards.Int(800)}
	strong := cards.Card{ID: 2, Atk: cards.Int(2800), Def: cards.Int(800)}
	tough := cards.Card{ID: 3, Atk: cards.Int(1500), Def: cards.Int(2500)}
	spell := cards.Card{ID: 4, Type: "Spell Card"}

	db.EXPECT().SearchCards(gomock.Any(), hasParam("atk", "gte1000")).
		Return(&ygoapi.Page{Cards: []cards.Card{weak, strong, tough, spell}, TotalRows: 4}, nil)

	filters := utils.CardSearchFilters{AtkMin: cards.Int(1000), AtkMax: cards.Int(2000), DefMax: cards.Int(2000)}
	result := NewSearchService(db, nil).Search(context.Background(), filters, 1, 50)

	assert.Equal(t, []int64{1}, ids(result.Cards))
}

func TestSearch_AppliesLevelAndScaleBoundsLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	low := cards.Card{ID: 1, Level: cards.Int(3), Scale: cards.Int(2)}
	high := cards.Card{ID: 2, Level: cards.Int(7), Scale: cards.Int(2)}
	wide := cards.Card{ID: 3, Level: cards.Int(4), Scale: cards.Int(8)}
	plain := cards.Card{ID: 4, Level: cards.Int(4)}

	db.EXPECT().SearchCards(gomock.Any(), hasParam("level", "gte3")).
		Return(&ygoapi.Page{Cards: []cards.Card{low, high, wide, plain}, TotalRows: 4}, nil)

	filters := utils.CardSearchFilters{
		Level: cards.Int(3), LevelMax: cards.Int(6),
		ScaleMin: cards.Int(1), ScaleMax: cards.Int(4),
	}
	result := NewSearchService(db, nil).Search(context.Background(), filters, 1, 50)

	assert.Equal(t, []int64{1}, ids(result.Cards))
}

func TestSearchAll_CustomCardsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)
	repo := mock.NewMockCustomCardRepositoryInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), gomock.Any()).
		Return(&ygoapi.Page{Cards: []cards.Card{card(10, "Kuriboh")}, TotalRows: 1}, nil)
	repo.EXPECT().Search(gomock.Any(), "", 50).
		Return([]*models.CustomCard{{ID: "row-1", Name: "My Card", Type: "Normal Monster"}}, nil)

	custom := NewCustomCardService(repo, nil, cards.NewIDAllocator())
	result := NewSearchService(db, custom).SearchAll(context.Background(), utils.CardSearchFilters{Type: "Normal Monster"}, 1, 50)

	require.Len(t, result.Cards, 2)
	assert.Equal(t, int64(-1), result.Cards[0].ID)
	assert.Equal(t, "row-1", result.Cards[0].CustomID)
	assert.Equal(t, int64(10), result.Cards[1].ID)
	assert.Equal(t, 2, result.TotalCount)
}

func TestSearchAll_LaterPagesSkipCustomCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)
	repo := mock.NewMockCustomCardRepositoryInterface(ctrl)

	db.EXPECT().SearchCards(gomock.Any(), hasParam("offset", "50")).
		Return(&ygoapi.Page{Cards: []cards.Card{card(10, "Kuriboh")}, TotalRows: 51}, nil)

	custom := NewCustomCardService(repo, nil, nil)
	result := NewSearchService(db, custom).SearchAll(context.Background(), utils.CardSearchFilters{}, 2, 50)

	assert.Equal(t, []int64{10}, ids(result.Cards))
}

func TestSuggestArchetypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().GetArchetypes(gomock.Any()).
		Return([]string{"Blue-Eyes", "Dark Magician", "Red-Eyes", "Elemental HERO"}, nil).
		Times(1)

	svc := NewSearchService(db, nil)
	ctx := context.Background()

	got := svc.SuggestArchetypes(ctx, "eyes", 10)
	assert.ElementsMatch(t, []string{"Blue-Eyes", "Red-Eyes"}, got)

	assert.Equal(t, []string{"Blue-Eyes", "Dark Magician"}, svc.SuggestArchetypes(ctx, "", 2))
	assert.Len(t, svc.SuggestArchetypes(ctx, "e", 1), 1)
}

func TestSuggestArchetypes_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockCardDatabaseInterface(ctrl)

	db.EXPECT().GetArchetypes(gomock.Any()).Return(nil, errors.New("offline"))

	assert.Empty(t, NewSearchService(db, nil).SuggestArchetypes(context.Background(), "hero", 5))
}

func TestMergeCards(t *testing.T) {
	a, b, c := card(1, "A"), card(2, "B"), card(3, "C")
	tests := []struct {
		name  string
		limit int
		lists [][]cards.Card
		want  []int64
	}{
		{name: "name precedence", limit: 3, lists: [][]cards.Card{{a, b}, {b, c}}, want: []int64{1, 2, 3}},
		{name: "truncated", limit: 2, lists: [][]cards.Card{{a, b}, {b, c}}, want: []int64{1, 2}},
		{name: "duplicates within a list", limit: 5, lists: [][]cards.Card{{a, a, b}}, want: []int64{1, 2}},
		{name: "empty", limit: 5, want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(mergeCards(tt.limit, tt.lists...)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeCards() = %v, want %v", got, tt.want)
			}
		})
	}
}
