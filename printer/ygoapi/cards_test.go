package ygoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
)

// fakeDatabase answers id lookups for the given known ids and rejects any
// request naming an unknown id with 400, the way the real service does.
func fakeDatabase(t *testing.T, known map[int64]bool, requests *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		var data []cards.Card
		for _, raw := range strings.Split(r.URL.Query().Get("id"), ",") {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || !known[id] {
				http.Error(w, `{"error":"No card matching your query was found in the database."}`, http.StatusBadRequest)
				return
			}
			data = append(data, cards.Card{ID: id, Name: fmt.Sprintf("Card %d", id), Type: "Effect Monster"})
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
}

func TestClient_SearchCards(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantCards int
		wantTotal int
		wantErr   bool
	}{
		{
			name:      "with meta",
			status:    http.StatusOK,
			body:      `{"data":[{"id":1,"name":"A","type":"Spell Card"}],"meta":{"total_rows":120}}`,
			wantCards: 1,
			wantTotal: 120,
		},
		{
			name:      "without meta",
			status:    http.StatusOK,
			body:      `{"data":[{"id":1},{"id":2}]}`,
			wantCards: 2,
			wantTotal: -1,
		},
		{
			name:      "bad request is empty",
			status:    http.StatusBadRequest,
			body:      `{"error":"No card matching your query was found in the database."}`,
			wantCards: 0,
			wantTotal: 0,
		},
		{
			name:    "not found is an error",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/cardinfo.php", r.URL.Path)
				assert.Equal(t, "dark", r.URL.Query().Get("fname"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			page, err := c.SearchCards(context.Background(), url.Values{"fname": {"dark"}})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, page.Cards, tt.wantCards)
			assert.Equal(t, tt.wantTotal, page.TotalRows)
		})
	}
}

func TestClient_GetCardsByIDs(t *testing.T) {
	known := map[int64]bool{}
	var ids []int64
	for i := int64(1); i <= 120; i++ {
		known[i] = true
		ids = append(ids, i)
	}
	ids = append(ids, 1, 2, 3) // duplicates are requested once

	var requests atomic.Int32
	srv := fakeDatabase(t, known, &requests)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	found, notFound := c.GetCardsByIDs(context.Background(), ids)

	assert.Len(t, found, 120)
	assert.Empty(t, notFound)
	assert.Equal(t, int32(3), requests.Load(), "120 unique ids need three batches of 50")
	assert.Equal(t, int64(1), found[0].ID)
}

func TestClient_GetCardsByIDs_IsolatesUnknownIDs(t *testing.T) {
	known := map[int64]bool{}
	var ids []int64
	for i := int64(1); i <= 40; i++ {
		ids = append(ids, i)
		if i != 7 && i != 33 {
			known[i] = true
		}
	}

	var requests atomic.Int32
	srv := fakeDatabase(t, known, &requests)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	found, notFound := c.GetCardsByIDs(context.Background(), ids)

	assert.Len(t, found, 38)
	assert.Equal(t, []int64{7, 33}, notFound)
	assert.Less(t, requests.Load(), int32(40), "bisection should beat one request per id")
}

func TestClient_GetCardsByIDs_FailedBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, func(cfg *ClientConfig) { cfg.MaxRetries = 0 })
	found, notFound := c.GetCardsByIDs(context.Background(), []int64{5, 6})
	assert.Empty(t, found)
	assert.Equal(t, []int64{5, 6}, notFound)
}

func TestClient_GetCardByID(t *testing.T) {
	var requests atomic.Int32
	srv := fakeDatabase(t, map[int64]bool{89631139: true}, &requests)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	card, err := c.GetCardByID(context.Background(), 89631139)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, int64(89631139), card.ID)

	card, err = c.GetCardByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestClient_GetArchetypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/archetypes.php", r.URL.Path)
		w.Write([]byte(`[{"archetype_name":"Blue-Eyes"},{"archetype_name":"Dark Magician"},{"archetype_name":""}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	names, err := c.GetArchetypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Blue-Eyes", "Dark Magician"}, names)
}

func TestClient_GetBanList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ocg", r.URL.Query().Get("banlist"))
		w.Write([]byte(`{"data":[
			{"id":55144522,"name":"Pot of Greed","banlist_info":{"ban_tcg":"Banned","ban_ocg":"Forbidden"}},
			{"id":14558127,"name":"Ash Blossom","banlist_info":{"ban_ocg":"Semi-Limited"}}
		]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	entries, err := c.GetBanList(context.Background(), cards.FormatOCG)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, cards.Banned, entries[0].Status(cards.FormatOCG))
	assert.Equal(t, cards.SemiLimited, entries[1].Status(cards.FormatOCG))
	assert.Equal(t, cards.BanStatus(""), entries[1].Status(cards.FormatTCG))
}
