package player

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacauscout/scout/go/internal/models"
)

func ids(players []models.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.PlayerID)
	}
	return out
}

func intp(n int) *int       { return &n }
func int64p(n int64) *int64 { return &n }

func TestSearchShortQueryIsEmpty(t *testing.T) {
	store := loadTestStore(t)

	for _, q := range []string{"", " ", "a", "â", "  o  "} {
		res := store.Search(q, Filters{})
		assert.NotNil(t, res, "query %q", q)
		assert.Empty(t, res, "query %q", q)
	}
}

func TestSearchByName(t *testing.T) {
	store := loadTestStore(t)

	assert.Equal(t, []string{"100"}, ids(store.Search("tarno", Filters{})))
	assert.Equal(t, []string{"100"}, ids(store.Search("TÂRNO", Filters{})))
	assert.Equal(t, []string{"200"}, ids(store.Search("müller", Filters{})))
	assert.Equal(t, []string{"200"}, ids(store.Search("muller", Filters{})))
	assert.Empty(t, store.Search("zidane", Filters{}))
}

func TestSearchKeepsCorpusOrder(t *testing.T) {
	store := loadTestStore(t)
	assert.Equal(t, []string{"100", "300"}, ids(store.Search("ar", Filters{})))
}

func TestNameSearchMatchesNormalizedSubstring(t *testing.T) {
	store := loadTestStore(t)

	for _, q := range []string{"an", "ar", "ol", "mu", "ion", "pescu", "üll", "thomas m", "zz"} {
		got := map[string]bool{}
		for _, p := range store.Search(q, Filters{}) {
			got[p.PlayerID] = true
		}
		for _, p := range store.Players() {
			want := strings.Contains(Normalize(p.Name), Normalize(q))
			assert.Equal(t, want, got[p.PlayerID], "query %q player %s", q, p.Name)
		}
	}
}

func TestSearchByProfileURL(t *testing.T) {
	store := loadTestStore(t)

	res := store.Search("https://www.transfermarkt.com/whoever/profil/spieler/400", Filters{})
	assert.Equal(t, []string{"400"}, ids(res))

	res = store.Search(".../spieler/200", Filters{})
	assert.Equal(t, []string{"200"}, ids(res))

	res = store.Search("https://www.transfermarkt.com/whoever/profil/spieler/999", Filters{})
	assert.Empty(t, res)

	// a URL without an id never falls back to name matching
	res = store.Search("https://www.transfermarkt.com/tarnovanu/profil/spieler/", Filters{})
	assert.Empty(t, res)
	res = store.Search("https://www.transfermarkt.com/search?q=olaru", Filters{})
	assert.Empty(t, res)
}

func TestSearchProfileURLHonoursFilters(t *testing.T) {
	store := loadTestStore(t)
	res := store.Search("https://www.transfermarkt.com/x/profil/spieler/400", Filters{MinAge: intp(21)})
	assert.Empty(t, res)
}

func TestIsProfileURL(t *testing.T) {
	assert.True(t, IsProfileURL("https://www.transfermarkt.com/x/profil/spieler/1"))
	assert.True(t, IsProfileURL("transfermarkt.de spieler 1"))
	assert.True(t, IsProfileURL("http://mirror.example/x/spieler/1"))
	assert.True(t, IsProfileURL(".../spieler/12345"))
	assert.True(t, IsProfileURL("https://www.transfermarkt.com/search?q=olaru"))
	assert.False(t, IsProfileURL("olaru"))
	assert.False(t, IsProfileURL("spieler"))
}

func TestSearchFilters(t *testing.T) {
	store := loadTestStore(t)

	tests := []struct {
		name    string
		query   string
		filters Filters
		want    []string
	}{
		{"no filters", "ar", Filters{}, []string{"100", "300"}},
		{"position exact case-insensitive", "ar", Filters{Position: "goalkeeper"}, []string{"100"}},
		{"position is not a substring match", "ar", Filters{Position: "Goal"}, []string{}},
		{"club substring", "ar", Filters{Club: "fcs"}, []string{"100", "300"}},
		{"club with diacritics", "popescu", Filters{Club: "bacău"}, []string{"400"}},
		{"min age excludes unknown age", "ar", Filters{MinAge: intp(18)}, []string{"100"}},
		{"max age excludes unknown age", "ar", Filters{MaxAge: intp(40)}, []string{"100"}},
		{"age bounds inclusive", "ar", Filters{MinAge: intp(24), MaxAge: intp(24)}, []string{"100"}},
		{"age out of range", "ar", Filters{MaxAge: intp(23)}, []string{}},
		{"max value", "ar", Filters{MaxValue: int64p(2_000_000)}, []string{"100"}},
		{"min value inclusive", "ar", Filters{MinValue: int64p(3_000_000)}, []string{"300"}},
		{"value bound excludes missing value", "muller", Filters{MinValue: int64p(0)}, []string{}},
		{"filters are ANDed", "ar", Filters{Club: "fcsb", MinValue: int64p(2_000_000), MinAge: intp(18)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(store.Search(tt.query, tt.filters)))
		})
	}
}

func TestParseFilters(t *testing.T) {
	f := ParseFilters(url.Values{
		"position": {" Goalkeeper "},
		"club":     {"FCSB"},
		"minAge":   {"18"},
		"maxAge":   {"abc"},
		"minValue": {"1e6"},
		"maxValue": {"5000000"},
	})

	assert.Equal(t, "Goalkeeper", f.Position)
	assert.Equal(t, "FCSB", f.Club)
	require.NotNil(t, f.MinAge)
	assert.Equal(t, 18, *f.MinAge)
	assert.Nil(t, f.MaxAge)
	assert.Nil(t, f.MinValue)
	require.NotNil(t, f.MaxValue)
	assert.Equal(t, int64(5_000_000), *f.MaxValue)

	assert.Equal(t, Filters{}, ParseFilters(url.Values{}))
}

func TestSuggest(t *testing.T) {
	store := loadTestStore(t)

	res := store.Suggest("ar", 1)
	require.Len(t, res, 1)
	assert.Equal(t, "100", res[0].PlayerID)

	res = store.Suggest("ar", 0)
	assert.Len(t, res, 2)

	assert.Empty(t, store.Suggest("a", 10))
}
