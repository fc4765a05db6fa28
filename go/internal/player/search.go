package player

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bacauscout/scout/go/internal/models"
)

// MinQueryLength is the shortest query, in characters, that triggers a scan
const MinQueryLength = 2

// DefaultSuggestLimit caps autocomplete results when no limit is given
const DefaultSuggestLimit = 20

// Filters narrows a search. A nil bound is inactive.
type Filters struct {
	Position string
	Club     string
	MinAge   *int
	MaxAge   *int
	MinValue *int64
	MaxValue *int64
}

// ageBounded reports whether any age bound is active
func (f Filters) ageBounded() bool {
	return f.MinAge != nil || f.MaxAge != nil
}

func (f Filters) valueBounded() bool {
	return f.MinValue != nil || f.MaxValue != nil
}

// ParseFilters reads search filters from query parameters. Bounds that are
// not integers are ignored.
func ParseFilters(q url.Values) Filters {
	f := Filters{
		Position: strings.TrimSpace(q.Get("position")),
		Club:     strings.TrimSpace(q.Get("club")),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("minAge"))); err == nil {
		f.MinAge = &n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("maxAge"))); err == nil {
		f.MaxAge = &n
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(q.Get("minValue")), 10, 64); err == nil {
		f.MinValue = &n
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(q.Get("maxValue")), 10, 64); err == nil {
		f.MaxValue = &n
	}
	return f
}

// IsProfileURL reports whether query should be treated as a profile link
// rather than a name: anything mentioning transfermarkt, containing a
// /spieler/ segment, or starting with an http(s) scheme.
func IsProfileURL(query string) bool {
	lower := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(lower, "transfermarkt") ||
		strings.Contains(lower, "/spieler/") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://")
}

// Search returns the players matching query and every active filter, in
// corpus order. A profile URL is resolved by id and never falls back to a
// name match.
func (s *Store) Search(query string, f Filters) []models.Player {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []models.Player{}
	}

	if IsProfileURL(query) {
		id, ok := ExtractPlayerIDFromURL(query)
		if !ok {
			return []models.Player{}
		}
		p, ok := s.FindByID(id)
		if !ok || !f.match(p) {
			return []models.Player{}
		}
		return []models.Player{*p}
	}

	needle := Normalize(query)
	matches := make([]models.Player, 0)
	for i := range s.players {
		p := &s.players[i]
		if !strings.Contains(p.NameSearch, needle) {
			continue
		}
		if !f.match(p) {
			continue
		}
		matches = append(matches, *p)
	}
	return matches
}

// Suggest is a name-only search returning at most limit light summaries.
// A non-positive limit means DefaultSuggestLimit.
func (s *Store) Suggest(query string, limit int) []models.PlayerSuggestion {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []models.PlayerSuggestion{}
	}

	needle := Normalize(query)
	out := make([]models.PlayerSuggestion, 0, limit)
	for i := range s.players {
		p := &s.players[i]
		if !strings.Contains(p.NameSearch, needle) {
			continue
		}
		out = append(out, models.PlayerSuggestion{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Position: p.Position,
			Club:     p.Club,
			Age:      p.Age,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

func (f Filters) match(p *models.Player) bool {
	if f.Position != "" {
		if p.Position == nil || !strings.EqualFold(*p.Position, f.Position) {
			return false
		}
	}

	if f.Club != "" {
		if p.Club == nil || !strings.Contains(strings.ToLower(*p.Club), strings.ToLower(f.Club)) {
			return false
		}
	}

	if f.ageBounded() {
		if p.AgeNum == nil {
			return false
		}
		if f.MinAge != nil && *p.AgeNum < *f.MinAge {
			return false
		}
		if f.MaxAge != nil && *p.AgeNum > *f.MaxAge {
			return false
		}
	}

	if f.valueBounded() {
		if p.MarketValueNum == nil {
			return false
		}
		if f.MinValue != nil && *p.MarketValueNum < *f.MinValue {
			return false
		}
		if f.MaxValue != nil && *p.MarketValueNum > *f.MaxValue {
			return false
		}
	}

	return true
}
