package player

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/models"
)

var playerIDPattern = regexp.MustCompile(`spieler/(\d+)`)

// ExtractPlayerIDFromURL returns the numeric Transfermarkt id found after
// "spieler/" in a profile URL.
func ExtractPlayerIDFromURL(rawURL string) (string, bool) {
	m := playerIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Store is the in-memory player corpus. It is built once at startup and
// shared read-only by every handler.
type Store struct {
	players []models.Player
	byID    map[string]int
	raw     map[string]*rawPlayer
	skipped int
}

// LoadStore reads the corpus file at path and builds a Store.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player corpus %s: %w", path, err)
	}

	store, err := NewStoreFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load player corpus %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("players", len(store.players)).
		Int("skipped", store.skipped).
		Msg("Loaded player corpus")
	return store, nil
}

// NewStoreFromJSON builds a Store from a JSON array of raw player records.
// Elements that fail to decode or carry neither an id nor a name are skipped.
func NewStoreFromJSON(data []byte) (*Store, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &elements); err != nil {
		return nil, fmt.Errorf("corpus is not a JSON array: %w", err)
	}

	raws := make([]*rawPlayer, 0, len(elements))
	skipped := 0
	for i, el := range elements {
		var r rawPlayer
		if err := json.Unmarshal(el, &r); err != nil {
			log.Debug().Err(err).Int("index", i).Msg("Skipping malformed player record")
			skipped++
			continue
		}
		raws = append(raws, &r)
	}

	store := newStore(raws)
	store.skipped += skipped
	return store, nil
}

func newStore(raws []*rawPlayer) *Store {
	s := &Store{
		players: make([]models.Player, 0, len(raws)),
		byID:    make(map[string]int, len(raws)),
		raw:     make(map[string]*rawPlayer, len(raws)),
	}

	for _, r := range raws {
		p, ok := toPlayer(r)
		if !ok {
			s.skipped++
			continue
		}

		if p.PlayerID != "" {
			if _, dup := s.byID[p.PlayerID]; dup {
				log.Warn().Str("player_id", p.PlayerID).Msg("Duplicate player id in corpus, keeping first")
				s.skipped++
				continue
			}
		}

		s.players = append(s.players, p)
		if p.PlayerID != "" {
			s.byID[p.PlayerID] = len(s.players) - 1
			s.raw[p.PlayerID] = r
		}
	}
	return s
}

// Players returns the whole corpus in source order. Callers must not modify
// the returned slice.
func (s *Store) Players() []models.Player {
	return s.players
}

// Len returns the number of loaded players
func (s *Store) Len() int {
	return len(s.players)
}

// Skipped returns how many corpus elements were rejected at load time
func (s *Store) Skipped() int {
	return s.skipped
}

// FindByID looks a player up by corpus id
func (s *Store) FindByID(id string) (*models.Player, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.players[i], true
}

// FindDetail returns the full profile for idOrName. An unknown id is retried
// as a player name, matched case-insensitively.
func (s *Store) FindDetail(idOrName string) (*models.PlayerDetail, error) {
	if r, ok := s.raw[idOrName]; ok {
		return toDetail(r), nil
	}

	name := strings.ToLower(idOrName)

	for _, p := range s.players {
		if p.PlayerID == "" || strings.ToLower(p.Name) != name {
			continue
		}
		if r, ok := s.raw[p.PlayerID]; ok {
			return toDetail(r), nil
		}
	}
	return nil, ErrPlayerNotFound
}

func toPlayer(r *rawPlayer) (models.Player, bool) {
	switch {
	case r.isScraped():
		name := r.Name
		if name == "" {
			name = "Unknown"
		}
		age := string(r.Age)
		mv := string(r.MarketValue)
		return models.Player{
			PlayerID:       string(r.PlayerID),
			Name:           name,
			Position:       optional(r.Position),
			Age:            optional(age),
			Club:           optional(r.Club),
			League:         optional(r.League),
			Nationality:    nonNil(r.Nationality),
			MarketValue:    optional(mv),
			URL:            optional(r.ProfileURL),
			PhotoURL:       optional(r.PhotoURL),
			Appearances:    r.appearances(),
			Goals:          r.goals(),
			Assists:        r.assists(),
			NameSearch:     Normalize(name),
			AgeNum:         parseAge(age),
			MarketValueNum: ParseMarketValue(optional(mv)),
		}, true

	case r.isList():
		name := ""
		position := ""
		if len(r.ListPlayer) > 0 {
			name = r.ListPlayer[0]
		}
		if len(r.ListPlayer) > 1 {
			position = r.ListPlayer[1]
		}
		id := r.id()
		if name == "" && id == "" {
			return models.Player{}, false
		}
		age := string(r.ListAge)
		mv := string(r.ListMarketValue)
		return models.Player{
			PlayerID:       id,
			Name:           name,
			Position:       optional(position),
			Age:            optional(age),
			Club:           optional(r.ListClub),
			League:         optional(r.League),
			Nationality:    nonNil(r.ListNationality),
			MarketValue:    optional(mv),
			URL:            optional(r.GivenURL),
			LeagueURL:      optional(r.GivenURL),
			PhotoURL:       optional(r.PhotoURL),
			NameSearch:     Normalize(name),
			AgeNum:         parseAge(age),
			MarketValueNum: ParseMarketValue(optional(mv)),
		}, true
	}
	return models.Player{}, false
}

func toDetail(r *rawPlayer) *models.PlayerDetail {
	var nationality, second *string
	nats := r.Nationality
	if r.isList() {
		nats = r.ListNationality
	}
	if len(nats) > 0 {
		nationality = optional(nats[0])
	}
	if len(nats) > 1 {
		second = optional(nats[1])
	}

	name := r.Name
	position := r.Position
	if r.isList() {
		if len(r.ListPlayer) > 0 {
			name = r.ListPlayer[0]
		}
		if len(r.ListPlayer) > 1 {
			position = r.ListPlayer[1]
		}
	}
	if name == "" {
		name = "Unknown"
	}

	age := string(r.Age)
	if age == "" {
		age = string(r.ListAge)
	}

	stats := make([]models.SeasonStats, 0, len(r.SeasonStats))
	for _, s := range r.SeasonStats {
		if s.Appearances <= 0 {
			continue
		}
		stats = append(stats, models.SeasonStats{
			Season:      orDash(s.Season),
			Competition: orDash(s.Competition),
			Matches:     int(s.Appearances),
			Goals:       int(s.Goals),
			Assists:     int(s.Assists),
		})
	}

	return &models.PlayerDetail{
		ID:                r.id(),
		Name:              name,
		TMURL:             optional(firstNonEmpty(r.ProfileURL, r.GivenURL)),
		Position:          optional(position),
		Age:               parseAge(age),
		Nationality:       nationality,
		SecondNationality: second,
		BirthDate:         optional(r.DateOfBirth),
		Birthplace:        optional(r.PlaceOfBirth),
		Club:              optional(firstNonEmpty(r.Club, r.ListClub)),
		League:            optional(r.League),
		MarketValue:       optional(firstNonEmpty(string(r.MarketValue), string(r.ListMarketValue))),
		Height:            optional(r.Height),
		Foot:              optional(r.Foot),
		ContractUntil:     optional(r.ContractExpires),
		ShirtNumber:       optional(string(r.ShirtNumber)),
		PhotoURL:          optional(r.PhotoURL),
		CareerTotals: models.CareerTotals{
			Matches: r.appearances(),
			Goals:   r.goals(),
			Assists: r.assists(),
			Minutes: r.minutes(),
		},
		Stats: stats,
	}
}

// parseAge reads the leading digits of an age string ("23", "23 (2001)")
func parseAge(s string) *int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
