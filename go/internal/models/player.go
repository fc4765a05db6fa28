package models

// Player represents one record of the scraped player corpus.
// Records are built once at load time and never mutated afterwards.
type Player struct {
	PlayerID    string   `json:"playerId"`
	Name        string   `json:"name"`
	Position    *string  `json:"position"`
	Age         *string  `json:"age"`
	Club        *string  `json:"club"`
	League      *string  `json:"league"`
	Nationality []string `json:"nationality"`
	MarketValue *string  `json:"marketValue"`
	URL         *string  `json:"url"`
	LeagueURL   *string  `json:"leagueUrl"`
	PhotoURL    *string  `json:"photoUrl"`

	Appearances int `json:"appearances"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`

	// Derived at load time, kept out of API payloads
	NameSearch     string `json:"-"`
	AgeNum         *int   `json:"-"`
	MarketValueNum *int64 `json:"-"`
}

// PlayerSuggestion is the light payload used by the autocomplete endpoint
type PlayerSuggestion struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Position *string `json:"position"`
	Club     *string `json:"club"`
	Age      *string `json:"age"`
}

// PlayerDetail is the full profile served to the player page
type PlayerDetail struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	TMURL             *string       `json:"tmUrl"`
	Position          *string       `json:"position"`
	Age               *int          `json:"age"`
	Nationality       *string       `json:"nationality"`
	SecondNationality *string       `json:"secondNationality"`
	BirthDate         *string       `json:"birthDate"`
	Birthplace        *string       `json:"birthplace"`
	Club              *string       `json:"club"`
	League            *string       `json:"league"`
	MarketValue       *string       `json:"marketValue"`
	Height            *string       `json:"height"`
	Foot              *string       `json:"foot"`
	ContractUntil     *string       `json:"contractUntil"`
	ShirtNumber       *string       `json:"shirtNumber"`
	PhotoURL          *string       `json:"photoUrl"`
	CareerTotals      CareerTotals  `json:"careerTotals"`
	Stats             []SeasonStats `json:"stats"`
}

// CareerTotals aggregates a player's career numbers
type CareerTotals struct {
	Matches int `json:"matches"`
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Minutes int `json:"minutes"`
}

// SeasonStats is one season/competition row of a player profile
type SeasonStats struct {
	Season      string `json:"season"`
	Competition string `json:"competition"`
	Matches     int    `json:"matches"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
}
