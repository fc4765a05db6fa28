package player

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// rawPlayer mirrors one element of the scraped corpus. Two layouts exist:
// the scraper output (snake_case keys) and the older Transfermarkt list
// export (Player/Age/Club/"Market value"/givenUrl/"Nat.").
type rawPlayer struct {
	PlayerID        flexString  `json:"player_id"`
	Name            string      `json:"name"`
	ProfileURL      string      `json:"profile_url"`
	Position        string      `json:"position"`
	Age             flexString  `json:"age"`
	MarketValue     flexString  `json:"market_value"`
	Nationality     stringList  `json:"nationality"`
	Club            string      `json:"club"`
	League          string      `json:"league"`
	Height          string      `json:"height"`
	Foot            string      `json:"foot"`
	DateOfBirth     string      `json:"date_of_birth"`
	PlaceOfBirth    string      `json:"place_of_birth"`
	ContractExpires string      `json:"contract_expires"`
	ShirtNumber     flexString  `json:"shirt_number"`
	Appearances     flexInt     `json:"appearances"`
	Goals           flexInt     `json:"goals"`
	Assists         flexInt     `json:"assists"`
	Minutes         flexInt     `json:"minutes"`
	CareerStats     *rawCareer  `json:"career_stats"`
	CareerTotals    *rawTotals  `json:"career_totals"`
	SeasonStats     []rawSeason `json:"season_stats"`
	PhotoURL        string      `json:"photo_url"`

	// legacy list export
	ListPlayer      []string   `json:"Player"`
	ListAge         flexString `json:"Age"`
	ListClub        string     `json:"Club"`
	ListMarketValue flexString `json:"Market value"`
	GivenURL        string     `json:"givenUrl"`
	ListNationality stringList `json:"Nat."`
	ListPlayerID    flexString `json:"playerId"`
}

type rawCareer struct {
	TotalAppearances flexInt `json:"total_appearances"`
	TotalGoals       flexInt `json:"total_goals"`
	TotalAssists     flexInt `json:"total_assists"`
}

type rawTotals struct {
	Appearances flexInt `json:"appearances"`
	Goals       flexInt `json:"goals"`
	Assists     flexInt `json:"assists"`
	Minutes     flexInt `json:"minutes"`
}

type rawSeason struct {
	Season      string  `json:"season"`
	Competition string  `json:"competition"`
	Appearances flexInt `json:"appearances"`
	Goals       flexInt `json:"goals"`
	Assists     flexInt `json:"assists"`
}

func (r *rawPlayer) isScraped() bool {
	return r.PlayerID != "" || (r.Name != "" && r.ListPlayer == nil)
}

func (r *rawPlayer) isList() bool {
	return r.ListPlayer != nil
}

// id returns the corpus identifier of the record, if any
func (r *rawPlayer) id() string {
	if r.PlayerID != "" {
		return string(r.PlayerID)
	}
	if r.ListPlayerID != "" {
		return string(r.ListPlayerID)
	}
	if r.GivenURL != "" {
		if id, ok := ExtractPlayerIDFromURL(r.GivenURL); ok {
			return id
		}
	}
	return ""
}

func (r *rawPlayer) appearances() int {
	if r.Appearances > 0 {
		return int(r.Appearances)
	}
	if r.CareerStats != nil && r.CareerStats.TotalAppearances > 0 {
		return int(r.CareerStats.TotalAppearances)
	}
	if r.CareerTotals != nil {
		return int(r.CareerTotals.Appearances)
	}
	return 0
}

func (r *rawPlayer) goals() int {
	if r.Goals > 0 {
		return int(r.Goals)
	}
	if r.CareerStats != nil && r.CareerStats.TotalGoals > 0 {
		return int(r.CareerStats.TotalGoals)
	}
	if r.CareerTotals != nil {
		return int(r.CareerTotals.Goals)
	}
	return 0
}

func (r *rawPlayer) assists() int {
	if r.Assists > 0 {
		return int(r.Assists)
	}
	if r.CareerStats != nil && r.CareerStats.TotalAssists > 0 {
		return int(r.CareerStats.TotalAssists)
	}
	if r.CareerTotals != nil {
		return int(r.CareerTotals.Assists)
	}
	return 0
}

func (r *rawPlayer) minutes() int {
	if r.Minutes > 0 {
		return int(r.Minutes)
	}
	if r.CareerTotals != nil {
		return int(r.CareerTotals.Minutes)
	}
	return 0
}

// flexString accepts a JSON string or number and keeps its textual form
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexInt accepts a JSON number, a numeric string or null
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			// "-" and friends mean no value
			*f = 0
			return nil
		}
		*f = flexInt(n)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexInt(int(v))
	return nil
}

// stringList accepts either a single string or a list of strings
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
			return nil
		}
		*l = stringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}
