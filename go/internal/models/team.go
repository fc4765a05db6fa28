package models

// PositionGroup buckets a free-text position into one of four squad lines
type PositionGroup string

const (
	PositionGroupGK  PositionGroup = "GK"
	PositionGroupDEF PositionGroup = "DEF"
	PositionGroupMID PositionGroup = "MID"
	PositionGroupFWD PositionGroup = "FWD"
)

// PositionBreakdown counts squad members per position group
type PositionBreakdown struct {
	GK  int `json:"GK"`
	DEF int `json:"DEF"`
	MID int `json:"MID"`
	FWD int `json:"FWD"`
}

// TeamSummary is the squad-level aggregate for a single club
type TeamSummary struct {
	Club                      string            `json:"club"`
	League                    *string           `json:"league"`
	SquadSize                 int               `json:"squadSize"`
	AvgAge                    float64           `json:"avgAge"`
	AvgMarketValue            float64           `json:"avgMarketValue"`
	AvgMarketValueFormatted   string            `json:"avgMarketValueFormatted"`
	TotalMarketValue          int64             `json:"totalMarketValue"`
	TotalMarketValueFormatted string            `json:"totalMarketValueFormatted"`
	PositionBreakdown         PositionBreakdown `json:"positionBreakdown"`
	TotalAppearances          int               `json:"totalAppearances"`
	TotalGoals                int               `json:"totalGoals"`
	TotalAssists              int               `json:"totalAssists"`
	Players                   []SquadPlayer     `json:"players"`
}

// SquadPlayer is one roster line of a TeamSummary
type SquadPlayer struct {
	PlayerID       string        `json:"playerId"`
	Name           string        `json:"name"`
	Position       *string       `json:"position"`
	PositionGroup  PositionGroup `json:"positionGroup"`
	Age            *int          `json:"age"`
	MarketValue    *string       `json:"marketValue"`
	MarketValueNum *int64        `json:"marketValueNum"`
	Appearances    int           `json:"appearances"`
	Goals          int           `json:"goals"`
	Assists        int           `json:"assists"`
	PhotoURL       *string       `json:"photoUrl"`
}
