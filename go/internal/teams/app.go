package teams

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/player"
)

// ErrTeamNotFound is returned when no corpus player belongs to the club
var ErrTeamNotFound = errors.New("team not found")

// MaxClubResults caps SearchClubs
const MaxClubResults = 20

// PlayerSource defines what the app layer needs from the player corpus
type PlayerSource interface {
	Players() []models.Player
}

// App aggregates squads out of the player corpus
type App struct {
	source PlayerSource
}

// NewApp creates a new teams App
func NewApp(source PlayerSource) *App {
	return &App{
		source: source,
	}
}

// Aggregate builds the squad summary for club, matched case-insensitively
// against each player's club.
func (a *App) Aggregate(club string) (*models.TeamSummary, error) {
	club = strings.TrimSpace(club)

	var squad []models.Player
	for _, p := range a.source.Players() {
		if p.Club != nil && strings.EqualFold(*p.Club, club) {
			squad = append(squad, p)
		}
	}
	if len(squad) == 0 {
		return nil, ErrTeamNotFound
	}

	summary := &models.TeamSummary{
		Club:      *squad[0].Club,
		League:    leadingLeague(squad),
		SquadSize: len(squad),
		Players:   make([]models.SquadPlayer, 0, len(squad)),
	}

	var ageSum, ageCount, valueCount int
	for _, p := range squad {
		if p.AgeNum != nil {
			ageSum += *p.AgeNum
			ageCount++
		}
		if p.MarketValueNum != nil && *p.MarketValueNum > 0 {
			summary.TotalMarketValue += *p.MarketValueNum
			valueCount++
		}

		group := ClassifyPosition(p.Position)
		switch group {
		case models.PositionGroupGK:
			summary.PositionBreakdown.GK++
		case models.PositionGroupDEF:
			summary.PositionBreakdown.DEF++
		case models.PositionGroupMID:
			summary.PositionBreakdown.MID++
		case models.PositionGroupFWD:
			summary.PositionBreakdown.FWD++
		}

		summary.TotalAppearances += p.Appearances
		summary.TotalGoals += p.Goals
		summary.TotalAssists += p.Assists

		summary.Players = append(summary.Players, models.SquadPlayer{
			PlayerID:       p.PlayerID,
			Name:           p.Name,
			Position:       p.Position,
			PositionGroup:  group,
			Age:            p.AgeNum,
			MarketValue:    p.MarketValue,
			MarketValueNum: p.MarketValueNum,
			Appearances:    p.Appearances,
			Goals:          p.Goals,
			Assists:        p.Assists,
			PhotoURL:       p.PhotoURL,
		})
	}

	if ageCount > 0 {
		summary.AvgAge = math.Round(float64(ageSum)/float64(ageCount)*10) / 10
	}
	if valueCount > 0 {
		summary.AvgMarketValue = float64(summary.TotalMarketValue) / float64(valueCount)
	}
	summary.AvgMarketValueFormatted = player.FormatMarketValue(summary.AvgMarketValue)
	summary.TotalMarketValueFormatted = player.FormatMarketValue(float64(summary.TotalMarketValue))

	sortRoster(summary.Players)
	return summary, nil
}

// SearchClubs returns the distinct club names containing q, sorted and
// capped at MaxClubResults.
func (a *App) SearchClubs(q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if utf8.RuneCountInString(q) < player.MinQueryLength {
		return []string{}
	}

	seen := make(map[string]struct{})
	clubs := make([]string, 0)
	for _, p := range a.source.Players() {
		if p.Club == nil {
			continue
		}
		if _, ok := seen[*p.Club]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(*p.Club), q) {
			seen[*p.Club] = struct{}{}
			clubs = append(clubs, *p.Club)
		}
	}

	sort.Strings(clubs)
	if len(clubs) > MaxClubResults {
		clubs = clubs[:MaxClubResults]
	}
	return clubs
}

// leadingLeague picks the most frequent league; ties go to the
// alphabetically smallest name.
func leadingLeague(squad []models.Player) *string {
	counts := make(map[string]int)
	for _, p := range squad {
		if p.League != nil && *p.League != "" {
			counts[*p.League]++
		}
	}

	var best string
	bestCount := 0
	for league, n := range counts {
		if n > bestCount || (n == bestCount && league < best) {
			best = league
			bestCount = n
		}
	}
	if bestCount == 0 {
		return nil
	}
	return &best
}

func sortRoster(roster []models.SquadPlayer) {
	c := collate.New(language.Und)
	sort.SliceStable(roster, func(i, j int) bool {
		ri, rj := groupRank[roster[i].PositionGroup], groupRank[roster[j].PositionGroup]
		if ri != rj {
			return ri < rj
		}
		return c.CompareString(roster[i].Name, roster[j].Name) < 0
	})
}
