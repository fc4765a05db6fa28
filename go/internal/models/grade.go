package models

import (
	"time"

	"github.com/google/uuid"
)

// GradeStatus is the squad-planning bucket a scout files a player under
type GradeStatus string

const (
	GradeStatusFirstTeam GradeStatus = "FM"
	GradeStatusU23       GradeStatus = "U23"
	GradeStatusLoan      GradeStatus = "LOAN"
	GradeStatusWatch     GradeStatus = "WATCH"
)

// ScoutingLevel describes how the player was observed
type ScoutingLevel string

const (
	ScoutingLevelBasic      ScoutingLevel = "Basic"
	ScoutingLevelImpressive ScoutingLevel = "Impressive"
	ScoutingLevelDataOnly   ScoutingLevel = "Data only"
)

// Verdict is the scout's recommendation
type Verdict string

const (
	VerdictSign    Verdict = "Sign"
	VerdictMonitor Verdict = "Monitor"
	VerdictDiscard Verdict = "Discard"
)

// Default star values applied when a report omits a rating
const (
	DefaultAbility   = 3
	DefaultPotential = 4
	DefaultReport    = 3
)

// AttributeKeys lists every graded attribute. Each has a potential
// counterpart stored under the same key in Grade.Potentials.
var AttributeKeys = []string{
	"physStrength", "physSpeed", "physAgility", "physCoordination",
	"techControl", "techShortPasses", "techLongPasses", "techAerial",
	"techCrossing", "techFinishing", "techDribbling", "techOneVsOneOffense", "techOneVsOneDefense",
	"tacPositioning", "tacTransition", "tacDecisions", "tacAnticipations", "tacDuels", "tacSetPieces",
}

// Grade is a scouting report on one corpus player, keyed by player id
type Grade struct {
	ID            uuid.UUID      `json:"id"`
	PlayerID      string         `json:"playerId"`
	PlayerName    string         `json:"playerName"`
	Position      string         `json:"position"`
	Club          string         `json:"club"`
	Status        GradeStatus    `json:"status"`
	ScoutingLevel ScoutingLevel  `json:"scoutingLevel"`
	Ability       int            `json:"ability"`
	Potential     int            `json:"potential"`
	Report        int            `json:"report"`
	Attributes    map[string]int `json:"attributes"`
	Potentials    map[string]int `json:"potentials"`
	ScoutingTags  []string       `json:"scoutingTags"`
	Verdict       Verdict        `json:"verdict"`
	Role          string         `json:"role"`
	Conclusion    string         `json:"conclusion"`
	Notes         string         `json:"notes"`
	TransferFee   string         `json:"transferFee"`
	Salary        string         `json:"salary"`
	ScoutName     *string        `json:"scoutName"`
	ScoutID       *uuid.UUID     `json:"scoutId,omitempty"`
	GradedAt      time.Time      `json:"gradedAt"`
}
