package grades

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bacauscout/scout/go/internal/models"
)

var (
	// ErrGradeNotFound is returned when a player has no scouting report
	ErrGradeNotFound = errors.New("grade not found")
	// ErrInvalidGrade wraps every validation failure of a save request
	ErrInvalidGrade = errors.New("invalid grade")
)

// Star ratings and attribute ratings share the same scale
const (
	MinRating = 1
	MaxRating = 5
)

// SaveGradeRequest is the body of an upsert. Nil fields keep the stored
// value, or the default for a new report.
type SaveGradeRequest struct {
	PlayerName    *string               `json:"playerName"`
	Position      *string               `json:"position"`
	Club          *string               `json:"club"`
	Status        *models.GradeStatus   `json:"status"`
	ScoutingLevel *models.ScoutingLevel `json:"scoutingLevel"`
	Ability       *int                  `json:"ability"`
	Potential     *int                  `json:"potential"`
	Report        *int                  `json:"report"`
	Attributes    map[string]int        `json:"attributes"`
	Potentials    map[string]int        `json:"potentials"`
	ScoutingTags  []string              `json:"scoutingTags"`
	Verdict       *models.Verdict       `json:"verdict"`
	Role          *string               `json:"role"`
	Conclusion    *string               `json:"conclusion"`
	Notes         *string               `json:"notes"`
	TransferFee   *string               `json:"transferFee"`
	Salary        *string               `json:"salary"`
	ScoutName     *string               `json:"scoutName"`
	ScoutID       *uuid.UUID            `json:"scoutId"`
}

var validStatuses = map[models.GradeStatus]bool{
	models.GradeStatusFirstTeam: true,
	models.GradeStatusU23:       true,
	models.GradeStatusLoan:      true,
	models.GradeStatusWatch:     true,
}

var validLevels = map[models.ScoutingLevel]bool{
	models.ScoutingLevelBasic:      true,
	models.ScoutingLevelImpressive: true,
	models.ScoutingLevelDataOnly:   true,
}

var validVerdicts = map[models.Verdict]bool{
	models.VerdictSign:    true,
	models.VerdictMonitor: true,
	models.VerdictDiscard: true,
}

var attributeKeySet = func() map[string]bool {
	m := make(map[string]bool, len(models.AttributeKeys))
	for _, k := range models.AttributeKeys {
		m[k] = true
	}
	return m
}()

func (req SaveGradeRequest) validate() error {
	if req.Status != nil && !validStatuses[*req.Status] {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidGrade, *req.Status)
	}
	if req.ScoutingLevel != nil && !validLevels[*req.ScoutingLevel] {
		return fmt.Errorf("%w: unknown scouting level %q", ErrInvalidGrade, *req.ScoutingLevel)
	}
	if req.Verdict != nil && !validVerdicts[*req.Verdict] {
		return fmt.Errorf("%w: unknown verdict %q", ErrInvalidGrade, *req.Verdict)
	}

	stars := []struct {
		name  string
		value *int
	}{
		{"ability", req.Ability},
		{"potential", req.Potential},
		{"report", req.Report},
	}
	for _, s := range stars {
		if s.value != nil && !inRange(*s.value) {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidGrade, s.name, MinRating, MaxRating)
		}
	}

	if err := validateRatings("attribute", req.Attributes); err != nil {
		return err
	}
	return validateRatings("potential", req.Potentials)
}

func validateRatings(kind string, ratings map[string]int) error {
	for k, v := range ratings {
		if !attributeKeySet[k] {
			return fmt.Errorf("%w: unknown %s %q", ErrInvalidGrade, kind, k)
		}
		if !inRange(v) {
			return fmt.Errorf("%w: %s %s must be between %d and %d", ErrInvalidGrade, kind, k, MinRating, MaxRating)
		}
	}
	return nil
}

func inRange(v int) bool {
	return v >= MinRating && v <= MaxRating
}

// newGrade returns a report for playerID with every default applied
func newGrade(playerID string) *models.Grade {
	g := &models.Grade{
		ID:            uuid.New(),
		PlayerID:      playerID,
		Status:        models.GradeStatusWatch,
		ScoutingLevel: models.ScoutingLevelBasic,
		Ability:       models.DefaultAbility,
		Potential:     models.DefaultPotential,
		Report:        models.DefaultReport,
		Attributes:    make(map[string]int, len(models.AttributeKeys)),
		Potentials:    make(map[string]int, len(models.AttributeKeys)),
		ScoutingTags:  []string{},
		Verdict:       models.VerdictMonitor,
	}
	fillRatingDefaults(g)
	return g
}

// fillRatingDefaults sets 3 for every missing attribute and 4 for every
// missing potential
func fillRatingDefaults(g *models.Grade) {
	if g.Attributes == nil {
		g.Attributes = make(map[string]int, len(models.AttributeKeys))
	}
	if g.Potentials == nil {
		g.Potentials = make(map[string]int, len(models.AttributeKeys))
	}
	for _, k := range models.AttributeKeys {
		if _, ok := g.Attributes[k]; !ok {
			g.Attributes[k] = models.DefaultAbility
		}
		if _, ok := g.Potentials[k]; !ok {
			g.Potentials[k] = models.DefaultPotential
		}
	}
}

// apply copies every non-nil request field onto g
func (req SaveGradeRequest) apply(g *models.Grade) {
	setString(&g.PlayerName, req.PlayerName)
	setString(&g.Position, req.Position)
	setString(&g.Club, req.Club)
	setString(&g.Role, req.Role)
	setString(&g.Conclusion, req.Conclusion)
	setString(&g.Notes, req.Notes)
	setString(&g.TransferFee, req.TransferFee)
	setString(&g.Salary, req.Salary)

	if req.Status != nil {
		g.Status = *req.Status
	}
	if req.ScoutingLevel != nil {
		g.ScoutingLevel = *req.ScoutingLevel
	}
	if req.Verdict != nil {
		g.Verdict = *req.Verdict
	}
	if req.Ability != nil {
		g.Ability = *req.Ability
	}
	if req.Potential != nil {
		g.Potential = *req.Potential
	}
	if req.Report != nil {
		g.Report = *req.Report
	}
	for k, v := range req.Attributes {
		g.Attributes[k] = v
	}
	for k, v := range req.Potentials {
		g.Potentials[k] = v
	}
	if req.ScoutingTags != nil {
		g.ScoutingTags = req.ScoutingTags
	}
	if req.ScoutName != nil {
		g.ScoutName = req.ScoutName
	}
	if req.ScoutID != nil {
		g.ScoutID = req.ScoutID
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
