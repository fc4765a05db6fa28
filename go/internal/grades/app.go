package grades

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/feed"
	"github.com/bacauscout/scout/go/internal/models"
)

// GradesRepository defines what the app layer needs from the repository
type GradesRepository interface {
	GetGrade(ctx context.Context, playerID string) (*models.Grade, error)
	ReportExists(ctx context.Context, id uuid.UUID) (bool, error)
	ListGrades(ctx context.Context) ([]models.Grade, error)
	UpsertGrade(ctx context.Context, g *models.Grade) (*models.Grade, error)
	DeleteGrade(ctx context.Context, playerID string) error
}

// App handles scouting report business logic
type App struct {
	repo      GradesRepository
	publisher feed.Publisher
	clock     clockwork.Clock
}

// NewApp creates a new grades App. A nil publisher disables events.
func NewApp(repo GradesRepository, publisher feed.Publisher, clock clockwork.Clock) *App {
	if publisher == nil {
		publisher = feed.Noop{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
	}
}

// ListGrades returns every report, most recently updated first
func (a *App) ListGrades(ctx context.Context) ([]models.Grade, error) {
	grades, err := a.repo.ListGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	return grades, nil
}

// GetGrade returns the report for playerID, or nil when there is none
func (a *App) GetGrade(ctx context.Context, playerID string) (*models.Grade, error) {
	g, err := a.repo.GetGrade(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grade: %w", err)
	}
	return g, nil
}

// ReportExists reports whether a scouting report with id exists
func (a *App) ReportExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return a.repo.ReportExists(ctx, id)
}

// SaveGrade creates or updates the report for playerID. Fields missing from
// req keep their stored value.
func (a *App) SaveGrade(ctx context.Context, playerID string, req SaveGradeRequest) (*models.Grade, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidGrade)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	g, err := a.repo.GetGrade(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load grade: %w", err)
	}
	if g == nil {
		g = newGrade(playerID)
	}

	req.apply(g)
	g.GradedAt = a.clock.Now().UTC()

	saved, err := a.repo.UpsertGrade(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to save grade: %w", err)
	}

	a.publish(ctx, feed.NewEvent(feed.EventGradeSaved, playerID, g.GradedAt, saved))
	log.Info().
		Str("player_id", playerID).
		Str("verdict", string(saved.Verdict)).
		Int("ability", saved.Ability).
		Int("potential", saved.Potential).
		Msg("Grade saved")
	return saved, nil
}

// DeleteGrade removes the report for playerID
func (a *App) DeleteGrade(ctx context.Context, playerID string) error {
	if err := a.repo.DeleteGrade(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}

	a.publish(ctx, feed.NewEvent(feed.EventGradeDeleted, playerID, a.clock.Now(), nil))
	log.Info().Str("player_id", playerID).Msg("Grade deleted")
	return nil
}

// publish never fails the request; the report is already stored
func (a *App) publish(ctx context.Context, ev feed.Event) {
	if err := a.publisher.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).Str("event_type", string(ev.Type)).Msg("failed to publish event")
	}
}
