package grades

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/bacauscout/scout/go/internal/grades/db"
	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/sqlutil"
)

// Querier is the subset of generated-style queries the repository uses
type Querier interface {
	GetScoutingReport(ctx context.Context, playerID string) (db.ScoutingReport, error)
	ScoutingReportExists(ctx context.Context, id uuid.UUID) (bool, error)
	ListScoutingReports(ctx context.Context) ([]db.ScoutingReport, error)
	UpsertScoutingReport(ctx context.Context, arg db.UpsertScoutingReportParams) (db.ScoutingReport, error)
	DeleteScoutingReport(ctx context.Context, playerID string) (int64, error)
}

type Repository struct {
	queries Querier
}

func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetGrade returns nil, nil when the player has no report
func (r *Repository) GetGrade(ctx context.Context, playerID string) (*models.Grade, error) {
	row, err := r.queries.GetScoutingReport(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scouting report: %w", err)
	}
	return dbReportToModel(row), nil
}

func (r *Repository) ReportExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.ScoutingReportExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check scouting report: %w", err)
	}
	return ok, nil
}

func (r *Repository) ListGrades(ctx context.Context) ([]models.Grade, error) {
	rows, err := r.queries.ListScoutingReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scouting reports: %w", err)
	}

	grades := make([]models.Grade, 0, len(rows))
	for _, row := range rows {
		grades = append(grades, *dbReportToModel(row))
	}
	return grades, nil
}

func (r *Repository) UpsertGrade(ctx context.Context, g *models.Grade) (*models.Grade, error) {
	attributes, err := json.Marshal(g.Attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attributes: %w", err)
	}
	potentials, err := json.Marshal(g.Potentials)
	if err != nil {
		return nil, fmt.Errorf("failed to encode potentials: %w", err)
	}

	row, err := r.queries.UpsertScoutingReport(ctx, db.UpsertScoutingReportParams{
		ID:            g.ID,
		PlayerID:      g.PlayerID,
		PlayerName:    sqlutil.ToSqlNonEmpty(g.PlayerName),
		Position:      sqlutil.ToSqlNonEmpty(g.Position),
		Club:          sqlutil.ToSqlNonEmpty(g.Club),
		Status:        sqlutil.ToSqlNonEmpty(string(g.Status)),
		ScoutingLevel: sqlutil.ToSqlNonEmpty(string(g.ScoutingLevel)),
		Ability:       sqlutil.ToSqlInt16(g.Ability),
		Potential:     sqlutil.ToSqlInt16(g.Potential),
		Report:        sqlutil.ToSqlInt16(g.Report),
		Attributes:    pqtype.NullRawMessage{RawMessage: attributes, Valid: len(g.Attributes) > 0},
		Potentials:    pqtype.NullRawMessage{RawMessage: potentials, Valid: len(g.Potentials) > 0},
		ScoutingTags:  g.ScoutingTags,
		Verdict:       sqlutil.ToSqlNonEmpty(string(g.Verdict)),
		Role:          sqlutil.ToSqlNonEmpty(g.Role),
		Conclusion:    sqlutil.ToSqlNonEmpty(g.Conclusion),
		Notes:         sqlutil.ToSqlNonEmpty(g.Notes),
		TransferFee:   sqlutil.ToSqlNonEmpty(g.TransferFee),
		Salary:        sqlutil.ToSqlNonEmpty(g.Salary),
		ScoutName:     sqlutil.ToSqlString(g.ScoutName),
		ScoutID:       sqlutil.ToNullUUID(g.ScoutID),
		UpdatedAt:     g.GradedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert scouting report: %w", err)
	}
	return dbReportToModel(row), nil
}

// DeleteGrade returns ErrGradeNotFound when nothing was deleted
func (r *Repository) DeleteGrade(ctx context.Context, playerID string) error {
	n, err := r.queries.DeleteScoutingReport(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to delete scouting report: %w", err)
	}
	if n == 0 {
		return ErrGradeNotFound
	}
	return nil
}

// dbReportToModel fills defaults for every column left NULL
func dbReportToModel(row db.ScoutingReport) *models.Grade {
	g := &models.Grade{
		ID:            row.ID,
		PlayerID:      row.PlayerID,
		PlayerName:    sqlutil.FromSqlString(row.PlayerName, ""),
		Position:      sqlutil.FromSqlString(row.Position, ""),
		Club:          sqlutil.FromSqlString(row.Club, ""),
		Status:        models.GradeStatus(sqlutil.FromSqlString(row.Status, string(models.GradeStatusWatch))),
		ScoutingLevel: models.ScoutingLevel(sqlutil.FromSqlString(row.ScoutingLevel, string(models.ScoutingLevelBasic))),
		Ability:       sqlutil.FromSqlInt16(row.Ability, models.DefaultAbility),
		Potential:     sqlutil.FromSqlInt16(row.Potential, models.DefaultPotential),
		Report:        sqlutil.FromSqlInt16(row.Report, models.DefaultReport),
		Attributes:    decodeRatings(row.Attributes),
		Potentials:    decodeRatings(row.Potentials),
		ScoutingTags:  []string(row.ScoutingTags),
		Verdict:       models.Verdict(sqlutil.FromSqlString(row.Verdict, string(models.VerdictMonitor))),
		Role:          sqlutil.FromSqlString(row.Role, ""),
		Conclusion:    sqlutil.FromSqlString(row.Conclusion, ""),
		Notes:         sqlutil.FromSqlString(row.Notes, ""),
		TransferFee:   sqlutil.FromSqlString(row.TransferFee, ""),
		Salary:        sqlutil.FromSqlString(row.Salary, ""),
		ScoutName:     sqlutil.FromSqlStringPtr(row.ScoutName),
		ScoutID:       sqlutil.FromNullUUID(row.ScoutID),
		GradedAt:      row.UpdatedAt,
	}
	if g.ScoutingTags == nil {
		g.ScoutingTags = []string{}
	}
	fillRatingDefaults(g)
	return g
}

func decodeRatings(raw pqtype.NullRawMessage) map[string]int {
	out := make(map[string]int, len(models.AttributeKeys))
	if !raw.Valid || len(raw.RawMessage) == 0 {
		return out
	}
	if err := json.Unmarshal(raw.RawMessage, &out); err != nil {
		return make(map[string]int, len(models.AttributeKeys))
	}
	return out
}
