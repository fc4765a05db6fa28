package grades

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacauscout/scout/go/internal/feed"
	"github.com/bacauscout/scout/go/internal/models"
)

type memRepo struct {
	grades    map[string]*models.Grade
	upsertErr error
}

func newMemRepo() *memRepo {
	return &memRepo{grades: make(map[string]*models.Grade)}
}

func (m *memRepo) GetGrade(_ context.Context, playerID string) (*models.Grade, error) {
	g, ok := m.grades[playerID]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (m *memRepo) ReportExists(_ context.Context, id uuid.UUID) (bool, error) {
	for _, g := range m.grades {
		if g.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) ListGrades(context.Context) ([]models.Grade, error) {
	out := make([]models.Grade, 0, len(m.grades))
	for _, g := range m.grades {
		out = append(out, *g)
	}
	return out, nil
}

func (m *memRepo) UpsertGrade(_ context.Context, g *models.Grade) (*models.Grade, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	cp := *g
	m.grades[g.PlayerID] = &cp
	return &cp, nil
}

func (m *memRepo) DeleteGrade(_ context.Context, playerID string) error {
	if _, ok := m.grades[playerID]; !ok {
		return ErrGradeNotFound
	}
	delete(m.grades, playerID)
	return nil
}

type recorder struct {
	mu     sync.Mutex
	events []feed.Event
	err    error
}

func (r *recorder) Publish(_ context.Context, ev feed.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func intp(v int) *int { return &v }

func strp(s string) *string { return &s }

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestApp() (*App, *memRepo, *recorder, *clockwork.FakeClock) {
	repo := newMemRepo()
	rec := &recorder{}
	clock := clockwork.NewFakeClockAt(testNow)
	return NewApp(repo, rec, clock), repo, rec, clock
}

func TestSaveGrade_NewReportGetsDefaults(t *testing.T) {
	app, _, rec, _ := newTestApp()

	g, err := app.SaveGrade(context.Background(), "100", SaveGradeRequest{
		PlayerName: strp("Ștefan Târnovanu"),
		Ability:    intp(4),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, "100", g.PlayerID)
	assert.Equal(t, "Ștefan Târnovanu", g.PlayerName)
	assert.Equal(t, 4, g.Ability)
	assert.Equal(t, models.DefaultPotential, g.Potential)
	assert.Equal(t, models.DefaultReport, g.Report)
	assert.Equal(t, models.GradeStatusWatch, g.Status)
	assert.Equal(t, models.ScoutingLevelBasic, g.ScoutingLevel)
	assert.Equal(t, models.VerdictMonitor, g.Verdict)
	assert.Equal(t, testNow, g.GradedAt)
	assert.Len(t, g.Attributes, len(models.AttributeKeys))
	assert.Equal(t, 3, g.Attributes["physSpeed"])
	assert.Equal(t, 4, g.Potentials["physSpeed"])
	assert.Empty(t, g.ScoutingTags)

	require.Len(t, rec.events, 1)
	assert.Equal(t, feed.EventGradeSaved, rec.events[0].Type)
	assert.Equal(t, "100", rec.events[0].PlayerID)
}

func TestSaveGrade_MergesOntoExisting(t *testing.T) {
	app, repo, _, clock := newTestApp()
	ctx := context.Background()

	first, err := app.SaveGrade(ctx, "100", SaveGradeRequest{
		Notes:      strp("quick feet"),
		Attributes: map[string]int{"techDribbling": 5},
	})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	verdict := models.VerdictSign
	second, err := app.SaveGrade(ctx, "100", SaveGradeRequest{
		Verdict:    &verdict,
		Attributes: map[string]int{"physSpeed": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "quick feet", second.Notes)
	assert.Equal(t, models.VerdictSign, second.Verdict)
	assert.Equal(t, 5, second.Attributes["techDribbling"])
	assert.Equal(t, 2, second.Attributes["physSpeed"])
	assert.Equal(t, testNow.Add(time.Hour), second.GradedAt)
	assert.Len(t, repo.grades, 1)
}

func TestSaveGrade_Validation(t *testing.T) {
	badStatus := models.GradeStatus("RESERVE")
	badVerdict := models.Verdict("Maybe")

	tests := []struct {
		name     string
		playerID string
		req      SaveGradeRequest
	}{
		{name: "empty player id", playerID: " ", req: SaveGradeRequest{}},
		{name: "ability too high", playerID: "1", req: SaveGradeRequest{Ability: intp(6)}},
		{name: "report too low", playerID: "1", req: SaveGradeRequest{Report: intp(0)}},
		{name: "unknown status", playerID: "1", req: SaveGradeRequest{Status: &badStatus}},
		{name: "unknown verdict", playerID: "1", req: SaveGradeRequest{Verdict: &badVerdict}},
		{name: "unknown attribute", playerID: "1", req: SaveGradeRequest{Attributes: map[string]int{"charisma": 3}}},
		{name: "potential out of range", playerID: "1", req: SaveGradeRequest{Potentials: map[string]int{"physSpeed": 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo, rec, _ := newTestApp()
			_, err := app.SaveGrade(context.Background(), tt.playerID, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGrade)
			assert.Empty(t, repo.grades)
			assert.Empty(t, rec.events)
		})
	}
}

func TestSaveGrade_PublishFailureDoesNotFailSave(t *testing.T) {
	app, repo, rec, _ := newTestApp()
	rec.err = errors.New("broker down")

	_, err := app.SaveGrade(context.Background(), "100", SaveGradeRequest{})
	require.NoError(t, err)
	assert.Contains(t, repo.grades, "100")
}

func TestSaveGrade_RepositoryError(t *testing.T) {
	app, repo, rec, _ := newTestApp()
	repo.upsertErr = errors.New("connection reset")

	_, err := app.SaveGrade(context.Background(), "100", SaveGradeRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidGrade)
	assert.Empty(t, rec.events)
}

func TestGetGrade_Absent(t *testing.T) {
	app, _, _, _ := newTestApp()

	g, err := app.GetGrade(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestDeleteGrade(t *testing.T) {
	app, repo, rec, _ := newTestApp()
	ctx := context.Background()

	_, err := app.SaveGrade(ctx, "100", SaveGradeRequest{})
	require.NoError(t, err)

	require.NoError(t, app.DeleteGrade(ctx, "100"))
	assert.Empty(t, repo.grades)
	require.Len(t, rec.events, 2)
	assert.Equal(t, feed.EventGradeDeleted, rec.events[1].Type)

	err = app.DeleteGrade(ctx, "100")
	assert.ErrorIs(t, err, ErrGradeNotFound)
}
