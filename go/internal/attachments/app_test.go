package attachments

import (
	"context"
	"errors"
	"io"
	"strings"
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
	rows      []models.Attachment
	createErr error
}

func (m *memRepo) CreateAttachment(_ context.Context, a *models.Attachment) (*models.Attachment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.rows = append(m.rows, *a)
	cp := *a
	return &cp, nil
}

func (m *memRepo) ListAttachments(_ context.Context, reportID uuid.UUID) ([]models.Attachment, error) {
	out := []models.Attachment{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].ReportID == reportID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memRepo) DeleteAttachment(_ context.Context, reportID, id uuid.UUID) (*models.Attachment, error) {
	for i, a := range m.rows {
		if a.ID == id && a.ReportID == reportID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return &a, nil
		}
	}
	return nil, ErrAttachmentNotFound
}

type reportSet map[uuid.UUID]bool

func (r reportSet) ReportExists(_ context.Context, id uuid.UUID) (bool, error) {
	return r[id], nil
}

type memStore struct {
	objects   map[string]string
	types     map[string]string
	removeErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]string{}, types: map[string]string{}}
}

func (m *memStore) Upload(_ context.Context, bucket, key, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[bucket+"/"+key] = string(data)
	m.types[bucket+"/"+key] = contentType
	return nil
}

func (m *memStore) PublicURL(bucket, key string) string {
	return "https://storage.test/public/" + bucket + "/" + key
}

func (m *memStore) ObjectKey(bucket, publicURL string) (string, bool) {
	prefix := "https://storage.test/public/" + bucket + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(publicURL, prefix), true
}

func (m *memStore) Remove(_ context.Context, bucket string, keys ...string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	for _, k := range keys {
		delete(m.objects, bucket+"/"+k)
	}
	return nil
}

type recorder struct {
	events []feed.Event
}

func (r *recorder) Publish(_ context.Context, ev feed.Event) error {
	r.events = append(r.events, ev)
	return nil
}

var (
	testNow    = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)
	testReport = uuid.MustParse("7d9f1c3e-2b4a-4c55-9e61-0a1b2c3d4e5f")
)

type fixture struct {
	app   *App
	repo  *memRepo
	store *memStore
	rec   *recorder
}

func newFixture() fixture {
	f := fixture{repo: &memRepo{}, store: newMemStore(), rec: &recorder{}}
	f.app = NewApp(f.repo, reportSet{testReport: true}, f.store, f.rec,
		clockwork.NewFakeClockAt(testNow), Config{})
	return f
}

func pdfUpload(name string) UploadRequest {
	return UploadRequest{
		ReportID:    testReport.String(),
		FileName:    name,
		ContentType: "application/pdf",
		Size:        4,
		Label:       " match report ",
		Body:        strings.NewReader("%PDF"),
	}
}

func TestUpload_StoresObjectAndRow(t *testing.T) {
	f := newFixture()

	att, err := f.app.Upload(context.Background(), pdfUpload("scout notes (v2).pdf"))
	require.NoError(t, err)

	key := testReport.String() + "/1715329800000-scout_notes__v2_.pdf"
	assert.Equal(t, "%PDF", f.store.objects["attachments/"+key])
	assert.Equal(t, "application/pdf", f.store.types["attachments/"+key])
	assert.Equal(t, "https://storage.test/public/attachments/"+key, att.URL)
	assert.Equal(t, "scout notes (v2).pdf", att.FileName)
	assert.Equal(t, testReport, att.ReportID)
	require.NotNil(t, att.Label)
	assert.Equal(t, "match report", *att.Label)
	assert.Equal(t, testNow, att.CreatedAt)
	assert.Len(t, f.repo.rows, 1)

	require.Len(t, f.rec.events, 1)
	assert.Equal(t, feed.EventAttachmentAdded, f.rec.events[0].Type)
}

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UploadRequest)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing report id",
			mutate:  func(r *UploadRequest) { r.ReportID = "" },
			wantErr: ErrInvalidUpload,
			wantMsg: "required",
		},
		{
			name:    "extension not allowed",
			mutate:  func(r *UploadRequest) { r.FileName = "tool.exe" },
			wantErr: ErrInvalidUpload,
			wantMsg: "File type .exe not allowed",
		},
		{
			name:    "mime not allowed",
			mutate:  func(r *UploadRequest) { r.ContentType = "text/html" },
			wantErr: ErrInvalidUpload,
			wantMsg: "MIME type text/html not allowed",
		},
		{
			name:    "too large",
			mutate:  func(r *UploadRequest) { r.Size = DefaultMaxSize + 1 },
			wantErr: ErrInvalidUpload,
			wantMsg: "Max size: 50MB",
		},
		{
			name:    "unknown report",
			mutate:  func(r *UploadRequest) { r.ReportID = uuid.NewString() },
			wantErr: ErrReportNotFound,
		},
		{
			name:    "malformed report id",
			mutate:  func(r *UploadRequest) { r.ReportID = "not-a-uuid" },
			wantErr: ErrReportNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := pdfUpload("a.pdf")
			tt.mutate(&req)

			_, err := f.app.Upload(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, f.store.objects)
			assert.Empty(t, f.repo.rows)
		})
	}
}

func TestUpload_ExtensionIsCaseInsensitive(t *testing.T) {
	f := newFixture()
	req := pdfUpload("CLIP.MOV")
	req.ContentType = "video/quicktime"

	_, err := f.app.Upload(context.Background(), req)
	assert.NoError(t, err)
}

func TestDelete_RemovesObject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	att, err := f.app.Upload(ctx, pdfUpload("a.pdf"))
	require.NoError(t, err)

	require.NoError(t, f.app.Delete(ctx, testReport, att.ID))
	assert.Empty(t, f.store.objects)
	assert.Empty(t, f.repo.rows)
	assert.Equal(t, feed.EventAttachmentRemoved, f.rec.events[len(f.rec.events)-1].Type)
}

func TestDelete_StorageFailureStillDeletesRow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	att, err := f.app.Upload(ctx, pdfUpload("a.pdf"))
	require.NoError(t, err)
	f.store.removeErr = errors.New("storage unavailable")

	require.NoError(t, f.app.Delete(ctx, testReport, att.ID))
	assert.Empty(t, f.repo.rows)
}

func TestDelete_WrongReport(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	att, err := f.app.Upload(ctx, pdfUpload("a.pdf"))
	require.NoError(t, err)

	err = f.app.Delete(ctx, uuid.New(), att.ID)
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
	assert.Len(t, f.repo.rows, 1)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Ra_zvan_M_rin.mp4", sanitizeFileName("Ra zvan Mărin.mp4"))
	assert.Equal(t, "clip-01_final.mov", sanitizeFileName("clip-01_final.mov"))
}

func TestUpload_RemovesObjectWhenInsertFails(t *testing.T) {
	f := newFixture()
	f.repo.createErr = errors.New("insert failed")

	_, err := f.app.Upload(context.Background(), pdfUpload("notes.pdf"))
	require.Error(t, err)

	assert.Empty(t, f.store.objects)
	assert.Empty(t, f.rec.events)
}

func TestUpload_InsertErrorSurvivesFailedCleanup(t *testing.T) {
	f := newFixture()
	f.repo.createErr = errors.New("insert failed")
	f.store.removeErr = errors.New("storage down")

	_, err := f.app.Upload(context.Background(), pdfUpload("notes.pdf"))
	assert.EqualError(t, err, "insert failed")
	assert.Len(t, f.store.objects, 1)
}
