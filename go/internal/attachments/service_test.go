package attachments

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacauscout/scout/go/internal/models"
)

func newTestRouter(f fixture) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", NewService(f.app).Routes)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestService_UploadListDelete(t *testing.T) {
	f := newFixture()
	h := newTestRouter(f)

	body, ct := multipartBody(t, map[string]string{"reportId": testReport.String(), "label": "Highlights"},
		"goal.png", "image/png", []byte("PNGDATA"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var att models.Attachment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &att))
	assert.Equal(t, "goal.png", att.FileName)
	assert.Equal(t, int64(7), att.FileSize)
	require.NotNil(t, att.Label)
	assert.Equal(t, "Highlights", *att.Label)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/attachments/"+testReport.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Attachment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, att.ID, list[0].ID)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/attachments/"+testReport.String()+"?id="+att.ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestService_UploadErrors(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		fileName   string
		fileType   string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no file",
			fields:     map[string]string{"reportId": testReport.String()},
			wantStatus: http.StatusBadRequest,
			wantBody:   "File and reportId are required",
		},
		{
			name:       "bad extension",
			fields:     map[string]string{"reportId": testReport.String()},
			fileName:   "notes.txt",
			fileType:   "text/plain",
			wantStatus: http.StatusBadRequest,
			wantBody:   "File type .txt not allowed",
		},
		{
			name:       "unknown report",
			fields:     map[string]string{"reportId": uuid.NewString()},
			fileName:   "a.pdf",
			fileType:   "application/pdf",
			wantStatus: http.StatusNotFound,
			wantBody:   "Report not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(newFixture())
			body, ct := multipartBody(t, tt.fields, tt.fileName, tt.fileType, []byte("x"))
			req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestService_DeleteRequiresID(t *testing.T) {
	h := newTestRouter(newFixture())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/attachments/"+testReport.String(), nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/attachments/"+testReport.String()+"?id="+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
