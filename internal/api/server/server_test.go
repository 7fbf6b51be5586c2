package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"talkscript/internal/app/script"
	fixtures "talkscript/internal/app/testutil"
	"talkscript/internal/config"
)

func newTestServer(t *testing.T, p *fixtures.StubProvider) (*Server, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	settings := config.DefaultSettings()
	registry := prometheus.NewRegistry()
	srv := NewServer(settings, p, registry, zap.NewNop())
	return srv, registry
}

func postScript(t *testing.T, srv *Server, text string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-script", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func postAudio(t *testing.T, srv *Server, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_EndToEnd(t *testing.T) {
	stub := fixtures.NewStubProvider()
	stub.ResponseMap["meeting.mp3"] = fixtures.SampleTranscription
	srv, registry := newTestServer(t, stub)

	rec := postAudio(t, srv, "meeting.mp3", []byte("audio"))
	require.Equal(t, http.StatusOK, rec.Code)

	var transcription struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transcription))
	assert.Equal(t, "今日は会議の議事録です。予算について話しました。", transcription.Text)

	rec = postScript(t, srv, transcription.Text)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc script.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.Summary)
	assert.NotEmpty(t, doc.Sections)

	calls := stub.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "ja", calls[0].Language)
	assert.Equal(t, fixtures.SampleTranscription, calls[1].Text)

	count, err := testutil.GatherAndCount(registry, "talkscript_provider_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestServer_TruncatedGenerationIsCaught(t *testing.T) {
	stub := fixtures.NewStubProvider()
	stub.GenerateResponse = fixtures.TruncatedScriptJSON
	srv, _ := newTestServer(t, stub)

	rec := postScript(t, srv, fixtures.SampleTranscription)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "malformed JSON")
	assert.NotEmpty(t, body["request_id"])
}

func TestServer_InvalidShapeIsProviderError(t *testing.T) {
	stub := fixtures.NewStubProvider()
	stub.GenerateResponse = fixtures.WrongShapeScriptJSON
	srv, _ := newTestServer(t, stub)

	rec := postScript(t, srv, fixtures.SampleTranscription)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid shape")
}

func TestServer_MissingCredential(t *testing.T) {
	stub := fixtures.NewStubProvider()
	stub.Unconfigured = true
	srv, _ := newTestServer(t, stub)

	rec := postScript(t, srv, "hello")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing credential")

	rec = postAudio(t, srv, "a.mp3", []byte("x"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, stub.Calls())
}

func TestServer_EmptyTextDoesNotCallProvider(t *testing.T) {
	stub := fixtures.NewStubProvider()
	srv, _ := newTestServer(t, stub)

	rec := postScript(t, srv, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stub.Calls())
}

func TestServer_SystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, fixtures.NewStubProvider())

	tests := []struct {
		method   string
		path     string
		status   int
		contains string
	}{
		{http.MethodGet, "/health", http.StatusOK, "healthy"},
		{http.MethodGet, "/metrics", http.StatusOK, "talkscript_http_requests_total"},
		{http.MethodGet, "/", http.StatusOK, "トークスクリプトメーカー"},
		{http.MethodGet, "/app.js", http.StatusOK, "/api/generate-script"},
		{http.MethodGet, "/app.js", http.StatusOK, "/api/config"},
		{http.MethodGet, "/api/config", http.StatusOK, `"summary_label":"要約"`},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK, "/generate-script"},
		{http.MethodPost, "/api/unknown", http.StatusNotFound, "route not found"},
	}

	// one request first so the HTTP counter has a sample
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader("")))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestServer_UIConfigFollowsSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	settings := config.DefaultSettings()
	settings.Script.SummaryLabel = "Summary"
	srv := NewServer(settings, fixtures.NewStubProvider(), prometheus.NewRegistry(), zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Summary", body["summary_label"])
}
