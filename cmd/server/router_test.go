package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/study-notes-api/internal/api/shared"
	"github.com/phrazzld/study-notes-api/internal/domain"
	"github.com/phrazzld/study-notes-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContent = `{"definition":"D","points":["p1","p2","p3","p4"],"terms":["t1","t2","t3","t4"]}`

func newTestRouter(t *testing.T, gen *mocks.MockGenerator) http.Handler {
	t.Helper()
	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 64
	app := &application{config: cfg, logger: newTestLogger(), generator: gen}
	return app.setupRouter()
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, mocks.NewMockGeneratorWithNotes(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_GenerateSuccess(t *testing.T) {
	notes, err := domain.ParseStudyNotes(validContent)
	require.NoError(t, err)
	router := newTestRouter(t, mocks.NewMockGeneratorWithNotes(notes))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"topic":"photosynthesis"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, validContent, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))
}

func TestRouter_GenerateMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, mocks.NewMockGeneratorWithNotes(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

func TestRouter_BodyLimit(t *testing.T) {
	gen := mocks.NewMockGeneratorWithNotes(nil)
	router := newTestRouter(t, gen)

	body := `{"topic":"` + strings.Repeat("x", 128) + `"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request format"}`, w.Body.String())
	assert.Zero(t, gen.CallCount())
}

func TestRouter_PanicBecomesInternalError(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateNotesFn: func(_ context.Context, _ domain.Topic) (*domain.StudyNotes, error) {
			panic("unexpected")
		},
	}
	router := newTestRouter(t, gen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"topic":"photosynthesis"}`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
