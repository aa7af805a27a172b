package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/confession-wall/internal/apperror"
	"github.com/sakif/confession-wall/internal/handler"
	"github.com/sakif/confession-wall/internal/model"
	sqliteRepo "github.com/sakif/confession-wall/internal/repository/sqlite"
	"github.com/sakif/confession-wall/internal/service"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testApp wires real services over an in-memory SQLite database.
type testApp struct {
	db     *sqliteRepo.DB
	router chi.Router
}

func newTestApp(t *testing.T, opts service.Options) *testApp {
	t.Helper()
	db, err := sqliteRepo.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &testApp{
		db: db,
		router: newRouter(
			service.NewAdviceService(db, opts, testLogger),
			service.NewConfessionService(db, opts, testLogger),
		),
	}
}

func newRouter(advice handler.AdviceService, confessions handler.ConfessionService) chi.Router {
	ah := handler.NewAdviceHandler(advice, testLogger)
	ch := handler.NewConfessionHandler(confessions, testLogger)

	r := chi.NewRouter()
	r.Get("/api/advice", ah.HandleList)
	r.Post("/api/advice", ah.HandleCreate)
	r.Get("/api/advice/{id}", ah.HandleGet)
	r.Get("/api/confessions", ch.HandleList)
	r.Post("/api/confessions", ch.HandleCreate)
	r.Post("/api/confessions/likes", ch.HandleLike)
	r.Get("/api/confessions/{id}", ch.HandleGet)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func assertJSON(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "application/json; charset=UTF-8", rr.Header().Get("Content-Type"))
}

func (a *testApp) seedConfession(t *testing.T, content string) *model.Confession {
	t.Helper()
	c := &model.Confession{Content: content, UserID: 1}
	require.NoError(t, a.db.CreateConfession(context.Background(), c))
	return c
}

func (a *testApp) likesOf(t *testing.T, id int64) int {
	t.Helper()
	c, err := a.db.GetConfession(context.Background(), id)
	require.NoError(t, err)
	return c.Likes
}

// failingService fails every call with err. It stands in for both services.
type failingService struct {
	err error
}

func (f failingService) Create(context.Context, string, int64) (*model.Advice, error) {
	return nil, f.err
}
func (f failingService) List(context.Context) ([]model.Advice, error) { return nil, f.err }
func (f failingService) Get(context.Context, int64) (*model.Advice, error) {
	return nil, f.err
}

type failingConfessions struct {
	err error
}

func (f failingConfessions) AddLike(context.Context, int64) error { return f.err }
func (f failingConfessions) Create(context.Context, string, int64) (*model.Confession, error) {
	return nil, f.err
}
func (f failingConfessions) List(context.Context) ([]model.Confession, error) { return nil, f.err }
func (f failingConfessions) Get(context.Context, int64) (*model.Confession, error) {
	return nil, f.err
}

var errStorage = apperror.Storage("sqlite: listing advice", errors.New("database is locked"))
