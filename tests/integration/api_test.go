package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/httpserver/routes"
	"github.com/resfinder/resfinder/internal/logger"
	"github.com/resfinder/resfinder/internal/store"
)

const adminHeader = "X-User-Email"

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	dataDir := t.TempDir()
	docs := store.NewFileStore(dataDir)
	dir := directory.NewService(docs, logger.New("error", false))
	require.NoError(t, dir.EnsureDocuments())

	d := deps.Deps{
		Logger:      logger.New("error", false),
		StartTime:   time.Now(),
		Directory:   dir,
		AdminHeader: adminHeader,
		RateLimiter: func(next http.Handler) http.Handler { return next },
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	routes.RegisterAll(r, d)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, dataDir
}

func do(t *testing.T, method, url string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, true, body["ok"])
}

func TestAdminLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// Adding an admin cascades into the user set.
	resp := do(t, http.MethodPost, srv.URL+"/api/admins", map[string]string{"email": " Boss@Example.EDU "}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"boss@example.edu"}, decodeBody[[]string](t, resp))

	resp = do(t, http.MethodGet, srv.URL+"/api/users", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, decodeBody[[]string](t, resp), "boss@example.edu")

	// Removing an admin requires the gate.
	resp = do(t, http.MethodDelete, srv.URL+"/api/admins", map[string]string{"email": "boss@example.edu"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, http.MethodDelete, srv.URL+"/api/admins",
		map[string]string{"email": "boss@example.edu"},
		map[string]string{adminHeader: "boss@example.edu"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]string](t, resp))
}

func TestUserValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/users", map[string]string{"email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/users", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/users", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]string](t, resp))
}

func TestResourceCRUD(t *testing.T) {
	srv, dataDir := newTestServer(t)

	adminHdr := map[string]string{adminHeader: "boss@example.edu"}
	resp := do(t, http.MethodPost, srv.URL+"/api/admins", map[string]string{"email": "boss@example.edu"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	newRoom := map[string]any{
		"name":     "Study Room A",
		"type":     "Room",
		"building": "Library",
		"hours":    map[string]any{"Mon": map[string]string{"open": "09:00", "close": "17:00"}},
	}

	// Without the identity header, mutation is forbidden.
	resp = do(t, http.MethodPost, srv.URL+"/api/resources", newRoom, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/resources", newRoom, adminHdr)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[directory.Resource](t, resp)
	assert.Equal(t, "1", created.ID)
	assert.Equal(t, "room", created.Type)
	assert.Equal(t, directory.DayHours{Open: "09:00", Close: "17:00"}, created.Hours.Mon)
	assert.Equal(t, directory.DayHours{Closed: true}, created.Hours.Sun)

	resp = do(t, http.MethodGet, srv.URL+"/api/resources", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decodeBody[[]directory.Resource](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])

	resp = do(t, http.MethodPut, srv.URL+"/api/resources/1", map[string]string{"name": "Quiet Room"}, adminHdr)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Quiet Room", decodeBody[directory.Resource](t, resp).Name)

	resp = do(t, http.MethodPut, srv.URL+"/api/resources/99", map[string]string{"name": "X"}, adminHdr)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, srv.URL+"/api/resources/1", nil, adminHdr)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "1", body["deleted"])

	resp = do(t, http.MethodDelete, srv.URL+"/api/resources/1", nil, adminHdr)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// State persisted as flat JSON documents on disk.
	data, err := os.ReadFile(filepath.Join(dataDir, "resources.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestLastWriteWinsAcrossInstances(t *testing.T) {
	dataDir := t.TempDir()
	log := logger.New("error", false)

	// Two services over the same files behave like two processes.
	a := directory.NewService(store.NewFileStore(dataDir), log)
	b := directory.NewService(store.NewFileStore(dataDir), log)

	_, err := a.Users.Add("first@example.edu")
	require.NoError(t, err)

	// b sees a's write immediately: no in-memory caching anywhere.
	list, err := b.Users.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"first@example.edu"}, list)
}
