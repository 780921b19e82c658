package genieacs

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) repository.DeviceRepository {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.ACSConfig{URL: srv.URL + "/", Username: "acs", Password: "secret"}

	return NewClient(cfg, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_ListDevices(t *testing.T) {
	repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/devices", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "acs", user)
		assert.Equal(t, "secret", pass)

		_, _ = w.Write([]byte(`[
			{"_id":"dev-1","_tags":["081234567890"]},
			{"_id":"dev-2","_tags":{"customerNumber":"6285700000000"}}
		]`))
	})

	devices, err := repo.ListDevices(t.Context())
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "dev-1", devices[0].ID)
	assert.Equal(t, "6285700000000", devices[1].Tags.CustomerNumber())
}

func TestClient_FindDeviceByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/devices/", r.URL.Path)
			assert.JSONEq(t, `{"_id":"00259E-HG8245H-4857"}`, r.URL.Query().Get("query"))
			_, _ = w.Write([]byte(`[{"_id":"00259E-HG8245H-4857"}]`))
		})

		device, err := repo.FindDeviceByID(t.Context(), "00259E-HG8245H-4857")
		require.NoError(t, err)
		assert.Equal(t, "00259E-HG8245H-4857", device.ID)
	})

	t.Run("empty result", func(t *testing.T) {
		repo := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := repo.FindDeviceByID(t.Context(), "missing")
		assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	})
}

func TestClient_PushTask(t *testing.T) {
	var gotBody map[string]any
	var gotQuery string

	repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/devices/dev 1/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	task := entity.NewSetParameterValuesTask(entity.ParameterValue{
		Path:  entity.SSIDPath(entity.Band2G),
		Value: "MyHome",
		Type:  entity.XSDString,
	})

	require.NoError(t, repo.PushTask(t.Context(), "dev 1", task, true))
	assert.Equal(t, "connection_request", gotQuery)
	assert.Equal(t, string(entity.TaskSetParameterValues), gotBody["name"])
	assert.Equal(t, []any{[]any{entity.SSIDPath(entity.Band2G), "MyHome", entity.XSDString}}, gotBody["parameterValues"])
}

func TestClient_Tags(t *testing.T) {
	var calls []string

	repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, repo.AddTag(t.Context(), "dev-1", "customerName:Budi Santoso"))
	require.NoError(t, repo.RemoveTag(t.Context(), "dev-1", "081234567890"))

	assert.Equal(t, []string{
		"POST /devices/dev-1/tags/customerName:Budi%20Santoso",
		"DELETE /devices/dev-1/tags/081234567890",
	}, calls)
}

func TestClient_StatusError(t *testing.T) {
	repo := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := repo.PushTask(t.Context(), "dev-1", entity.NewRebootTask(), false)
	require.Error(t, err)

	statusErr, ok := errors.AsType[*StatusError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "status 500: boom")
}
