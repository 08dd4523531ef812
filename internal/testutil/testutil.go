// Package testutil provides shared test helpers for settings files and a fake WaniKani API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wanipop/internal/config"
)

// TestAPIKey is the only key accepted by NewWanikaniServer.
const TestAPIKey = "test-api-key"

// UserJSON is a /user response for TestAPIKey.
const UserJSON = `{"object":"user","url":"https://api.wanikani.com/v2/user","data_updated_at":"2024-01-01T00:00:00Z","data":{"id":"5a6a5234-a392-4a87-8f3f-33342afe8a42","username":"koichi","level":3,"profile_url":"https://www.wanikani.com/users/koichi","subscription":{"active":true,"max_level_granted":60,"type":"lifetime"}}}`

// ConfigOption changes the settings written by SetupTestConfig.
type ConfigOption func(*config.Settings)

// WithAPIKey sets the API key. An empty key removes it.
func WithAPIKey(key string) ConfigOption {
	return func(settings *config.Settings) {
		if key == "" {
			settings.WanikaniAPIKey = nil
			return
		}
		settings.WanikaniAPIKey = &key
	}
}

func WithBatchSize(size int) ConfigOption {
	return func(settings *config.Settings) {
		settings.NumOfReviewsPerBatch = size
	}
}

// SetupTestConfig writes a settings file in tmpDir and returns its path.
// By default the file has the default settings and TestAPIKey.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	settings := config.DefaultSettings()
	WithAPIKey(TestAPIKey)(&settings)
	for _, opt := range opts {
		opt(&settings)
	}

	contents, err := json.MarshalIndent(settings, "", "  ")
	require.NoError(t, err)
	cfgPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, contents, 0o600))
	return cfgPath
}

// SummaryJSON returns a /summary response with one review bucket.
func SummaryJSON(availableAt time.Time, subjectIDs ...int) string {
	ids := make([]string, 0, len(subjectIDs))
	for _, id := range subjectIDs {
		ids = append(ids, fmt.Sprint(id))
	}
	return fmt.Sprintf(
		`{"object":"report","data_updated_at":"2024-01-01T00:00:00Z","data":{"lessons":[],"reviews":[{"available_at":%q,"subject_ids":[%s]}],"next_reviews_at":%q}}`,
		availableAt.UTC().Format(time.RFC3339), strings.Join(ids, ","), availableAt.UTC().Format(time.RFC3339),
	)
}

// NewWanikaniServer serves a fixed JSON body for each path of routes.
// Requests without TestAPIKey are rejected with 401 and unknown paths get 404.
func NewWanikaniServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+TestAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized. Nice try.","code":401}`))
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not found","code":404}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
