package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func readSettingsFile(t *testing.T, path string) Settings {
	t.Helper()
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	var settings Settings
	require.NoError(t, json.Unmarshal(contents, &settings))
	return settings
}

func TestLoadOrCreate(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		want              Settings
		wantErr           bool
		wantErrorContains []string
	}{
		{
			name: "first run creates defaults",
			want: DefaultSettings(),
		},
		{
			name: "valid settings file",
			configContent: `{
  "num_of_reviews_per_batch": 10,
  "time_between_popups_in_minutes": 30,
  "wanikani_api_key": "abcd-1234",
  "hide_window_decorations": true
}`,
			want: Settings{
				NumOfReviewsPerBatch:       10,
				TimeBetweenPopupsInMinutes: 30,
				WanikaniAPIKey:             ptr("abcd-1234"),
				HideWindowDecorations:      true,
			},
		},
		{
			name:          "null api key",
			configContent: `{"num_of_reviews_per_batch": 3, "time_between_popups_in_minutes": 60, "wanikani_api_key": null, "hide_window_decorations": false}`,
			want: Settings{
				NumOfReviewsPerBatch:       3,
				TimeBetweenPopupsInMinutes: 60,
			},
		},
		{
			name:          "partial file uses defaults",
			configContent: `{"wanikani_api_key": "key"}`,
			want: Settings{
				NumOfReviewsPerBatch:       DefaultNumOfReviewsPerBatch,
				TimeBetweenPopupsInMinutes: DefaultTimeBetweenPopupsInMinutes,
				WanikaniAPIKey:             ptr("key"),
			},
		},
		{
			name:          "invalid json",
			configContent: `{"num_of_reviews_per_batch": `,
			wantErr:       true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
			},
		},
		{
			name:          "invalid values",
			configContent: `{"num_of_reviews_per_batch": 0, "time_between_popups_in_minutes": 0}`,
			wantErr:       true,
			wantErrorContains: []string{
				"invalid configuration",
				"num_of_reviews_per_batch",
				"time_between_popups_in_minutes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wanipop", "config.json")
			if tt.configContent != "" {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(tt.configContent), 0o644))
			}

			store, err := LoadOrCreate(path)
			if tt.wantErr {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Snapshot())
			assert.Equal(t, path, store.Path())
			assert.FileExists(t, path)
		})
	}
}

func TestStore_Setters(t *testing.T) {
	tests := []struct {
		name              string
		update            func(store *Store) error
		want              Settings
		wantErrorContains string
	}{
		{
			name: "set api key",
			update: func(store *Store) error {
				return store.SetAPIKey("  new-key ")
			},
			want: Settings{
				NumOfReviewsPerBatch:       DefaultNumOfReviewsPerBatch,
				TimeBetweenPopupsInMinutes: DefaultTimeBetweenPopupsInMinutes,
				WanikaniAPIKey:             ptr("new-key"),
			},
		},
		{
			name: "empty api key is rejected",
			update: func(store *Store) error {
				return store.SetAPIKey("   ")
			},
			want:              DefaultSettings(),
			wantErrorContains: "wanikani_api_key must not be empty (the WaniKani API token)",
		},
		{
			name: "set batch size",
			update: func(store *Store) error {
				return store.SetNumOfReviewsPerBatch(12)
			},
			want: Settings{
				NumOfReviewsPerBatch:       12,
				TimeBetweenPopupsInMinutes: DefaultTimeBetweenPopupsInMinutes,
			},
		},
		{
			name: "zero batch size is rejected",
			update: func(store *Store) error {
				return store.SetNumOfReviewsPerBatch(0)
			},
			want:              DefaultSettings(),
			wantErrorContains: "num_of_reviews_per_batch must be at least 1 (the number of reviews in a batch)",
		},
		{
			name: "set interval",
			update: func(store *Store) error {
				return store.SetTimeBetweenPopupsInMinutes(15)
			},
			want: Settings{
				NumOfReviewsPerBatch:       DefaultNumOfReviewsPerBatch,
				TimeBetweenPopupsInMinutes: 15,
			},
		},
		{
			name: "negative interval is rejected",
			update: func(store *Store) error {
				return store.SetTimeBetweenPopupsInMinutes(-1)
			},
			want:              DefaultSettings(),
			wantErrorContains: "time_between_popups_in_minutes must be at least 1 (the minutes between review checks)",
		},
		{
			name: "set hide window decorations",
			update: func(store *Store) error {
				return store.SetHideWindowDecorations(true)
			},
			want: Settings{
				NumOfReviewsPerBatch:       DefaultNumOfReviewsPerBatch,
				TimeBetweenPopupsInMinutes: DefaultTimeBetweenPopupsInMinutes,
				HideWindowDecorations:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			store, err := LoadOrCreate(path)
			require.NoError(t, err)

			err = tt.update(store)
			if tt.wantErrorContains != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSettings)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, store.Snapshot())
			assert.Equal(t, tt.want, readSettingsFile(t, path))

			reloaded, err := LoadOrCreate(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reloaded.Snapshot())
		})
	}
}

func TestStore_APIKey(t *testing.T) {
	store, err := LoadOrCreate(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	_, err = store.APIKey()
	assert.ErrorIs(t, err, ErrAPIKeyMissing)

	require.NoError(t, store.SetAPIKey("secret"))
	key, err := store.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store, err := LoadOrCreate(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.NoError(t, store.SetAPIKey("original"))

	snapshot := store.Snapshot()
	*snapshot.WanikaniAPIKey = "changed"

	key, err := store.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "original", key)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := LoadOrCreate(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(value int) {
			defer wg.Done()
			assert.NoError(t, store.SetNumOfReviewsPerBatch(value))
			_ = store.Snapshot()
		}(i)
	}
	wg.Wait()

	// the file always holds the last committed value
	assert.Equal(t, store.Snapshot(), readSettingsFile(t, path))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSettings_Masked(t *testing.T) {
	tests := []struct {
		name string
		key  *string
		want *string
	}{
		{name: "no key", key: nil, want: nil},
		{name: "long key", key: ptr("abcdefgh-1234"), want: ptr("*********1234")},
		{name: "short key", key: ptr("abc"), want: ptr("***")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			settings.WanikaniAPIKey = tt.key

			got := settings.Masked()
			assert.Equal(t, tt.want, got.WanikaniAPIKey)
			assert.Equal(t, tt.key, settings.WanikaniAPIKey)
		})
	}
}

func TestSettings_TimeBetweenPopups(t *testing.T) {
	settings := Settings{TimeBetweenPopupsInMinutes: 90}
	assert.Equal(t, 90*time.Minute, settings.TimeBetweenPopups())
}
