// Package config loads and persists the wanipop settings record.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultNumOfReviewsPerBatch       = 5
	DefaultTimeBetweenPopupsInMinutes = 60

	appDirectory   = "wanipop"
	configFileName = "config.json"
)

var (
	// ErrAPIKeyMissing is returned when no WaniKani API key has been set.
	ErrAPIKeyMissing = errors.New("no api key set")
	// ErrInvalidSettings is returned when a value fails validation.
	ErrInvalidSettings = errors.New("invalid configuration")
)

// Settings is the record stored in config.json.
type Settings struct {
	NumOfReviewsPerBatch       int     `mapstructure:"num_of_reviews_per_batch" json:"num_of_reviews_per_batch" yaml:"num_of_reviews_per_batch" validate:"min=1"`
	TimeBetweenPopupsInMinutes int     `mapstructure:"time_between_popups_in_minutes" json:"time_between_popups_in_minutes" yaml:"time_between_popups_in_minutes" validate:"min=1"`
	WanikaniAPIKey             *string `mapstructure:"wanikani_api_key" json:"wanikani_api_key" yaml:"wanikani_api_key" validate:"omitnil,min=1"`
	HideWindowDecorations      bool    `mapstructure:"hide_window_decorations" json:"hide_window_decorations" yaml:"hide_window_decorations"`
}

func DefaultSettings() Settings {
	return Settings{
		NumOfReviewsPerBatch:       DefaultNumOfReviewsPerBatch,
		TimeBetweenPopupsInMinutes: DefaultTimeBetweenPopupsInMinutes,
	}
}

// TimeBetweenPopups returns the popup interval as a duration.
func (s Settings) TimeBetweenPopups() time.Duration {
	return time.Duration(s.TimeBetweenPopupsInMinutes) * time.Minute
}

// Masked returns a copy that is safe to print, with all but the last 4 characters of the API key hidden.
func (s Settings) Masked() Settings {
	masked := s.clone()
	if masked.WanikaniAPIKey == nil {
		return masked
	}
	key := *masked.WanikaniAPIKey
	visible := 4
	if len(key) <= visible {
		visible = 0
	}
	hidden := strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
	masked.WanikaniAPIKey = &hidden
	return masked
}

func (s Settings) clone() Settings {
	if s.WanikaniAPIKey != nil {
		key := *s.WanikaniAPIKey
		s.WanikaniAPIKey = &key
	}
	return s
}

// DefaultPath returns <user config dir>/wanipop/config.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("os.UserConfigDir > %w", err)
	}
	return filepath.Join(configDir, appDirectory, configFileName), nil
}

// Store guards the settings shared by the CLI, the scheduler and the RPC handlers.
// Every setter rewrites the file before the new value becomes visible.
// Callers copy what they need with Snapshot and must not keep the lock across network calls.
type Store struct {
	mu       sync.Mutex
	path     string
	settings Settings

	validator  *validator.Validate
	translator ut.Translator
}

// LoadOrCreate reads the settings at path, or writes the defaults there if the file does not exist.
func LoadOrCreate(path string) (*Store, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}
	store := &Store{
		path:       path,
		validator:  validate,
		translator: trans,
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		store.settings = DefaultSettings()
		if err := store.save(store.settings); err != nil {
			return nil, fmt.Errorf("failed to create default settings at %s: %w", path, err)
		}
		return store, nil
	} else if err != nil {
		return nil, fmt.Errorf("os.Stat(%s) > %w", path, err)
	}

	settings, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := store.validate(settings); err != nil {
		return nil, err
	}
	store.settings = settings
	return store, nil
}

func read(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigType("json")
	v.SetConfigFile(path)

	defaults := DefaultSettings()
	v.SetDefault("num_of_reviews_per_batch", defaults.NumOfReviewsPerBatch)
	v.SetDefault("time_between_popups_in_minutes", defaults.TimeBetweenPopupsInMinutes)
	v.SetDefault("hide_window_decorations", defaults.HideWindowDecorations)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration format: %w", err)
	}
	return settings, nil
}

func (s *Store) validate(settings Settings) error {
	if err := s.validator.Struct(settings); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(s.translator))
		}
		return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(errorMsgs, ", "))
	}
	return nil
}

// save writes to a temporary file in the same directory and renames it over the settings file.
func (s *Store) save(settings Settings) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	contents, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	file, err := os.CreateTemp(dir, "."+configFileName+"-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Sync > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	// the file holds the API key
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("os.Chmod > %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.clone()
}

// APIKey returns the API key or ErrAPIKeyMissing.
func (s *Store) APIKey() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.WanikaniAPIKey == nil {
		return "", ErrAPIKeyMissing
	}
	return *s.settings.WanikaniAPIKey, nil
}

func (s *Store) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	return s.update(func(settings *Settings) {
		settings.WanikaniAPIKey = &key
	})
}

func (s *Store) SetNumOfReviewsPerBatch(value int) error {
	return s.update(func(settings *Settings) {
		settings.NumOfReviewsPerBatch = value
	})
}

func (s *Store) SetTimeBetweenPopupsInMinutes(value int) error {
	return s.update(func(settings *Settings) {
		settings.TimeBetweenPopupsInMinutes = value
	})
}

func (s *Store) SetHideWindowDecorations(value bool) error {
	return s.update(func(settings *Settings) {
		settings.HideWindowDecorations = value
	})
}

func (s *Store) update(mutate func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.clone()
	mutate(&next)
	if err := s.validate(next); err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return fmt.Errorf("failed to save settings to %s: %w", s.path, err)
	}
	s.settings = next
	return nil
}
