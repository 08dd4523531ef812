package main

import (
	"fmt"
	"os"

	"github.com/at-ishikawa/wanipop/internal/config"
	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/wanikani/apiv2"
)

const configEnv = "WANIPOP_CONFIG"

func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	if path := os.Getenv(configEnv); path != "" {
		return path, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("config.DefaultPath > %w", err)
	}
	return path, nil
}

func loadSettings() (*config.Store, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	store, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadOrCreate(%s) > %w", path, err)
	}
	return store, nil
}

// newReviewService returns the service and a function to release the HTTP client.
func newReviewService(store *config.Store) (*review.Service, func()) {
	client := apiv2.NewClient(apiBaseURL)
	return review.NewService(client, store), func() {
		_ = client.Close()
	}
}
