// Package review fetches a batch of due reviews from WaniKani and submits the answers.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/wanipop/internal/config"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

// SettingsSnapshotter returns a copy of the current settings.
type SettingsSnapshotter interface {
	Snapshot() config.Settings
}

type Service struct {
	client    wanikani.Client
	settings  SettingsSnapshotter
	selector  *Selector
	submitter *Submitter
}

func NewService(client wanikani.Client, settings SettingsSnapshotter) *Service {
	return &Service{
		client:    client,
		settings:  settings,
		selector:  NewSelector(),
		submitter: NewSubmitter(client),
	}
}

// snapshot copies the values a request needs so that no lock is held during network calls.
func (s *Service) snapshot() (apiKey string, batchSize int, err error) {
	settings := s.settings.Snapshot()
	if settings.WanikaniAPIKey == nil {
		return "", 0, config.ErrAPIKeyMissing
	}
	return *settings.WanikaniAPIKey, settings.NumOfReviewsPerBatch, nil
}

func (s *Service) FetchUser(ctx context.Context) (wanikani.UserProfile, error) {
	apiKey, _, err := s.snapshot()
	if err != nil {
		return wanikani.UserProfile{}, err
	}
	user, err := s.client.FetchUser(ctx, apiKey)
	if err != nil {
		return wanikani.UserProfile{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

// CheckForReviews reports whether any reviews are available now.
func (s *Service) CheckForReviews(ctx context.Context) (bool, error) {
	apiKey, _, err := s.snapshot()
	if err != nil {
		return false, err
	}
	summary, err := s.client.FetchSummary(ctx, apiKey)
	if err != nil {
		return false, fmt.Errorf("summary error: %w", err)
	}
	return s.selector.HasAvailableReviews(summary), nil
}

// GetReviewBatch returns cards for up to the configured number of reviews from the first available bucket.
func (s *Service) GetReviewBatch(ctx context.Context) ([]Card, error) {
	apiKey, batchSize, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	summary, err := s.client.FetchSummary(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("summary error: %w", err)
	}
	ids, err := s.selector.SelectBatch(summary, batchSize)
	if err != nil {
		return nil, err
	}
	// both endpoints return every resource without a filter
	if len(ids) == 0 {
		return []Card{}, nil
	}

	assignments, err := s.client.FetchAssignmentsForSubjects(ctx, apiKey, ids)
	if err != nil {
		return nil, fmt.Errorf("assignments error: %w", err)
	}
	subjects, err := s.client.FetchSubjects(ctx, apiKey, ids)
	if err != nil {
		return nil, fmt.Errorf("subjects error: %w", err)
	}

	cards := Assemble(assignments, subjects)
	slog.Default().Debug("assembled review cards",
		"subjects", len(ids),
		"assignments", len(assignments),
		"cards", len(cards),
	)
	return cards, nil
}

func (s *Service) SubmitReview(ctx context.Context, result wanikani.ReviewResult) (wanikani.SubmittedReviewData, error) {
	apiKey, _, err := s.snapshot()
	if err != nil {
		return wanikani.SubmittedReviewData{}, err
	}
	submitted, err := s.client.SubmitReview(ctx, apiKey, result)
	if err != nil {
		return wanikani.SubmittedReviewData{}, fmt.Errorf("failed to submit review: %w", err)
	}
	return submitted, nil
}

func (s *Service) SubmitReviewBatch(ctx context.Context, results []wanikani.ReviewResult) ([]wanikani.SubmittedReviewData, error) {
	apiKey, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.submitter.SubmitBatch(ctx, apiKey, results)
}
