// Package server exposes the settings and the review pipeline to a desktop UI as Connect RPCs over JSON.
package server

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/wanipop/internal/config"
	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

type SettingsStore interface {
	Snapshot() config.Settings
	SetAPIKey(key string) error
	SetNumOfReviewsPerBatch(value int) error
	SetTimeBetweenPopupsInMinutes(value int) error
	SetHideWindowDecorations(value bool) error
}

type ReviewService interface {
	FetchUser(ctx context.Context) (wanikani.UserProfile, error)
	CheckForReviews(ctx context.Context) (bool, error)
	GetReviewBatch(ctx context.Context) ([]review.Card, error)
	SubmitReview(ctx context.Context, result wanikani.ReviewResult) (wanikani.SubmittedReviewData, error)
	SubmitReviewBatch(ctx context.Context, results []wanikani.ReviewResult) ([]wanikani.SubmittedReviewData, error)
}

// ReviewHandler implements every procedure of the review service.
type ReviewHandler struct {
	settings SettingsStore
	service  ReviewService
	metrics  *Metrics
}

func NewReviewHandler(settings SettingsStore, service ReviewService, metrics *Metrics) *ReviewHandler {
	return &ReviewHandler{
		settings: settings,
		service:  service,
		metrics:  metrics,
	}
}

func (h *ReviewHandler) GetConfig(
	_ context.Context,
	_ *connect.Request[GetConfigRequest],
) (*connect.Response[ConfigResponse], error) {
	return h.configResponse(), nil
}

func (h *ReviewHandler) SetAPIKey(
	_ context.Context,
	req *connect.Request[SetAPIKeyRequest],
) (*connect.Response[ConfigResponse], error) {
	if err := h.settings.SetAPIKey(req.Msg.APIKey); err != nil {
		return nil, toConnectError(err)
	}
	return h.configResponse(), nil
}

func (h *ReviewHandler) SetNumOfReviewsPerBatch(
	_ context.Context,
	req *connect.Request[SetNumOfReviewsPerBatchRequest],
) (*connect.Response[ConfigResponse], error) {
	if err := h.settings.SetNumOfReviewsPerBatch(req.Msg.Value); err != nil {
		return nil, toConnectError(err)
	}
	return h.configResponse(), nil
}

func (h *ReviewHandler) SetTimeBetweenPopupsInMinutes(
	_ context.Context,
	req *connect.Request[SetTimeBetweenPopupsInMinutesRequest],
) (*connect.Response[ConfigResponse], error) {
	if err := h.settings.SetTimeBetweenPopupsInMinutes(req.Msg.Value); err != nil {
		return nil, toConnectError(err)
	}
	return h.configResponse(), nil
}

func (h *ReviewHandler) SetHideWindowDecorations(
	_ context.Context,
	req *connect.Request[SetHideWindowDecorationsRequest],
) (*connect.Response[ConfigResponse], error) {
	if err := h.settings.SetHideWindowDecorations(req.Msg.Value); err != nil {
		return nil, toConnectError(err)
	}
	return h.configResponse(), nil
}

func (h *ReviewHandler) configResponse() *connect.Response[ConfigResponse] {
	return connect.NewResponse(&ConfigResponse{
		Config: h.settings.Snapshot(),
	})
}

func (h *ReviewHandler) GetUser(
	ctx context.Context,
	_ *connect.Request[GetUserRequest],
) (*connect.Response[GetUserResponse], error) {
	user, err := h.service.FetchUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetUserResponse{
		User: user,
	}), nil
}

func (h *ReviewHandler) CheckForReviews(
	ctx context.Context,
	_ *connect.Request[CheckForReviewsRequest],
) (*connect.Response[CheckForReviewsResponse], error) {
	available, err := h.service.CheckForReviews(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CheckForReviewsResponse{
		Available: available,
	}), nil
}

func (h *ReviewHandler) GetReviewBatch(
	ctx context.Context,
	_ *connect.Request[GetReviewBatchRequest],
) (*connect.Response[GetReviewBatchResponse], error) {
	cards, err := h.service.GetReviewBatch(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	h.metrics.ObserveCardsServed(len(cards))
	return connect.NewResponse(&GetReviewBatchResponse{
		Cards: cards,
	}), nil
}

func (h *ReviewHandler) SubmitReview(
	ctx context.Context,
	req *connect.Request[SubmitReviewRequest],
) (*connect.Response[SubmitReviewResponse], error) {
	submitted, err := h.service.SubmitReview(ctx, req.Msg.Review)
	if err != nil {
		h.metrics.ObserveReviewsSubmitted(0, 1)
		return nil, toConnectError(err)
	}
	h.metrics.ObserveReviewsSubmitted(1, 0)
	return connect.NewResponse(&SubmitReviewResponse{
		Review: submitted,
	}), nil
}

func (h *ReviewHandler) SubmitReviewBatch(
	ctx context.Context,
	req *connect.Request[SubmitReviewBatchRequest],
) (*connect.Response[SubmitReviewBatchResponse], error) {
	submitted, err := h.service.SubmitReviewBatch(ctx, req.Msg.Reviews)
	if err != nil {
		var submissionErr *review.SubmissionError
		if errors.As(err, &submissionErr) {
			h.metrics.ObserveReviewsSubmitted(len(submissionErr.Succeeded), submissionErr.Count())
		}
		slog.Default().Error("failed to submit a review batch",
			"reviews", len(req.Msg.Reviews),
			"error", err,
		)
		return nil, toConnectError(err)
	}
	h.metrics.ObserveReviewsSubmitted(len(submitted), 0)
	return connect.NewResponse(&SubmitReviewBatchResponse{
		Reviews: submitted,
	}), nil
}
