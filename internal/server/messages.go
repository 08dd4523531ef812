package server

import (
	"github.com/at-ishikawa/wanipop/internal/config"
	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

const serviceName = "wanipop.v1.ReviewService"

const (
	ProcedureGetConfig                     = "/" + serviceName + "/GetConfig"
	ProcedureSetAPIKey                     = "/" + serviceName + "/SetAPIKey"
	ProcedureSetNumOfReviewsPerBatch       = "/" + serviceName + "/SetNumOfReviewsPerBatch"
	ProcedureSetTimeBetweenPopupsInMinutes = "/" + serviceName + "/SetTimeBetweenPopupsInMinutes"
	ProcedureSetHideWindowDecorations      = "/" + serviceName + "/SetHideWindowDecorations"
	ProcedureGetUser                       = "/" + serviceName + "/GetUser"
	ProcedureCheckForReviews               = "/" + serviceName + "/CheckForReviews"
	ProcedureGetReviewBatch                = "/" + serviceName + "/GetReviewBatch"
	ProcedureSubmitReview                  = "/" + serviceName + "/SubmitReview"
	ProcedureSubmitReviewBatch             = "/" + serviceName + "/SubmitReviewBatch"
)

type GetConfigRequest struct{}

// ConfigResponse is returned by GetConfig and every setter, with the settings after the change.
type ConfigResponse struct {
	Config config.Settings `json:"config"`
}

type SetAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

type SetNumOfReviewsPerBatchRequest struct {
	Value int `json:"value"`
}

type SetTimeBetweenPopupsInMinutesRequest struct {
	Value int `json:"value"`
}

type SetHideWindowDecorationsRequest struct {
	Value bool `json:"value"`
}

type GetUserRequest struct{}

type GetUserResponse struct {
	User wanikani.UserProfile `json:"user"`
}

type CheckForReviewsRequest struct{}

type CheckForReviewsResponse struct {
	Available bool `json:"available"`
}

type GetReviewBatchRequest struct{}

type GetReviewBatchResponse struct {
	Cards []review.Card `json:"cards"`
}

type SubmitReviewRequest struct {
	Review wanikani.ReviewResult `json:"review"`
}

type SubmitReviewResponse struct {
	Review wanikani.SubmittedReviewData `json:"review"`
}

type SubmitReviewBatchRequest struct {
	Reviews []wanikani.ReviewResult `json:"reviews"`
}

type SubmitReviewBatchResponse struct {
	Reviews []wanikani.SubmittedReviewData `json:"reviews"`
}
