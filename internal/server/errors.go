package server

import (
	"context"
	"errors"
	"strconv"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/wanipop/internal/config"
	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

// succeededHeader carries how many reviews of a failed batch were recorded anyway.
const succeededHeader = "Wanipop-Succeeded"

// toConnectError maps an error from the review pipeline or the settings store to a Connect error.
// The message is kept so the UI can show it as is.
func toConnectError(err error) *connect.Error {
	var submissionErr *review.SubmissionError
	switch {
	case errors.As(err, &submissionErr):
		connectErr := connect.NewError(connect.CodeAborted, err)
		connectErr.Meta().Set(succeededHeader, strconv.Itoa(len(submissionErr.Succeeded)))
		return connectErr
	case errors.Is(err, config.ErrAPIKeyMissing):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, config.ErrInvalidSettings):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, review.ErrNoReviewsAvailable):
		return connect.NewError(connect.CodeNotFound, err)
	case wanikani.IsUnauthorized(err):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, wanikani.ErrUpstreamRejected), errors.Is(err, wanikani.ErrTransport):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
