package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

// SubmissionFailure is a review that could not be submitted.
type SubmissionFailure struct {
	AssignmentID int
	Err          error
}

func (f SubmissionFailure) Error() string {
	return fmt.Sprintf("assignment %d: %v", f.AssignmentID, f.Err)
}

// SubmissionError is returned by SubmitBatch when at least one review failed.
// The batch as a whole is reported as failed, but the reviews that were recorded are kept in Succeeded.
type SubmissionError struct {
	Failures  []SubmissionFailure
	Succeeded []wanikani.SubmittedReviewData
}

func (e *SubmissionError) Count() int {
	return len(e.Failures)
}

func (e *SubmissionError) Messages() []string {
	messages := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		messages = append(messages, failure.Error())
	}
	return messages
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%d reviews failed: [%s]", e.Count(), strings.Join(e.Messages(), "; "))
}

func (e *SubmissionError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, failure := range e.Failures {
		errs = append(errs, failure.Err)
	}
	return errs
}

type Submitter struct {
	client wanikani.Client
}

func NewSubmitter(client wanikani.Client) *Submitter {
	return &Submitter{client: client}
}

// SubmitBatch submits every result concurrently and waits for all of them.
// Confirmations are returned in completion order. If any submission failed, it returns a *SubmissionError.
func (s *Submitter) SubmitBatch(ctx context.Context, apiKey string, results []wanikani.ReviewResult) ([]wanikani.SubmittedReviewData, error) {
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		succeeded = make([]wanikani.SubmittedReviewData, 0, len(results))
		failures  []SubmissionFailure
	)
	for _, result := range results {
		wg.Add(1)
		go func(result wanikani.ReviewResult) {
			defer wg.Done()

			submitted, err := s.client.SubmitReview(ctx, apiKey, result)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, SubmissionFailure{
					AssignmentID: result.AssignmentID,
					Err:          err,
				})
				return
			}
			succeeded = append(succeeded, submitted)
		}(result)
	}
	wg.Wait()

	if len(failures) > 0 {
		slog.Default().Error("failed to submit reviews",
			"failed", len(failures),
			"succeeded", len(succeeded),
		)
		return nil, &SubmissionError{
			Failures:  failures,
			Succeeded: succeeded,
		}
	}
	return succeeded, nil
}
