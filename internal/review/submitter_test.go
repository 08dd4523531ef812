package review

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	mock_wanikani "github.com/at-ishikawa/wanipop/internal/mocks/wanikani"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-key"

// echo returns a confirmation that repeats the submitted counts.
func echo(result wanikani.ReviewResult) wanikani.SubmittedReviewData {
	return wanikani.SubmittedReviewData{
		CreatedAt:               time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC),
		AssignmentID:            result.AssignmentID,
		SubjectID:               result.AssignmentID * 10,
		StartingSRSStage:        wanikani.SRSStageApprentice2,
		EndingSRSStage:          wanikani.SRSStageApprentice3,
		IncorrectMeaningAnswers: result.IncorrectMeaningAnswers,
		IncorrectReadingAnswers: result.IncorrectReadingAnswers,
	}
}

func TestSubmitter_SubmitBatch(t *testing.T) {
	results := []wanikani.ReviewResult{
		{AssignmentID: 1, IncorrectMeaningAnswers: 0, IncorrectReadingAnswers: 1},
		{AssignmentID: 2, IncorrectMeaningAnswers: 1, IncorrectReadingAnswers: 0},
		{AssignmentID: 3},
	}

	tests := []struct {
		name         string
		results      []wanikani.ReviewResult
		failingIDs   map[int]error
		want         []wanikani.SubmittedReviewData
		wantFailures int
		wantErrIs    error
	}{
		{
			name:    "all succeed",
			results: results,
			want:    []wanikani.SubmittedReviewData{echo(results[0]), echo(results[1]), echo(results[2])},
		},
		{
			name:         "one transport failure fails the batch",
			results:      results,
			failingIDs:   map[int]error{2: fmt.Errorf("%w: connection refused", wanikani.ErrTransport)},
			want:         []wanikani.SubmittedReviewData{echo(results[0]), echo(results[2])},
			wantFailures: 1,
			wantErrIs:    wanikani.ErrTransport,
		},
		{
			name:    "all fail",
			results: results,
			failingIDs: map[int]error{
				1: &wanikani.StatusError{StatusCode: 422},
				2: &wanikani.StatusError{StatusCode: 422},
				3: &wanikani.StatusError{StatusCode: 422},
			},
			want:         []wanikani.SubmittedReviewData{},
			wantFailures: 3,
			wantErrIs:    wanikani.ErrUpstreamRejected,
		},
		{
			name:    "empty batch",
			results: nil,
			want:    []wanikani.SubmittedReviewData{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_wanikani.NewMockClient(ctrl)
			client.EXPECT().
				SubmitReview(gomock.Any(), testAPIKey, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, result wanikani.ReviewResult) (wanikani.SubmittedReviewData, error) {
					if err, ok := tt.failingIDs[result.AssignmentID]; ok {
						return wanikani.SubmittedReviewData{}, err
					}
					return echo(result), nil
				}).
				Times(len(tt.results))

			got, err := NewSubmitter(client).SubmitBatch(context.Background(), testAPIKey, tt.results)
			if tt.wantFailures > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErrIs)

				var submissionErr *SubmissionError
				require.ErrorAs(t, err, &submissionErr)
				assert.Equal(t, tt.wantFailures, submissionErr.Count())
				assert.Len(t, submissionErr.Messages(), tt.wantFailures)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d reviews failed", tt.wantFailures))
				assert.ElementsMatch(t, tt.want, submissionErr.Succeeded)
				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
			for i := range got {
				// counts are echoed, not recomputed
				for _, result := range tt.results {
					if result.AssignmentID == got[i].AssignmentID {
						assert.Equal(t, result.IncorrectMeaningAnswers, got[i].IncorrectMeaningAnswers)
						assert.Equal(t, result.IncorrectReadingAnswers, got[i].IncorrectReadingAnswers)
					}
				}
			}
		})
	}
}

func TestSubmitter_SubmitBatch_Concurrent(t *testing.T) {
	const size = 3
	ctrl := gomock.NewController(t)
	client := mock_wanikani.NewMockClient(ctrl)

	var started sync.WaitGroup
	started.Add(size)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	client.EXPECT().
		SubmitReview(gomock.Any(), testAPIKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result wanikani.ReviewResult) (wanikani.SubmittedReviewData, error) {
			started.Done()
			// a sequential submitter would never get here
			select {
			case <-allStarted:
			case <-time.After(5 * time.Second):
				return wanikani.SubmittedReviewData{}, fmt.Errorf("submissions did not run concurrently")
			}
			return echo(result), nil
		}).
		Times(size)

	results := make([]wanikani.ReviewResult, 0, size)
	for i := 1; i <= size; i++ {
		results = append(results, wanikani.ReviewResult{AssignmentID: i})
	}

	got, err := NewSubmitter(client).SubmitBatch(context.Background(), testAPIKey, results)
	require.NoError(t, err)
	assert.Len(t, got, size)
}
