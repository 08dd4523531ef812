package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/at-ishikawa/wanipop/internal/mocks/cli"
	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

func ptr[T any](v T) *T {
	return &v
}

var (
	radicalCard = review.Card{
		AssignmentID:    100,
		SubjectID:       1,
		SubjectType:     wanikani.SubjectTypeRadical,
		Characters:      ptr("一"),
		Meanings:        []wanikani.Meaning{{Meaning: "Ground", Primary: true, AcceptedAnswer: true}},
		MeaningMnemonic: ptr("It is a flat line."),
	}
	kanjiCard = review.Card{
		AssignmentID: 200,
		SubjectID:    440,
		SubjectType:  wanikani.SubjectTypeKanji,
		Characters:   ptr("人"),
		Meanings:     []wanikani.Meaning{{Meaning: "Person", Primary: true, AcceptedAnswer: true}},
		Readings: []wanikani.Reading{
			{Reading: "にん", Primary: true, AcceptedAnswer: true, Type: "onyomi"},
			{Reading: "じん", AcceptedAnswer: true, Type: "onyomi"},
		},
	}
)

func TestInteractiveReviewCLI_Run(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		setup        func(service *mock_cli.MockBatchService)
		wantErrIs    error
		wantErrAs    bool
		wantContains []string
	}{
		{
			name:  "answers every question and submits the results",
			input: "ground\nperson\njin\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard, kanjiCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), []wanikani.ReviewResult{
					{AssignmentID: 100},
					{AssignmentID: 200},
				}).Return([]wanikani.SubmittedReviewData{
					{AssignmentID: 200, StartingSRSStage: wanikani.SRSStageApprentice4, EndingSRSStage: wanikani.SRSStageGuru1},
					{AssignmentID: 100, StartingSRSStage: wanikani.SRSStageApprentice1, EndingSRSStage: wanikani.SRSStageApprentice2},
				}, nil)
			},
			wantContains: []string{
				"Radical Meaning",
				"Kanji Reading",
				"It's correct.",
				"一: Apprentice 1 -> Apprentice 2",
				"人: Apprentice 4 -> Guru 1",
			},
		},
		{
			name:  "asks an incorrect question again and records the first answer",
			input: "floor\nground\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), []wanikani.ReviewResult{
					{AssignmentID: 100, IncorrectMeaningAnswers: 1},
				}).Return([]wanikani.SubmittedReviewData{
					{AssignmentID: 100, StartingSRSStage: wanikani.SRSStageApprentice2, EndingSRSStage: wanikani.SRSStageApprentice1},
				}, nil)
			},
			wantContains: []string{
				"It's wrong. The answer is",
				"Mnemonic: It is a flat line.",
				"一: Apprentice 2 -> Apprentice 1",
			},
		},
		{
			name:  "flips a typo to correct",
			input: "grund\n:flip\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), []wanikani.ReviewResult{
					{AssignmentID: 100},
				}).Return([]wanikani.SubmittedReviewData{
					{AssignmentID: 100, StartingSRSStage: wanikani.SRSStageApprentice1, EndingSRSStage: wanikani.SRSStageApprentice2},
				}, nil)
			},
			wantContains: []string{"The last answer is now correct."},
		},
		{
			name:  "quits before answering anything",
			input: ":quit\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard}, nil)
			},
			wantContains: []string{"Quit, exiting without submitting..."},
		},
		{
			name:  "quits after completing a card without submitting it",
			input: "ground\n:quit\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard, kanjiCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), gomock.Any()).Times(0)
			},
			wantContains: []string{"It's correct.", "Quit, exiting without submitting..."},
		},
		{
			name:  "ends input before answering anything",
			input: "",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard}, nil)
			},
			wantContains: []string{"Nothing to submit."},
		},
		{
			name:  "submits only the completed cards on end of input",
			input: "ground\nperson\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard, kanjiCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), []wanikani.ReviewResult{
					{AssignmentID: 100},
				}).Return([]wanikani.SubmittedReviewData{
					{AssignmentID: 100, StartingSRSStage: wanikani.SRSStageGuru1, EndingSRSStage: wanikani.SRSStageGuru2},
				}, nil)
			},
			wantContains: []string{"一: Guru 1 -> Guru 2"},
		},
		{
			name:  "asks again for an empty answer",
			input: "\nground\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), []wanikani.ReviewResult{
					{AssignmentID: 100},
				}).Return([]wanikani.SubmittedReviewData{{AssignmentID: 100}}, nil)
			},
			wantContains: []string{"Type an answer."},
		},
		{
			name: "returns no reviews available",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return(nil, review.ErrNoReviewsAvailable)
			},
			wantErrIs: review.ErrNoReviewsAvailable,
		},
		{
			name: "empty batch",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{}, nil)
			},
			wantContains: []string{"No reviews in this batch."},
		},
		{
			name:  "reports the reviews that failed",
			input: "ground\n",
			setup: func(service *mock_cli.MockBatchService) {
				service.EXPECT().GetReviewBatch(gomock.Any()).Return([]review.Card{radicalCard}, nil)
				service.EXPECT().SubmitReviewBatch(gomock.Any(), gomock.Any()).Return(nil, &review.SubmissionError{
					Failures: []review.SubmissionFailure{
						{AssignmentID: 100, Err: &wanikani.StatusError{StatusCode: 422, Body: "invalid"}},
					},
				})
			},
			wantErrAs:    true,
			wantContains: []string{"Failed: assignment 100: response error 422: invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mock_cli.NewMockBatchService(ctrl)
			tt.setup(service)

			var stdout bytes.Buffer
			cli := NewInteractiveReviewCLI(service, strings.NewReader(tt.input), &stdout)

			err := cli.Run(context.Background())
			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.wantErrAs:
				var submissionErr *review.SubmissionError
				assert.ErrorAs(t, err, &submissionErr)
			default:
				require.NoError(t, err)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestCharacters(t *testing.T) {
	tests := []struct {
		name string
		card review.Card
		want string
	}{
		{name: "characters", card: kanjiCard, want: "人"},
		{
			name: "radical without characters",
			card: review.Card{SubjectID: 8761, Meanings: []wanikani.Meaning{{Meaning: "Gun", Primary: true}}},
			want: "Gun",
		},
		{name: "nothing to show", card: review.Card{SubjectID: 3}, want: "subject 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, characters(tt.card))
		})
	}
}
