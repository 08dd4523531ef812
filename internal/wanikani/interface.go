// Package wanikani defines the WaniKani v2 API resources used by wanipop and the client interface to fetch them.
package wanikani

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=../mocks/wanikani/mock_client.go -package=mock_wanikani

// Client issues one authenticated call per method against the WaniKani API.
type Client interface {
	FetchUser(ctx context.Context, apiKey string) (UserProfile, error)
	FetchSummary(ctx context.Context, apiKey string) (Summary, error)
	FetchAssignmentsForSubjects(ctx context.Context, apiKey string, subjectIDs []int) ([]Assignment, error)
	FetchSubjects(ctx context.Context, apiKey string, subjectIDs []int) ([]Subject, error)
	SubmitReview(ctx context.Context, apiKey string, result ReviewResult) (SubmittedReviewData, error)
}

type UserProfile struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Level        int          `json:"level"`
	ProfileURL   string       `json:"profile_url"`
	Subscription Subscription `json:"subscription"`
}

type Subscription struct {
	Active          bool   `json:"active"`
	MaxLevelGranted int    `json:"max_level_granted"`
	Type            string `json:"type"`
}

// Summary lists lessons and reviews grouped by the time they become available.
type Summary struct {
	Lessons       []Bucket   `json:"lessons"`
	Reviews       []Bucket   `json:"reviews"`
	NextReviewsAt *time.Time `json:"next_reviews_at"`
}

// Bucket is a group of subjects sharing one availability time.
type Bucket struct {
	AvailableAt time.Time `json:"available_at"`
	SubjectIDs  []int     `json:"subject_ids"`
}

type SubjectType string

const (
	SubjectTypeRadical        SubjectType = "radical"
	SubjectTypeKanji          SubjectType = "kanji"
	SubjectTypeVocabulary     SubjectType = "vocabulary"
	SubjectTypeKanaVocabulary SubjectType = "kana_vocabulary"
)

// HasReading reports whether subjects of this type are quizzed on their reading.
func (t SubjectType) HasReading() bool {
	return t == SubjectTypeKanji || t == SubjectTypeVocabulary
}

type Assignment struct {
	ID   int            `json:"id"`
	Data AssignmentData `json:"data"`
}

type AssignmentData struct {
	SubjectID   int         `json:"subject_id"`
	SubjectType SubjectType `json:"subject_type"`
	AvailableAt *time.Time  `json:"available_at"`
	SRSStage    SRSStage    `json:"srs_stage"`
}

type Subject struct {
	ID   int         `json:"id"`
	Data SubjectData `json:"data"`
}

// SubjectData is the content of a subject. Radicals may have no characters and
// radicals and kana vocabulary have no readings.
type SubjectData struct {
	Characters      *string   `json:"characters"`
	Meanings        []Meaning `json:"meanings"`
	Readings        []Reading `json:"readings,omitempty"`
	Level           int       `json:"level"`
	DocumentURL     string    `json:"document_url"`
	MeaningMnemonic *string   `json:"meaning_mnemonic"`
	ReadingMnemonic *string   `json:"reading_mnemonic"`
}

type Meaning struct {
	Meaning        string `json:"meaning"`
	Primary        bool   `json:"primary"`
	AcceptedAnswer bool   `json:"accepted_answer"`
}

type Reading struct {
	Reading        string `json:"reading"`
	Primary        bool   `json:"primary"`
	AcceptedAnswer bool   `json:"accepted_answer"`
	// Type is onyomi, kunyomi or nanori for kanji, empty otherwise
	Type string `json:"type,omitempty"`
}

// ReviewResult is the answer record for one assignment.
type ReviewResult struct {
	AssignmentID            int        `json:"assignment_id"`
	IncorrectMeaningAnswers int        `json:"incorrect_meaning_answers"`
	IncorrectReadingAnswers int        `json:"incorrect_reading_answers"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
}

// SubmittedReviewData is the confirmation of a recorded review.
type SubmittedReviewData struct {
	CreatedAt               time.Time `json:"created_at"`
	AssignmentID            int       `json:"assignment_id"`
	SubjectID               int       `json:"subject_id"`
	StartingSRSStage        SRSStage  `json:"starting_srs_stage"`
	EndingSRSStage          SRSStage  `json:"ending_srs_stage"`
	IncorrectMeaningAnswers int       `json:"incorrect_meaning_answers"`
	IncorrectReadingAnswers int       `json:"incorrect_reading_answers"`
}
