package review

import (
	"log/slog"

	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

// Card is everything needed to ask one review question and check the answer.
type Card struct {
	AssignmentID    int                  `json:"assignment_id" yaml:"assignment_id"`
	SubjectID       int                  `json:"subject_id" yaml:"subject_id"`
	SubjectType     wanikani.SubjectType `json:"subject_type" yaml:"subject_type"`
	Characters      *string              `json:"characters" yaml:"characters"`
	Meanings        []wanikani.Meaning   `json:"meanings" yaml:"meanings"`
	Readings        []wanikani.Reading   `json:"readings" yaml:"readings"`
	MeaningMnemonic *string              `json:"meaning_mnemonic" yaml:"meaning_mnemonic"`
	ReadingMnemonic *string              `json:"reading_mnemonic" yaml:"reading_mnemonic"`
}

// Assemble joins each assignment with its subject, keeping the assignment order.
// Assignments whose subject is missing are dropped.
func Assemble(assignments []wanikani.Assignment, subjects []wanikani.Subject) []Card {
	subjectMap := make(map[int]wanikani.Subject, len(subjects))
	for _, subject := range subjects {
		subjectMap[subject.ID] = subject
	}

	cards := make([]Card, 0, len(assignments))
	for _, assignment := range assignments {
		subject, ok := subjectMap[assignment.Data.SubjectID]
		if !ok {
			slog.Default().Debug("no subject for an assignment",
				"assignmentID", assignment.ID,
				"subjectID", assignment.Data.SubjectID,
			)
			continue
		}
		cards = append(cards, Card{
			AssignmentID:    assignment.ID,
			SubjectID:       subject.ID,
			SubjectType:     assignment.Data.SubjectType,
			Characters:      subject.Data.Characters,
			Meanings:        subject.Data.Meanings,
			Readings:        subject.Data.Readings,
			MeaningMnemonic: subject.Data.MeaningMnemonic,
			ReadingMnemonic: subject.Data.ReadingMnemonic,
		})
	}
	return cards
}
