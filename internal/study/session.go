// Package study runs a review session over a batch of cards and turns the answers into review results.
package study

import (
	"errors"
	"log/slog"
	"strings"
	"unicode"

	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
	"github.com/google/uuid"
	"golang.org/x/text/width"
)

var (
	ErrEmptyAnswer     = errors.New("answer is empty")
	ErrSessionFinished = errors.New("no questions left")
	ErrNothingToFlip   = errors.New("no answer to flip")
)

type TaskType string

const (
	TaskTypeMeaning TaskType = "meaning"
	TaskTypeReading TaskType = "reading"
)

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

func outcomeOf(correct bool) Outcome {
	if correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// Task is one question: the meaning or the reading of a card.
type Task struct {
	Type TaskType
	Card review.Card
}

// Prompt returns a label such as "Kanji Reading".
func (t Task) Prompt() string {
	var kind string
	switch t.Card.SubjectType {
	case wanikani.SubjectTypeRadical:
		kind = "Radical"
	case wanikani.SubjectTypeKanji:
		kind = "Kanji"
	default:
		kind = "Vocabulary"
	}
	if t.Type == TaskTypeReading {
		return kind + " Reading"
	}
	return kind + " Meaning"
}

// Check reports whether attempt is one of the accepted answers.
func (t Task) Check(attempt string) bool {
	switch t.Type {
	case TaskTypeReading:
		want := ToHiragana(removeSpaces(attempt))
		for _, reading := range t.Card.Readings {
			if reading.AcceptedAnswer && ToHiragana(reading.Reading) == want {
				return true
			}
		}
	default:
		want := normalizeMeaning(attempt)
		for _, meaning := range t.Card.Meanings {
			if meaning.AcceptedAnswer && normalizeMeaning(meaning.Meaning) == want {
				return true
			}
		}
	}
	return false
}

func (t Task) is(other Task) bool {
	return t.Type == other.Type && t.Card.SubjectID == other.Card.SubjectID
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func normalizeMeaning(s string) string {
	return strings.ToLower(removeSpaces(width.Fold.String(s)))
}

// Record is the first outcome of each question of a card.
type Record struct {
	Card    review.Card
	Meaning Outcome
	Reading Outcome
}

func (r Record) complete() bool {
	if r.Meaning == "" {
		return false
	}
	return r.Reading != "" || !r.Card.SubjectType.HasReading()
}

func (r *Record) outcome(taskType TaskType) *Outcome {
	if taskType == TaskTypeReading {
		return &r.Reading
	}
	return &r.Meaning
}

type answer struct {
	task     Task
	correct  bool
	recorded bool
	requeued bool
}

// Session asks every question until it is answered correctly. Incorrect questions go to the back of the queue.
// Only the first answer to a question counts towards the review result.
type Session struct {
	ID string

	queue   []Task
	records map[int]*Record
	order   []int
	last    *answer
}

func NewSession(cards []review.Card) *Session {
	session := &Session{
		ID:      uuid.NewString(),
		records: make(map[int]*Record, len(cards)),
	}
	for _, card := range cards {
		session.queue = append(session.queue, Task{Type: TaskTypeMeaning, Card: card})
		if card.SubjectType.HasReading() {
			session.queue = append(session.queue, Task{Type: TaskTypeReading, Card: card})
		}
	}
	slog.Default().Debug("started a study session",
		"sessionID", session.ID,
		"cards", len(cards),
		"questions", len(session.queue),
	)
	return session
}

func (s *Session) Current() (Task, bool) {
	if len(s.queue) == 0 {
		return Task{}, false
	}
	return s.queue[0], true
}

func (s *Session) Remaining() int {
	return len(s.queue)
}

func (s *Session) Done() bool {
	return len(s.queue) == 0
}

// Answer checks attempt against the current question and moves to the next one.
func (s *Session) Answer(attempt string) (Outcome, error) {
	task, ok := s.Current()
	if !ok {
		return "", ErrSessionFinished
	}
	if strings.TrimSpace(attempt) == "" {
		return "", ErrEmptyAnswer
	}

	correct := task.Check(attempt)
	record := s.record(task.Card)
	recorded := false
	if outcome := record.outcome(task.Type); *outcome == "" {
		*outcome = outcomeOf(correct)
		recorded = true
	}

	s.queue = s.queue[1:]
	if !correct {
		s.queue = append(s.queue, task)
	}
	s.last = &answer{
		task:     task,
		correct:  correct,
		recorded: recorded,
		requeued: !correct,
	}
	return outcomeOf(correct), nil
}

// Flip reverses the judgement of the last answer, for typos the checker could not accept.
func (s *Session) Flip() (Outcome, error) {
	if s.last == nil {
		return "", ErrNothingToFlip
	}
	last := s.last
	last.correct = !last.correct

	if last.recorded {
		*s.records[last.task.Card.SubjectID].outcome(last.task.Type) = outcomeOf(last.correct)
	}
	if last.requeued {
		for i := len(s.queue) - 1; i >= 0; i-- {
			if s.queue[i].is(last.task) {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				break
			}
		}
		last.requeued = false
	} else {
		s.queue = append(s.queue, last.task)
		last.requeued = true
	}

	slog.Default().Debug("flipped an answer",
		"sessionID", s.ID,
		"subjectID", last.task.Card.SubjectID,
		"type", last.task.Type,
		"correct", last.correct,
	)
	return outcomeOf(last.correct), nil
}

func (s *Session) record(card review.Card) *Record {
	record, ok := s.records[card.SubjectID]
	if !ok {
		record = &Record{Card: card}
		s.records[card.SubjectID] = record
		s.order = append(s.order, card.SubjectID)
	}
	return record
}

// Records returns the cards answered so far, in the order they were first answered.
func (s *Session) Records() []Record {
	records := make([]Record, 0, len(s.order))
	for _, subjectID := range s.order {
		records = append(records, *s.records[subjectID])
	}
	return records
}

// Results returns a review result for every card whose questions have all been answered.
// Each count is 1 if the first answer was incorrect and 0 otherwise.
func (s *Session) Results() []wanikani.ReviewResult {
	results := make([]wanikani.ReviewResult, 0, len(s.order))
	for _, record := range s.Records() {
		if !record.complete() {
			continue
		}
		result := wanikani.ReviewResult{
			AssignmentID: record.Card.AssignmentID,
		}
		if record.Meaning == OutcomeIncorrect {
			result.IncorrectMeaningAnswers = 1
		}
		if record.Reading == OutcomeIncorrect {
			result.IncorrectReadingAnswers = 1
		}
		results = append(results, result)
	}
	return results
}
