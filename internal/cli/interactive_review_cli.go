// Package cli runs review sessions in the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wanipop/internal/review"
	"github.com/at-ishikawa/wanipop/internal/study"
	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

//go:generate mockgen -source=interactive_review_cli.go -destination=../mocks/cli/mock_interactive_review_cli.go -package=mock_cli

// BatchService fetches a batch of reviews and submits the answers.
type BatchService interface {
	GetReviewBatch(ctx context.Context) ([]review.Card, error)
	SubmitReviewBatch(ctx context.Context, results []wanikani.ReviewResult) ([]wanikani.SubmittedReviewData, error)
}

const (
	flipCommand = ":flip"
	quitCommand = ":quit"
)

var (
	errEnd  = errors.New("end")
	errQuit = errors.New("quit")
)

// InteractiveReviewCLI asks the questions of one review batch and submits the answers.
type InteractiveReviewCLI struct {
	service      BatchService
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewInteractiveReviewCLI(service BatchService, stdin io.Reader, stdout io.Writer) *InteractiveReviewCLI {
	return &InteractiveReviewCLI{
		service:      service,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Run fetches a batch, asks every question and submits the results of the answered cards.
// The end of input submits the completed cards, while :quit and an interrupt submit nothing.
// It returns review.ErrNoReviewsAvailable when nothing is due.
func (cli *InteractiveReviewCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	cards, err := cli.service.GetReviewBatch(ctx)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No reviews in this batch.")
		return nil
	}

	session := study.NewSession(cards)
	fmt.Fprintf(cli.stdoutWriter, "Starting %d reviews. Type %s to flip the last answer or %s to stop.\n\n",
		len(cards), flipCommand, quitCommand)

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := cli.Session(ctx, session); err != nil {
				if errors.Is(err, errEnd) {
					return
				}
				errCh <- err
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting without submitting...")
		return nil
	case err := <-errCh:
		if errors.Is(err, errQuit) {
			fmt.Fprintln(cli.stdoutWriter, "Quit, exiting without submitting...")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}

	return cli.submit(ctx, session)
}

// Session asks the current question of the session.
func (cli *InteractiveReviewCLI) Session(_ context.Context, session *study.Session) error {
	task, ok := session.Current()
	if !ok {
		fmt.Fprintln(cli.stdoutWriter, "No more reviews in this batch!")
		return errEnd
	}

	fmt.Fprintf(cli.stdoutWriter, "[%d left] %s\n", session.Remaining(), task.Prompt())
	cli.bold.Fprintf(cli.stdoutWriter, "%s: ", characters(task.Card))

	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input == "" {
			return errEnd
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	input = strings.TrimSpace(input)

	switch input {
	case quitCommand:
		return errQuit
	case flipCommand:
		outcome, err := session.Flip()
		if err != nil {
			fmt.Fprintf(cli.stdoutWriter, "%v\n\n", err)
			return nil
		}
		fmt.Fprintf(cli.stdoutWriter, "The last answer is now %s.\n\n", outcome)
		return nil
	}

	outcome, err := session.Answer(input)
	if errors.Is(err, study.ErrEmptyAnswer) {
		fmt.Fprintln(cli.stdoutWriter, "Type an answer.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("session.Answer > %w", err)
	}

	answers := acceptedAnswers(task)
	if outcome == study.OutcomeCorrect {
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		cli.green.Fprintf(cli.stdoutWriter, "It's correct. %s\n", cli.italic.Sprint(answers))
	} else {
		fmt.Fprint(cli.stdoutWriter, "❌ ")
		cli.red.Fprintf(cli.stdoutWriter, "It's wrong. The answer is %s\n", cli.italic.Sprint(answers))
		if mnemonic := mnemonicOf(task); mnemonic != "" {
			fmt.Fprintf(cli.stdoutWriter, "   Mnemonic: %s\n", mnemonic)
		}
	}
	fmt.Fprintln(cli.stdoutWriter)
	return nil
}

func (cli *InteractiveReviewCLI) submit(ctx context.Context, session *study.Session) error {
	results := session.Results()
	if len(results) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "Nothing to submit.")
		return nil
	}

	cards := make(map[int]review.Card, len(results))
	for _, record := range session.Records() {
		cards[record.Card.AssignmentID] = record.Card
	}

	submitted, err := cli.service.SubmitReviewBatch(ctx, results)
	if err != nil {
		var submissionErr *review.SubmissionError
		if errors.As(err, &submissionErr) {
			cli.printSubmitted(submissionErr.Succeeded, cards)
			for _, message := range submissionErr.Messages() {
				cli.red.Fprintf(cli.stdoutWriter, "Failed: %s\n", message)
			}
		}
		return fmt.Errorf("SubmitReviewBatch > %w", err)
	}
	cli.printSubmitted(submitted, cards)
	return nil
}

func (cli *InteractiveReviewCLI) printSubmitted(submitted []wanikani.SubmittedReviewData, cards map[int]review.Card) {
	for _, data := range submitted {
		line := fmt.Sprintf("%s: %s -> %s", characters(cards[data.AssignmentID]), data.StartingSRSStage, data.EndingSRSStage)
		if data.EndingSRSStage < data.StartingSRSStage {
			cli.red.Fprintln(cli.stdoutWriter, line)
			continue
		}
		cli.green.Fprintln(cli.stdoutWriter, line)
	}
}

// characters returns the characters of a card or its primary meaning for radicals drawn as images.
func characters(card review.Card) string {
	if card.Characters != nil && *card.Characters != "" {
		return *card.Characters
	}
	for _, meaning := range card.Meanings {
		if meaning.Primary {
			return meaning.Meaning
		}
	}
	return fmt.Sprintf("subject %d", card.SubjectID)
}

func acceptedAnswers(task study.Task) string {
	var answers []string
	if task.Type == study.TaskTypeReading {
		for _, reading := range task.Card.Readings {
			if reading.AcceptedAnswer {
				answers = append(answers, reading.Reading)
			}
		}
	} else {
		for _, meaning := range task.Card.Meanings {
			if meaning.AcceptedAnswer {
				answers = append(answers, meaning.Meaning)
			}
		}
	}
	return strings.Join(answers, ", ")
}

func mnemonicOf(task study.Task) string {
	mnemonic := task.Card.MeaningMnemonic
	if task.Type == study.TaskTypeReading {
		mnemonic = task.Card.ReadingMnemonic
	}
	if mnemonic == nil {
		return ""
	}
	return *mnemonic
}
