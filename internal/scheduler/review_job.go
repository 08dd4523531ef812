package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/at-ishikawa/wanipop/internal/review"
)

// AllCaughtUpMessage is shown when a check finds nothing to review.
const AllCaughtUpMessage = "All caught up! No reviews available right now."

type ReviewChecker interface {
	CheckForReviews(ctx context.Context) (bool, error)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}

// ReviewJob checks for due reviews and starts a review session when there are some.
// At most one run is in progress at a time, whether it was started by a tick or called directly.
type ReviewJob struct {
	checker  ReviewChecker
	session  func(ctx context.Context) error
	notifier Notifier

	inProgress atomic.Bool
}

func NewReviewJob(checker ReviewChecker, session func(ctx context.Context) error, notifier Notifier) *ReviewJob {
	return &ReviewJob{
		checker:  checker,
		session:  session,
		notifier: notifier,
	}
}

func (j *ReviewJob) Run(ctx context.Context) error {
	if !j.inProgress.CompareAndSwap(false, true) {
		slog.Default().Info("skipping the review check, a session is still in progress")
		return nil
	}
	defer j.inProgress.Store(false)

	available, err := j.checker.CheckForReviews(ctx)
	if err != nil {
		j.notifier.Notify(err.Error())
		return fmt.Errorf("CheckForReviews > %w", err)
	}
	if !available {
		j.notifier.Notify(AllCaughtUpMessage)
		return nil
	}

	if err := j.session(ctx); err != nil {
		// reviews can be done elsewhere between the check and the batch fetch
		if errors.Is(err, review.ErrNoReviewsAvailable) {
			j.notifier.Notify(AllCaughtUpMessage)
			return nil
		}
		j.notifier.Notify(err.Error())
		return fmt.Errorf("review session > %w", err)
	}
	return nil
}
