package review

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/at-ishikawa/wanipop/internal/wanikani"
)

// ErrNoReviewsAvailable is returned when no review bucket is available and non-empty.
var ErrNoReviewsAvailable = errors.New("no reviews available right now")

// Selector picks the subjects to review from a summary.
type Selector struct {
	now     func() time.Time
	shuffle func(n int, swap func(i, j int))
}

func NewSelector() *Selector {
	return &Selector{
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
}

// firstAvailableBucket returns the first bucket in the given order that is due and has subjects.
func (s *Selector) firstAvailableBucket(summary wanikani.Summary) (wanikani.Bucket, bool) {
	now := s.now()
	for _, bucket := range summary.Reviews {
		if !bucket.AvailableAt.After(now) && len(bucket.SubjectIDs) > 0 {
			return bucket, true
		}
	}
	return wanikani.Bucket{}, false
}

// HasAvailableReviews reports whether SelectBatch would find a bucket.
func (s *Selector) HasAvailableReviews(summary wanikani.Summary) bool {
	_, ok := s.firstAvailableBucket(summary)
	return ok
}

// SelectBatch returns up to maxSize subject IDs from the first available review bucket.
// A bucket larger than maxSize is sampled uniformly at random, so calling this twice can return different IDs.
// A maxSize of 0 or less returns an empty batch.
func (s *Selector) SelectBatch(summary wanikani.Summary, maxSize int) ([]int, error) {
	bucket, ok := s.firstAvailableBucket(summary)
	if !ok {
		return nil, ErrNoReviewsAvailable
	}
	if maxSize < 0 {
		maxSize = 0
	}

	ids := make([]int, len(bucket.SubjectIDs))
	copy(ids, bucket.SubjectIDs)
	if len(ids) > maxSize {
		s.shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
		ids = ids[:maxSize]
	}

	slog.Default().Debug("chose reviews to do",
		"availableAt", bucket.AvailableAt,
		"bucketSize", len(bucket.SubjectIDs),
		"subjectIDs", ids,
	)
	return ids, nil
}
