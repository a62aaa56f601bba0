package backoff

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Backoff sleeps for exponentially growing periods, capped at limit.
// It is not safe for concurrent use.
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	jitter       time.Duration
	count        int
	rnd          *rand.Rand
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := Backoff{start: start, limit: limit}
	b.Reset()
	return &b
}

// WithJitter adds a random duration in [0, jitter) to every sleep
func (b *Backoff) WithJitter(jitter time.Duration) *Backoff {
	b.jitter = jitter
	b.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Backoff blocks for NextDuration, returning early with ctx's error if ctx is done first
func (b *Backoff) Backoff(ctx context.Context) error {
	d := b.NextDuration
	if b.jitter > 0 {
		d += time.Duration(b.rnd.Int63n(int64(b.jitter)))
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.getNextDuration()
	return nil
}

func (b *Backoff) getNextDuration() time.Duration {
	backoff := time.Duration(int64(math.Pow(2, float64(b.count)))) * b.start
	if b.limit > 0 && backoff > b.limit {
		backoff = b.limit
	}
	return backoff
}
