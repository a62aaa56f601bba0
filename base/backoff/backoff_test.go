package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	assert.Equal(t, time.Millisecond, b.NextDuration)

	expected := []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond}
	for _, exp := range expected {
		assert.NoError(t, b.Backoff(context.Background()))
		assert.Equal(t, exp, b.NextDuration)
	}
	assert.Equal(t, 4*time.Millisecond, b.LastDuration)

	b.Reset()
	assert.Equal(t, time.Millisecond, b.NextDuration)
	assert.Zero(t, b.LastDuration)
}

func TestBackoffCanceled(t *testing.T) {
	b := NewExponential(time.Hour, 0).WithJitter(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Backoff(ctx), context.Canceled)
	assert.Equal(t, time.Hour, b.NextDuration)
}
