package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	sentinel := errors.New("missing key")
	attempts := 0

	err := Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return Permanent(sentinel)
	}, WithInitialDelay(time.Millisecond))

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, attempts, "permanent errors are not retried")
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("still down")
	}, WithMaxAttempts(4), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 4, attempts)
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := Do(ctx, func(ctx context.Context) error {
		attempts++
		cancel()
		return errors.New("transient")
	}, WithMaxAttempts(10), WithInitialDelay(10*time.Millisecond))

	require.Error(t, err)
	assert.Equal(t, 1, attempts, "cancellation stops the retry loop")
}

func TestDoWithData(t *testing.T) {
	attempts := 0
	value, err := DoWithData(context.Background(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 2 {
			return "", errors.New("transient")
		}
		return "token", nil
	}, WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, "token", value)
}

func TestStoreOptions(t *testing.T) {
	config := DefaultConfig()
	for _, opt := range StoreOptions() {
		opt(&config)
	}
	assert.Equal(t, 3, config.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, config.InitialDelay)
	assert.Equal(t, 500*time.Millisecond, config.MaxDelay,
		"the worst case stays inside one interactive keystroke")
}

func TestCalculateDelay_IsCappedAndNonNegative(t *testing.T) {
	r := New(
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(time.Second),
		WithMultiplier(10),
		WithJitter(0),
	)
	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, time.Second, r.calculateDelay(5), "delay is capped at MaxDelay")
}
