package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	t.Run("succeeds after temporary failures", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return errTemporary
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when attempts exhausted", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), cfg, func() error {
			calls++
			return errTemporary
		})
		assert.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on stop error", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), cfg, func() error {
			calls++
			return errFatal
		}, errFatal)
		assert.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
			calls++
			return errTemporary
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 1, calls)
	})
}
