package utils_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTerminal = errors.New("terminal")

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}

	attempts := 0
	err := utils.Retry(cfg, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 4, InitialDelay: time.Millisecond}

	attempts := 0
	err := utils.Retry(cfg, func() error {
		attempts++
		return errors.New("still broken")
	})

	require.Error(t, err)
	assert.Equal(t, 4, attempts)
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Millisecond}

	attempts := 0
	err := utils.Retry(cfg, func() error {
		attempts++
		return fmt.Errorf("request failed: %w", errTerminal)
	}, errTerminal)

	assert.ErrorIs(t, err, errTerminal)
	assert.Equal(t, 1, attempts, "sentinel failures must not be retried")
}

func TestRetry_DefaultAttempts(t *testing.T) {
	attempts := 0
	err := utils.Retry(utils.RetryConfig{InitialDelay: time.Millisecond}, func() error {
		attempts++
		return errors.New("nope")
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}
