package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/souvikjs01/unkey/internal/service"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_Wrapped(t *testing.T) {
	sentinels := []error{service.ErrNotFound, service.ErrConflict, service.ErrInvalid, service.ErrUnauthorized}

	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("create namespace: %w", sentinel)
		require.True(t, errors.Is(wrapped, sentinel))
		for _, other := range sentinels {
			if other != sentinel {
				require.False(t, errors.Is(wrapped, other))
			}
		}
	}
}
