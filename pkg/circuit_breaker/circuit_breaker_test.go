package circuit_breaker_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/shareit-lab/shareit-service/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	t.Run("stays closed on success", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Second, 0.5, 2)
		for i := 0; i < 30; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("opens after failure percentile", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Minute, 0.5, 2)
		for i := 0; i < 5; i++ {
			require.Error(t, cb.Call(fail))
		}
		// the tail is now half failures, the breaker must be open
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})

	t.Run("recovers via half-open", func(t *testing.T) {
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, cb.Call(fail))
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, cb.Call(ok))
		require.NoError(t, cb.Call(ok))
		require.NoError(t, cb.Call(ok))
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		cb := circuit_breaker.New(4, time.Minute, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.Error(t, cb.Call(fail))
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
		cb.Reset()
		require.NoError(t, cb.Call(ok))
	})
}
