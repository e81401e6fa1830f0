package sequences

import (
	"context"
	"testing"

	"github.com/elastiflow/flows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromChannel(t *testing.T) {
	t.Run("given a closed channel, should yield buffered values then exhaust", func(t *testing.T) {
		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)

		got, err := flows.Collect(context.Background(), FromChannel(ch))

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("given context is done, should return its error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ch := make(chan int)

		_, err := flows.Collect(ctx, FromChannel(ch))

		assert.ErrorIs(t, err, context.Canceled)
	})
}
