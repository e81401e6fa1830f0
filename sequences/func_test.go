package sequences

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/elastiflow/flows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFunc(t *testing.T) {
	t.Run("given a counting next, should yield until it reports exhaustion", func(t *testing.T) {
		n := 0
		var stops atomic.Int32
		f := FromFunc(func(ctx context.Context) (int, bool, error) {
			if n >= 3 {
				return 0, false, nil
			}
			n++
			return n, true, nil
		}, func() error {
			stops.Add(1)
			return nil
		})

		got, err := flows.Collect(context.Background(), f)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
		assert.Equal(t, int32(1), stops.Load())
	})

	t.Run("given a nil stop, should close without error", func(t *testing.T) {
		f := FromFunc(func(ctx context.Context) (int, bool, error) {
			return 0, false, nil
		}, nil)

		seq := f.Iterate(context.Background())
		require.NoError(t, seq.Close())
		require.NoError(t, seq.Close())
	})
}
