package progress

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	t.Run("Empty counter is complete", func(t *testing.T) {
		c := NewCounter()
		assert.Equal(t, Complete, c.Complete())
	})

	t.Run("Loading until all trackers report", func(t *testing.T) {
		c := NewCounter()
		c.AddAssets(2)
		first, second := c.CreateTracker(), c.CreateTracker()

		assert.Equal(t, Loading, c.Complete())
		assert.Equal(t, 2, c.NumLoading())

		first.Success()
		assert.Equal(t, Loading, c.Complete())

		second.Success()
		assert.True(t, c.IsComplete())
		assert.Equal(t, 0, c.NumLoading())
	})

	t.Run("Failure recorded", func(t *testing.T) {
		c := NewCounter()
		c.AddAssets(1)
		boom := errors.New("boom")
		c.CreateTracker().Fail(7, "Mesh", "a.obj", boom)

		assert.Equal(t, Failed, c.Complete())
		require.Len(t, c.Errors(), 1)
		got := c.Errors()[0]
		assert.Equal(t, uint64(7), got.HandleID)
		assert.Equal(t, "a.obj", got.Name)
		assert.ErrorIs(t, got, boom)
		assert.Contains(t, got.Error(), `Mesh "a.obj"`)
	})

	t.Run("Tracker reports once", func(t *testing.T) {
		c := NewCounter()
		c.AddAssets(1)
		tr := c.CreateTracker()
		tr.Success()
		tr.Success()
		tr.Fail(1, "x", "y", errors.New("late"))

		assert.Equal(t, 1, c.NumFinished())
		assert.Equal(t, 0, c.NumFailed())
	})

	t.Run("Concurrent trackers", func(t *testing.T) {
		c := NewCounter()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			c.AddAssets(1)
			tr := c.CreateTracker()
			wg.Add(1)
			go func() {
				defer wg.Done()
				tr.Success()
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, c.NumFinished())
		assert.True(t, c.IsComplete())
	})
}

func TestCompletionString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "complete", Complete.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "completion(9)", Completion(9).String())
}
