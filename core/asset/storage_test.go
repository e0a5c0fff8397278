package asset

import (
	"context"
	"errors"
	"sync"
	"testing"

	"asset-loader/core/format"
	"asset-loader/core/progress"
	"asset-loader/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// inlineSpawner runs jobs synchronously.
type inlineSpawner struct{}

func (inlineSpawner) Spawn(job func()) { job() }

func TestHandle(t *testing.T) {
	s := NewStorage[string]("Text", nil)
	a := s.Allocate()
	b := s.Allocate()

	assert.True(t, a.IsValid())
	assert.False(t, Handle[string]{}.IsValid())
	assert.Equal(t, uint64(0), Handle[string]{}.ID())
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a, a.Clone())
	assert.Equal(t, "Handle(1)", a.String())
}

func TestStorage_AllocateIsPending(t *testing.T) {
	s := NewStorage[string]("Text", zap.NewNop())
	h := s.Allocate()

	state, err := s.State(h)
	assert.Equal(t, Pending, state)
	assert.NoError(t, err)

	_, ok := s.Get(h)
	assert.False(t, ok)

	looked, ok := s.Lookup(h.ID())
	require.True(t, ok)
	assert.True(t, h.Equal(looked))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "Text", s.Name())
}

func TestStorage_ProcessAll(t *testing.T) {
	s := NewStorage[string]("Text", zap.NewNop())
	counter := progress.NewCounter()

	ok := s.Allocate()
	bad := s.Allocate()
	counter.AddAssets(2)

	s.Processed().Push(Processed[string]{
		Value:   format.Data("hello"),
		Handle:  ok,
		Name:    "a.txt",
		Tracker: counter.CreateTracker(),
	})
	s.Processed().Push(Processed[string]{
		Err:     errors.New("corrupt"),
		Handle:  bad,
		Name:    "b.txt",
		Tracker: counter.CreateTracker(),
	})
	assert.Equal(t, 2, s.Processed().Len())

	assert.Equal(t, 2, s.ProcessAll())
	assert.Equal(t, 0, s.Processed().Len())

	data, found := s.Get(ok)
	require.True(t, found)
	assert.Equal(t, "hello", data)

	state, err := s.State(bad)
	assert.Equal(t, Failed, state)
	assert.EqualError(t, err, "corrupt")

	assert.Equal(t, 1, counter.NumFinished())
	assert.Equal(t, 1, counter.NumFailed())
	require.Len(t, counter.Errors(), 1)
	assert.Equal(t, "b.txt", counter.Errors()[0].Name)
	assert.Equal(t, "Text", counter.Errors()[0].AssetType)
}

func TestStorage_UnknownHandleDropped(t *testing.T) {
	s := NewStorage[string]("Text", zap.NewNop())
	other := NewStorage[string]("Other", zap.NewNop())
	h := other.Allocate()
	other.Allocate()
	foreign := other.Allocate()

	s.Processed().Push(Processed[string]{Value: format.Data("x"), Handle: foreign, Name: "x"})
	s.ProcessAll()

	state, _ := s.State(h)
	assert.Equal(t, Unknown, state)
}

func TestStorage_ConcurrentPush(t *testing.T) {
	s := NewStorage[int]("Number", zap.NewNop())
	var wg sync.WaitGroup
	handles := make([]Handle[int], 64)
	for i := range handles {
		handles[i] = s.Allocate()
	}

	for i, h := range handles {
		wg.Add(1)
		go func(i int, h Handle[int]) {
			defer wg.Done()
			s.Processed().Push(Processed[int]{Value: format.Data(i), Handle: h, Name: "n"})
		}(i, h)
	}
	wg.Wait()

	assert.Equal(t, 64, s.ProcessAll())
	for i, h := range handles {
		got, ok := s.Get(h)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

type doc struct {
	Name string `json:"name"`
}

func TestStorage_HotReload(t *testing.T) {
	ctx := context.Background()
	mem := source.NewMemory()
	mem.Put("d.json", []byte(`{"name":"v1"}`))

	s := NewStorage[doc]("Doc", zap.NewNop())
	h := s.Allocate()

	value, err := format.NewJSON[doc]().Import(ctx, "d.json", mem, format.JSONOptions{}, true)
	require.NoError(t, err)
	s.Processed().Push(Processed[doc]{Value: value, Handle: h, Name: "d.json"})
	s.ProcessAll()

	assert.Equal(t, 0, s.HotReload(ctx, inlineSpawner{}), "unchanged asset must not reload")

	mem.Put("d.json", []byte(`{"name":"v2"}`))
	assert.Equal(t, 1, s.HotReload(ctx, inlineSpawner{}))
	s.ProcessAll()

	got, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, "v2", got.Name)

	t.Run("Failed reload keeps old data", func(t *testing.T) {
		mem.Put("d.json", []byte(`{"name":`))
		assert.Equal(t, 1, s.HotReload(ctx, inlineSpawner{}))
		s.ProcessAll()

		got, ok := s.Get(h)
		require.True(t, ok)
		assert.Equal(t, "v2", got.Name)
	})
}

func TestStateAndKindStrings(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "new_asset", NewAsset.String())
	assert.Equal(t, "hot_reload", HotReload.String())
}
