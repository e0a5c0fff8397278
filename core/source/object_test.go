package source

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"asset-loader/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Prefixed object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "assets", "bundled/a.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"a":1}`)), nil).Once()

		src := NewObjectStore(client, "assets", "bundled")
		data, err := src.Load(ctx, "a.json")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
		client.AssertExpectations(t)
	})

	t.Run("No prefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "assets", "a.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("raw")), nil).Once()

		src := NewObjectStore(client, "assets", "")
		data, err := src.Load(ctx, "a.json")
		require.NoError(t, err)
		assert.Equal(t, "raw", string(data))
	})

	t.Run("Missing object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "assets", "gone.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		src := NewObjectStore(client, "assets", "")
		_, err := src.Load(ctx, "gone.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Transport error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "assets", "a.json", mock.Anything).
			Return(nil, errors.New("connection reset"))

		src := NewObjectStore(client, "assets", "")
		_, err := src.Load(ctx, "a.json")
		assert.ErrorContains(t, err, "connection reset")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestObjectStore_Modified(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "assets", "p/a.json", mock.Anything).
		Return(minio.ObjectInfo{LastModified: stamp}, nil)
	client.On("StatObject", mock.Anything, "assets", "p/b.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	src := NewObjectStore(client, "assets", "p")

	got, err := src.Modified(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, stamp.UnixNano(), got)

	_, err = src.Modified(ctx, "b.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestObjectStore_LoadIgnoresCallerCancellation(t *testing.T) {
	client := new(mocks.Client)
	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	client.On("GetObject", live, "assets", "a.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader("raw")), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewObjectStore(client, "assets", "")
	data, err := src.Load(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, "raw", string(data))
	client.AssertExpectations(t)
}
