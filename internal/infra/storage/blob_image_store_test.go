package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// lifecycleRecorder captures hooks so the test can drive shutdown itself.
type lifecycleRecorder struct {
	hooks []fx.Hook
}

func (l *lifecycleRecorder) Append(hook fx.Hook) {
	l.hooks = append(l.hooks, hook)
}

func newStoreFixture(t *testing.T) (*lifecycleRecorder, string, service.ImageStore) {
	t.Helper()

	dir := t.TempDir()
	lc := &lifecycleRecorder{}

	cfg := &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "file://" + dir,
			PublicBaseURL: "https://cdn.example.com/",
		},
	}

	store, err := NewBlobImageStore(ImageStoreParams{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return lc, dir, store
}

func TestBlobImageStore_SaveAndRemove(t *testing.T) {
	_, dir, store := newStoreFixture(t)

	ctx := context.Background()
	url, err := store.Save(ctx, "products/img.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/img.png", url)

	_, err = os.Stat(filepath.Join(dir, "products", "img.png"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, "products/img.png"))
	// Removing an already-removed image is not an error.
	require.NoError(t, store.Remove(ctx, "products/img.png"))
}

func TestBlobImageStore_ClosesBucketOnShutdown(t *testing.T) {
	lc, _, _ := newStoreFixture(t)

	require.Len(t, lc.hooks, 1)
	require.NotNil(t, lc.hooks[0].OnStop)
	assert.NoError(t, lc.hooks[0].OnStop(context.Background()))
}

func TestBlobImageStore_MissingBucketURL(t *testing.T) {
	store, err := NewBlobImageStore(ImageStoreParams{
		Lc:     &lifecycleRecorder{},
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
	assert.Nil(t, store)
}
