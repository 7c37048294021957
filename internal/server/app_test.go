package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/pinvault/internal/server/blobs"
	"github.com/dmitrijs2005/pinvault/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestNewBlobStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	cfg.BlobBackend = config.BlobBackendMemory
	store, err := newBlobStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &blobs.MemoryStore{}, store)

	cfg.BlobBackend = config.BlobBackendS3
	store, err = newBlobStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &blobs.S3Store{}, store)

	cfg.BlobBackend = "floppy"
	_, err = newBlobStore(context.Background(), cfg)
	assert.Error(t, err)
}
