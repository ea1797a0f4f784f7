package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Setup("")
		require.NoError(t, err)

		require.Equal(t, ":8080", cfg.ServerAddr)
		require.Equal(t, 7, cfg.BoardSize)
		require.Equal(t, 6, cfg.SearchDepth)
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("SERVER_ADDR: \":9090\"\nSEARCH_DEPTH: 8\n"), 0644))

		cfg, err := Setup(path)
		require.NoError(t, err)

		require.Equal(t, ":9090", cfg.ServerAddr)
		require.Equal(t, 8, cfg.SearchDepth)
		require.Equal(t, 7, cfg.BoardSize, "untouched keys keep their defaults")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
