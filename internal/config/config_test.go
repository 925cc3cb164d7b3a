package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.TMDBAPIKey)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5005", cfg.Port)
	assert.Equal(t, "top-movies.db", cfg.DatabasePath)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDBAPIBase)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.TMDBImageBase)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_PATH", "/tmp/movies.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/movies.db", cfg.DatabasePath)
}
