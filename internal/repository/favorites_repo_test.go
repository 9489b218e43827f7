package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFavorites(t *testing.T) (FavoritesRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	return NewFavoritesRepository(path), path
}

func TestFavoritesEmptyForNewUser(t *testing.T) {
	repo, _ := newTestFavorites(t)

	favorites, err := repo.Get(42)
	require.NoError(t, err)
	assert.Empty(t, favorites.Accounts)
	assert.Empty(t, favorites.Tokens)
}

func TestFavoritesAddAccount(t *testing.T) {
	repo, _ := newTestFavorites(t)

	favorites, err := repo.AddAccount(42, "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK")
	require.NoError(t, err)
	assert.Equal(t, []string{"DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"}, favorites.Accounts)
	assert.Empty(t, favorites.Tokens)
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	repo, _ := newTestFavorites(t)

	_, err := repo.AddToken(42, "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	favorites, err := repo.AddToken(42, "So11111111111111111111111111111111111111112")
	require.NoError(t, err)

	assert.Len(t, favorites.Tokens, 1)
}

func TestFavoritesSurviveReload(t *testing.T) {
	repo, path := newTestFavorites(t)

	_, err := repo.AddAccount(42, "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK")
	require.NoError(t, err)
	_, err = repo.AddToken(42, "So11111111111111111111111111111111111111112")
	require.NoError(t, err)

	reloaded := NewFavoritesRepository(path)
	favorites, err := reloaded.Get(42)
	require.NoError(t, err)
	assert.Equal(t, []string{"DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"}, favorites.Accounts)
	assert.Equal(t, []string{"So11111111111111111111111111111111111111112"}, favorites.Tokens)
}

func TestFavoritesIsolateUsers(t *testing.T) {
	repo, _ := newTestFavorites(t)

	_, err := repo.AddAccount(1, "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK")
	require.NoError(t, err)
	_, err = repo.AddAccount(2, "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	require.NoError(t, err)

	first, err := repo.Get(1)
	require.NoError(t, err)
	second, err := repo.Get(2)
	require.NoError(t, err)

	assert.Equal(t, []string{"DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"}, first.Accounts)
	assert.Equal(t, []string{"4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"}, second.Accounts)
}

func TestFavoritesFileKeyedByUserID(t *testing.T) {
	repo, path := newTestFavorites(t)

	_, err := repo.AddToken(42, "So11111111111111111111111111111111111111112")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]UserFavorites
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "42")
	assert.Equal(t, []string{"So11111111111111111111111111111111111111112"}, raw["42"].Tokens)
}
