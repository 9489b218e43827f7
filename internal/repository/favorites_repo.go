package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"vybevigil/pkg/utils"
)

// UserFavorites holds one user's saved addresses, keyed in the backing file
// by the decimal user ID.
type UserFavorites struct {
	Accounts []string `json:"accounts"`
	Tokens   []string `json:"tokens"`
}

type FavoritesRepository interface {
	Get(userID int64) (*UserFavorites, error)
	AddAccount(userID int64, address string) (*UserFavorites, error)
	AddToken(userID int64, mint string) (*UserFavorites, error)
}

type favoritesRepository struct {
	path string
	mu   sync.Mutex
}

func NewFavoritesRepository(path string) FavoritesRepository {
	if dir := filepath.Dir(path); dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	return &favoritesRepository{path: path}
}

// load must be called with mu held when the result feeds a write.
func (r *favoritesRepository) load() (map[string]*UserFavorites, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*UserFavorites{}, nil
		}
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	db := map[string]*UserFavorites{}
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to parse favorites file: %w", err)
	}
	return db, nil
}

// save rewrites the whole file through a temp file and rename so a crash
// mid-write never leaves a truncated file behind.
func (r *favoritesRepository) save(db map[string]*UserFavorites) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp favorites file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}

func (r *favoritesRepository) Get(userID int64) (*UserFavorites, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.load()
	if err != nil {
		return nil, err
	}

	favs, ok := db[strconv.FormatInt(userID, 10)]
	if !ok {
		return &UserFavorites{Accounts: []string{}, Tokens: []string{}}, nil
	}
	return favs, nil
}

func (r *favoritesRepository) add(userID int64, address string, pick func(*UserFavorites) *[]string) (*UserFavorites, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.load()
	if err != nil {
		return nil, err
	}

	key := strconv.FormatInt(userID, 10)
	favs, ok := db[key]
	if !ok {
		favs = &UserFavorites{Accounts: []string{}, Tokens: []string{}}
		db[key] = favs
	}

	list := pick(favs)
	if utils.ContainsString(*list, address) {
		return favs, nil
	}

	*list = append(*list, address)
	if err := r.save(db); err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *favoritesRepository) AddAccount(userID int64, address string) (*UserFavorites, error) {
	return r.add(userID, address, func(f *UserFavorites) *[]string { return &f.Accounts })
}

func (r *favoritesRepository) AddToken(userID int64, mint string) (*UserFavorites, error) {
	return r.add(userID, mint, func(f *UserFavorites) *[]string { return &f.Tokens })
}
