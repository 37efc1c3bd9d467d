// Package history persists the "continue watching" list.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/store"
)

// Key is the store key holding the JSON-encoded entry list.
const Key = "continueWatching"

type Entry struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	MediaType    string  `json:"media_type"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// FromItem builds an entry played under kind. An empty kind falls back to the
// item's own kind, then to movie.
func FromItem(it catalog.Item, kind string) Entry {
	if kind == "" {
		kind = it.KindOr(catalog.Movie)
	}
	return Entry{
		ID:           it.ID,
		Title:        it.Title,
		MediaType:    kind,
		PosterPath:   it.PosterPath,
		BackdropPath: it.BackdropPath,
		VoteAverage:  it.VoteAverage,
	}
}

func kindOrMovie(kind string) string {
	if kind == "" {
		return catalog.Movie
	}
	return kind
}

// Item converts the entry back for rendering in rows.
func (e Entry) Item() catalog.Item {
	return catalog.Item{
		ID:           e.ID,
		Title:        e.Title,
		PosterPath:   e.PosterPath,
		BackdropPath: e.BackdropPath,
		VoteAverage:  e.VoteAverage,
		Kind:         e.MediaType,
	}
}

type Repository struct {
	mu sync.Mutex
	kv store.KV
}

func New(kv store.KV) *Repository {
	return &Repository{kv: kv}
}

// Load returns the stored entries in insertion order. A missing key is an empty list.
func (r *Repository) Load() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *Repository) load() ([]Entry, error) {
	raw, err := r.kv.Get(Key)
	if errors.Is(err, store.ErrNotFound) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	entries := []Entry{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// Append adds e unless an entry with the same id and media type exists.
// It reports whether the list changed.
func (r *Repository) Append(e Entry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.MediaType = kindOrMovie(e.MediaType)
	entries, err := r.load()
	if err != nil {
		return false, err
	}
	for _, existing := range entries {
		if existing.ID == e.ID && existing.MediaType == e.MediaType {
			return false, nil
		}
	}

	data, err := json.Marshal(append(entries, e))
	if err != nil {
		return false, fmt.Errorf("encode history: %w", err)
	}
	if err := r.kv.Set(Key, string(data)); err != nil {
		return false, fmt.Errorf("write history: %w", err)
	}
	return true, nil
}

func (r *Repository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.kv.Delete(Key)
}
