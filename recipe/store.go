package recipe

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps recipes by name and, when created with a directory, mirrors
// each one to a YAML file there.  It is safe for concurrent use; recipes
// go in and come out as copies.
type Store struct {
	mu      sync.RWMutex
	recipes map[string]*Recipe
	dir     string
	now     func() time.Time
}

// NewStore returns an empty store persisting to dir.  An empty dir keeps
// recipes in memory only.  Call [Store.Load] to read existing files.
func NewStore(dir string) *Store {
	return &Store{
		recipes: make(map[string]*Recipe),
		dir:     dir,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Save validates r, assigns an ID and timestamps, and stores it, replacing
// any recipe of the same name.  The assigned fields are written back to r.
func (s *Store) Save(r *Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored := r.clone()
	if prev, ok := s.recipes[r.Name]; ok {
		if stored.ID == "" {
			stored.ID = prev.ID
		}
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = prev.CreatedAt
		}
	}
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	if s.dir != "" {
		if err := s.persist(stored); err != nil {
			return err
		}
	}
	s.recipes[r.Name] = stored
	r.ID, r.CreatedAt, r.UpdatedAt = stored.ID, stored.CreatedAt, stored.UpdatedAt
	return nil
}

// Get returns a copy of the named recipe.
func (s *Store) Get(name string) (*Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.clone(), nil
}

// List returns copies of all recipes sorted by name.
func (s *Store) List() []*Recipe {
	s.mu.RLock()
	out := make([]*Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.clone())
	}
	s.mu.RUnlock()

	sortByName(out)
	return out
}

// Delete removes the named recipe and its file.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.recipes, name)

	if s.dir != "" {
		if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("recipe: failed to delete recipe file: %w", err)
		}
	}
	return nil
}

// Load reads every .yaml and .yml file of the store directory, creating the
// directory when missing.  A file that does not parse aborts the load.
func (s *Store) Load() error {
	if s.dir == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("recipe: failed to create recipes directory: %w", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("recipe: failed to read recipes directory: %w", err)
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("recipe: failed to read %s: %w", entry.Name(), err)
		}
		r, err := Parse(data)
		if err != nil {
			return fmt.Errorf("recipe: %s: %w", entry.Name(), err)
		}
		s.recipes[r.Name] = r
	}
	return nil
}

// Search returns copies of the recipes whose name, description or one of
// whose tags contains query, ignoring case, sorted by name.
func (s *Store) Search(query string) []*Recipe {
	q := strings.ToLower(query)
	match := func(v string) bool { return strings.Contains(strings.ToLower(v), q) }

	s.mu.RLock()
	var out []*Recipe
	for _, r := range s.recipes {
		if match(r.Name) || match(r.Description) || slices.ContainsFunc(r.Tags, match) {
			out = append(out, r.clone())
		}
	}
	s.mu.RUnlock()

	sortByName(out)
	return out
}

func (s *Store) persist(r *Recipe) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("recipe: failed to create recipes directory: %w", err)
	}
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(r.Name), data, 0o644); err != nil {
		return fmt.Errorf("recipe: failed to write recipe file: %w", err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, sanitizeFilename(name)+".yaml")
}

// sanitizeFilename keeps ASCII letters, digits, '-' and '_', and turns
// spaces into '_'.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}

func sortByName(rs []*Recipe) {
	slices.SortFunc(rs, func(a, b *Recipe) int { return cmp.Compare(a.Name, b.Name) })
}
