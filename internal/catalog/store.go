package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Store holds the live catalogs behind a read lock and reloads them when the
// backing files change. Readers always see a complete catalog: a failed
// reload keeps the previous one.
type Store struct {
	mu       sync.RWMutex
	patterns Catalog
	profiles []Profile
	loadedAt time.Time

	patternPath string
	profilePath string
	watcher     *fsnotify.Watcher
}

// NewStore loads the catalogs once. Empty paths fall back to the built-in
// defaults; file catalogs are layered on top of the defaults. Load errors
// here are fatal to the caller; there is no half-loaded state.
func NewStore(patternPath, profilePath string) (*Store, error) {
	s := &Store{patternPath: patternPath, profilePath: profilePath}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStoreFromCatalogs builds a store around already-materialized catalogs.
// Used by tests and one-shot callers that don't read from disk.
func NewStoreFromCatalogs(patterns Catalog, profiles []Profile) *Store {
	return &Store{patterns: patterns, profiles: profiles, loadedAt: time.Now()}
}

// Patterns returns the current pattern catalog.
func (s *Store) Patterns() Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patterns
}

// Profiles returns a copy of the current profile catalog.
func (s *Store) Profiles() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// LoadedAt reports when the catalogs were last loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Reload re-reads both catalog files and swaps them in atomically. On error
// the store keeps serving the previous catalogs.
func (s *Store) Reload() error {
	patterns := Defaults()
	if s.patternPath != "" {
		loaded, err := LoadPatterns(s.patternPath)
		if err != nil {
			return err
		}
		patterns = Merge(patterns, loaded)
	}

	profiles := DefaultProfiles()
	if s.profilePath != "" {
		loaded, err := LoadProfiles(s.profilePath)
		if err != nil {
			return err
		}
		profiles = MergeProfiles(profiles, loaded)
	}

	s.mu.Lock()
	s.patterns = patterns
	s.profiles = profiles
	s.loadedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Watch reloads the store whenever a backing file is written. It returns
// immediately; watching stops when ctx is cancelled or Close is called.
func (s *Store) Watch(ctx context.Context) error {
	if s.patternPath == "" && s.profilePath == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}

	dirs := make(map[string]struct{})
	for _, p := range []string{s.patternPath, s.profilePath} {
		if p != "" {
			dirs[filepath.Dir(p)] = struct{}{}
		}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch catalog dir %s: %w", dir, err)
		}
	}

	s.watcher = watcher
	go s.watchLoop(ctx)
	return nil
}

func (s *Store) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !s.isCatalogFile(event.Name) {
				continue
			}
			// Editors often write in two steps; give the file a moment.
			time.Sleep(100 * time.Millisecond)
			if err := s.Reload(); err != nil {
				log.Error().Err(err).Str("file", event.Name).
					Msg("catalog reload failed, keeping previous catalog")
				continue
			}
			log.Info().Str("file", event.Name).Msg("catalog reloaded")
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("catalog watcher error")
		}
	}
}

func (s *Store) isCatalogFile(name string) bool {
	for _, p := range []string{s.patternPath, s.profilePath} {
		if p == "" {
			continue
		}
		if filepath.Clean(name) == filepath.Clean(p) ||
			filepath.Base(name) == filepath.Base(p) {
			return true
		}
	}
	return false
}

// Close stops the file watcher, if one was started.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
