package preferences

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// Store reads and writes the preferences file.
type Store struct {
	path string

	// lastSum is the content hash of the last successfully written blob;
	// a save with an identical hash is skipped.
	lastSum string
}

// NewStore returns a pointer to a new [Store] for the given file path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Path returns the preferences file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences file. Loading is total: a missing or corrupt
// file yields defaults, never an error.
func (s *Store) Load() *Preferences {
	prefs := Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return prefs
	}

	if err := json.Unmarshal(data, prefs); err != nil {
		slog.Debug("Preferences file not parsable, using defaults.", "path", s.path, "err", err)

		return Default()
	}

	if prefs.PoolExpanded == nil {
		prefs.PoolExpanded = make(map[string]bool)
	}

	s.lastSum = contentSum(data)

	return prefs
}

// Save writes the preferences file atomically. Writes whose serialized
// content matches the last written blob are skipped.
func (s *Store) Save(prefs *Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("(preferences) failed to marshal: %w", err)
	}

	sum := contentSum(data)
	if sum == s.lastSum {
		return nil
	}

	if err := s.writeAtomic(data); err != nil {
		return err
	}

	s.lastSum = sum

	return nil
}

// writeAtomic writes the blob to a temporary file in the target directory and
// replaces the preferences file in one step.
func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("(preferences) failed to create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".spacewatch-*")
	if err != nil {
		return fmt.Errorf("(preferences) failed to create temporary file: %w", err)
	}
	tmpPath := tmpFile.Name()

	var replaced bool
	defer func() {
		if !replaced {
			os.Remove(tmpPath) //nolint:errcheck
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()

		return fmt.Errorf("(preferences) failed to write temporary file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()

		return fmt.Errorf("(preferences) failed to sync temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("(preferences) failed to close temporary file: %w", err)
	}

	if err := replaceFile(tmpPath, s.path); err != nil {
		return fmt.Errorf("(preferences) failed to replace file: %w", err)
	}

	replaced = true

	return nil
}

// contentSum returns the hex content hash of a serialized blob.
func contentSum(data []byte) string {
	hasher := blake3.New()
	hasher.Write(data) //nolint:errcheck

	return hex.EncodeToString(hasher.Sum(nil))
}
