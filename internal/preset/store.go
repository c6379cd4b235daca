// Package preset persists named snapshots of a scene's parameter values.
// Records are JSON files in one directory, keyed by scene slug, plus an
// index file carrying display names and tags.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotFound indicates no record matches the requested scene or id.
var ErrNotFound = errors.New("preset: not found")

// Record is one saved parameter snapshot.
type Record struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
	Tags      []string           `json:"tags,omitempty"`
}

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.dir, 0755)
}

// Save writes a new timestamped record for the scene. An empty name gets
// an UTC timestamp name, matching the save dialog fallback. The write goes
// through a temp file and rename so a failure leaves no partial record.
func (s *Store) Save(slug, name string, values map[string]float64) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	now := time.Now()
	if name = strings.TrimSpace(name); name == "" {
		name = now.UTC().Format("20060102T150405Z")
	}
	rec := Record{
		ID:        fmt.Sprintf("%s_%d", slug, now.UnixNano()),
		Scene:     slug,
		Name:      name,
		Timestamp: now,
		Values:    values,
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	final := s.path(rec.ID)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return rec.ID, nil
}

// Load reads one record by id.
func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("preset %s: %w", id, err)
	}
	return &rec, nil
}

// LoadLatest returns the most recently saved record for the scene.
func (s *Store) LoadLatest(slug string) (*Record, error) {
	recs, err := s.List(slug)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no presets for scene %s", ErrNotFound, slug)
	}
	return &recs[0], nil
}

// List returns the scene's records ordered newest first. A missing
// directory is an empty list, not an error.
func (s *Store) List(slug string) ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var recs []Record
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || name == indexFile {
			continue
		}
		rec, err := s.Load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue // skip unreadable records rather than failing the listing
		}
		if rec.Scene == slug {
			recs = append(recs, *rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Timestamp.After(recs[j].Timestamp) })
	return recs, nil
}

// Delete removes a record and its index entry.
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return err
	}
	idx, _ := s.loadIndex()
	if _, ok := idx[id]; ok {
		delete(idx, id)
		return s.saveIndex(idx)
	}
	return nil
}

// Rename changes a record's display name in place.
func (s *Store) Rename(id, name string) error {
	rec, err := s.Load(id)
	if err != nil {
		return err
	}
	rec.Name = name
	idx, _ := s.loadIndex()
	if entry, ok := idx[rec.ID]; ok {
		entry.Name = name
		idx[rec.ID] = entry
		if err := s.saveIndex(idx); err != nil {
			return err
		}
	}
	return s.rewrite(rec)
}

// Tag replaces a record's tag list.
func (s *Store) Tag(id string, tags []string) error {
	rec, err := s.Load(id)
	if err != nil {
		return err
	}
	rec.Tags = tags
	idx, _ := s.loadIndex()
	idx[id] = indexEntry{Scene: rec.Scene, Name: rec.Name, Tags: tags}
	if err := s.saveIndex(idx); err != nil {
		return err
	}
	return s.rewrite(rec)
}

func (s *Store) rewrite(rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(rec.ID), data, 0644)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

const indexFile = "index.json"

type indexEntry struct {
	Scene string   `json:"scene"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
}

func (s *Store) loadIndex() (map[string]indexEntry, error) {
	idx := make(map[string]indexEntry)
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if err != nil {
		return idx, nil
	}
	if err := json.Unmarshal(data, &idx); err != nil {
		return make(map[string]indexEntry), nil
	}
	return idx, nil
}

func (s *Store) saveIndex(idx map[string]indexEntry) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, indexFile), data, 0644)
}
