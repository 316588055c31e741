// Package storage keeps a manifest of rendered figures alongside the
// output images.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const manifestName = "manifest.json"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Record describes one rendered figure.
type Record struct {
	Name      string        `json:"name"`
	File      string        `json:"file"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}

type manifest struct {
	Records []Record `json:"records"`
}

// Append merges records for the given figures into the manifest,
// replacing earlier entries with the same name.
func (s *Store) Append(records []Record) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	existing, err := s.List()
	if err != nil {
		return err
	}

	merged := make([]Record, 0, len(existing)+len(records))
	for _, old := range existing {
		replaced := false
		for _, r := range records {
			if r.Name == old.Name {
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, old)
		}
	}
	merged = append(merged, records...)

	file, err := os.Create(filepath.Join(s.baseDir, manifestName))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(manifest{Records: merged})
}

// List reads the manifest. A missing manifest reads as empty.
func (s *Store) List() ([]Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.Records, nil
}

// Load returns the record for one figure.
func (s *Store) Load(name string) (*Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Name == name {
			return &records[i], nil
		}
	}
	return nil, os.ErrNotExist
}
