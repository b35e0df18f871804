// Package manifest records which demos were rendered, from which definition
// hash, and where the GIF went.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucket = []byte("renders")

// ErrNotFound is returned by Get for demos that were never rendered.
var ErrNotFound = errors.New("no render recorded")

// Record describes one rendered GIF.
type Record struct {
	Name       string        `json:"name"`
	Hash       string        `json:"hash"`
	File       string        `json:"file"`
	Frames     int           `json:"frames"`
	GIFFrames  int           `json:"gif_frames"`
	Duration   time.Duration `json:"duration"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	FPS        int           `json:"fps"`
	Quality    string        `json:"quality"`
	RenderedAt time.Time     `json:"rendered_at"`
}

// Store is a bbolt backed manifest.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the manifest at path. It gives up after a second if
// another process holds the file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open manifest %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init manifest %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores r under its name, replacing any previous record.
func (s *Store) Put(r Record) error {
	if r.Name == "" {
		return errors.New("record without name")
	}
	js, err := json.Marshal(&r)
	if err != nil {
		return err
	}
	slog.Debug("manifest put", "name", r.Name, "hash", r.Hash)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(r.Name), js)
	})
}

// Get returns the record for name, or ErrNotFound.
func (s *Store) Get(name string) (Record, error) {
	var r Record
	err := s.db.View(func(tx *bolt.Tx) error {
		bs := tx.Bucket(bucket).Get([]byte(name))
		if bs == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return json.Unmarshal(bs, &r)
	})
	return r, err
}

// List returns every record ordered by name.
func (s *Store) List() ([]Record, error) {
	rs := make([]Record, 0, 16)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucket).Cursor()
		for k, bs := c.First(); k != nil; k, bs = c.Next() {
			var r Record
			if err := json.Unmarshal(bs, &r); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}
			rs = append(rs, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}
