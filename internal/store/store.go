package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gifdex/gifdex/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketHistory = []byte("history")
	keyTags       = []byte("tags")
)

// TagStore implements domain.TagStore using BoltDB. The persisted value is
// a JSON array of strings, matching the on-disk format of earlier versions.
type TagStore struct {
	db *bolt.DB
	mu sync.RWMutex

	// Memory-only fallback when no data directory is configured
	mem []byte
}

// NewTagStore opens (or creates) the history database under dataDir.
// An empty dataDir yields a memory-only store with no persistence.
func NewTagStore(dataDir string) (*TagStore, error) {
	if dataDir == "" {
		return &TagStore{}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "gifdex.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &TagStore{db: db}, nil
}

func (s *TagStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadTags returns the persisted tag sequence. A missing record yields
// (nil, nil); a record that fails to decode yields domain.ErrMalformedHistory
// so callers can reset instead of failing.
func (s *TagStore) LoadTags() ([]string, error) {
	data := s.rawTags()
	if data == nil {
		return nil, nil
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedHistory, err)
	}
	return tags, nil
}

// SaveTags replaces the persisted tag sequence.
func (s *TagStore) SaveTags(tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	if s.db == nil {
		s.mu.Lock()
		s.mem = data
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		return b.Put(keyTags, data)
	})
}

func (s *TagStore) rawTags() []byte {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.mem
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		if v := b.Get(keyTags); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data
}
