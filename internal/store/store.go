package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/drake/pulseboard/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketPrefs = []byte("prefs")
	bucketBoard = []byte("board")
)

// BoltStore is the durable per-user store. It backs the preference KV
// (mute flag) and the board cache used for offline fallback.
//
// With an empty dir it runs memory-only: reads miss, writes succeed. That is
// the degraded mode for environments where the data directory cannot be
// created, mirroring how the dashboard swallows storage failures.
type BoltStore struct {
	db *bolt.DB
	mu sync.RWMutex // protects the memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewBoltStore opens (or creates) the database under dir.
func NewBoltStore(dir string) (*BoltStore, error) {
	if dir == "" {
		// Memory-only mode (no persistence)
		return &BoltStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "pulseboard.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPrefs, bucketBoard} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *BoltStore) getRaw(bucket []byte, key string) ([]byte, bool) {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return data, true
}

func (s *BoltStore) setRaw(bucket []byte, key string, data []byte) error {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// === Preference KV (implements domain.KV) ===

func (s *BoltStore) Get(key string) (string, bool) {
	data, ok := s.getRaw(bucketPrefs, key)
	if !ok {
		return "", false
	}
	return string(data), true
}

func (s *BoltStore) Set(key, value string) error {
	return s.setRaw(bucketPrefs, key, []byte(value))
}

// === Board cache (implements domain.BoardCache) ===

func (s *BoltStore) GetBoard() (*domain.Board, bool) {
	data, ok := s.getRaw(bucketBoard, "latest")
	if !ok {
		return nil, false
	}
	var board domain.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, false
	}
	return &board, true
}

func (s *BoltStore) SaveBoard(board *domain.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return s.setRaw(bucketBoard, "latest", data)
}
