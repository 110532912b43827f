package tracker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Store persists the seen-set: an ordered flat list of opaque game-id
// strings. Implementations must make Append durable once Flush returns.
// The tracker appends and flushes after every mutation, so a crash loses at
// most the most recent record.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Append(ctx context.Context, gameID string) error
	Flush(ctx context.Context) error
	Close() error
}

// --------------------------------------------------------------------------
// File store
// --------------------------------------------------------------------------

// FileStore is an append-only, newline-delimited seen-set file.
type FileStore struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// NewFileStore opens (or creates) the seen-set file at path.
func NewFileStore(path string) (*FileStore, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open seen file: %w", err)
	}
	return &FileStore{path: path, f: f}, nil
}

// Load reads all previously-seen game ids in file order.
func (s *FileStore) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read seen file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan seen file: %w", err)
	}
	return ids, nil
}

// Append writes one game id. Durable after the next Flush.
func (s *FileStore) Append(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.f, gameID); err != nil {
		return fmt.Errorf("append seen id: %w", err)
	}
	return nil
}

// Flush forces appended records to durable storage.
func (s *FileStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("sync seen file: %w", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}

// --------------------------------------------------------------------------
// Memory store
// --------------------------------------------------------------------------

// MemStore is an in-memory Store for tests and dry runs. Never touches a
// filesystem.
type MemStore struct {
	mu  sync.Mutex
	ids []string
}

// NewMemStore creates a MemStore pre-populated with ids.
func NewMemStore(ids ...string) *MemStore {
	return &MemStore{ids: append([]string(nil), ids...)}
}

func (s *MemStore) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...), nil
}

func (s *MemStore) Append(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, gameID)
	return nil
}

func (s *MemStore) Flush(ctx context.Context) error { return nil }
func (s *MemStore) Close() error                    { return nil }
