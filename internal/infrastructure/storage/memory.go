package storage

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	monitoringapp "github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/monitoring"
)

// Ensure MemoryObjectStorage implements ObjectStorage
var _ monitoringapp.ObjectStorage = (*MemoryObjectStorage)(nil)

// MemoryObjectStorage keeps objects in memory. Intended for tests and
// local development without an S3 backend.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string

	// FailPuts makes PutObject return an error; lets tests exercise
	// the upload failure path.
	FailPuts bool
}

// NewMemoryObjectStorage creates a new in-memory object store
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{
		objects: make(map[string][]byte),
		baseURL: "https://storage.test",
	}
}

// PutObject stores the object in memory and returns its URL
func (s *MemoryObjectStorage) PutObject(_ context.Context, storageKey, _ string, body io.Reader, _ int64) (string, error) {
	if storageKey == "" {
		return "", errors.New("storage key is required")
	}
	if s.FailPuts {
		return "", errors.New("simulated storage failure")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[storageKey] = data
	s.mu.Unlock()

	return s.baseURL + "/" + storageKey, nil
}

// DeleteObject removes the object
func (s *MemoryObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	delete(s.objects, storageKey)
	s.mu.Unlock()
	return nil
}

// GenerateDownloadURL returns a fake signed URL
func (s *MemoryObjectStorage) GenerateDownloadURL(_ context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.baseURL + "/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// Object returns the stored bytes for assertions in tests
func (s *MemoryObjectStorage) Object(storageKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	return data, ok
}

// Len returns the number of stored objects
func (s *MemoryObjectStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
