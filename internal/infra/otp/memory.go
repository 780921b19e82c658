// Package otp stores pending login codes.
package otp

import (
	"context"
	"sync"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
)

// memoryStore keeps codes in process memory. Expired entries stay until they
// are overwritten, deleted, or rejected at verification time.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]entity.OTPEntry
}

// NewMemoryStore returns an in-process OTP store.
func NewMemoryStore() repository.OTPRepository {
	return &memoryStore{entries: make(map[string]entity.OTPEntry)}
}

func (s *memoryStore) Save(_ context.Context, customerNumber string, entry entity.OTPEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[customerNumber] = entry

	return nil
}

func (s *memoryStore) Find(_ context.Context, customerNumber string) (*entity.OTPEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[customerNumber]
	if !ok {
		return nil, repository.ErrOTPNotFound
	}

	return &entry, nil
}

func (s *memoryStore) Delete(_ context.Context, customerNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, customerNumber)

	return nil
}
