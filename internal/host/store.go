package host

import (
	"context"
	"maps"
	"sync"

	"fapicker/internal/config"
)

// Store persists the entry's field values and the installation parameters
type Store interface {
	LoadEntry() (map[string]string, error)
	SaveEntry(fields map[string]string) error
	// LoadParameters returns nil, nil when nothing was ever saved
	LoadParameters() (*config.StoredParameters, error)
	SaveParameters(params *config.StoredParameters) error
}

// Watcher is implemented by stores whose entry can change underneath the host.
// Watch calls onChange after each outside edit until ctx is done.
type Watcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu     sync.RWMutex
	fields map[string]string
	params *config.StoredParameters
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{fields: make(map[string]string)}
}

func (s *MemoryStore) LoadEntry() (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.fields), nil
}

func (s *MemoryStore) SaveEntry(fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = maps.Clone(fields)
	return nil
}

func (s *MemoryStore) LoadParameters() (*config.StoredParameters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.params == nil {
		return nil, nil
	}
	return s.params.Clone(), nil
}

func (s *MemoryStore) SaveParameters(params *config.StoredParameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = params.Clone()
	return nil
}
