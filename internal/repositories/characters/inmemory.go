package characters

import (
	"context"
	"sync"
	"time"

	"github.com/duskmux/wod20/internal/domain/character"
	engerr "github.com/duskmux/wod20/internal/errors"
	"github.com/duskmux/wod20/internal/uuid"
)

// inMemoryRepo implements the Repository interface with an in-process map.
// Useful for tests and local development without Redis.
type inMemoryRepo struct {
	mu            sync.RWMutex
	characters    map[string]*character.Character
	byOwner       map[string]map[string]bool
	uuidGenerator uuid.Generator
}

// InMemoryRepoConfig holds configuration for the in-memory repository
type InMemoryRepoConfig struct {
	UUIDGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) Repository {
	var gen uuid.Generator = uuid.NewGoogleUUIDGenerator()
	if cfg != nil && cfg.UUIDGenerator != nil {
		gen = cfg.UUIDGenerator
	}
	return &inMemoryRepo{
		characters:    make(map[string]*character.Character),
		byOwner:       make(map[string]map[string]bool),
		uuidGenerator: gen,
	}
}

func (r *inMemoryRepo) Create(_ context.Context, ch *character.Character) error {
	if ch == nil {
		return engerr.InvalidArgument("character cannot be nil")
	}
	if ch.OwnerID == "" {
		return engerr.InvalidArgument("character owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ch.ID == "" {
		ch.ID = r.uuidGenerator.New()
	}
	if _, ok := r.characters[ch.ID]; ok {
		return engerr.AlreadyExistsf("character with ID '%s' already exists", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	ch.EnsureDefaults()
	ch.CreatedAt = time.Now().UTC()
	ch.UpdatedAt = ch.CreatedAt

	// Stored characters are isolated from caller mutation
	r.characters[ch.ID] = ch.Clone()
	if r.byOwner[ch.OwnerID] == nil {
		r.byOwner[ch.OwnerID] = make(map[string]bool)
	}
	r.byOwner[ch.OwnerID][ch.ID] = true
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, engerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.characters[id]
	if !ok {
		return nil, engerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return ch.Clone(), nil
}

func (r *inMemoryRepo) GetByOwner(_ context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, engerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*character.Character, 0, len(r.byOwner[ownerID]))
	for id := range r.byOwner[ownerID] {
		if ch, ok := r.characters[id]; ok {
			out = append(out, ch.Clone())
		}
	}
	return out, nil
}

func (r *inMemoryRepo) Update(_ context.Context, ch *character.Character) error {
	if ch == nil {
		return engerr.InvalidArgument("character cannot be nil")
	}
	if ch.ID == "" {
		return engerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[ch.ID]; !ok {
		return engerr.NotFoundf("character with ID '%s' not found", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	ch.UpdatedAt = time.Now().UTC()
	r.characters[ch.ID] = ch.Clone()
	return nil
}

func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	if id == "" {
		return engerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.characters[id]
	if !ok {
		return engerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	delete(r.byOwner[ch.OwnerID], id)
	return nil
}
