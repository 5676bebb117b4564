package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
	"github.com/duskmux/wod20/internal/uuid"
)

// CharacterData represents the serialized form of a character in Redis
type CharacterData struct {
	ID      string       `json:"id"`
	OwnerID string       `json:"owner_id"`
	RealmID string       `json:"realm_id"`
	Name    string       `json:"name"`
	Splat   shared.Splat `json:"splat"`

	Clan           string                `json:"clan,omitempty"`
	Tradition      string                `json:"tradition,omitempty"`
	AffinitySphere string                `json:"affinity_sphere,omitempty"`
	ShifterType    string                `json:"shifter_type,omitempty"`
	Breed          shared.Breed          `json:"breed,omitempty"`
	Auspice        shared.Auspice        `json:"auspice,omitempty"`
	Tribe          string                `json:"tribe,omitempty"`
	Kith           string                `json:"kith,omitempty"`
	Seeming        string                `json:"seeming,omitempty"`
	MortalPlusType shared.MortalPlusType `json:"mortal_plus_type,omitempty"`
	PossessedType  shared.PossessedType  `json:"possessed_type,omitempty"`

	Traits character.TraitStore `json:"traits"`
	XP     *character.XPLedger  `json:"xp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return engerr.InvalidArgument("character cannot be nil")
	}
	if ch.OwnerID == "" {
		return engerr.InvalidArgument("character owner ID is required")
	}
	if ch.ID == "" {
		ch.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(ch.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return engerr.AlreadyExistsf("character with ID '%s' already exists", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	ch.EnsureDefaults()

	data := toCharacterData(ch)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Character document and owner index written in one pipeline
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(ch.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(ch.OwnerID), ch.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	ch.CreatedAt = data.CreatedAt
	ch.UpdatedAt = data.UpdatedAt
	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, engerr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, engerr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return toCharacter(&data), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, engerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters for owner: %w", err)
	}

	chars := make([]*character.Character, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			ch, err := r.Get(gctx, id)
			if err != nil {
				// A dangling index entry is not fatal; skip it.
				if engerr.IsNotFound(err) {
					return nil
				}
				return err
			}
			chars[i] = ch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*character.Character, 0, len(chars))
	for _, ch := range chars {
		if ch != nil {
			out = append(out, ch)
		}
	}
	return out, nil
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return engerr.InvalidArgument("character cannot be nil")
	}
	if ch.ID == "" {
		return engerr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(ch.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists == 0 {
		return engerr.NotFoundf("character with ID '%s' not found", ch.ID).
			WithMeta("character_id", ch.ID)
	}

	data := toCharacterData(ch)
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(ch.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	ch.UpdatedAt = data.UpdatedAt
	return nil
}

// Delete removes a character and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return engerr.InvalidArgument("character ID is required")
	}

	ch, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(ch.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

func toCharacterData(ch *character.Character) *CharacterData {
	return &CharacterData{
		ID:             ch.ID,
		OwnerID:        ch.OwnerID,
		RealmID:        ch.RealmID,
		Name:           ch.Name,
		Splat:          ch.Splat,
		Clan:           ch.Clan,
		Tradition:      ch.Tradition,
		AffinitySphere: ch.AffinitySphere,
		ShifterType:    ch.ShifterType,
		Breed:          ch.Breed,
		Auspice:        ch.Auspice,
		Tribe:          ch.Tribe,
		Kith:           ch.Kith,
		Seeming:        ch.Seeming,
		MortalPlusType: ch.MortalPlusType,
		PossessedType:  ch.PossessedType,
		Traits:         ch.Traits,
		XP:             ch.XP,
		CreatedAt:      ch.CreatedAt,
		UpdatedAt:      ch.UpdatedAt,
	}
}

func toCharacter(data *CharacterData) *character.Character {
	ch := &character.Character{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		RealmID:        data.RealmID,
		Name:           data.Name,
		Splat:          data.Splat,
		Clan:           data.Clan,
		Tradition:      data.Tradition,
		AffinitySphere: data.AffinitySphere,
		ShifterType:    data.ShifterType,
		Breed:          data.Breed,
		Auspice:        data.Auspice,
		Tribe:          data.Tribe,
		Kith:           data.Kith,
		Seeming:        data.Seeming,
		MortalPlusType: data.MortalPlusType,
		PossessedType:  data.PossessedType,
		Traits:         data.Traits,
		XP:             data.XP,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	ch.EnsureDefaults()
	return ch
}
