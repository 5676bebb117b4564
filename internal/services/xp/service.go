package xp

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/duskmux/wod20/internal/clients/giftcatalog"
	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
	"github.com/duskmux/wod20/internal/repositories/characters"
	"github.com/duskmux/wod20/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service is the experience spend processor. Every mutation goes through it:
// trait purchases, XP awards, and the staff-side approve/refund bookkeeping.
type Service interface {
	// Spend processes a self-service trait purchase
	Spend(ctx context.Context, input *SpendInput) (*SpendResult, error)

	// StaffSpend processes a staff-approved purchase, bypassing the
	// validator and approval gates
	StaffSpend(ctx context.Context, input *StaffSpendInput) (*SpendResult, error)

	// Award grants XP to a character
	Award(ctx context.Context, input *AwardInput) error

	// Approve records an off-books spend that has no trait increase
	Approve(ctx context.Context, input *ApproveInput) error

	// Refund reverses an earlier spend
	Refund(ctx context.Context, input *RefundInput) error
}

// SpendInput contains data for a self-service purchase. Category and
// Subcategory are optional; when empty the trait name is classified.
type SpendInput struct {
	CharacterID string
	TraitName   string
	NewRating   int
	Category    shared.Category
	Subcategory shared.Subcategory
	Reason      string
}

// StaffSpendInput contains data for a staff-approved purchase
type StaffSpendInput struct {
	SpendInput
	StaffName string
}

// AwardInput contains data for an XP grant
type AwardInput struct {
	CharacterID string
	Amount      decimal.Decimal
	Reason      string
	StaffName   string
}

// ApproveInput contains data for an off-books spend record
type ApproveInput struct {
	CharacterID string
	Amount      decimal.Decimal
	Reason      string
	StaffName   string
}

// RefundInput contains data for a spend reversal
type RefundInput struct {
	CharacterID string
	Amount      decimal.Decimal
	Reason      string
	StaffName   string
}

// SpendResult describes a successful purchase
type SpendResult struct {
	TraitName      string
	PreviousRating int
	NewRating      int
	Cost           decimal.Decimal
	Message        string
}

// service implements the Service interface
type service struct {
	repository    Repository
	giftCatalog   giftcatalog.Client
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider

	// One lock per character ID, held across load-mutate-store
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository         // Required
	GiftCatalog   giftcatalog.Client // Required
	UUIDGenerator uuid.Generator     // Optional, will use default if nil
	TimeProvider  TimeProvider       // Optional, will use real time if nil
}

// NewService creates a new XP service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.GiftCatalog == nil {
		panic("gift catalog is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		giftCatalog: cfg.GiftCatalog,
		locks:       make(map[string]*sync.Mutex),
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.TimeProvider != nil {
		svc.timeProvider = cfg.TimeProvider
	} else {
		svc.timeProvider = &RealTimeProvider{}
	}

	return svc
}

// characterLock returns the mutex for a character, creating it on first use
func (s *service) characterLock(characterID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	if mu, ok := s.locks[characterID]; ok {
		return mu
	}
	mu := &sync.Mutex{}
	s.locks[characterID] = mu
	return mu
}

// withCharacter runs fn against a deep clone of the stored character and
// persists the clone with a single update. The stored character is never
// touched when fn fails, so a rejection can never leave a partial mutation.
func (s *service) withCharacter(ctx context.Context, characterID string, fn func(ch *character.Character) error) error {
	mu := s.characterLock(characterID)
	mu.Lock()
	defer mu.Unlock()

	stored, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return err
	}

	ch := stored.Clone()
	if err := fn(ch); err != nil {
		return err
	}

	return s.repository.Update(ctx, ch)
}
