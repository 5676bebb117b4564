package character

import (
	"time"

	"github.com/duskmux/wod20/internal/domain/shared"
)

// Character is the root aggregate the XP engine operates on. The splat and
// subtype fields are read-only inputs as far as this engine is concerned;
// Traits and XP are the mutable state.
type Character struct {
	ID      string
	OwnerID string
	RealmID string
	Name    string

	Splat shared.Splat

	// Subtype fields. Only the ones matching the splat are populated; they
	// gate which traits are in-type, out-of-type, or forbidden.
	Clan           string
	Tradition      string
	AffinitySphere string
	ShifterType    string
	Breed          shared.Breed
	Auspice        shared.Auspice
	Tribe          string
	Kith           string
	Seeming        string
	MortalPlusType shared.MortalPlusType
	PossessedType  shared.PossessedType

	Traits TraitStore
	XP     *XPLedger

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnsureDefaults initializes nil nested state. Repositories call this after
// load so the engine never sees a nil store or ledger.
func (c *Character) EnsureDefaults() {
	if c.Traits == nil {
		c.Traits = NewTraitStore()
	}
	if c.XP == nil {
		c.XP = NewXPLedger()
	}
}

// IsKinfolk reports whether the character is Mortal+ Kinfolk, which reroutes
// Gnosis purchases through the merit bucket.
func (c *Character) IsKinfolk() bool {
	return c.Splat == shared.SplatMortalPlus && c.MortalPlusType == shared.MortalPlusKinfolk
}

// PoolRating reads a dual pool's permanent rating.
func (c *Character) PoolRating(name string) int {
	return c.Traits.Rating(shared.CategoryPools, shared.SubcategoryDual, name)
}

// PowerRating reads a power's permanent rating from the given subtype bucket.
func (c *Character) PowerRating(sub shared.Subcategory, name string) int {
	return c.Traits.Rating(shared.CategoryPowers, sub, name)
}

// MeritRating reads a merit's rating, searching every merit subtype bucket.
func (c *Character) MeritRating(name string) int {
	for _, sub := range meritSubcategories {
		if r := c.Traits.Rating(shared.CategoryMerits, sub, name); r > 0 {
			return r
		}
	}
	return 0
}

// HasMerit reports whether the character holds the named merit at any rating.
func (c *Character) HasMerit(name string) bool {
	return c.MeritRating(name) > 0
}

// FlawRating reads a flaw's rating and its bucket, searching every flaw
// subtype bucket.
func (c *Character) FlawRating(name string) (int, shared.Subcategory) {
	for _, sub := range meritSubcategories {
		if r := c.Traits.Rating(shared.CategoryFlaws, sub, name); r > 0 {
			return r, sub
		}
	}
	return 0, ""
}

// DeleteFlaw removes a flaw from every flaw subtype bucket. Legacy data
// sometimes files a flaw under a different subtype than the rule table, and a
// buyoff must remove it wherever FlawRating would have found it.
func (c *Character) DeleteFlaw(name string) {
	for _, sub := range meritSubcategories {
		c.Traits.Delete(shared.CategoryFlaws, sub, name)
	}
}

var meritSubcategories = []shared.Subcategory{
	shared.SubcategoryPhysical,
	shared.SubcategorySocial,
	shared.SubcategoryMental,
	shared.SubcategorySupernatural,
}

// Clone returns a deep copy. The spend processor mutates a clone and persists
// it in one write so a failure never leaves the stored character half-updated.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	copied := *c
	copied.Traits = c.Traits.Clone()
	copied.XP = c.XP.Clone()
	return &copied
}
