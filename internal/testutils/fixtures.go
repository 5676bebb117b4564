package testutils

import (
	"github.com/shopspring/decimal"

	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
)

// CreateTestVampire creates a Brujah vampire with baseline attributes
func CreateTestVampire(id, ownerID, name string) *character.Character {
	ch := &character.Character{
		ID:      id,
		OwnerID: ownerID,
		RealmID: "realm-test",
		Name:    name,
		Splat:   shared.SplatVampire,
		Clan:    "Brujah",
	}
	ch.EnsureDefaults()
	seedBaselineAttributes(ch)
	return ch
}

// CreateTestMage creates an Order of Hermes mage with Forces affinity
func CreateTestMage(id, ownerID, name string) *character.Character {
	ch := &character.Character{
		ID:             id,
		OwnerID:        ownerID,
		RealmID:        "realm-test",
		Name:           name,
		Splat:          shared.SplatMage,
		Tradition:      "Order of Hermes",
		AffinitySphere: "Forces",
	}
	ch.EnsureDefaults()
	seedBaselineAttributes(ch)
	return ch
}

// CreateTestGarou creates a homid Ahroun of the Get of Fenris
func CreateTestGarou(id, ownerID, name string) *character.Character {
	ch := &character.Character{
		ID:          id,
		OwnerID:     ownerID,
		RealmID:     "realm-test",
		Name:        name,
		Splat:       shared.SplatShifter,
		ShifterType: "Garou",
		Breed:       shared.BreedHomid,
		Auspice:     shared.AuspiceAhroun,
		Tribe:       "Get of Fenris",
	}
	ch.EnsureDefaults()
	seedBaselineAttributes(ch)
	return ch
}

// CreateTestKinfolk creates Garou kinfolk of the Get of Fenris
func CreateTestKinfolk(id, ownerID, name string) *character.Character {
	ch := &character.Character{
		ID:             id,
		OwnerID:        ownerID,
		RealmID:        "realm-test",
		Name:           name,
		Splat:          shared.SplatMortalPlus,
		MortalPlusType: shared.MortalPlusKinfolk,
		ShifterType:    "Garou",
		Tribe:          "Get of Fenris",
	}
	ch.EnsureDefaults()
	seedBaselineAttributes(ch)
	return ch
}

// CreateTestChangeling creates an Eshu wilder
func CreateTestChangeling(id, ownerID, name string) *character.Character {
	ch := &character.Character{
		ID:      id,
		OwnerID: ownerID,
		RealmID: "realm-test",
		Name:    name,
		Splat:   shared.SplatChangeling,
		Kith:    "Eshu",
		Seeming: "Wilder",
	}
	ch.EnsureDefaults()
	seedBaselineAttributes(ch)
	return ch
}

// GrantXP awards starting XP directly on the ledger
func GrantXP(ch *character.Character, amount int64) {
	_ = ch.XP.Award(decimal.NewFromInt(amount))
}

func seedBaselineAttributes(ch *character.Character) {
	for sub, names := range map[shared.Subcategory][]string{
		shared.SubcategoryPhysical: {"Strength", "Dexterity", "Stamina"},
		shared.SubcategorySocial:   {"Charisma", "Manipulation", "Appearance"},
		shared.SubcategoryMental:   {"Perception", "Intelligence", "Wits"},
	} {
		for _, name := range names {
			ch.Traits.SetBoth(shared.CategoryAttributes, sub, name, 1)
		}
	}
	ch.Traits.SetBoth(shared.CategoryPools, shared.SubcategoryDual, "Willpower", 3)
}
