package wod20

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
	"github.com/duskmux/wod20/internal/testutils"
)

func TestValidate_Attributes(t *testing.T) {
	ch := testutils.CreateTestVampire("v1", "owner", "Marius")

	assert.NoError(t, Validate(ch, "Strength", 2, shared.CategoryAttributes, shared.SubcategoryPhysical))
	assert.NoError(t, Validate(ch, "Strength", 3, shared.CategoryAttributes, shared.SubcategoryPhysical))

	err := Validate(ch, "Strength", 4, shared.CategoryAttributes, shared.SubcategoryPhysical)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// The new rating must be higher than the current one.
	err = Validate(ch, "Strength", 1, shared.CategoryAttributes, shared.SubcategoryPhysical)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))
}

func TestValidate_Backgrounds(t *testing.T) {
	ch := testutils.CreateTestVampire("v1", "owner", "Marius")

	assert.NoError(t, Validate(ch, "Herd", 2, shared.CategoryBackgrounds, shared.SubcategoryBackground))
	assert.NoError(t, Validate(ch, "Allies(Police)", 1, shared.CategoryBackgrounds, shared.SubcategoryBackground))

	err := Validate(ch, "Herd", 3, shared.CategoryBackgrounds, shared.SubcategoryBackground)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// Generation never self-purchases.
	err = Validate(ch, "Generation", 1, shared.CategoryBackgrounds, shared.SubcategoryBackground)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))
}

func TestValidate_Pools(t *testing.T) {
	vampire := testutils.CreateTestVampire("v1", "owner", "Marius")
	mage := testutils.CreateTestMage("m1", "owner", "Helena")
	kinfolk := testutils.CreateTestKinfolk("k1", "owner", "Astrid")

	assert.NoError(t, Validate(vampire, "Willpower", 5, shared.CategoryPools, shared.SubcategoryDual))

	err := Validate(vampire, "Willpower", 6, shared.CategoryPools, shared.SubcategoryDual)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// Vampires have no Rage.
	err = Validate(vampire, "Rage", 1, shared.CategoryPools, shared.SubcategoryDual)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	// Kinfolk are pointed at the merit instead.
	err = Validate(kinfolk, "Gnosis", 1, shared.CategoryPools, shared.SubcategoryDual)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purchase the Gnosis merit instead")

	assert.NoError(t, Validate(mage, "Arete", 1, shared.CategoryPools, shared.SubcategoryAdvantage))
	err = Validate(mage, "Arete", 2, shared.CategoryPools, shared.SubcategoryAdvantage)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))
}

func TestValidate_Merits(t *testing.T) {
	ch := testutils.CreateTestVampire("v1", "owner", "Marius")

	assert.NoError(t, Validate(ch, "Eidetic Memory", 2, shared.CategoryMerits, shared.SubcategoryMental))

	err := Validate(ch, "Iron Will", 3, shared.CategoryMerits, shared.SubcategoryMental)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	err = Validate(ch, "Not a Merit", 1, shared.CategoryMerits, shared.SubcategoryMental)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	err = Validate(ch, "Eidetic Memory", 3, shared.CategoryMerits, shared.SubcategoryMental)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	ch.Traits.SetBoth(shared.CategoryMerits, shared.SubcategoryMental, "Eidetic Memory", 2)
	err = Validate(ch, "Eidetic Memory", 2, shared.CategoryMerits, shared.SubcategoryMental)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already have")
}

func TestValidate_Flaws(t *testing.T) {
	ch := testutils.CreateTestVampire("v1", "owner", "Marius")

	err := Validate(ch, "Short Fuse", 0, shared.CategoryFlaws, shared.SubcategoryMental)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not have the flaw")

	ch.Traits.SetBoth(shared.CategoryFlaws, shared.SubcategoryMental, "Short Fuse", 2)
	err = Validate(ch, "Short Fuse", 0, shared.CategoryFlaws, shared.SubcategoryMental)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))
}

func TestValidate_Disciplines(t *testing.T) {
	vampire := testutils.CreateTestVampire("v1", "owner", "Marius")
	mage := testutils.CreateTestMage("m1", "owner", "Helena")

	assert.NoError(t, Validate(vampire, "Potence", 1, shared.CategoryPowers, shared.SubcategoryDiscipline))

	// Not on the self-purchase whitelist.
	err := Validate(vampire, "Dominate", 1, shared.CategoryPowers, shared.SubcategoryDiscipline)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// Above the self-service cap.
	vampire.Traits.SetBoth(shared.CategoryPowers, shared.SubcategoryDiscipline, "Potence", 2)
	err = Validate(vampire, "Potence", 3, shared.CategoryPowers, shared.SubcategoryDiscipline)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// Mages do not buy disciplines.
	err = Validate(mage, "Potence", 1, shared.CategoryPowers, shared.SubcategoryDiscipline)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))
}

func TestValidate_PathsAndRituals(t *testing.T) {
	ch := testutils.CreateTestVampire("v1", "owner", "Marius")
	ch.Clan = "Tremere"
	ch.Traits.SetBoth(shared.CategoryPowers, shared.SubcategoryDiscipline, "Thaumaturgy", 2)

	// A path cannot exceed the owning discipline.
	err := Validate(ch, "Path of Blood", 3, shared.CategoryPowers, shared.SubcategoryThaumaturgy)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	// Structurally fine, but paths are always staff business.
	err = Validate(ch, "Path of Blood", 2, shared.CategoryPowers, shared.SubcategoryThaumaturgy)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// Secondary paths cannot exceed the primary.
	ch.Traits.SetBoth(shared.CategoryPowers, shared.SubcategoryThaumaturgy, "Path of Blood", 1)
	err = Validate(ch, "Lure of Flames", 2, shared.CategoryPowers, shared.SubcategoryThaumaturgy)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	// Rituals above the discipline rating are out of reach.
	err = Validate(ch, "Ward versus Lupines", 1, shared.CategoryPowers, shared.SubcategoryThaumRitual)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	// A level-1 ritual within reach is still staff-mediated.
	err = Validate(ch, "Devil's Touch", 1, shared.CategoryPowers, shared.SubcategoryThaumRitual)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))
}

func TestValidate_Gifts(t *testing.T) {
	garou := testutils.CreateTestGarou("g1", "owner", "Stands-Firm")
	kinfolk := testutils.CreateTestKinfolk("k1", "owner", "Astrid")

	assert.NoError(t, Validate(garou, "Razor Claws", 1, shared.CategoryPowers, shared.SubcategoryGift))

	// Level 2 exceeds the shifter self-service cap.
	garou.Traits.SetBoth(shared.CategoryPowers, shared.SubcategoryGift, "Razor Claws", 1)
	err := Validate(garou, "Razor Claws", 2, shared.CategoryPowers, shared.SubcategoryGift)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))

	// Kinfolk need the Gnosis merit before level-2 gifts.
	kinfolk.Traits.SetBoth(shared.CategoryPowers, shared.SubcategoryGift, "Snarl of the Predator", 1)
	err = Validate(kinfolk, "Snarl of the Predator", 2, shared.CategoryPowers, shared.SubcategoryGift)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))
}

func TestValidate_SplatGating(t *testing.T) {
	mortal := testutils.CreateTestVampire("m1", "owner", "Jane")
	mortal.Splat = shared.SplatMortal
	mortal.Clan = ""

	// Mortals never buy powers.
	err := Validate(mortal, "Potence", 1, shared.CategoryPowers, shared.SubcategoryDiscipline)
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	// Everyone raises attributes and abilities.
	assert.NoError(t, Validate(mortal, "Strength", 2, shared.CategoryAttributes, shared.SubcategoryPhysical))
	assert.NoError(t, Validate(mortal, "Brawl", 1, shared.CategoryAbilities, shared.SubcategoryTalent))

	// Charms exist for the possessed but only staff grants them.
	possessed := testutils.CreateTestVampire("p1", "owner", "Vessel")
	possessed.Splat = shared.SplatPossessed
	possessed.Clan = ""
	err = Validate(possessed, "Blast", 1, shared.CategoryPowers, shared.SubcategoryCharm)
	require.Error(t, err)
	assert.True(t, engerr.IsRequiresApproval(err))
}
