package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmux/wod20/internal/domain/shared"
)

func TestTraitStore_SetAndGet(t *testing.T) {
	ts := NewTraitStore()

	ts.SetBoth(shared.CategoryAttributes, shared.SubcategoryPhysical, "Strength", 3)

	v, ok := ts.Get(shared.CategoryAttributes, shared.SubcategoryPhysical, "Strength")
	require.True(t, ok)
	assert.Equal(t, 3, v.Perm)
	assert.Equal(t, 3, v.Temp)
	assert.Equal(t, 3, ts.Rating(shared.CategoryAttributes, shared.SubcategoryPhysical, "Strength"))

	// Missing traits read as 0, not an error.
	assert.Equal(t, 0, ts.Rating(shared.CategoryAttributes, shared.SubcategoryPhysical, "Dexterity"))
	_, ok = ts.Get(shared.CategoryAttributes, shared.SubcategoryPhysical, "Dexterity")
	assert.False(t, ok)
}

func TestTraitStore_CaseInsensitiveAddressing(t *testing.T) {
	ts := NewTraitStore()

	ts.SetBoth(shared.CategoryPowers, shared.SubcategoryDiscipline, "Potence", 2)

	assert.Equal(t, 2, ts.Rating(shared.CategoryPowers, shared.SubcategoryDiscipline, "potence"))
	assert.Equal(t, 2, ts.Rating(shared.CategoryPowers, shared.SubcategoryDiscipline, "POTENCE"))

	// A write through a differently-cased name updates the existing slot
	// rather than creating a second one.
	ts.SetBoth(shared.CategoryPowers, shared.SubcategoryDiscipline, "potence", 3)
	assert.Equal(t, 3, ts.Rating(shared.CategoryPowers, shared.SubcategoryDiscipline, "Potence"))
	assert.Equal(t, []string{"Potence"}, ts.Names(shared.CategoryPowers, shared.SubcategoryDiscipline))
}

func TestTraitStore_SetSplitsPermAndTemp(t *testing.T) {
	ts := NewTraitStore()

	ts.Set(shared.CategoryPools, shared.SubcategoryDual, "Willpower", 5, false)
	ts.Set(shared.CategoryPools, shared.SubcategoryDual, "Willpower", 2, true)

	v, ok := ts.Get(shared.CategoryPools, shared.SubcategoryDual, "Willpower")
	require.True(t, ok)
	assert.Equal(t, 5, v.Perm)
	assert.Equal(t, 2, v.Temp)
}

func TestTraitStore_Delete(t *testing.T) {
	ts := NewTraitStore()

	ts.SetBoth(shared.CategoryFlaws, shared.SubcategoryMental, "Short Fuse", 2)
	ts.Delete(shared.CategoryFlaws, shared.SubcategoryMental, "short fuse")

	_, ok := ts.Get(shared.CategoryFlaws, shared.SubcategoryMental, "Short Fuse")
	assert.False(t, ok)

	// Deleting from an empty bucket is a no-op.
	ts.Delete(shared.CategoryFlaws, shared.SubcategorySocial, "Enemy")
}

func TestTraitStore_NamesSorted(t *testing.T) {
	ts := NewTraitStore()

	ts.SetBoth(shared.CategoryAbilities, shared.SubcategoryTalent, "Brawl", 2)
	ts.SetBoth(shared.CategoryAbilities, shared.SubcategoryTalent, "Alertness", 1)
	ts.SetBoth(shared.CategoryAbilities, shared.SubcategoryTalent, "Dodge", 3)

	assert.Equal(t, []string{"Alertness", "Brawl", "Dodge"}, ts.Names(shared.CategoryAbilities, shared.SubcategoryTalent))
	assert.Nil(t, ts.Names(shared.CategoryAbilities, shared.SubcategorySkill))
}

func TestTraitStore_CloneIsolation(t *testing.T) {
	ts := NewTraitStore()
	ts.SetBoth(shared.CategoryAttributes, shared.SubcategoryPhysical, "Strength", 2)

	clone := ts.Clone()
	clone.SetBoth(shared.CategoryAttributes, shared.SubcategoryPhysical, "Strength", 5)
	clone.SetBoth(shared.CategoryAttributes, shared.SubcategoryPhysical, "Stamina", 1)

	assert.Equal(t, 2, ts.Rating(shared.CategoryAttributes, shared.SubcategoryPhysical, "Strength"))
	assert.Equal(t, 0, ts.Rating(shared.CategoryAttributes, shared.SubcategoryPhysical, "Stamina"))
}
