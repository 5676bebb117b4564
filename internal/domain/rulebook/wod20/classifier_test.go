package wod20

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmux/wod20/internal/clients/giftcatalog"
	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
	"github.com/duskmux/wod20/internal/testutils"
)

func TestClassify(t *testing.T) {
	catalog := giftcatalog.NewStatic()
	vampire := testutils.CreateTestVampire("v1", "owner", "Marius")
	mage := testutils.CreateTestMage("m1", "owner", "Helena")
	garou := testutils.CreateTestGarou("g1", "owner", "Stands-Firm")
	kinfolk := testutils.CreateTestKinfolk("k1", "owner", "Astrid")
	changeling := testutils.CreateTestChangeling("c1", "owner", "Seren")

	tests := []struct {
		name    string
		ch      *character.Character
		trait   string
		wantCat shared.Category
		wantSub shared.Subcategory
	}{
		{"thaumaturgy ritual", vampire, "Defense of the Sacred Haven", shared.CategoryPowers, shared.SubcategoryThaumRitual},
		{"necromancy ritual", vampire, "Call of the Hungry Dead", shared.CategoryPowers, shared.SubcategoryNecromancyRitual},
		{"background", vampire, "Herd", shared.CategoryBackgrounds, shared.SubcategoryBackground},
		{"background with instance", vampire, "Allies(Police)", shared.CategoryBackgrounds, shared.SubcategoryBackground},
		{"willpower pool", vampire, "Willpower", shared.CategoryPools, shared.SubcategoryDual},
		{"rage pool", garou, "Rage", shared.CategoryPools, shared.SubcategoryDual},
		{"gnosis pool for garou", garou, "Gnosis", shared.CategoryPools, shared.SubcategoryDual},
		{"gnosis merit for kinfolk", kinfolk, "Gnosis", shared.CategoryMerits, shared.SubcategorySupernatural},
		{"arete pool", mage, "Arete", shared.CategoryPools, shared.SubcategoryAdvantage},
		{"flaw", vampire, "Short Fuse", shared.CategoryFlaws, shared.SubcategoryMental},
		{"blessing", vampire, "Berserker", shared.CategoryPowers, shared.SubcategoryBlessing},
		{"charm", vampire, "Blast", shared.CategoryPowers, shared.SubcategoryCharm},
		{"special advantage", vampire, "Ferocity", shared.CategoryPowers, shared.SubcategorySpecialAdvantage},
		{"physical attribute", vampire, "Strength", shared.CategoryAttributes, shared.SubcategoryPhysical},
		{"mental attribute", vampire, "Wits", shared.CategoryAttributes, shared.SubcategoryMental},
		{"talent", vampire, "Brawl", shared.CategoryAbilities, shared.SubcategoryTalent},
		{"secondary skill", vampire, "Archery", shared.CategorySecondaryAbilities, shared.SubcategorySkill},
		{"discipline", vampire, "Potence", shared.CategoryPowers, shared.SubcategoryDiscipline},
		{"case-insensitive discipline", vampire, "potence", shared.CategoryPowers, shared.SubcategoryDiscipline},
		{"thaumaturgy path", vampire, "Lure of Flames", shared.CategoryPowers, shared.SubcategoryThaumaturgy},
		{"necromancy path", vampire, "Bone Path", shared.CategoryPowers, shared.SubcategoryNecromancy},
		{"sphere", mage, "Forces", shared.CategoryPowers, shared.SubcategorySphere},
		{"time is a sphere for mages", mage, "Time", shared.CategoryPowers, shared.SubcategorySphere},
		{"time is a realm for changelings", changeling, "Time", shared.CategoryPowers, shared.SubcategoryRealm},
		{"gift via catalog", garou, "Razor Claws", shared.CategoryPowers, shared.SubcategoryGift},
		{"art", changeling, "Wayfare", shared.CategoryPowers, shared.SubcategoryArt},
		{"realm", changeling, "Fae", shared.CategoryPowers, shared.SubcategoryRealm},
		{"nature is a realm for changelings", changeling, "Nature", shared.CategoryPowers, shared.SubcategoryRealm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, sub, err := Classify(context.Background(), catalog, tt.ch, tt.trait)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	catalog := giftcatalog.NewStatic()

	tests := []struct {
		name  string
		ch    *character.Character
		trait string
	}{
		{"unknown name", testutils.CreateTestVampire("v1", "owner", "Marius"), "Underwater Basket Weaving"},
		{"nature is identity for vampires", testutils.CreateTestVampire("v1", "owner", "Marius"), "Nature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Classify(context.Background(), catalog, tt.ch, tt.trait)
			require.Error(t, err)
			assert.True(t, engerr.IsUnrecognizedTrait(err))
		})
	}
}

func TestClassify_EmptyName(t *testing.T) {
	catalog := giftcatalog.NewStatic()
	ch := testutils.CreateTestVampire("v1", "owner", "Marius")

	_, _, err := Classify(context.Background(), catalog, ch, "   ")
	require.Error(t, err)
	assert.True(t, engerr.IsInvalidArgument(err))
}

// Classification is deterministic: the same name and character always land
// in the same bucket.
func TestClassify_Deterministic(t *testing.T) {
	catalog := giftcatalog.NewStatic()
	ch := testutils.CreateTestGarou("g1", "owner", "Stands-Firm")

	for _, trait := range []string{"Gnosis", "Razor Claws", "Strength", "Herd"} {
		cat1, sub1, err := Classify(context.Background(), catalog, ch, trait)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			cat2, sub2, err := Classify(context.Background(), catalog, ch, trait)
			require.NoError(t, err)
			assert.Equal(t, cat1, cat2)
			assert.Equal(t, sub1, sub2)
		}
	}
}
