package wod20

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmux/wod20/internal/domain/shared"
	"github.com/duskmux/wod20/internal/testutils"
)

func TestDerivedWrites(t *testing.T) {
	kinfolk := testutils.CreateTestKinfolk("k1", "owner", "Astrid")
	vampire := testutils.CreateTestVampire("v1", "owner", "Marius")

	writes := DerivedWrites(kinfolk, "Gnosis", shared.CategoryMerits, shared.SubcategorySupernatural, 6)
	require.Len(t, writes, 1)
	assert.Equal(t, PoolGnosis, writes[0].Pool)
	assert.Equal(t, 2, writes[0].Value)

	// The merit only grants a pool to Kinfolk.
	assert.Empty(t, DerivedWrites(vampire, "Gnosis", shared.CategoryMerits, shared.SubcategorySupernatural, 6))

	writes = DerivedWrites(kinfolk, "Ferocity", shared.CategoryPowers, shared.SubcategorySpecialAdvantage, 4)
	require.Len(t, writes, 1)
	assert.Equal(t, PoolRage, writes[0].Pool)
	assert.Equal(t, 2, writes[0].Value)

	writes = DerivedWrites(kinfolk, "Spirit Ties", shared.CategoryPowers, shared.SubcategoryBlessing, 3)
	require.Len(t, writes, 1)
	assert.Equal(t, PoolGnosis, writes[0].Pool)
	assert.Equal(t, 4, writes[0].Value)

	writes = DerivedWrites(kinfolk, "Berserker", shared.CategoryPowers, shared.SubcategoryBlessing, 1)
	require.Len(t, writes, 1)
	assert.Equal(t, PoolRage, writes[0].Pool)
	assert.Equal(t, 5, writes[0].Value)

	// Ordinary purchases trigger nothing.
	assert.Empty(t, DerivedWrites(vampire, "Strength", shared.CategoryAttributes, shared.SubcategoryPhysical, 2))
}
