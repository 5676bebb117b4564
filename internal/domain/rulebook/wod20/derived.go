package wod20

import (
	"strings"

	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
)

// DerivedWrite is a pool recompute triggered by a purchase. The spend
// processor applies these after the primary trait write, inside the same
// atomic operation.
type DerivedWrite struct {
	Pool  string
	Value int
}

// DerivedWrites returns the pool recomputes a successful purchase triggers.
// Most purchases trigger none.
func DerivedWrites(ch *character.Character, name string, cat shared.Category, sub shared.Subcategory, next int) []DerivedWrite {
	switch {
	case sub == shared.SubcategorySpecialAdvantage && strings.EqualFold(name, "Ferocity"):
		return []DerivedWrite{{Pool: PoolRage, Value: next / 2}}

	case sub == shared.SubcategoryBlessing && strings.EqualFold(name, "Spirit Ties"):
		return []DerivedWrite{{Pool: PoolGnosis, Value: 1 + next}}

	case sub == shared.SubcategoryBlessing && strings.EqualFold(name, "Berserker"):
		return []DerivedWrite{{Pool: PoolRage, Value: 5}}

	case cat == shared.CategoryMerits && strings.EqualFold(name, MeritGnosis) && ch.IsKinfolk():
		// Gnosis merit 5/6/7 grants a Gnosis pool of 1/2/3.
		if next >= 5 && next <= 7 {
			return []DerivedWrite{{Pool: PoolGnosis, Value: next - 4}}
		}
	}
	return nil
}
