package wod20

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/duskmux/wod20/internal/clients/giftcatalog"
	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
)

// CostResult is the calculator's verdict on one purchase.
type CostResult struct {
	// Cost is the total price in XP. Zero means the request could not be
	// priced and must be rejected.
	Cost decimal.Decimal

	// RequiresApproval is the staff gate from the pricing tables. The
	// validator applies further, stricter checks of its own; callers must
	// consult both.
	RequiresApproval bool
}

// Cost prices raising a trait from cur to next. Marginal-dot buckets price
// each step r -> r+1 at the rate for leaving rating r, summed over the range;
// other buckets use flat or lump pricing as the rules dictate. A next not
// above cur prices at zero, except the flaw buyoff, which prices on the
// current rating because the trait is being removed.
func Cost(ctx context.Context, catalog giftcatalog.Client, ch *character.Character, name string, cat shared.Category, sub shared.Subcategory, cur, next int) (CostResult, error) {
	zero := CostResult{Cost: decimal.Zero}

	if cat == shared.CategoryFlaws {
		return flawBuyoffCost(cur), nil
	}
	if next <= cur || next < 0 {
		return zero, nil
	}

	switch cat {
	case shared.CategoryAttributes:
		return CostResult{
			Cost:             attributeDots(cur, next),
			RequiresApproval: next > 3,
		}, nil

	case shared.CategoryAbilities:
		return CostResult{
			Cost:             sumDots(cur, next, 2, 3),
			RequiresApproval: next > 3,
		}, nil

	case shared.CategorySecondaryAbilities:
		// Half the equivalent ability cost.
		return CostResult{
			Cost:             sumDots(cur, next, 1, 2),
			RequiresApproval: next > 3,
		}, nil

	case shared.CategoryBackgrounds:
		return CostResult{
			Cost:             decimal.NewFromInt(int64((next - cur) * 5)),
			RequiresApproval: next > 3,
		}, nil

	case shared.CategoryPools:
		return poolCost(ch, name, cur, next)

	case shared.CategoryMerits:
		return meritCost(ch, name, next)

	case shared.CategoryPowers:
		return powerCost(ctx, catalog, ch, name, sub, cur, next)
	}

	return zero, nil
}

// sumDots sums marginal-dot pricing over the half-open range (cur, next].
// The first dot (leaving rating 0) prices at firstDot; every later step
// leaving rating r prices at r*mult.
func sumDots(cur, next, mult, firstDot int) decimal.Decimal {
	total := 0
	for r := cur; r < next; r++ {
		if r == 0 {
			total += firstDot
		} else {
			total += r * mult
		}
	}
	return decimal.NewFromInt(int64(total))
}

// attributeDots prices attribute raises. Attributes baseline at 1, so the
// flat first-dot price covers the step into rating 2; later steps leaving
// rating r price at r*4.
func attributeDots(cur, next int) decimal.Decimal {
	total := 0
	for r := cur; r < next; r++ {
		if r <= 1 {
			total += 8
		} else {
			total += r * 4
		}
	}
	return decimal.NewFromInt(int64(total))
}

// sumMarginal sums r*mult over (cur, next] with no first-dot flat.
func sumMarginal(cur, next, mult int) decimal.Decimal {
	total := 0
	for r := cur; r < next; r++ {
		total += r * mult
	}
	return decimal.NewFromInt(int64(total))
}

func poolCost(ch *character.Character, name string, cur, next int) (CostResult, error) {
	zero := CostResult{Cost: decimal.Zero}

	switch {
	case strings.EqualFold(name, PoolWillpower):
		return CostResult{Cost: sumMarginal(cur, next, 2), RequiresApproval: next > 5}, nil
	case strings.EqualFold(name, PoolRage):
		return CostResult{Cost: sumMarginal(cur, next, 1), RequiresApproval: next > 5}, nil
	case strings.EqualFold(name, PoolGnosis):
		// Kinfolk gain Gnosis through the merit, never this path.
		if ch.IsKinfolk() {
			return zero, nil
		}
		return CostResult{Cost: sumMarginal(cur, next, 2), RequiresApproval: next > 5}, nil
	case strings.EqualFold(name, PoolGlamour):
		return CostResult{Cost: sumMarginal(cur, next, 3), RequiresApproval: next > 5}, nil
	case strings.EqualFold(name, PoolArete), strings.EqualFold(name, PoolEnlightenment):
		return CostResult{Cost: sumMarginal(cur, next, 8), RequiresApproval: next > 1}, nil
	}

	return zero, nil
}

func meritCost(ch *character.Character, name string, next int) (CostResult, error) {
	zero := CostResult{Cost: decimal.Zero}

	d, ok := lookupMerit(name)
	if !ok || !d.allows(next) {
		return zero, nil
	}
	if ch.HasMerit(d.Name) {
		return zero, nil
	}
	return CostResult{
		Cost:             decimal.NewFromInt(int64(next * 5)),
		RequiresApproval: next > 2,
	}, nil
}

func flawBuyoffCost(cur int) CostResult {
	if cur <= 0 {
		return CostResult{Cost: decimal.Zero}
	}
	// Buying off a flaw always goes through staff.
	return CostResult{
		Cost:             decimal.NewFromInt(int64(cur * 5)),
		RequiresApproval: true,
	}
}

func powerCost(ctx context.Context, catalog giftcatalog.Client, ch *character.Character, name string, sub shared.Subcategory, cur, next int) (CostResult, error) {
	zero := CostResult{Cost: decimal.Zero}

	switch sub {
	case shared.SubcategoryDiscipline:
		mult := 7
		if isInClan(ch.Clan, name) {
			mult = 5
		}
		// Only the first dot of a common discipline self-purchases;
		// everything past that goes through staff.
		return CostResult{
			Cost:             sumDots(cur, next, mult, 10),
			RequiresApproval: next > 1 || !commonDisciplines.contains(name),
		}, nil

	case shared.SubcategoryThaumaturgy, shared.SubcategoryNecromancy:
		return pathCost(ch, name, sub, cur, next), nil

	case shared.SubcategoryThaumRitual, shared.SubcategoryNecromancyRitual:
		return ritualCost(ch, name, sub), nil

	case shared.SubcategorySphere:
		mult := 8
		if strings.EqualFold(affinitySphere(ch.AffinitySphere, ch.Tradition), name) {
			mult = 7
		}
		return CostResult{
			Cost:             sumDots(cur, next, mult, 10),
			RequiresApproval: next > 2,
		}, nil

	case shared.SubcategoryArt:
		return CostResult{
			Cost:             sumDots(cur, next, 4, 7),
			RequiresApproval: next > 2,
		}, nil

	case shared.SubcategoryRealm:
		return CostResult{
			Cost:             sumDots(cur, next, 3, 5),
			RequiresApproval: next > 2,
		}, nil

	case shared.SubcategoryGift:
		return giftCost(ctx, catalog, ch, name, next)

	case shared.SubcategoryBlessing:
		if !blessingNames.contains(name) {
			return zero, nil
		}
		return CostResult{
			Cost:             decimal.NewFromInt(int64(next * 4)),
			RequiresApproval: next > 2,
		}, nil

	case shared.SubcategoryCharm:
		if !charmNames.contains(name) {
			return zero, nil
		}
		return CostResult{Cost: decimal.NewFromInt(5), RequiresApproval: true}, nil

	case shared.SubcategorySpecialAdvantage:
		d, ok := lookupAdvantage(name)
		if !ok || !d.allows(next) {
			return zero, nil
		}
		mult := 1
		if d.Combat {
			mult = 2
		}
		return CostResult{
			Cost:             decimal.NewFromInt(int64(next * mult)),
			RequiresApproval: next > 5,
		}, nil
	}

	return zero, nil
}

// pathCost prices thaumaturgy and necromancy paths. The character's
// highest-rated path is primary, ties favoring Path of Blood / Sepulchre
// Path; every other path is secondary and costs more. A character with no
// paths yet treats the one being bought as primary.
func pathCost(ch *character.Character, name string, sub shared.Subcategory, cur, next int) CostResult {
	primary := primaryPath(ch, sub)
	isPrimary := primary == "" || strings.EqualFold(primary, name)

	var cost decimal.Decimal
	if isPrimary {
		cost = sumDots(cur, next, 5, 5)
	} else {
		cost = sumDots(cur, next, 4, 7)
	}
	return CostResult{Cost: cost, RequiresApproval: true}
}

// primaryPath finds the highest-rated path in the subcategory, favoring the
// signature path on ties. Empty when the character has no paths.
func primaryPath(ch *character.Character, sub shared.Subcategory) string {
	favored := PathOfBlood
	if sub == shared.SubcategoryNecromancy {
		favored = SepulchrePath
	}

	best := ""
	bestRating := 0
	for _, name := range ch.Traits.Names(shared.CategoryPowers, sub) {
		r := ch.PowerRating(sub, name)
		if r > bestRating {
			best, bestRating = name, r
			continue
		}
		if r == bestRating && r > 0 && strings.EqualFold(name, favored) {
			best = name
		}
	}
	return best
}

// ritualCost prices a ritual purchase: flat level*2 when the owning
// discipline is in-clan, level*3 otherwise. Unknown rituals price at zero.
func ritualCost(ch *character.Character, name string, sub shared.Subcategory) CostResult {
	level := ritualLevel(sub, name)
	if level <= 0 {
		return CostResult{Cost: decimal.Zero}
	}

	owning := DisciplineThaumaturgy
	if sub == shared.SubcategoryNecromancyRitual {
		owning = DisciplineNecromancy
	}
	mult := 3
	if isInClan(ch.Clan, owning) {
		mult = 2
	}
	return CostResult{
		Cost:             decimal.NewFromInt(int64(level * mult)),
		RequiresApproval: true,
	}
}

// giftCost prices a gift by matching the character's breed, auspice, and
// tribe against the catalog record. In-type gifts cost level*3, gifts from a
// lost or imported lineage level*7, everything else level*5; Kinfolk pay
// double across the board.
func giftCost(ctx context.Context, catalog giftcatalog.Client, ch *character.Character, name string, next int) (CostResult, error) {
	zero := CostResult{Cost: decimal.Zero}

	gift, err := catalog.FindGift(ctx, name)
	if err != nil {
		if engerr.IsNotFound(err) {
			return zero, nil
		}
		return zero, engerr.Wrap(err, "gift catalog lookup failed")
	}

	mult := 5
	switch {
	case gift.Tag != giftcatalog.TagNone:
		mult = 7
	case giftMatchesCharacter(gift, ch):
		mult = 3
	}
	if ch.IsKinfolk() {
		mult *= 2
	}

	return CostResult{
		Cost:             decimal.NewFromInt(int64(next * mult)),
		RequiresApproval: next > 1,
	}, nil
}

func giftMatchesCharacter(gift *giftcatalog.Gift, ch *character.Character) bool {
	for _, b := range gift.Breeds {
		if b == ch.Breed {
			return true
		}
	}
	for _, a := range gift.Auspices {
		if a == ch.Auspice {
			return true
		}
	}
	for _, t := range gift.Tribes {
		if strings.EqualFold(t, ch.Tribe) {
			return true
		}
	}
	return false
}
