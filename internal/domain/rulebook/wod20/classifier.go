package wod20

import (
	"context"
	"strings"

	"github.com/duskmux/wod20/internal/clients/giftcatalog"
	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
)

// Classify resolves a free-text trait name into its (category, subcategory)
// bucket. Matching is ordered: names collide across buckets, so the first
// match wins. The character is always consulted, both for the handful of
// genuinely ambiguous names ("Time", "Nature", "Gnosis") and for gift lookups.
//
// An unmatched name returns an unrecognized-trait error; callers must treat
// that as "reject the purchase".
func Classify(ctx context.Context, catalog giftcatalog.Client, ch *character.Character, name string) (shared.Category, shared.Subcategory, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", engerr.InvalidArgument("trait name is required")
	}

	// 1. Ritual catalogs.
	if _, ok := thaumaturgyRituals[strings.ToLower(trimmed)]; ok {
		return shared.CategoryPowers, shared.SubcategoryThaumRitual, nil
	}
	if _, ok := necromancyRituals[strings.ToLower(trimmed)]; ok {
		return shared.CategoryPowers, shared.SubcategoryNecromancyRitual, nil
	}

	// 2. Backgrounds, with an optional parenthesized instance suffix:
	// "Allies(Police)" matches the base name "Allies".
	if backgroundNames.contains(stripInstance(trimmed)) {
		return shared.CategoryBackgrounds, shared.SubcategoryBackground, nil
	}

	// 3. Pools. Kinfolk route Gnosis through the merit bucket instead.
	switch {
	case strings.EqualFold(trimmed, PoolGnosis) && ch.IsKinfolk():
		return shared.CategoryMerits, shared.SubcategorySupernatural, nil
	case strings.EqualFold(trimmed, PoolWillpower),
		strings.EqualFold(trimmed, PoolRage),
		strings.EqualFold(trimmed, PoolGnosis),
		strings.EqualFold(trimmed, PoolGlamour):
		return shared.CategoryPools, shared.SubcategoryDual, nil
	case strings.EqualFold(trimmed, PoolArete),
		strings.EqualFold(trimmed, PoolEnlightenment):
		return shared.CategoryPools, shared.SubcategoryAdvantage, nil
	}

	// 4. Merit and flaw tables.
	if d, ok := lookupMerit(trimmed); ok {
		return shared.CategoryMerits, d.Subcategory, nil
	}
	if d, ok := lookupFlaw(trimmed); ok {
		return shared.CategoryFlaws, d.Subcategory, nil
	}

	// 5. Blessings, charms, special advantages.
	if blessingNames.contains(trimmed) {
		return shared.CategoryPowers, shared.SubcategoryBlessing, nil
	}
	if charmNames.contains(trimmed) {
		return shared.CategoryPowers, shared.SubcategoryCharm, nil
	}
	if _, ok := lookupAdvantage(trimmed); ok {
		return shared.CategoryPowers, shared.SubcategorySpecialAdvantage, nil
	}

	// 6. Attributes.
	for sub, names := range attributeNames {
		if names.contains(trimmed) {
			return shared.CategoryAttributes, sub, nil
		}
	}

	// 7. Abilities, then their half-cost secondary counterparts.
	for sub, names := range abilityNames {
		if names.contains(trimmed) {
			return shared.CategoryAbilities, sub, nil
		}
	}
	for sub, names := range secondaryAbilityNames {
		if names.contains(trimmed) {
			return shared.CategorySecondaryAbilities, sub, nil
		}
	}

	// 8. Disciplines, paths, spheres. "Time" is both a sphere and a realm;
	// the character's splat decides.
	if disciplineNames.contains(trimmed) {
		return shared.CategoryPowers, shared.SubcategoryDiscipline, nil
	}
	if thaumaturgyPathNames.contains(trimmed) {
		return shared.CategoryPowers, shared.SubcategoryThaumaturgy, nil
	}
	if necromancyPathNames.contains(trimmed) {
		return shared.CategoryPowers, shared.SubcategoryNecromancy, nil
	}
	if sphereNames.contains(trimmed) {
		if strings.EqualFold(trimmed, "Time") && (ch.Splat == shared.SplatChangeling || isKinain(ch)) {
			return shared.CategoryPowers, shared.SubcategoryRealm, nil
		}
		return shared.CategoryPowers, shared.SubcategorySphere, nil
	}

	// 9. Gift catalog, the one data-driven lookup.
	gift, err := catalog.FindGift(ctx, trimmed)
	if err != nil && !engerr.IsNotFound(err) {
		return "", "", engerr.Wrap(err, "gift catalog lookup failed")
	}
	if gift != nil {
		return shared.CategoryPowers, shared.SubcategoryGift, nil
	}

	// 10. Arts and realms. "Nature" is a realm only for those who can buy
	// realms; for everyone else it is the identity archetype, which XP
	// cannot purchase.
	if artNames.contains(trimmed) {
		return shared.CategoryPowers, shared.SubcategoryArt, nil
	}
	if realmNames.contains(trimmed) {
		if strings.EqualFold(trimmed, "Nature") && ch.Splat != shared.SplatChangeling && !isKinain(ch) {
			return "", "", engerr.UnrecognizedTraitf("'%s' is not a purchasable trait", name)
		}
		return shared.CategoryPowers, shared.SubcategoryRealm, nil
	}

	return "", "", engerr.UnrecognizedTraitf("'%s' is not a purchasable trait", name)
}

// stripInstance removes a parenthesized instance suffix from a trait name.
func stripInstance(name string) string {
	if i := strings.Index(name, "("); i > 0 {
		return strings.TrimSpace(name[:i])
	}
	return name
}
