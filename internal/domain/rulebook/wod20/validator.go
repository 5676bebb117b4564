package wod20

import (
	"strings"

	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
)

// CurrentRating reads the trait's permanent rating using the resolved bucket.
// The per-bucket addressing lives here, in one place, so the validator and
// the spend processor can never drift apart on where a trait is stored.
func CurrentRating(ch *character.Character, name string, cat shared.Category, sub shared.Subcategory) int {
	if cat == shared.CategoryFlaws {
		if r := ch.Traits.Rating(cat, sub, name); r > 0 {
			return r
		}
		// Legacy data sometimes files a flaw under a different subtype.
		r, _ := ch.FlawRating(name)
		return r
	}
	return ch.Traits.Rating(cat, sub, name)
}

// Validate re-derives purchase eligibility independent of cost. It is
// deliberately stricter than the calculator's approval flag; the self-service
// path must pass both. A nil return means the purchase is allowed without
// staff involvement.
func Validate(ch *character.Character, name string, next int, cat shared.Category, sub shared.Subcategory) error {
	prof := ProfileFor(ch)

	if !prof.AllowsCategory(cat) {
		return engerr.Validationf("%s cannot purchase %s with XP", ch.Splat, cat)
	}

	// Flaws are removal-only and always staff-mediated.
	if cat == shared.CategoryFlaws {
		if CurrentRating(ch, name, cat, sub) == 0 {
			return engerr.Validationf("you do not have the flaw '%s'", name)
		}
		return engerr.RequiresApproval("flaw buyoffs must be handled by staff")
	}

	cur := CurrentRating(ch, name, cat, sub)
	if next <= cur {
		return engerr.Validationf("'%s' is already at %d; the new rating must be higher", name, cur)
	}

	switch cat {
	case shared.CategoryAttributes, shared.CategoryAbilities, shared.CategorySecondaryAbilities:
		if next > 3 {
			return engerr.RequiresApprovalf("raising '%s' above 3 requires staff approval", name)
		}

	case shared.CategoryBackgrounds:
		selfCap := backgroundSelfCap(stripInstance(name))
		if selfCap == 0 {
			return engerr.RequiresApprovalf("'%s' can only be raised by staff", name)
		}
		if next > selfCap {
			return engerr.RequiresApprovalf("raising '%s' above %d requires staff approval", name, selfCap)
		}

	case shared.CategoryPools:
		return validatePool(ch, &prof, name, next)

	case shared.CategoryMerits:
		return validateMerit(ch, name, next)

	case shared.CategoryPowers:
		return validatePower(ch, &prof, name, sub, next)
	}

	return nil
}

func validatePool(ch *character.Character, prof *Profile, name string, next int) error {
	if strings.EqualFold(name, PoolGnosis) && ch.IsKinfolk() {
		return engerr.Validation("Kinfolk do not have a Gnosis pool; purchase the Gnosis merit instead")
	}
	if !prof.AllowsPool(canonicalPoolName(name)) {
		return engerr.Validationf("%s cannot raise %s", ch.Splat, name)
	}

	if strings.EqualFold(name, PoolArete) || strings.EqualFold(name, PoolEnlightenment) {
		if next > 1 {
			return engerr.RequiresApprovalf("raising %s above 1 requires staff approval", name)
		}
		return nil
	}
	if next > 5 {
		return engerr.RequiresApprovalf("raising %s above 5 requires staff approval", name)
	}
	return nil
}

// canonicalPoolName normalizes case so profile lookups match the constants.
func canonicalPoolName(name string) string {
	for _, pool := range []string{PoolWillpower, PoolRage, PoolGnosis, PoolGlamour, PoolArete, PoolEnlightenment} {
		if strings.EqualFold(name, pool) {
			return pool
		}
	}
	return name
}

func validateMerit(ch *character.Character, name string, next int) error {
	d, ok := lookupMerit(name)
	if !ok {
		return engerr.Validationf("'%s' is not a known merit", name)
	}
	if ch.HasMerit(d.Name) {
		return engerr.Validationf("you already have the merit '%s'", d.Name)
	}
	if !d.allows(next) {
		return engerr.Validationf("'%s' cannot be bought at %d; valid ratings are %v", d.Name, next, d.Ratings)
	}
	if next > 2 {
		return engerr.RequiresApprovalf("the merit '%s' at %d requires staff approval", d.Name, next)
	}
	return nil
}

func validatePower(ch *character.Character, prof *Profile, name string, sub shared.Subcategory, next int) error {
	selfCap, allowed := prof.PowerCap(sub)
	if !allowed {
		return engerr.Validationf("%s cannot purchase %s powers with XP", ch.Splat, sub)
	}

	switch sub {
	case shared.SubcategoryDiscipline:
		if !commonDisciplines.contains(name) {
			return engerr.RequiresApprovalf("the discipline '%s' can only be raised by staff", name)
		}

	case shared.SubcategoryThaumaturgy, shared.SubcategoryNecromancy:
		return validatePath(ch, name, sub, next)

	case shared.SubcategoryThaumRitual, shared.SubcategoryNecromancyRitual:
		return validateRitual(ch, name, sub)

	case shared.SubcategoryGift:
		// A Kinfolk needs the Gnosis merit before learning gifts above
		// level 1.
		if ch.IsKinfolk() && next >= 2 && !ch.HasMerit(MeritGnosis) {
			return engerr.Validation("learning level-2 gifts requires the Gnosis merit")
		}

	case shared.SubcategoryCharm:
		return engerr.RequiresApproval("charms can only be granted by staff")
	}

	if selfCap == 0 {
		return engerr.RequiresApprovalf("%s purchases must be handled by staff", sub)
	}
	if next > selfCap {
		return engerr.RequiresApprovalf("raising '%s' above %d requires staff approval", name, selfCap)
	}
	return nil
}

// validatePath enforces the structural path caps: a path can never exceed its
// owning discipline, and a secondary path can never exceed the primary.
// Paths are staff-only regardless, so the approval rejection comes last.
func validatePath(ch *character.Character, name string, sub shared.Subcategory, next int) error {
	owning := DisciplineThaumaturgy
	if sub == shared.SubcategoryNecromancy {
		owning = DisciplineNecromancy
	}
	disciplineRating := ch.PowerRating(shared.SubcategoryDiscipline, owning)
	if next > disciplineRating {
		return engerr.Validationf("'%s' cannot exceed your %s rating of %d", name, owning, disciplineRating)
	}

	primary := primaryPath(ch, sub)
	if primary != "" && !strings.EqualFold(primary, name) {
		primaryRating := ch.PowerRating(sub, primary)
		if next > primaryRating {
			return engerr.Validationf("a secondary path cannot exceed your primary path rating of %d", primaryRating)
		}
	}

	return engerr.RequiresApproval("path purchases must be handled by staff")
}

func validateRitual(ch *character.Character, name string, sub shared.Subcategory) error {
	owning := DisciplineThaumaturgy
	if sub == shared.SubcategoryNecromancyRitual {
		owning = DisciplineNecromancy
	}
	level := ritualLevel(sub, name)
	disciplineRating := ch.PowerRating(shared.SubcategoryDiscipline, owning)
	if level > disciplineRating {
		return engerr.Validationf("the ritual '%s' is level %d but your %s is only %d", name, level, owning, disciplineRating)
	}

	return engerr.RequiresApproval("ritual purchases must be handled by staff")
}
