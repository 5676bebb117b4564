package wod20

import (
	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/shared"
)

// Profile is the per-splat rule set: which buckets a character may spend XP
// on and how high self-service purchases may go. One lookup replaces the
// splat branching that would otherwise spread through the engine.
type Profile struct {
	// Categories a member of this splat may ever purchase with XP.
	Categories map[shared.Category]bool

	// PowerCaps lists the power subcategories open to this splat, mapped to
	// the maximum self-service rating. 0 means the bucket exists for the
	// splat but is always staff-mediated.
	PowerCaps map[shared.Subcategory]int

	// Pools names the dual/advantage pools this splat may raise.
	Pools map[string]bool
}

// AllowsCategory reports whether the bucket can ever be bought with XP.
func (p *Profile) AllowsCategory(cat shared.Category) bool {
	return p.Categories[cat]
}

// PowerCap returns the self-service ceiling for a power subcategory and
// whether the splat may buy that subcategory at all.
func (p *Profile) PowerCap(sub shared.Subcategory) (int, bool) {
	c, ok := p.PowerCaps[sub]
	return c, ok
}

// AllowsPool reports whether the named pool is open to the splat.
func (p *Profile) AllowsPool(name string) bool {
	return p.Pools[name]
}

var baseCategories = map[shared.Category]bool{
	shared.CategoryAttributes:         true,
	shared.CategoryAbilities:          true,
	shared.CategorySecondaryAbilities: true,
	shared.CategoryBackgrounds:        true,
	shared.CategoryMerits:             true,
	shared.CategoryFlaws:              true,
	shared.CategoryPools:              true,
}

func withPowers(caps map[shared.Subcategory]int) map[shared.Category]bool {
	cats := make(map[shared.Category]bool, len(baseCategories)+1)
	for k, v := range baseCategories {
		cats[k] = v
	}
	if len(caps) > 0 {
		cats[shared.CategoryPowers] = true
	}
	return cats
}

func profile(caps map[shared.Subcategory]int, pools ...string) Profile {
	p := Profile{
		Categories: withPowers(caps),
		PowerCaps:  caps,
		Pools:      map[string]bool{PoolWillpower: true},
	}
	for _, name := range pools {
		p.Pools[name] = true
	}
	return p
}

var splatProfiles = map[shared.Splat]Profile{
	shared.SplatVampire: profile(map[shared.Subcategory]int{
		shared.SubcategoryDiscipline:       2,
		shared.SubcategoryThaumaturgy:      0,
		shared.SubcategoryThaumRitual:      0,
		shared.SubcategoryNecromancy:       0,
		shared.SubcategoryNecromancyRitual: 0,
	}),
	shared.SplatMage: profile(map[shared.Subcategory]int{
		shared.SubcategorySphere: 2,
	}, PoolArete, PoolEnlightenment),
	shared.SplatShifter: profile(map[shared.Subcategory]int{
		shared.SubcategoryGift: 1,
	}, PoolRage, PoolGnosis),
	shared.SplatChangeling: profile(map[shared.Subcategory]int{
		shared.SubcategoryArt:   2,
		shared.SubcategoryRealm: 2,
	}, PoolGlamour),
	shared.SplatMortal: profile(nil),
	shared.SplatPossessed: profile(map[shared.Subcategory]int{
		shared.SubcategoryBlessing: 2,
		shared.SubcategoryCharm:    0,
	}, PoolRage, PoolGnosis),
	shared.SplatCompanion: profile(map[shared.Subcategory]int{
		shared.SubcategorySpecialAdvantage: 5,
		shared.SubcategoryCharm:            0,
	}, PoolRage),
}

// mortalPlusProfiles keys on the Mortal+ subtype, which decides the borrowed
// power bucket. Types with no entry fall back to the plain mortal profile.
var mortalPlusProfiles = map[shared.MortalPlusType]Profile{
	shared.MortalPlusGhoul: profile(map[shared.Subcategory]int{
		shared.SubcategoryDiscipline: 1,
	}),
	// Kinfolk gain Gnosis through the merit, never the pool.
	shared.MortalPlusKinfolk: profile(map[shared.Subcategory]int{
		shared.SubcategoryGift: 1,
	}),
	shared.MortalPlusKinain: profile(map[shared.Subcategory]int{
		shared.SubcategoryArt:   2,
		shared.SubcategoryRealm: 2,
	}, PoolGlamour),
}

// ProfileFor resolves the rule profile for a character, honoring Mortal+
// subtypes. Unknown splats get the mortal profile, the most restrictive.
func ProfileFor(ch *character.Character) Profile {
	if ch.Splat == shared.SplatMortalPlus {
		if p, ok := mortalPlusProfiles[ch.MortalPlusType]; ok {
			return p
		}
		return splatProfiles[shared.SplatMortal]
	}
	if p, ok := splatProfiles[ch.Splat]; ok {
		return p
	}
	return splatProfiles[shared.SplatMortal]
}

// isKinain reports whether the character is Mortal+ Kinain, who share
// changeling art/realm access.
func isKinain(ch *character.Character) bool {
	return ch.Splat == shared.SplatMortalPlus && ch.MortalPlusType == shared.MortalPlusKinain
}
