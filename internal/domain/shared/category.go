package shared

// Category is the top-level trait bucket. Together with a Subcategory it
// addresses a slot in the trait store.
type Category string

const (
	CategoryAttributes         Category = "attributes"
	CategoryAbilities          Category = "abilities"
	CategorySecondaryAbilities Category = "secondary_abilities"
	CategoryBackgrounds        Category = "backgrounds"
	CategoryMerits             Category = "merits"
	CategoryFlaws              Category = "flaws"
	CategoryPools              Category = "pools"
	CategoryPowers             Category = "powers"
)

// Subcategory is the second-level trait bucket.
type Subcategory string

const (
	// Attribute, ability, and merit/flaw groupings.
	SubcategoryPhysical     Subcategory = "physical"
	SubcategorySocial       Subcategory = "social"
	SubcategoryMental       Subcategory = "mental"
	SubcategorySupernatural Subcategory = "supernatural"

	// Ability columns.
	SubcategoryTalent    Subcategory = "talent"
	SubcategorySkill     Subcategory = "skill"
	SubcategoryKnowledge Subcategory = "knowledge"

	// Backgrounds have a single grouping.
	SubcategoryBackground Subcategory = "background"

	// Pools. Dual pools (Willpower, Rage, Gnosis, Glamour) track permanent and
	// temporary values separately; advantage pools (Arete, Enlightenment) do not.
	SubcategoryDual      Subcategory = "dual"
	SubcategoryAdvantage Subcategory = "advantage"

	// Power subtypes.
	SubcategoryDiscipline       Subcategory = "discipline"
	SubcategoryThaumaturgy      Subcategory = "thaumaturgy"
	SubcategoryThaumRitual      Subcategory = "thaum_ritual"
	SubcategoryNecromancy       Subcategory = "necromancy"
	SubcategoryNecromancyRitual Subcategory = "necromancy_ritual"
	SubcategorySphere           Subcategory = "sphere"
	SubcategoryGift             Subcategory = "gift"
	SubcategoryArt              Subcategory = "art"
	SubcategoryRealm            Subcategory = "realm"
	SubcategoryBlessing         Subcategory = "blessing"
	SubcategoryCharm            Subcategory = "charm"
	SubcategorySpecialAdvantage Subcategory = "special_advantage"
)

// PowerSubcategories lists every subcategory that lives under CategoryPowers.
func PowerSubcategories() []Subcategory {
	return []Subcategory{
		SubcategoryDiscipline,
		SubcategoryThaumaturgy,
		SubcategoryThaumRitual,
		SubcategoryNecromancy,
		SubcategoryNecromancyRitual,
		SubcategorySphere,
		SubcategoryGift,
		SubcategoryArt,
		SubcategoryRealm,
		SubcategoryBlessing,
		SubcategoryCharm,
		SubcategorySpecialAdvantage,
	}
}
