package wod20

import (
	"strings"

	"github.com/duskmux/wod20/internal/domain/shared"
)

// meritDef is one merit or flaw rule-table row. Ratings is the enumerated set
// of legal values, not a contiguous range.
type meritDef struct {
	Name        string
	Subcategory shared.Subcategory
	Ratings     []int
}

func (d *meritDef) allows(rating int) bool {
	for _, r := range d.Ratings {
		if r == rating {
			return true
		}
	}
	return false
}

var meritDefs = buildMeritIndex([]meritDef{
	{Name: "Acute Sense", Subcategory: shared.SubcategoryPhysical, Ratings: []int{1}},
	{Name: "Ambidextrous", Subcategory: shared.SubcategoryPhysical, Ratings: []int{1}},
	{Name: "Catlike Balance", Subcategory: shared.SubcategoryPhysical, Ratings: []int{1}},
	{Name: "Eat Food", Subcategory: shared.SubcategoryPhysical, Ratings: []int{1}},
	{Name: "Efficient Digestion", Subcategory: shared.SubcategoryPhysical, Ratings: []int{3}},
	{Name: "Huge Size", Subcategory: shared.SubcategoryPhysical, Ratings: []int{4}},

	{Name: "Natural Leader", Subcategory: shared.SubcategorySocial, Ratings: []int{1}},
	{Name: "Prestigious Sire", Subcategory: shared.SubcategorySocial, Ratings: []int{1}},
	{Name: "Reputation", Subcategory: shared.SubcategorySocial, Ratings: []int{2}},
	{Name: "Harmless", Subcategory: shared.SubcategorySocial, Ratings: []int{1}},

	{Name: "Code of Honor", Subcategory: shared.SubcategoryMental, Ratings: []int{2}},
	{Name: "Common Sense", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Concentration", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Eidetic Memory", Subcategory: shared.SubcategoryMental, Ratings: []int{2}},
	{Name: "Iron Will", Subcategory: shared.SubcategoryMental, Ratings: []int{3}},
	{Name: "Light Sleeper", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Time Sense", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},

	{Name: "Danger Sense", Subcategory: shared.SubcategorySupernatural, Ratings: []int{2}},
	{Name: "Faerie Affinity", Subcategory: shared.SubcategorySupernatural, Ratings: []int{2}},
	// The Kinfolk Gnosis merit. Ratings 5/6/7 grant a derived Gnosis pool of
	// 1/2/3, and level-2+ gift purchases require it.
	{Name: MeritGnosis, Subcategory: shared.SubcategorySupernatural, Ratings: []int{5, 6, 7}},
	{Name: "Luck", Subcategory: shared.SubcategorySupernatural, Ratings: []int{3}},
	{Name: "Magic Resistance", Subcategory: shared.SubcategorySupernatural, Ratings: []int{2}},
	{Name: "Medium", Subcategory: shared.SubcategorySupernatural, Ratings: []int{2}},
	{Name: "Spirit Mentor", Subcategory: shared.SubcategorySupernatural, Ratings: []int{3}},
	{Name: "True Faith", Subcategory: shared.SubcategorySupernatural, Ratings: []int{7}},
	{Name: "Unbondable", Subcategory: shared.SubcategorySupernatural, Ratings: []int{3}},
})

var flawDefs = buildMeritIndex([]meritDef{
	{Name: "Bad Sight", Subcategory: shared.SubcategoryPhysical, Ratings: []int{1, 3}},
	{Name: "Deformity", Subcategory: shared.SubcategoryPhysical, Ratings: []int{3}},
	{Name: "Lame", Subcategory: shared.SubcategoryPhysical, Ratings: []int{3}},
	{Name: "Monstrous", Subcategory: shared.SubcategoryPhysical, Ratings: []int{3}},
	{Name: "Mute", Subcategory: shared.SubcategoryPhysical, Ratings: []int{4}},
	{Name: "One Eye", Subcategory: shared.SubcategoryPhysical, Ratings: []int{2}},

	{Name: "Dark Secret", Subcategory: shared.SubcategorySocial, Ratings: []int{1}},
	{Name: "Enemy", Subcategory: shared.SubcategorySocial, Ratings: []int{1, 2, 3, 4, 5}},
	{Name: "Infamous Sire", Subcategory: shared.SubcategorySocial, Ratings: []int{1}},
	{Name: "Mistaken Identity", Subcategory: shared.SubcategorySocial, Ratings: []int{1}},

	{Name: "Amnesia", Subcategory: shared.SubcategoryMental, Ratings: []int{2}},
	{Name: "Compulsion", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Deep Sleeper", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Illiterate", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Nightmares", Subcategory: shared.SubcategoryMental, Ratings: []int{1}},
	{Name: "Short Fuse", Subcategory: shared.SubcategoryMental, Ratings: []int{2}},
	{Name: "Vengeance", Subcategory: shared.SubcategoryMental, Ratings: []int{2}},

	{Name: "Cursed", Subcategory: shared.SubcategorySupernatural, Ratings: []int{1, 2, 3, 4, 5}},
	{Name: "Haunted", Subcategory: shared.SubcategorySupernatural, Ratings: []int{3}},
	{Name: "Light-Sensitive", Subcategory: shared.SubcategorySupernatural, Ratings: []int{2}},
	{Name: "Repulsed by Garlic", Subcategory: shared.SubcategorySupernatural, Ratings: []int{1}},
})

func buildMeritIndex(defs []meritDef) map[string]*meritDef {
	idx := make(map[string]*meritDef, len(defs))
	for i := range defs {
		idx[strings.ToLower(defs[i].Name)] = &defs[i]
	}
	return idx
}

func lookupMerit(name string) (*meritDef, bool) {
	d, ok := meritDefs[strings.ToLower(name)]
	return d, ok
}

func lookupFlaw(name string) (*meritDef, bool) {
	d, ok := flawDefs[strings.ToLower(name)]
	return d, ok
}

// advantageDef is one companion special-advantage catalog row. Combat
// advantages price at twice the general rate.
type advantageDef struct {
	Name    string
	Combat  bool
	Ratings []int
}

func (d *advantageDef) allows(rating int) bool {
	for _, r := range d.Ratings {
		if r == rating {
			return true
		}
	}
	return false
}

var advantageDefs = buildAdvantageIndex([]advantageDef{
	// General catalog
	{Name: "Acute Smell", Ratings: []int{2, 3}},
	{Name: "Alacrity", Ratings: []int{2, 4, 6}},
	{Name: "Aww!", Ratings: []int{1, 2, 3, 4}},
	{Name: "Blending", Ratings: []int{1}},
	{Name: "Bond-Sharing", Ratings: []int{4, 5, 6}},
	{Name: "Dominance", Ratings: []int{1}},
	{Name: "Empathic Bond", Ratings: []int{2}},
	{Name: "Flight", Ratings: []int{3, 5}},
	{Name: "Human Guise", Ratings: []int{1, 2, 3}},
	{Name: "Human Speech", Ratings: []int{1}},
	{Name: "Nightsight", Ratings: []int{3}},
	{Name: "Rapid Healing", Ratings: []int{2, 4, 6, 8}},
	{Name: "Read and Write", Ratings: []int{1}},
	{Name: "Shared Knowledge", Ratings: []int{5, 7}},
	{Name: "Size", Ratings: []int{3, 5, 8, 10}},
	{Name: "Soul-Sense", Ratings: []int{2, 3}},
	{Name: "Spirit Vision", Ratings: []int{3}},
	{Name: "Wall-Crawling", Ratings: []int{4}},
	{Name: "Water-Breathing", Ratings: []int{2, 5}},
	{Name: "Wings", Ratings: []int{3, 5}},

	// Combat catalog
	{Name: "Armor", Combat: true, Ratings: []int{1, 2, 3, 4, 5}},
	{Name: "Claws, Fangs, or Horns", Combat: true, Ratings: []int{3, 5, 7}},
	// Ferocity grants a derived Rage pool of rating/2.
	{Name: "Ferocity", Combat: true, Ratings: []int{2, 4, 6, 8, 10}},
	{Name: "Hazardous Breath", Combat: true, Ratings: []int{3, 5, 7, 12, 18}},
	{Name: "Mystic Shield", Combat: true, Ratings: []int{2, 4, 6, 8, 10}},
	{Name: "Needleteeth", Combat: true, Ratings: []int{3}},
	{Name: "Quills", Combat: true, Ratings: []int{2, 4}},
	{Name: "Razorskin", Combat: true, Ratings: []int{3}},
	{Name: "Venom", Combat: true, Ratings: []int{3, 6, 9, 12, 15}},
	{Name: "Webbing", Combat: true, Ratings: []int{5}},
})

func buildAdvantageIndex(defs []advantageDef) map[string]*advantageDef {
	idx := make(map[string]*advantageDef, len(defs))
	for i := range defs {
		idx[strings.ToLower(defs[i].Name)] = &defs[i]
	}
	return idx
}

func lookupAdvantage(name string) (*advantageDef, bool) {
	d, ok := advantageDefs[strings.ToLower(name)]
	return d, ok
}
