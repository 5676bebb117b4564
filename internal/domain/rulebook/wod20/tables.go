// Package wod20 holds the World of Darkness 20th Anniversary rules engine:
// the static rule tables, the trait classifier, the XP cost calculator, and
// the purchase validator.
package wod20

import (
	"strings"

	"github.com/duskmux/wod20/internal/domain/shared"
)

// nameSet is a fixed, case-insensitive trait name set. The rule tables are
// process-wide constant data, built once at init.
type nameSet map[string]struct{}

func newNameSet(names ...string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[strings.ToLower(n)] = struct{}{}
	}
	return s
}

func (s nameSet) contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Pool trait names.
const (
	PoolWillpower     = "Willpower"
	PoolRage          = "Rage"
	PoolGnosis        = "Gnosis"
	PoolGlamour       = "Glamour"
	PoolArete         = "Arete"
	PoolEnlightenment = "Enlightenment"
)

// Power trait names the rules special-case.
const (
	DisciplineThaumaturgy = "Thaumaturgy"
	DisciplineNecromancy  = "Necromancy"
	PathOfBlood           = "Path of Blood"
	SepulchrePath         = "Sepulchre Path"
	MeritGnosis           = "Gnosis"
)

var attributeNames = map[shared.Subcategory]nameSet{
	shared.SubcategoryPhysical: newNameSet("Strength", "Dexterity", "Stamina"),
	shared.SubcategorySocial:   newNameSet("Charisma", "Manipulation", "Appearance"),
	shared.SubcategoryMental:   newNameSet("Perception", "Intelligence", "Wits"),
}

var abilityNames = map[shared.Subcategory]nameSet{
	shared.SubcategoryTalent: newNameSet(
		"Alertness", "Athletics", "Awareness", "Brawl", "Empathy",
		"Expression", "Intimidation", "Leadership", "Streetwise", "Subterfuge",
	),
	shared.SubcategorySkill: newNameSet(
		"Animal Ken", "Crafts", "Drive", "Etiquette", "Firearms",
		"Larceny", "Melee", "Performance", "Stealth", "Survival",
	),
	shared.SubcategoryKnowledge: newNameSet(
		"Academics", "Computer", "Enigmas", "Investigation", "Law",
		"Medicine", "Occult", "Politics", "Science", "Technology",
	),
}

// Secondary abilities price at half the equivalent ability cost.
var secondaryAbilityNames = map[shared.Subcategory]nameSet{
	shared.SubcategoryTalent: newNameSet(
		"Carousing", "Diplomacy", "Intrigue", "Mimicry", "Scrounging",
		"Seduction", "Style",
	),
	shared.SubcategorySkill: newNameSet(
		"Archery", "Fencing", "Fortune-Telling", "Gambling", "Jury-Rigging",
		"Pilot", "Torture",
	),
	shared.SubcategoryKnowledge: newNameSet(
		"Area Knowledge", "Cultural Savvy", "Finance", "Herbalism", "Media",
		"Power-Brokering", "Vice",
	),
}

// backgroundNames is the union across all splats. Instance suffixes like
// "Allies(Police)" are stripped before matching.
var backgroundNames = newNameSet(
	"Allies", "Alternate Identity", "Ancestors", "Arcane", "Avatar",
	"Chimera", "Contacts", "Destiny", "Dream", "Dreamers", "Fame",
	"Familiar", "Fetish", "Generation", "Herd", "Holdings", "Influence",
	"Kinfolk", "Library", "Mentor", "Node", "Pure Breed", "Remembrance",
	"Resources", "Retainers", "Rites", "Sanctum", "Status", "Title",
	"Totem", "Treasure", "Wonder",
)

// backgroundSelfCaps overrides the default self-service ceiling for specific
// backgrounds. A cap of 0 means staff only.
var backgroundSelfCaps = map[string]int{
	strings.ToLower("Generation"): 0,
	strings.ToLower("Pure Breed"): 0,
}

const backgroundDefaultSelfCap = 2

var disciplineNames = newNameSet(
	"Animalism", "Auspex", "Celerity", "Chimerstry", "Daimoinon",
	"Dementation", "Dominate", "Fortitude", "Melpominee", "Mytherceria",
	DisciplineNecromancy, "Obeah", "Obfuscate", "Obtenebration", "Potence",
	"Presence", "Protean", "Quietus", "Serpentis", "Temporis",
	DisciplineThaumaturgy, "Valeren", "Vicissitude",
)

// commonDisciplines is the fixed whitelist of disciplines a player may ever
// self-purchase. Everything else is staff-only regardless of rating.
var commonDisciplines = newNameSet(
	"Potence", "Celerity", "Fortitude", "Obfuscate", "Auspex",
)

var thaumaturgyPathNames = newNameSet(
	PathOfBlood, "Elemental Mastery", "Hands of Destruction",
	"Lure of Flames", "Movement of the Mind", "Neptune's Might",
	"Path of Conjuring", "Path of Corruption", "Path of Mars",
	"Path of Technomancy", "The Green Path", "Weather Control",
)

var necromancyPathNames = newNameSet(
	SepulchrePath, "Ash Path", "Bone Path", "Cenotaph Path",
	"Corpse in the Monster", "Grave's Decay", "Path of the Four Humors",
	"Vitreous Path",
)

// Ritual catalogs map name -> ritual level. Level drives pricing and the
// discipline-rating ceiling.
var thaumaturgyRituals = map[string]int{
	strings.ToLower("Defense of the Sacred Haven"):      1,
	strings.ToLower("Wake with Evening's Freshness"):    1,
	strings.ToLower("Communicate with Kindred Sire"):    1,
	strings.ToLower("Deflection of Wooden Doom"):        1,
	strings.ToLower("Devil's Touch"):                    1,
	strings.ToLower("Donning the Mask of Shadows"):      2,
	strings.ToLower("Principal Focus of Vitae Infusion"): 2,
	strings.ToLower("Ward versus Ghouls"):               2,
	strings.ToLower("Incorporeal Passage"):              3,
	strings.ToLower("Pavis of Foul Presence"):           3,
	strings.ToLower("Ward versus Lupines"):              3,
	strings.ToLower("Blood Contract"):                   4,
	strings.ToLower("Ward versus Kindred"):              4,
	strings.ToLower("Bone of Lies"):                     5,
	strings.ToLower("Ward versus Spirits"):              5,
}

var necromancyRituals = map[string]int{
	strings.ToLower("Call of the Hungry Dead"):        1,
	strings.ToLower("Eldritch Beacon"):                1,
	strings.ToLower("Eyes of the Grave"):              2,
	strings.ToLower("Occhio d'Uomo Morto"):            2,
	strings.ToLower("Ritual of the Unearthed Fetter"): 3,
	strings.ToLower("Tempesta Scudo"):                 3,
	strings.ToLower("Cadaver's Touch"):                4,
	strings.ToLower("Grasp the Ghostly"):              4,
	strings.ToLower("Esilio"):                         5,
}

var sphereNames = newNameSet(
	"Correspondence", "Entropy", "Forces", "Life", "Matter",
	"Mind", "Prime", "Spirit", "Time",
)

// traditionAffinities maps a Mage tradition to its affinity sphere. A
// character's explicit AffinitySphere field wins over this table.
var traditionAffinities = map[string]string{
	strings.ToLower("Akashic Brotherhood"): "Mind",
	strings.ToLower("Celestial Chorus"):    "Prime",
	strings.ToLower("Cult of Ecstasy"):     "Time",
	strings.ToLower("Dreamspeakers"):       "Spirit",
	strings.ToLower("Euthanatos"):          "Entropy",
	strings.ToLower("Order of Hermes"):     "Forces",
	strings.ToLower("Sons of Ether"):       "Matter",
	strings.ToLower("Verbena"):             "Life",
	strings.ToLower("Virtual Adepts"):      "Correspondence",
}

var artNames = newNameSet(
	"Autumn", "Chicanery", "Chronos", "Contract", "Dragon's Ire",
	"Legerdemain", "Metamorphosis", "Naming", "Oneiromancy", "Primal",
	"Pyretics", "Skycraft", "Soothsay", "Sovereign", "Spring",
	"Summer", "Wayfare", "Winter",
)

var realmNames = newNameSet(
	"Actor", "Fae", "Nature", "Prop", "Scene", "Time",
)

var blessingNames = newNameSet(
	"Animal Control", "Armored Skin", "Berserker", "Body Expansion",
	"Claws and Fangs", "Darksight", "Extra Speed", "Mega-Attribute",
	"Regeneration", "Size", "Spirit Ties", "Umbral Passage",
	"Wall Walking", "Webbing",
)

var charmNames = newNameSet(
	"Airt Sense", "Armor", "Blast", "Blighted Touch", "Cleanse the Blight",
	"Cling", "Create Fire", "Create Wind", "Ease Pain", "Feedback",
	"Healing", "Influence", "Inhabit", "Materialize", "Mind Speech",
	"Open Moon Bridge", "Peek", "Re-form", "Shapeshift", "Short Out",
	"Spirit Static", "Terror", "Track", "Umbral Storm", "Updraft",
)

// clanDisciplines marks which disciplines are in-clan, the discount axis for
// vampire pricing. Caitiff have no in-clan disciplines.
var clanDisciplines = map[string]nameSet{
	strings.ToLower("Assamite"):         newNameSet("Celerity", "Obfuscate", "Quietus"),
	strings.ToLower("Brujah"):           newNameSet("Celerity", "Potence", "Presence"),
	strings.ToLower("Followers of Set"): newNameSet("Obfuscate", "Presence", "Serpentis"),
	strings.ToLower("Gangrel"):          newNameSet("Animalism", "Fortitude", "Protean"),
	strings.ToLower("Giovanni"):         newNameSet("Dominate", DisciplineNecromancy, "Potence"),
	strings.ToLower("Lasombra"):         newNameSet("Dominate", "Obtenebration", "Potence"),
	strings.ToLower("Malkavian"):        newNameSet("Auspex", "Dementation", "Obfuscate"),
	strings.ToLower("Nosferatu"):        newNameSet("Animalism", "Obfuscate", "Potence"),
	strings.ToLower("Ravnos"):           newNameSet("Animalism", "Chimerstry", "Fortitude"),
	strings.ToLower("Toreador"):         newNameSet("Auspex", "Celerity", "Presence"),
	strings.ToLower("Tremere"):          newNameSet("Auspex", "Dominate", DisciplineThaumaturgy),
	strings.ToLower("Tzimisce"):         newNameSet("Animalism", "Auspex", "Vicissitude"),
	strings.ToLower("Ventrue"):          newNameSet("Dominate", "Fortitude", "Presence"),
}

// isInClan reports whether a discipline is native to the character's clan.
func isInClan(clan, discipline string) bool {
	set, ok := clanDisciplines[strings.ToLower(clan)]
	if !ok {
		return false
	}
	return set.contains(discipline)
}

// affinitySphere resolves the character's affinity sphere: the explicit field
// first, then the tradition table.
func affinitySphere(explicit, tradition string) string {
	if explicit != "" {
		return explicit
	}
	return traditionAffinities[strings.ToLower(tradition)]
}

// ritualLevel returns the catalog level for a ritual, or 0 if unknown.
func ritualLevel(sub shared.Subcategory, name string) int {
	switch sub {
	case shared.SubcategoryThaumRitual:
		return thaumaturgyRituals[strings.ToLower(name)]
	case shared.SubcategoryNecromancyRitual:
		return necromancyRituals[strings.ToLower(name)]
	}
	return 0
}

// backgroundSelfCap returns the self-service ceiling for a background.
func backgroundSelfCap(name string) int {
	if cap, ok := backgroundSelfCaps[strings.ToLower(name)]; ok {
		return cap
	}
	return backgroundDefaultSelfCap
}
