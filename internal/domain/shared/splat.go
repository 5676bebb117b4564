package shared

// Splat is the character's supernatural archetype. It is the primary axis of
// rule variation: pricing, eligibility, and allowed trait buckets all key off it.
type Splat string

const (
	SplatVampire    Splat = "vampire"
	SplatMage       Splat = "mage"
	SplatShifter    Splat = "shifter"
	SplatChangeling Splat = "changeling"
	SplatMortal     Splat = "mortal"
	SplatMortalPlus Splat = "mortal_plus"
	SplatPossessed  Splat = "possessed"
	SplatCompanion  Splat = "companion"
)

// MortalPlusType narrows the Mortal+ splat. Each type borrows a power bucket
// from one of the full splats at reduced caps.
type MortalPlusType string

const (
	MortalPlusGhoul    MortalPlusType = "ghoul"
	MortalPlusKinfolk  MortalPlusType = "kinfolk"
	MortalPlusKinain   MortalPlusType = "kinain"
	MortalPlusSorcerer MortalPlusType = "sorcerer"
	MortalPlusPsychic  MortalPlusType = "psychic"
	MortalPlusFaithful MortalPlusType = "faithful"
)

// PossessedType narrows the Possessed splat.
type PossessedType string

const (
	PossessedFomori PossessedType = "fomori"
	PossessedKami   PossessedType = "kami"
)

// Breed is a shifter's birth form.
type Breed string

const (
	BreedHomid Breed = "homid"
	BreedMetis Breed = "metis"
	BreedLupus Breed = "lupus"
)

// Auspice is a Garou's moon sign.
type Auspice string

const (
	AuspiceRagabash Auspice = "ragabash"
	AuspiceTheurge  Auspice = "theurge"
	AuspicePhilodox Auspice = "philodox"
	AuspiceGalliard Auspice = "galliard"
	AuspiceAhroun   Auspice = "ahroun"
)
