package giftcatalog

import (
	"context"
	"strings"

	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
)

// staticClient serves gift lookups from an in-process table. Games with a
// custom gift list can swap in their own Client implementation.
type staticClient struct {
	gifts []*Gift
}

// NewStatic creates a catalog client backed by the default W20 gift table.
func NewStatic() Client {
	return &staticClient{gifts: defaultGifts()}
}

// NewStaticWithGifts creates a catalog client over a caller-supplied table.
func NewStaticWithGifts(gifts []*Gift) Client {
	return &staticClient{gifts: gifts}
}

// FindGift resolves a name or alias case-insensitively.
func (c *staticClient) FindGift(_ context.Context, nameOrAlias string) (*Gift, error) {
	needle := strings.TrimSpace(nameOrAlias)
	if needle == "" {
		return nil, engerr.InvalidArgument("gift name is required")
	}
	for _, g := range c.gifts {
		if strings.EqualFold(g.Name, needle) {
			return g, nil
		}
		for _, alias := range g.Aliases {
			if strings.EqualFold(alias, needle) {
				return g, nil
			}
		}
	}
	return nil, engerr.NotFoundf("no gift named '%s' in the catalog", nameOrAlias)
}

// defaultGifts is the stock W20 Garou gift table. Breed, auspice, and tribe
// lists drive in-type pricing; the tag marks lost or imported lineages that
// price on their own scale.
func defaultGifts() []*Gift {
	garou := []string{"garou"}
	return []*Gift{
		// Breed gifts
		{Name: "Master of Fire", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedHomid}},
		{Name: "Persuasion", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedHomid}},
		{Name: "Smell of Man", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedHomid}},
		{Name: "Create Element", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedMetis}},
		{Name: "Sense Wyrm", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedMetis, shared.BreedLupus}},
		{Name: "Shed", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedMetis}},
		{Name: "Hare's Leap", Aliases: []string{"Hares Leap"}, ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedLupus}},
		{Name: "Heightened Senses", ShifterTypes: garou, Breeds: []shared.Breed{shared.BreedLupus}},

		// Auspice gifts
		{Name: "Blur of the Milky Eye", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceRagabash}},
		{Name: "Open Seal", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceRagabash}},
		{Name: "Scent of Running Water", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceRagabash}},
		{Name: "Mother's Touch", Aliases: []string{"Mothers Touch"}, ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceTheurge}},
		{Name: "Spirit Speech", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceTheurge}},
		{Name: "Resist Pain", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspicePhilodox}},
		{Name: "Truth of Gaia", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspicePhilodox}},
		{Name: "Call of the Wyld", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceGalliard}},
		{Name: "Mindspeak", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceGalliard}},
		{Name: "Falling Touch", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceAhroun}},
		{Name: "Inspiration", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceAhroun}},
		{Name: "Razor Claws", ShifterTypes: garou, Auspices: []shared.Auspice{shared.AuspiceAhroun}},

		// Tribe gifts
		{Name: "Breath of the Wyld", ShifterTypes: garou, Tribes: []string{"Black Furies"}},
		{Name: "Resist Toxin", ShifterTypes: garou, Tribes: []string{"Bone Gnawers"}},
		{Name: "Mercy", ShifterTypes: garou, Tribes: []string{"Children of Gaia"}},
		{Name: "Faerie Light", ShifterTypes: garou, Tribes: []string{"Fianna"}},
		{Name: "Snarl of the Predator", ShifterTypes: garou, Tribes: []string{"Get of Fenris"}},
		{Name: "Trick Shot", ShifterTypes: garou, Tribes: []string{"Glass Walkers"}},
		{Name: "Beast Speech", ShifterTypes: garou, Tribes: []string{"Red Talons"}},
		{Name: "Fatal Flaw", ShifterTypes: garou, Tribes: []string{"Shadow Lords"}},
		{Name: "Speed of Thought", ShifterTypes: garou, Tribes: []string{"Silent Striders"}},
		{Name: "Lambent Flame", ShifterTypes: garou, Tribes: []string{"Silver Fangs"}},
		{Name: "Balance", ShifterTypes: garou, Tribes: []string{"Stargazers"}},
		{Name: "Sense Magic", ShifterTypes: garou, Tribes: []string{"Uktena"}},
		{Name: "Call the Breeze", ShifterTypes: garou, Tribes: []string{"Wendigo"}},

		// Lost and imported lineages
		{Name: "Sense the Truth", ShifterTypes: garou, Tag: TagCroatan},
		{Name: "Umbral Compass", ShifterTypes: garou, Tag: TagCroatan},
		{Name: "Foresight", ShifterTypes: garou, Tribes: []string{"Stargazers"}, Tag: TagPlanetary},
		{Name: "Strength of Purpose", ShifterTypes: garou, Tribes: []string{"Stargazers"}, Tag: TagPlanetary},
		{Name: "Burning Talisman", ShifterTypes: garou, Tribes: []string{"Glass Walkers"}, Tag: TagJuFu},
		{Name: "Paper Warrior", ShifterTypes: garou, Tribes: []string{"Glass Walkers"}, Tag: TagJuFu},
	}
}
