package giftcatalog

//go:generate mockgen -destination=mock/mock.go -package=mockgiftcatalog -source=interface.go

import (
	"context"

	"github.com/duskmux/wod20/internal/domain/shared"
)

// SpecialTag marks gift lineages that price outside the normal breed/tribe
// match rules.
type SpecialTag string

const (
	TagNone      SpecialTag = ""
	TagCroatan   SpecialTag = "croatan"
	TagPlanetary SpecialTag = "planetary"
	TagJuFu      SpecialTag = "ju-fu"
)

// Gift is a catalog record for one shifter gift. Empty allow-lists mean the
// gift is open to any value of that axis.
type Gift struct {
	Name         string           `json:"name"`
	Aliases      []string         `json:"aliases,omitempty"`
	ShifterTypes []string         `json:"shifter_types,omitempty"`
	Breeds       []shared.Breed   `json:"breeds,omitempty"`
	Auspices     []shared.Auspice `json:"auspices,omitempty"`
	Tribes       []string         `json:"tribes,omitempty"`
	Tag          SpecialTag       `json:"tag,omitempty"`
}

// Client looks up gifts by canonical name or alias. Gift names are open-ended
// data, unlike the static rule tables, so the classifier and calculator reach
// them through this interface.
type Client interface {
	// FindGift resolves a name or alias case-insensitively. Returns a
	// not-found error when no gift matches.
	FindGift(ctx context.Context, nameOrAlias string) (*Gift, error)
}
