package xp

import (
	"context"
	"fmt"
	"strings"

	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/domain/rulebook/wod20"
	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
)

// Spend processes a self-service trait purchase
func (s *service) Spend(ctx context.Context, input *SpendInput) (*SpendResult, error) {
	return s.spend(ctx, input, "")
}

// StaffSpend processes a staff-approved purchase. The validator and the
// approval gate are skipped; gift aliases resolve to their canonical name
// with the player's alias kept on the audit entry.
func (s *service) StaffSpend(ctx context.Context, input *StaffSpendInput) (*SpendResult, error) {
	if input == nil {
		return nil, engerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.StaffName) == "" {
		return nil, engerr.InvalidArgument("staff name is required")
	}
	return s.spend(ctx, &input.SpendInput, input.StaffName)
}

func (s *service) spend(ctx context.Context, input *SpendInput, staffName string) (*SpendResult, error) {
	if input == nil {
		return nil, engerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.CharacterID) == "" {
		return nil, engerr.InvalidArgument("character ID is required")
	}
	if strings.TrimSpace(input.TraitName) == "" {
		return nil, engerr.InvalidArgument("trait name is required")
	}
	if input.NewRating < 0 {
		return nil, engerr.InvalidArgument("new rating cannot be negative")
	}

	isStaff := staffName != ""

	var result *SpendResult
	err := s.withCharacter(ctx, input.CharacterID, func(ch *character.Character) (retErr error) {
		name := strings.TrimSpace(input.TraitName)

		// Classify unless the caller already resolved the bucket
		cat, sub := input.Category, input.Subcategory
		if cat == "" || sub == "" {
			var err error
			cat, sub, err = wod20.Classify(ctx, s.giftCatalog, ch, name)
			if err != nil {
				return err
			}
		}

		// Staff spends write the canonical gift name, keeping the alias
		// the player asked for on the audit entry
		playerAlias := ""
		if isStaff && sub == shared.SubcategoryGift {
			gift, err := s.giftCatalog.FindGift(ctx, name)
			if err != nil {
				if !engerr.IsNotFound(err) {
					return err
				}
			} else if !strings.EqualFold(gift.Name, name) {
				playerAlias = name
				name = gift.Name
			}
		}

		cur := wod20.CurrentRating(ch, name, cat, sub)

		costResult, err := wod20.Cost(ctx, s.giftCatalog, ch, name, cat, sub, cur, input.NewRating)
		if err != nil {
			return err
		}
		if costResult.Cost.IsZero() {
			// Prefer the validator's explanation when it has one, e.g.
			// the Kinfolk Gnosis redirect
			if verr := wod20.Validate(ch, name, input.NewRating, cat, sub); verr != nil {
				return verr
			}
			return engerr.ZeroCostf("cannot price '%s' at rating %d", name, input.NewRating).
				WithMeta("trait_name", name)
		}
		if !ch.XP.CanAfford(costResult.Cost) {
			return engerr.InsufficientXPf("'%s' costs %s XP; %s available",
				name, costResult.Cost.String(), ch.XP.Current.String()).
				WithMeta("cost", costResult.Cost.String()).
				WithMeta("available", ch.XP.Current.String())
		}

		if !isStaff {
			if err := wod20.Validate(ch, name, input.NewRating, cat, sub); err != nil {
				return err
			}
			if costResult.RequiresApproval {
				return engerr.RequiresApprovalf("'%s' at rating %d requires staff approval", name, input.NewRating).
					WithMeta("trait_name", name)
			}
		}

		// The remaining steps mutate the clone as one unit. A panic here
		// must surface as a processing error, never a partial write.
		defer func() {
			if r := recover(); r != nil {
				retErr = engerr.Processingf("spend failed while applying '%s': %v", name, r)
			}
		}()

		newRating := input.NewRating
		if cat == shared.CategoryFlaws {
			// Buying off a flaw removes it outright, from whichever bucket
			// it is actually filed under
			ch.DeleteFlaw(name)
			newRating = 0
		} else {
			ch.Traits.SetBoth(cat, sub, name, newRating)
		}

		for _, dw := range wod20.DerivedWrites(ch, name, cat, sub, input.NewRating) {
			ch.Traits.SetBoth(shared.CategoryPools, shared.SubcategoryDual, dw.Pool, dw.Value)
		}

		if err := ch.XP.Deduct(costResult.Cost); err != nil {
			return err
		}

		reason := input.Reason
		if playerAlias != "" {
			reason = fmt.Sprintf("%s (requested as %q)", reason, playerAlias)
		}
		ch.XP.Append(&character.SpendEntry{
			ID:             s.uuidGenerator.New(),
			Type:           character.SpendTypeSpend,
			Amount:         costResult.Cost,
			TraitName:      name,
			PreviousRating: cur,
			NewRating:      newRating,
			Reason:         reason,
			StaffName:      staffName,
			Timestamp:      s.timeProvider.Now(),
		})
		if err := ch.XP.CheckInvariant(); err != nil {
			return err
		}

		message := fmt.Sprintf("%s raised from %d to %d for %s XP", name, cur, newRating, costResult.Cost.String())
		if cat == shared.CategoryFlaws {
			message = fmt.Sprintf("%s bought off for %s XP", name, costResult.Cost.String())
		}

		result = &SpendResult{
			TraitName:      name,
			PreviousRating: cur,
			NewRating:      newRating,
			Cost:           costResult.Cost,
			Message:        message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
