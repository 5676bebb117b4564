package xp

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/duskmux/wod20/internal/domain/character"
	engerr "github.com/duskmux/wod20/internal/errors"
)

// Award grants XP to a character
func (s *service) Award(ctx context.Context, input *AwardInput) error {
	if input == nil {
		return engerr.InvalidArgument("input cannot be nil")
	}
	return s.adjustLedger(ctx, input.CharacterID, input.Amount, input.Reason, input.StaffName,
		character.SpendTypeReceive,
		func(ch *character.Character, amount decimal.Decimal) error {
			return ch.XP.Award(amount)
		})
}

// Approve records XP spent in-character without a trait increase
func (s *service) Approve(ctx context.Context, input *ApproveInput) error {
	if input == nil {
		return engerr.InvalidArgument("input cannot be nil")
	}
	return s.adjustLedger(ctx, input.CharacterID, input.Amount, input.Reason, input.StaffName,
		character.SpendTypeApprove,
		func(ch *character.Character, amount decimal.Decimal) error {
			return ch.XP.Deduct(amount)
		})
}

// Refund reverses an earlier spend
func (s *service) Refund(ctx context.Context, input *RefundInput) error {
	if input == nil {
		return engerr.InvalidArgument("input cannot be nil")
	}
	return s.adjustLedger(ctx, input.CharacterID, input.Amount, input.Reason, input.StaffName,
		character.SpendTypeRefund,
		func(ch *character.Character, amount decimal.Decimal) error {
			return ch.XP.Refund(amount)
		})
}

func (s *service) adjustLedger(
	ctx context.Context,
	characterID string,
	amount decimal.Decimal,
	reason, staffName string,
	entryType character.SpendType,
	apply func(ch *character.Character, amount decimal.Decimal) error,
) error {
	if strings.TrimSpace(characterID) == "" {
		return engerr.InvalidArgument("character ID is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return engerr.InvalidArgument("amount must be positive")
	}

	return s.withCharacter(ctx, characterID, func(ch *character.Character) error {
		if err := apply(ch, amount); err != nil {
			return err
		}
		ch.XP.Append(&character.SpendEntry{
			ID:        s.uuidGenerator.New(),
			Type:      entryType,
			Amount:    amount,
			Reason:    reason,
			StaffName: staffName,
			Timestamp: s.timeProvider.Now(),
		})
		return ch.XP.CheckInvariant()
	})
}
