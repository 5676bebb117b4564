package character

import (
	"time"

	"github.com/shopspring/decimal"

	engerr "github.com/duskmux/wod20/internal/errors"
)

// SpendType tags a ledger log entry.
type SpendType string

const (
	SpendTypeSpend   SpendType = "spend"
	SpendTypeReceive SpendType = "receive"
	SpendTypeApprove SpendType = "approve"
	SpendTypeRefund  SpendType = "refund"
)

// SpendEntry is an immutable audit record. Entries are append-only,
// newest-first, and never deleted.
type SpendEntry struct {
	ID             string          `json:"id"`
	Type           SpendType       `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	TraitName      string          `json:"trait_name,omitempty"`
	PreviousRating int             `json:"previous_rating,omitempty"`
	NewRating      int             `json:"new_rating,omitempty"`
	Reason         string          `json:"reason"`
	StaffName      string          `json:"staff_name,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// XPLedger tracks a character's experience balance. All amounts are decimals,
// never floats; the invariant Total == Current + Spent must hold after every
// successful mutation.
type XPLedger struct {
	Total   decimal.Decimal `json:"total"`
	Current decimal.Decimal `json:"current"`
	Spent   decimal.Decimal `json:"spent"`
	Log     []*SpendEntry   `json:"log"`
}

// NewXPLedger creates a zeroed ledger.
func NewXPLedger() *XPLedger {
	return &XPLedger{
		Total:   decimal.Zero,
		Current: decimal.Zero,
		Spent:   decimal.Zero,
	}
}

// CanAfford reports whether the current balance covers amount.
func (l *XPLedger) CanAfford(amount decimal.Decimal) bool {
	return l.Current.GreaterThanOrEqual(amount)
}

// Deduct moves amount from Current to Spent.
func (l *XPLedger) Deduct(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return engerr.InvalidArgument("deduct amount cannot be negative")
	}
	if !l.CanAfford(amount) {
		return engerr.InsufficientXPf("cost is %s XP but only %s XP is available",
			amount.String(), l.Current.String())
	}
	l.Current = l.Current.Sub(amount)
	l.Spent = l.Spent.Add(amount)
	return nil
}

// Award adds newly earned XP to Total and Current.
func (l *XPLedger) Award(amount decimal.Decimal) error {
	if amount.IsNegative() || amount.IsZero() {
		return engerr.InvalidArgument("award amount must be positive")
	}
	l.Total = l.Total.Add(amount)
	l.Current = l.Current.Add(amount)
	return nil
}

// Refund moves amount from Spent back to Current, reversing an earlier spend.
func (l *XPLedger) Refund(amount decimal.Decimal) error {
	if amount.IsNegative() || amount.IsZero() {
		return engerr.InvalidArgument("refund amount must be positive")
	}
	if l.Spent.LessThan(amount) {
		return engerr.Validationf("cannot refund %s XP: only %s XP has been spent",
			amount.String(), l.Spent.String())
	}
	l.Current = l.Current.Add(amount)
	l.Spent = l.Spent.Sub(amount)
	return nil
}

// Append prepends an entry so the log reads newest-first.
func (l *XPLedger) Append(entry *SpendEntry) {
	l.Log = append([]*SpendEntry{entry}, l.Log...)
}

// CheckInvariant verifies Total == Current + Spent.
func (l *XPLedger) CheckInvariant() error {
	if !l.Total.Equal(l.Current.Add(l.Spent)) {
		return engerr.Internalf("ledger drift: total %s != current %s + spent %s",
			l.Total.String(), l.Current.String(), l.Spent.String())
	}
	return nil
}

// Clone returns a deep copy of the ledger. SpendEntry values are immutable
// once appended, so the log shares entry pointers but not the slice.
func (l *XPLedger) Clone() *XPLedger {
	if l == nil {
		return nil
	}
	out := &XPLedger{
		Total:   l.Total,
		Current: l.Current,
		Spent:   l.Spent,
	}
	if l.Log != nil {
		out.Log = make([]*SpendEntry, len(l.Log))
		copy(out.Log, l.Log)
	}
	return out
}
