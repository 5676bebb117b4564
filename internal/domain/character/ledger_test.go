package character

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engerr "github.com/duskmux/wod20/internal/errors"
)

func TestXPLedger_AwardDeductRefund(t *testing.T) {
	l := NewXPLedger()

	require.NoError(t, l.Award(decimal.NewFromInt(30)))
	assert.True(t, l.Total.Equal(decimal.NewFromInt(30)))
	assert.True(t, l.Current.Equal(decimal.NewFromInt(30)))
	assert.True(t, l.Spent.IsZero())

	require.NoError(t, l.Deduct(decimal.NewFromInt(8)))
	assert.True(t, l.Current.Equal(decimal.NewFromInt(22)))
	assert.True(t, l.Spent.Equal(decimal.NewFromInt(8)))

	require.NoError(t, l.Refund(decimal.NewFromInt(3)))
	assert.True(t, l.Current.Equal(decimal.NewFromInt(25)))
	assert.True(t, l.Spent.Equal(decimal.NewFromInt(5)))

	// Total never moves on deduct or refund.
	assert.True(t, l.Total.Equal(decimal.NewFromInt(30)))
	assert.NoError(t, l.CheckInvariant())
}

func TestXPLedger_Guards(t *testing.T) {
	l := NewXPLedger()
	require.NoError(t, l.Award(decimal.NewFromInt(5)))

	err := l.Deduct(decimal.NewFromInt(6))
	require.Error(t, err)
	assert.True(t, engerr.IsInsufficientXP(err))

	err = l.Deduct(decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.True(t, engerr.IsInvalidArgument(err))

	err = l.Award(decimal.Zero)
	require.Error(t, err)
	assert.True(t, engerr.IsInvalidArgument(err))

	err = l.Refund(decimal.NewFromInt(1))
	require.Error(t, err)
	assert.True(t, engerr.IsValidation(err))

	// A rejected mutation leaves the balances untouched.
	assert.True(t, l.Current.Equal(decimal.NewFromInt(5)))
	assert.True(t, l.Spent.IsZero())
}

func TestXPLedger_AppendNewestFirst(t *testing.T) {
	l := NewXPLedger()

	l.Append(&SpendEntry{ID: "first", Type: SpendTypeReceive, Timestamp: time.Now()})
	l.Append(&SpendEntry{ID: "second", Type: SpendTypeSpend, Timestamp: time.Now()})

	require.Len(t, l.Log, 2)
	assert.Equal(t, "second", l.Log[0].ID)
	assert.Equal(t, "first", l.Log[1].ID)
}

func TestXPLedger_CheckInvariant(t *testing.T) {
	l := NewXPLedger()
	require.NoError(t, l.Award(decimal.NewFromInt(10)))
	assert.NoError(t, l.CheckInvariant())

	l.Spent = decimal.NewFromInt(99)
	err := l.CheckInvariant()
	require.Error(t, err)
	assert.True(t, engerr.IsInternal(err))
}

func TestXPLedger_Clone(t *testing.T) {
	l := NewXPLedger()
	require.NoError(t, l.Award(decimal.NewFromInt(10)))
	l.Append(&SpendEntry{ID: "e1", Type: SpendTypeReceive})

	clone := l.Clone()
	require.NoError(t, clone.Deduct(decimal.NewFromInt(4)))
	clone.Append(&SpendEntry{ID: "e2", Type: SpendTypeSpend})

	assert.True(t, l.Current.Equal(decimal.NewFromInt(10)))
	assert.Len(t, l.Log, 1)
	assert.Len(t, clone.Log, 2)

	var nilLedger *XPLedger
	assert.Nil(t, nilLedger.Clone())
}
