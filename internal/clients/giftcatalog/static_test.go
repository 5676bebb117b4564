package giftcatalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmux/wod20/internal/domain/shared"
	engerr "github.com/duskmux/wod20/internal/errors"
)

func TestStaticClient_FindGift(t *testing.T) {
	client := NewStatic()
	ctx := context.Background()

	gift, err := client.FindGift(ctx, "Razor Claws")
	require.NoError(t, err)
	assert.Equal(t, "Razor Claws", gift.Name)
	assert.Contains(t, gift.Auspices, shared.AuspiceAhroun)

	// Lookups are case-insensitive.
	gift, err = client.FindGift(ctx, "razor claws")
	require.NoError(t, err)
	assert.Equal(t, "Razor Claws", gift.Name)
}

func TestStaticClient_FindGiftByAlias(t *testing.T) {
	client := NewStatic()

	gift, err := client.FindGift(context.Background(), "Mothers Touch")
	require.NoError(t, err)
	assert.Equal(t, "Mother's Touch", gift.Name)
}

func TestStaticClient_NotFound(t *testing.T) {
	client := NewStatic()

	_, err := client.FindGift(context.Background(), "Gift of Nothing")
	require.Error(t, err)
	assert.True(t, engerr.IsNotFound(err))

	_, err = client.FindGift(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, engerr.IsInvalidArgument(err))
}

func TestStaticClient_CustomTable(t *testing.T) {
	client := NewStaticWithGifts([]*Gift{
		{Name: "House Gift", Tribes: []string{"Test Tribe"}},
	})

	gift, err := client.FindGift(context.Background(), "house gift")
	require.NoError(t, err)
	assert.Equal(t, "House Gift", gift.Name)

	_, err = client.FindGift(context.Background(), "Razor Claws")
	assert.True(t, engerr.IsNotFound(err))
}
