package catalog_test

import (
	"testing"

	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrack(t *testing.T) *catalog.Track {
	t.Helper()
	base, err := kernel.MoneyFromString("100.00")
	require.NoError(t, err)
	track, err := catalog.NewTrack(kernel.NewUUID(), kernel.NewUUID(), "Night Drive", "synthwave", base)
	require.NoError(t, err)
	return track
}

func TestNewTrack(t *testing.T) {
	t.Run("starts available with no overrides", func(t *testing.T) {
		track := newTestTrack(t)

		assert.True(t, track.IsAvailable())
		assert.Empty(t, track.TierPrices())
		_, ok := track.TierPrice(catalog.Commercial)
		assert.False(t, ok)
	})

	t.Run("rejects non-positive base price", func(t *testing.T) {
		_, err := catalog.NewTrack(kernel.NewUUID(), kernel.NewUUID(), "Night Drive", "synthwave", kernel.ZeroMoney())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		base, err := kernel.MoneyFromString("100.00")
		require.NoError(t, err)
		_, err = catalog.NewTrack(kernel.NewUUID(), kernel.NewUUID(), " ", "synthwave", base)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var track catalog.Track
		assert.ErrorIs(t, track.Validate(), catalog.ErrTrackIsNotConstructed)
	})
}

func TestTrack_SetTierPrice(t *testing.T) {
	track := newTestTrack(t)
	override, err := kernel.MoneyFromString("750.00")
	require.NoError(t, err)

	require.NoError(t, track.SetTierPrice(catalog.Exclusive, override))

	price, ok := track.TierPrice(catalog.Exclusive)
	require.True(t, ok)
	assert.True(t, price.IsEqual(override))

	require.Error(t, track.SetTierPrice(catalog.LicenseTierUnknown, override))
	require.Error(t, track.SetTierPrice(catalog.Personal, kernel.ZeroMoney()))
}

func TestTrack_Withdraw(t *testing.T) {
	track := newTestTrack(t)
	track.Withdraw()
	assert.False(t, track.IsAvailable())
}
