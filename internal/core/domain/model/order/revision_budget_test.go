package order_test

import (
	"testing"

	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRevisionBudget(t *testing.T) {
	t.Run("max defaults to included", func(t *testing.T) {
		b, err := order.NewRevisionBudget(3)

		require.NoError(t, err)
		assert.Equal(t, 3, b.Included())
		assert.Equal(t, 0, b.Used())
		assert.Equal(t, 3, b.Max())
		assert.Equal(t, 3, b.Remaining())
	})

	t.Run("rejects negative included", func(t *testing.T) {
		_, err := order.NewRevisionBudget(-1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRevisionBudget_Consume(t *testing.T) {
	t.Run("increments used until the ceiling", func(t *testing.T) {
		b, err := order.NewRevisionBudget(2)
		require.NoError(t, err)

		b, err = b.Consume()
		require.NoError(t, err)
		assert.Equal(t, 1, b.Used())

		b, err = b.Consume()
		require.NoError(t, err)
		assert.Equal(t, 2, b.Used())

		// Third consume must fail cleanly with the budget untouched.
		after, err := b.Consume()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrRevisionLimitExceeded)
		assert.Equal(t, 2, after.Used())
		assert.LessOrEqual(t, after.Used(), after.Max())
	})

	t.Run("zero budget fails immediately", func(t *testing.T) {
		b, err := order.NewRevisionBudget(0)
		require.NoError(t, err)

		_, err = b.Consume()
		assert.ErrorIs(t, err, errs.ErrRevisionLimitExceeded)
	})
}

func TestRestoreRevisionBudget(t *testing.T) {
	t.Run("valid state round trips", func(t *testing.T) {
		b, err := order.RestoreRevisionBudget(2, 1, 4)

		require.NoError(t, err)
		assert.Equal(t, 2, b.Included())
		assert.Equal(t, 1, b.Used())
		assert.Equal(t, 4, b.Max())
	})

	t.Run("used above max is rejected", func(t *testing.T) {
		_, err := order.RestoreRevisionBudget(2, 5, 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("max below included is rejected", func(t *testing.T) {
		_, err := order.RestoreRevisionBudget(3, 0, 2)
		require.Error(t, err)
	})
}
