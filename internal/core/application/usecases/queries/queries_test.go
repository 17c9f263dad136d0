package queries_test

import (
	"testing"

	"melodia/internal/core/application/usecases/queries"
	"melodia/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstructors(t *testing.T) {
	actorID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("constructed queries validate", func(t *testing.T) {
		q1, err := queries.NewGetOrdersQuery(actorID)
		require.NoError(t, err)
		assert.NoError(t, q1.Validate())

		q2, err := queries.NewGetOrderQuery(orderID, actorID)
		require.NoError(t, err)
		assert.NoError(t, q2.Validate())

		q3, err := queries.NewGetCartQuery(actorID)
		require.NoError(t, err)
		assert.NoError(t, q3.Validate())

		q4, err := queries.NewGetInvoicesQuery(actorID)
		require.NoError(t, err)
		assert.NoError(t, q4.Validate())
	})

	t.Run("zero value queries do not validate", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetCartQuery{}.Validate(), queries.ErrGetCartQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetInvoicesQuery{}.Validate(), queries.ErrGetInvoicesQueryIsNotConstructed)
	})

	t.Run("zero ids are rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(kernel.UUID{})
		require.Error(t, err)

		_, err = queries.NewGetOrderQuery(kernel.UUID{}, actorID)
		require.Error(t, err)
	})
}
