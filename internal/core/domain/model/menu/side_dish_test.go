package menu_test

import (
	"testing"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"
	"burgercounter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSideDish(t *testing.T) {
	t.Run("creates_active_side_dish", func(t *testing.T) {
		dish, err := menu.NewSideDish(kernel.NewUUID(), "Fritas", "🍟")

		require.NoError(t, err)
		assert.Equal(t, "Fritas", dish.Name())
		assert.Equal(t, "🍟", dish.Icon())
		assert.True(t, dish.IsActive())
	})

	t.Run("icon_is_optional", func(t *testing.T) {
		dish, err := menu.NewSideDish(kernel.NewUUID(), "Legumes", "")

		require.NoError(t, err)
		assert.Empty(t, dish.Icon())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := menu.NewSideDish(kernel.NewUUID(), "", "🥔")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSideDish_Deactivate(t *testing.T) {
	dish, err := menu.NewSideDish(kernel.NewUUID(), "Purê", "🥔")
	require.NoError(t, err)

	dish.Deactivate()
	assert.False(t, dish.IsActive())
}

func TestRestoreSideDish(t *testing.T) {
	dish, err := menu.RestoreSideDish(kernel.NewUUID(), "Salada Verde", "🥒", false)

	require.NoError(t, err)
	assert.False(t, dish.IsActive())
}
