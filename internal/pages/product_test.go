package pages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opencartqa/internal/pages"
	"opencartqa/internal/suite"
)

func TestProductPage(t *testing.T) {
	s := suite.New(t)
	s.AccountPage(t)
	ctx := context.Background()

	srp, err := s.Components().Search().SearchProduct(ctx, "macbook")
	require.NoError(t, err)

	pp, err := srp.SelectProduct(ctx, "MacBook Pro")
	require.NoError(t, err)

	t.Run("images", func(t *testing.T) {
		count, err := pp.ImageCount()
		require.NoError(t, err)
		assert.Equal(t, 4, count)

		visible, err := pp.ImagesDisplayed()
		require.NoError(t, err)
		assert.True(t, visible)
	})

	t.Run("info", func(t *testing.T) {
		info, err := pp.Info()
		require.NoError(t, err)

		expected := pages.ProductsInfo["MacBook Pro"]
		for key, want := range expected {
			assert.Equal(t, want, info[key], "field %q", key)
		}
	})
}
