package pages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opencartqa/internal/pages"
	"opencartqa/internal/suite"
)

func TestAccountPage(t *testing.T) {
	s := suite.New(t)
	ap := s.AccountPage(t)

	t.Run("title", func(t *testing.T) {
		title, ok := s.Elements.WaitUntilTitleContains(context.Background(), pages.AccountPageTitle, pages.ShortWait)
		assert.True(t, ok, "got title %q", title)
	})

	t.Run("url", func(t *testing.T) {
		assert.Contains(t, ap.URL(), "route=account/account")
	})

	t.Run("logout link", func(t *testing.T) {
		assert.True(t, ap.HasLogoutLink())
	})

	t.Run("headers", func(t *testing.T) {
		headers, err := ap.Headers()
		require.NoError(t, err)
		assert.Equal(t, pages.AccountHeaders, headers)
	})

	t.Run("right column links after login", func(t *testing.T) {
		links, err := s.Components().RightColumn().LinkTexts()
		require.NoError(t, err)
		assert.Equal(t, pages.RightColumnLinksAfterLogin, links)
	})

	t.Run("search field displayed", func(t *testing.T) {
		assert.True(t, s.Components().Search().IsFieldDisplayed())
	})
}

func TestAccountPageSearch(t *testing.T) {
	s := suite.New(t)
	s.AccountPage(t)

	srp, err := s.Components().Search().SearchProduct(context.Background(), "macbook")
	require.NoError(t, err)

	count, err := srp.ResultCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
