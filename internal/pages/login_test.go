package pages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opencartqa/internal/pages"
	"opencartqa/internal/suite"
)

func TestLoginPage(t *testing.T) {
	s := suite.New(t)
	lp := s.LoginPage(t)

	t.Run("title", func(t *testing.T) {
		title, err := lp.Title()
		require.NoError(t, err)
		assert.Equal(t, pages.LoginPageTitle, title)
	})

	t.Run("url", func(t *testing.T) {
		assert.Contains(t, lp.URL(), "route=account/login")
	})

	t.Run("forgot password link", func(t *testing.T) {
		assert.True(t, lp.HasForgotPasswordLink())
	})

	t.Run("right column links before login", func(t *testing.T) {
		links, err := s.Components().RightColumn().LinkTexts()
		require.NoError(t, err)
		assert.Equal(t, pages.RightColumnLinksBeforeLogin, links)
	})

	t.Run("search field displayed", func(t *testing.T) {
		assert.True(t, s.Components().Search().IsFieldDisplayed())
	})

	t.Run("login", func(t *testing.T) {
		ap, err := lp.Login(s.Cfg.Credentials.Email, s.Cfg.Credentials.Password)
		require.NoError(t, err)

		_, ok := s.Elements.WaitUntilTitleContains(context.Background(), pages.AccountPageTitle, pages.ShortWait)
		assert.True(t, ok, "account page title never appeared")
		assert.True(t, ap.HasLogoutLink())
	})
}

func TestLoginPageFooter(t *testing.T) {
	s := suite.New(t)
	s.LoginPage(t)
	footer := s.Components().Footer()

	t.Run("section titles", func(t *testing.T) {
		titles, err := footer.SectionTitles()
		require.NoError(t, err)
		assert.Equal(t, pages.FooterSections, titles)
	})

	t.Run("all links", func(t *testing.T) {
		links, err := footer.AllLinkTexts()
		require.NoError(t, err)
		assert.Equal(t, pages.FooterLinks, links)
	})

	t.Run("information section links", func(t *testing.T) {
		links, err := footer.SectionLinkTexts("Information")
		require.NoError(t, err)
		assert.Equal(t, pages.InformationSectionLinks, links)
	})
}
