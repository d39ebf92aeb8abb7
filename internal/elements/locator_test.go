package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocatorSelector(t *testing.T) {
	cases := []struct {
		name string
		loc  Locator
		want string
	}{
		{"css", ByCSS("#content h2"), "css=#content h2"},
		{"xpath", ByXPath("//footer//h5"), "xpath=//footer//h5"},
		{"id", ByID("input-email"), "id=input-email"},
		{"name", ByName("search"), `css=[name="search"]`},
		{"link text", ByLinkText("Logout"), `css=a:text-is("Logout")`},
		{"tag", ByTag("select"), "css=select"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.loc.Selector())
		})
	}
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, `(id, "input-email")`, ByID("input-email").String())
	assert.Equal(t, `(link text, "Register")`, ByLinkText("Register").String())
}
