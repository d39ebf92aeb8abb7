package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"opencartqa/internal/fwerr"
)

// The argument guards below run before any browser call, so a nil page is
// fine for these tests.

func TestEnterTextRejectsEmptyValue(t *testing.T) {
	e := New(nil, false, zap.NewNop())

	err := e.EnterText(ByID("input-email"), "")
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.InvalidArgument))
	assert.Contains(t, err.Error(), "input-email")
}

func TestEnterTextIntoRejectsEmptyValue(t *testing.T) {
	e := New(nil, false, zap.NewNop())

	err := e.EnterTextInto(nil, "")
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.InvalidArgument))
}

func TestClickMatchingNoMatch(t *testing.T) {
	e := New(nil, false, zap.NewNop())

	err := e.ClickMatching(nil, "Logout")
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.NotFound))
	assert.Contains(t, err.Error(), "Logout")
}

func TestNavigateRejectsEmptyURL(t *testing.T) {
	e := New(nil, false, zap.NewNop())

	err := e.Navigate("")
	require.Error(t, err)
	assert.True(t, fwerr.IsKind(err, fwerr.InvalidArgument))
}
