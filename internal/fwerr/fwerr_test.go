package fwerr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New(Timeout, "elements.WaitUntilVisible", "element not visible").
		WithSelector(`(css, "#input-email")`).
		WithBudget(5 * time.Second)

	msg := err.Error()
	assert.Contains(t, msg, "elements.WaitUntilVisible")
	assert.Contains(t, msg, "element not visible")
	assert.Contains(t, msg, `#input-email`)
	assert.Contains(t, msg, "5s")
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(FrameSwitch, "elements.EnterFrame", "content frame unavailable", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsKind(t *testing.T) {
	err := New(NotFound, "elements.Find", "no element matched")

	assert.True(t, IsKind(err, NotFound))
	assert.False(t, IsKind(err, Timeout))

	wrapped := fmt.Errorf("open login page: %w", err)
	assert.True(t, IsKind(wrapped, NotFound))

	assert.False(t, IsKind(errors.New("plain"), NotFound))
	assert.False(t, IsKind(nil, NotFound))
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		NotFound:           "not found",
		InvalidArgument:    "invalid argument",
		Timeout:            "timeout",
		PartialSelection:   "partial selection",
		UnsupportedBrowser: "unsupported browser",
		FrameSwitch:        "frame switch",
		Kind(0):            "unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
