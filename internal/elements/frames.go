package elements

import (
	"go.uber.org/zap"

	"opencartqa/internal/fwerr"
)

// EnterFrame narrows the lookup scope to the iframe the locator resolves
// to. All subsequent lookups run inside that frame until an Exit call.
func (e *Elements) EnterFrame(loc Locator) error {
	e.log.Info("switching to frame", zap.Stringer("locator", loc))
	handle, err := e.Find(loc)
	if err != nil {
		return fwerr.Wrap(fwerr.FrameSwitch, "elements.EnterFrame",
			"frame element lookup failed", err).WithSelector(loc.String())
	}
	frame, err := handle.ContentFrame()
	if err != nil {
		return fwerr.Wrap(fwerr.FrameSwitch, "elements.EnterFrame",
			"element has no content frame", err).WithSelector(loc.String())
	}
	if frame == nil {
		return fwerr.New(fwerr.FrameSwitch, "elements.EnterFrame",
			"element is not a frame").WithSelector(loc.String())
	}
	e.frame = frame
	return nil
}

// ExitToRoot returns the lookup scope to the main document.
func (e *Elements) ExitToRoot() {
	e.log.Info("switching to main document")
	e.frame = nil
}

// ExitToParent moves the scope up one frame level. At the root it is a
// no-op.
func (e *Elements) ExitToParent() {
	e.log.Info("switching to parent frame")
	if e.frame == nil {
		return
	}
	parent := e.frame.ParentFrame()
	if parent == nil || parent == e.page.MainFrame() {
		e.frame = nil
		return
	}
	e.frame = parent
}
