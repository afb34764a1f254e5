package viewport

import (
	"context"

	"docview/internal/infra/logx"
)

// SetAspect records a measured aspect for one page and returns how far the
// content above the current page moved as a result. Callers add the offset
// to the scroll position so the visible content does not jump. Updates to
// the inactive mode never move the visible content.
func (c *Controller) SetAspect(mode Mode, page int, aspect float64) float64 {
	mode.mustBeValid()
	if mode != c.mode {
		if c.store.Set(mode, page, aspect) {
			c.metrics.AspectUpdates.Add(1)
		} else {
			c.metrics.AspectSkips.Add(1)
		}
		return 0
	}

	current := c.CurrentPageNumber()
	before := sumHeights(c.Heights(), current)

	if !c.store.Set(mode, page, aspect) {
		c.metrics.AspectSkips.Add(1)
		if page < 0 || page >= c.store.PageCount() {
			logx.Warnw("aspect update dropped", "page", page, "pages", c.store.PageCount())
		}
		return 0
	}
	c.metrics.AspectUpdates.Add(1)

	after := sumHeights(c.Heights(), current)
	return after - before
}

// ScrollTo clamps pos into [0, overallHeight-bodyHeight], waits for the
// surface to settle and scrolls it. The native scroll event this causes is
// swallowed by OnScroll. It returns the clamped position.
func (c *Controller) ScrollTo(ctx context.Context, pos float64) (float64, error) {
	requested := pos
	maxPos := c.OverallHeight() - c.bodyHeight
	if pos > maxPos {
		pos = maxPos
	}
	if pos < 0 {
		pos = 0
	}
	if pos != requested {
		logx.Debugw("scroll clamped", "requested", requested, "pos", pos, "max", maxPos)
	}

	c.top = pos
	// Let the layout catch up before the native scroll is issued.
	if err := c.surface.Settle(ctx); err != nil {
		return pos, err
	}
	c.blockScrollEvent = true
	c.surface.SetScrollTop(pos)
	c.metrics.ProgrammaticScrolls.Add(1)
	return pos, nil
}

// ScrollBy scrolls relative to the native scroll position.
func (c *Controller) ScrollBy(ctx context.Context, delta float64) (float64, error) {
	return c.ScrollTo(ctx, c.surface.ScrollTop()+delta)
}

// OnScroll handles a native scroll event. Events caused by ScrollTo are
// consumed without touching state; anything else moves the logical top.
// It reports whether the event was treated as user scrolling.
func (c *Controller) OnScroll(pos float64) bool {
	if c.blockScrollEvent {
		c.blockScrollEvent = false
		c.metrics.SuppressedEvents.Add(1)
		return false
	}
	c.top = pos
	c.metrics.UserScrollEvents.Add(1)
	return true
}

// ScrollEventBlocked reports whether the next scroll event will be ignored.
func (c *Controller) ScrollEventBlocked() bool { return c.blockScrollEvent }

// SetBodyHeight records the viewport height.
func (c *Controller) SetBodyHeight(h float64) {
	if h < 0 {
		h = 0
	}
	c.bodyHeight = h
}

// Resize applies a new viewport height after the container changed size.
// At Fit zoom the width follows the container, keeping the visible page.
func (c *Controller) Resize(ctx context.Context, bodyHeight float64) error {
	c.SetBodyHeight(bodyHeight)
	if c.zoom != ZoomFit {
		return nil
	}
	prev := c.rememberPage
	err := c.ZoomFit(ctx, false, 1)
	c.setRemembered(prev)
	return err
}

// RestorePosition scrolls to the top of page. Any remembered page is
// dropped first so it cannot skew the result.
func (c *Controller) RestorePosition(ctx context.Context, page int, closeSidebarIfNeeded bool) error {
	if closeSidebarIfNeeded {
		if err := c.CloseSidebarIfFullWidth(ctx); err != nil {
			return err
		}
	}

	if c.rememberPage != nil {
		c.rememberPage = nil
		if err := c.surface.Settle(ctx); err != nil {
			return err
		}
	}

	_, err := c.ScrollTo(ctx, c.OffsetForPage(page))
	return err
}

// ChangeMode switches between image and text rendering while keeping the
// current page in place. Pages can have different aspects per mode, so the
// same page usually lands at a different offset.
func (c *Controller) ChangeMode(ctx context.Context, mode Mode) error {
	mode.mustBeValid()
	if mode == c.mode {
		return nil
	}
	if err := c.CloseSidebarIfFullWidth(ctx); err != nil {
		return err
	}

	page := c.CurrentPageNumber()
	logx.Debugw("change mode", "from", c.mode, "to", mode, "page", page)
	c.mode = mode

	// selection ranges refer to the old mode's content
	c.surface.ClearSelection()

	return c.RestorePosition(ctx, page, true)
}
