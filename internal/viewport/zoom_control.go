package viewport

import (
	"context"

	"docview/internal/infra/logx"
)

func (c *Controller) fitWidth(multiplier float64) float64 {
	w := (c.surface.ContainerWidth() - 2*c.PageRail()) * multiplier
	if w < 0 {
		return 0
	}
	return w
}

// ZoomFit sizes pages to the container and scrolls back to the page that
// was visible.
func (c *Controller) ZoomFit(ctx context.Context, closeSidebarIfNeeded bool, multiplier float64) error {
	page := c.VisiblePageNumber()
	c.zoom = ZoomFit
	c.width = c.fitWidth(multiplier)
	logx.Debugw("zoom fit", "width", c.width, "page", page)
	return c.RestorePosition(ctx, page-1, closeSidebarIfNeeded)
}

// ZoomPercent sets the width to percent of the base width. The zoom label
// snaps to the nearest stop but the width does not, so pinch zoom can land
// between stops.
func (c *Controller) ZoomPercent(ctx context.Context, percent float64) error {
	page := c.VisiblePageNumber()
	c.zoom = ClosestZoom(percent)
	c.width = c.settings.BaseWidth * percent
	logx.Debugw("zoom percent", "percent", percent, "label", c.zoom, "page", page)
	return c.RestorePosition(ctx, page-1, true)
}

// ZoomIn steps to the next stop wider than the current width. At the
// largest stop it does nothing.
func (c *Controller) ZoomIn(ctx context.Context) error {
	p, ok := nextZoomIn(c.width, c.settings.BaseWidth)
	if !ok {
		return nil
	}
	return c.ZoomPercent(ctx, p)
}

// ZoomOut steps to the next stop narrower than the current width. From
// the smallest stop it wraps around to the largest.
func (c *Controller) ZoomOut(ctx context.Context) error {
	return c.ZoomPercent(ctx, nextZoomOut(c.width, c.settings.BaseWidth))
}

// SetZoom applies a zoom stop chosen from a menu.
func (c *Controller) SetZoom(ctx context.Context, z Zoom) error {
	if z == ZoomFit {
		return c.ZoomFit(ctx, true, 1)
	}
	p, ok := z.Percent()
	if !ok {
		return nil
	}
	return c.ZoomPercent(ctx, p)
}
