package viewport

import (
	"context"

	"docview/internal/infra/logx"
)

// ToggleSidebar flips the sidebar.
func (c *Controller) ToggleSidebar(ctx context.Context) error {
	return c.ShowSidebar(ctx, !c.layout.SidebarShown())
}

// ShowSidebar opens or closes the sidebar without appearing to navigate.
// Opening remembers the visible page so the reflow caused by the narrower
// container does not change the page indicator; closing scrolls back to
// that page. At Fit zoom the width is refitted to the new container.
func (c *Controller) ShowSidebar(ctx context.Context, show bool) error {
	if show {
		page := c.VisiblePageNumber()
		c.setRemembered(&page)
		logx.Debugw("sidebar open", "remember", page)
	}
	c.layout.SetSidebarShown(show)
	if err := c.surface.Settle(ctx); err != nil {
		return err
	}

	restore, shouldRestore := 0, false
	if !show && c.rememberPage != nil {
		restore, shouldRestore = *c.rememberPage-1, true
		c.rememberPage = nil
	}

	if c.zoom == ZoomFit {
		// refit, keeping the remembered page across the fit's own restore
		prev := c.rememberPage
		if err := c.ZoomFit(ctx, false, 1); err != nil {
			return err
		}
		c.setRemembered(prev)
	}

	if shouldRestore {
		logx.Debugw("sidebar closed", "restore", restore)
		return c.RestorePosition(ctx, restore, false)
	}
	return nil
}

// CloseSidebarIfFullWidth closes an open sidebar when it would leave no
// room for the page.
func (c *Controller) CloseSidebarIfFullWidth(ctx context.Context) error {
	if !c.layout.SidebarShown() {
		return nil
	}
	if c.width-c.layout.SidebarWidth() <= 0 {
		return c.ShowSidebar(ctx, false)
	}
	return nil
}

// ShowAnnotation displays an annotation and optionally scrolls it into
// view, a little below the viewport top. Invalid annotations are ignored:
// a stale reference must not break the viewer.
func (c *Controller) ShowAnnotation(ctx context.Context, a Annotation, scrollIntoView bool) error {
	if err := c.CloseSidebarIfFullWidth(ctx); err != nil {
		return err
	}
	if !c.valid(a) {
		logx.Warnw("ignoring invalid annotation", "id", a.ID, "page", a.Page)
		return nil
	}
	c.layout.DisplayAnnotation(a)
	if !scrollIntoView {
		return nil
	}

	if err := c.RestorePosition(ctx, a.Page, true); err != nil {
		return err
	}
	if err := c.surface.Settle(ctx); err != nil {
		return err
	}
	offset, ok := c.surface.AnnotationOffset(a)
	if !ok {
		return nil
	}
	_, err := c.ScrollTo(ctx, offset+c.settings.AnnotationOffset)
	return err
}
