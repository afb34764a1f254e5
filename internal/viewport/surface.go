package viewport

import "context"

// Surface is the scrollable element the pages are rendered into.
type Surface interface {
	// Settle blocks until layout derived from the latest state change has
	// been applied to the rendered output.
	Settle(ctx context.Context) error
	// ScrollTop is the native scroll position.
	ScrollTop() float64
	// SetScrollTop scrolls natively. The resulting scroll event must be
	// routed back through Controller.OnScroll.
	SetScrollTop(pos float64)
	// ContainerWidth is the width available to the document, in pixels.
	ContainerWidth() float64
	// AnnotationOffset returns the absolute offset of a rendered annotation.
	AnnotationOffset(a Annotation) (float64, bool)
	// ClearSelection drops any text selection.
	ClearSelection()
}

// Layout is the surrounding UI state the viewport reads and writes.
type Layout interface {
	DisplayAnnotate() bool
	SidebarWidth() float64
	SidebarShown() bool
	SetSidebarShown(show bool)
	DisplayAnnotation(a Annotation)
}
