package ui

import (
	"context"
	"math"

	"docview/internal/viewport"
)

// termSurface is the terminal rendition of the scroll container. Pixels
// map to cells at a fixed scale; the View is rebuilt from controller state
// on every frame, so layout is settled as soon as Update returns.
type termSurface struct {
	layout *layoutState
	ctrl   *viewport.Controller

	cols, rows   int // terminal cells available to the body (before sidebar)
	pxRow, pxCol float64

	scrollTop    float64
	// eventPending marks a native scroll event not yet delivered to the
	// controller. Events coalesce: only the latest position is reported.
	eventPending bool
	selection    string
}

func newTermSurface(layout *layoutState, pxRow, pxCol float64) *termSurface {
	return &termSurface{layout: layout, pxRow: pxRow, pxCol: pxCol}
}

func (s *termSurface) Settle(ctx context.Context) error { return ctx.Err() }

func (s *termSurface) ScrollTop() float64 { return s.scrollTop }

func (s *termSurface) SetScrollTop(pos float64) {
	s.scrollTop = pos
	s.eventPending = true
}

// ContainerWidth excludes the open sidebar.
func (s *termSurface) ContainerWidth() float64 {
	return float64(s.containerCols()) * s.pxCol
}

func (s *termSurface) containerCols() int {
	cols := s.cols
	if s.layout.shown {
		cols -= s.layout.sidebarCols
	}
	if cols < 0 {
		return 0
	}
	return cols
}

// AnnotationOffset places the annotation's top edge inside its page's
// content box.
func (s *termSurface) AnnotationOffset(a viewport.Annotation) (float64, bool) {
	if s.ctrl == nil || a.Region == nil {
		return 0, false
	}
	heights := s.ctrl.Heights()
	if a.Page < 0 || a.Page >= len(heights) {
		return 0, false
	}
	margin := s.ctrl.Settings().VerticalPageMargin
	content := heights[a.Page] - 2*margin
	return s.ctrl.OffsetForPage(a.Page) + margin + a.Region.Y1*content, true
}

func (s *termSurface) ClearSelection() { s.selection = "" }

// bodyHeight is the visible height in pixels.
func (s *termSurface) bodyHeight() float64 { return float64(s.rows) * s.pxRow }

// wheel scrolls natively by whole rows, the way a terminal mouse wheel
// would, and returns the new native position.
func (s *termSurface) wheel(rows int) float64 {
	pos := s.scrollTop + float64(rows)*s.pxRow
	maxPos := 0.0
	if s.ctrl != nil {
		maxPos = math.Max(0, s.ctrl.OverallHeight()-s.bodyHeight())
	}
	s.scrollTop = math.Min(math.Max(pos, 0), maxPos)
	return s.scrollTop
}

// takeEvent returns the position of the pending native scroll event, if
// any, and clears it.
func (s *termSurface) takeEvent() (float64, bool) {
	if !s.eventPending {
		return 0, false
	}
	s.eventPending = false
	return s.scrollTop, true
}

// layoutState is the UI chrome around the document.
type layoutState struct {
	sidebarCols int
	pxCol       float64
	shown       bool
	displayed   *viewport.Annotation
}

func (l *layoutState) DisplayAnnotate() bool     { return l.displayed != nil }
func (l *layoutState) SidebarWidth() float64     { return float64(l.sidebarCols) * l.pxCol }
func (l *layoutState) SidebarShown() bool        { return l.shown }
func (l *layoutState) SetSidebarShown(show bool) { l.shown = show }

func (l *layoutState) DisplayAnnotation(a viewport.Annotation) {
	l.displayed = &a
}

func (l *layoutState) hideAnnotation() { l.displayed = nil }
