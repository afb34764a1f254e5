package viewport

import "context"

type fakeLayout struct {
	annotate     bool
	sidebarWidth float64
	shown        bool
	displayed    []Annotation
}

func (l *fakeLayout) DisplayAnnotate() bool          { return l.annotate }
func (l *fakeLayout) SidebarWidth() float64          { return l.sidebarWidth }
func (l *fakeLayout) SidebarShown() bool             { return l.shown }
func (l *fakeLayout) SetSidebarShown(show bool)      { l.shown = show }
func (l *fakeLayout) DisplayAnnotation(a Annotation) { l.displayed = append(l.displayed, a) }

// fakeSurface narrows its container while the sidebar is open, like a
// browser flex layout would.
type fakeSurface struct {
	layout      *fakeLayout
	container   float64
	scrollTop   float64
	settles     int
	events      []float64
	cleared     int
	annotations map[string]float64
}

func (s *fakeSurface) Settle(ctx context.Context) error {
	s.settles++
	return ctx.Err()
}

func (s *fakeSurface) ScrollTop() float64 { return s.scrollTop }

func (s *fakeSurface) SetScrollTop(pos float64) {
	s.scrollTop = pos
	s.events = append(s.events, pos)
}

func (s *fakeSurface) ContainerWidth() float64 {
	if s.layout != nil && s.layout.shown {
		return s.container - s.layout.sidebarWidth
	}
	return s.container
}

func (s *fakeSurface) AnnotationOffset(a Annotation) (float64, bool) {
	off, ok := s.annotations[a.ID]
	return off, ok
}

func (s *fakeSurface) ClearSelection() { s.cleared++ }

func known(aspects ...float64) []PageAspect {
	out := make([]PageAspect, len(aspects))
	for i, a := range aspects {
		out[i] = PageAspect{Aspect: a, Known: true}
	}
	return out
}

func storeWith(image []float64, text []float64) *AspectStore {
	s := NewAspectStore(len(image))
	for i, a := range image {
		s.Set(ModeImage, i, a)
	}
	for i, a := range text {
		s.Set(ModeText, i, a)
	}
	return s
}

type harness struct {
	ctrl    *Controller
	surface *fakeSurface
	layout  *fakeLayout
}

func newHarness(store *AspectStore, zoom Zoom) harness {
	layout := &fakeLayout{sidebarWidth: 300}
	surface := &fakeSurface{layout: layout, container: 1000, annotations: map[string]float64{}}
	opts := DefaultOptions()
	opts.Zoom = zoom
	ctrl := NewController(store, surface, layout, opts)
	ctrl.SetBodyHeight(300)
	return harness{ctrl: ctrl, surface: surface, layout: layout}
}

func uniform(n int, aspect float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = aspect
	}
	return out
}
