package viewport

// Options configures a Controller.
type Options struct {
	Settings Settings
	Mode     Mode
	Zoom     Zoom
	// AnnotationValid decides whether ShowAnnotation may act on an
	// annotation. Defaults to ValidAnnotation.
	AnnotationValid func(Annotation) bool
	Metrics         *Metrics
}

// DefaultOptions starts in image mode at the largest zoom stop.
func DefaultOptions() Options {
	return Options{
		Settings: DefaultSettings(),
		Mode:     ModeImage,
		Zoom:     ZoomOptions[len(ZoomOptions)-1],
	}
}

// Controller owns the viewport state of one viewing session: active mode,
// zoom, width, scroll offset and the remembered page. Nothing else may
// write that state once the controller exists.
type Controller struct {
	settings Settings
	store    *AspectStore
	surface  Surface
	layout   Layout
	valid    func(Annotation) bool
	metrics  *Metrics

	mode       Mode
	zoom       Zoom
	width      float64
	top        float64
	bodyHeight float64

	rememberPage *int
	// blockScrollEvent marks the next native scroll event as our own.
	blockScrollEvent bool

	cache derived
}

type derivedKey struct {
	version    uint64
	mode       Mode
	width      float64
	pageMargin float64
	fallback   float64
}

// derived memoizes the aspect and height derivations. It is rebuilt on
// read whenever any input in the key has changed.
type derived struct {
	key      derivedKey
	ok       bool
	computed []ComputedAspect
	heights  []float64
}

// NewController binds a store, a surface and the surrounding layout state.
func NewController(store *AspectStore, surface Surface, layout Layout, opts Options) *Controller {
	if opts.Settings == (Settings{}) {
		opts.Settings = DefaultSettings()
	}
	if opts.Mode == "" {
		opts.Mode = ModeImage
	}
	opts.Mode.mustBeValid()
	if opts.AnnotationValid == nil {
		opts.AnnotationValid = ValidAnnotation
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	c := &Controller{
		settings: opts.Settings,
		store:    store,
		surface:  surface,
		layout:   layout,
		valid:    opts.AnnotationValid,
		metrics:  opts.Metrics,
		mode:     opts.Mode,
		zoom:     opts.Zoom,
	}
	if p, ok := opts.Zoom.Percent(); ok {
		c.width = c.settings.BaseWidth * p
	} else {
		c.width = c.fitWidth(1)
	}
	return c
}

func (c *Controller) derive() *derived {
	key := derivedKey{
		version:    c.store.Version(),
		mode:       c.mode,
		width:      c.width,
		pageMargin: c.settings.VerticalPageMargin,
		fallback:   c.settings.DefaultAspect,
	}
	if c.cache.ok && c.cache.key == key {
		return &c.cache
	}
	computed := ComputeAspects(c.store.Aspects(c.mode), c.settings.DefaultAspect)
	c.cache = derived{
		key:      key,
		ok:       true,
		computed: computed,
		heights:  Heights(c.width, c.settings.VerticalPageMargin, computed),
	}
	c.metrics.Recomputes.Add(1)
	return &c.cache
}

func (c *Controller) Settings() Settings     { return c.settings }
func (c *Controller) Store() *AspectStore    { return c.store }
func (c *Controller) Metrics() *Metrics      { return c.metrics }
func (c *Controller) Mode() Mode             { return c.mode }
func (c *Controller) Zoom() Zoom             { return c.zoom }
func (c *Controller) ZoomLabel() string      { return c.zoom.String() }
func (c *Controller) Width() float64         { return c.width }
func (c *Controller) Top() float64           { return c.top }
func (c *Controller) BodyHeight() float64    { return c.bodyHeight }
func (c *Controller) Bottom() float64        { return c.top + c.bodyHeight }
func (c *Controller) PageCount() int         { return c.store.PageCount() }
func (c *Controller) FullPageWidth() float64 { return c.width + 2*c.PageRail() }

// ShowRail reports whether the container is wide enough for the full rail.
func (c *Controller) ShowRail() bool {
	return c.surface.ContainerWidth() >= c.settings.Breakpoint
}

// PageRail is the horizontal gutter on each side of a page.
func (c *Controller) PageRail() float64 {
	if c.ShowRail() {
		return c.settings.BasePageRail
	}
	return c.settings.SmallPageRail
}

// VerticalDocumentMargin grows while the annotation dialog is open so the
// dialog does not cover the first page.
func (c *Controller) VerticalDocumentMargin() float64 {
	m := c.settings.DocumentMargin
	if c.layout.DisplayAnnotate() {
		m += c.settings.AnnotationDocumentMargin
	}
	return m
}

// Geometry returns a snapshot of the current viewport dimensions.
func (c *Controller) Geometry() Geometry {
	return Geometry{
		Width:                  c.width,
		PageRail:               c.PageRail(),
		VerticalDocumentMargin: c.VerticalDocumentMargin(),
		VerticalPageMargin:     c.settings.VerticalPageMargin,
		Top:                    c.top,
		BodyHeight:             c.bodyHeight,
	}
}

// ComputedAspects returns the active mode's aspects with estimates filled
// in. The slice is shared and must not be modified.
func (c *Controller) ComputedAspects() []ComputedAspect { return c.derive().computed }

// Heights returns the pixel height of every page. The slice is shared and
// must not be modified.
func (c *Controller) Heights() []float64 { return c.derive().heights }

// AverageAspect is the estimate used for pages that are not measured yet.
func (c *Controller) AverageAspect() float64 {
	return AverageAspect(c.store.Aspects(c.mode), c.settings.DefaultAspect)
}

func (c *Controller) OverallHeight() float64 {
	return OverallHeight(c.Heights(), c.VerticalDocumentMargin())
}

func (c *Controller) CurrentPageNumber() int {
	return CurrentPageNumber(c.Heights(), c.top, c.settings.VerticalPageMargin, c.VerticalDocumentMargin())
}

func (c *Controller) VisiblePageNumber() int {
	return VisiblePageNumber(c.Heights(), c.top, c.settings.VerticalPageMargin,
		c.VerticalDocumentMargin(), c.settings.VisibleOffset, c.rememberPage)
}

// Position is the page containing the current scroll offset, rounding to
// the page before when top sits inside a page.
func (c *Controller) Position() int {
	return PageForOffset(c.Heights(), c.VerticalDocumentMargin(), c.top)
}

// OffsetForPage is the absolute offset of the top of page.
func (c *Controller) OffsetForPage(page int) float64 {
	return OffsetForPage(c.Heights(), c.VerticalDocumentMargin(), page)
}

func (c *Controller) ElementsToShow() []Element {
	return VisibleElements(c.Heights(), c.VerticalDocumentMargin(), c.top, c.Bottom())
}

func (c *Controller) PagesAboveFold() []int {
	return PagesAboveFold(c.ElementsToShow(), c.top)
}

func (c *Controller) AspectRuns() []Run {
	return AspectRuns(c.ComputedAspects())
}

// RememberedPage returns the page frozen by an open sidebar, if any.
func (c *Controller) RememberedPage() (int, bool) {
	if c.rememberPage == nil {
		return 0, false
	}
	return *c.rememberPage, true
}

func (c *Controller) setRemembered(page *int) {
	if page == nil {
		c.rememberPage = nil
		return
	}
	p := *page
	c.rememberPage = &p
}
