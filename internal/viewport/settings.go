package viewport

// Layout defaults. A letter-size page is the fallback aspect until any
// page has been measured.
const (
	DefaultAspect              = 11 / 8.5
	DefaultVisibleOffset       = -60.0
	DefaultAnnotationOffset    = -30.0
	DefaultBaseWidth           = 500.0
	DefaultBreakpoint          = 600.0
	DefaultBasePageRail        = 69.0
	DefaultSmallPageRail       = 10.0
	DefaultVerticalPageMargin  = 6.0
	DefaultDocumentMargin      = 18.0
	DefaultAnnotationDocMargin = 60.0
	aspectTolerance            = 0.0001
)

// Settings holds the fixed layout constants of a viewing session.
type Settings struct {
	BaseWidth                float64
	Breakpoint               float64
	BasePageRail             float64
	SmallPageRail            float64
	VerticalPageMargin       float64
	DocumentMargin           float64
	AnnotationDocumentMargin float64
	DefaultAspect            float64

	// VisibleOffset biases the visible page computation so the next page
	// counts as visible before its top edge reaches the viewport top.
	VisibleOffset float64

	// AnnotationOffset is applied after an annotation is scrolled into view.
	AnnotationOffset float64
}

// DefaultSettings returns the stock layout constants.
func DefaultSettings() Settings {
	return Settings{
		BaseWidth:                DefaultBaseWidth,
		Breakpoint:               DefaultBreakpoint,
		BasePageRail:             DefaultBasePageRail,
		SmallPageRail:            DefaultSmallPageRail,
		VerticalPageMargin:       DefaultVerticalPageMargin,
		DocumentMargin:           DefaultDocumentMargin,
		AnnotationDocumentMargin: DefaultAnnotationDocMargin,
		DefaultAspect:            DefaultAspect,
		VisibleOffset:            DefaultVisibleOffset,
		AnnotationOffset:         DefaultAnnotationOffset,
	}
}

// Geometry is a point-in-time snapshot of the viewport dimensions.
type Geometry struct {
	Width                  float64
	PageRail               float64
	VerticalDocumentMargin float64
	VerticalPageMargin     float64
	Top                    float64
	BodyHeight             float64
}

// Bottom is the offset of the viewport's lower edge.
func (g Geometry) Bottom() float64 { return g.Top + g.BodyHeight }

// FullPageWidth is the page width including the rail on both sides.
func (g Geometry) FullPageWidth() float64 { return g.Width + 2*g.PageRail }
