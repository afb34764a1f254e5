package viewport

// Region is an annotation's rectangle in page-relative coordinates (0..1).
type Region struct {
	X1, Y1, X2, Y2 float64
}

// Valid reports whether the rectangle is non-empty and inside the page.
func (r Region) Valid() bool {
	return r.X1 >= 0 && r.Y1 >= 0 && r.X2 <= 1 && r.Y2 <= 1 &&
		r.X1 < r.X2 && r.Y1 < r.Y2
}

// Annotation is a note anchored to a region of a page.
type Annotation struct {
	ID      string
	Page    int
	Title   string
	Content string
	Region  *Region
}

// ValidAnnotation is the default annotation predicate: the annotation must
// be identified and reference a well-formed region.
func ValidAnnotation(a Annotation) bool {
	return a.ID != "" && a.Page >= 0 && a.Region != nil && a.Region.Valid()
}
