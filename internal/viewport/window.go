package viewport

// ElementKind distinguishes rendered pages from filler space.
type ElementKind int

const (
	ElementSpace ElementKind = iota
	ElementPage
)

func (k ElementKind) String() string {
	if k == ElementPage {
		return "page"
	}
	return "space"
}

// Element is one chunk of the virtualized list. Pages carry their number
// and absolute top offset; spaces only a height.
type Element struct {
	Kind   ElementKind
	Number int
	Top    float64
	Height float64
}

// VisibleElements walks the pages once and returns the chunks needed to
// render the window [top, bottom]: a leading space up to the first visible
// page, every page intersecting the window, and a trailing space down to
// the end of the document. The chunk heights always add up to the overall
// document height.
func VisibleElements(heights []float64, verticalDocumentMargin, top, bottom float64) []Element {
	if len(heights) == 0 {
		return nil
	}

	total := verticalDocumentMargin
	covered := 0.0
	firstSeen := false
	var chunks []Element

	for i, h := range heights {
		if !firstSeen && total+h > top {
			chunks = append(chunks, Element{Kind: ElementSpace, Height: total})
			covered = total
			firstSeen = true
		}
		if total+h > top && total <= bottom {
			chunks = append(chunks, Element{Kind: ElementPage, Number: i, Top: total, Height: h})
			covered = total + h
		}
		total += h
	}

	// bottom document margin
	total += verticalDocumentMargin

	if gap := total - covered; gap != 0 {
		chunks = append(chunks, Element{Kind: ElementSpace, Height: gap})
	}
	return chunks
}

// CurrentPageNumber returns the first page whose top edge is at or below
// top. When the document is scrolled past its end the last page is returned.
func CurrentPageNumber(heights []float64, top, verticalPageMargin, verticalDocumentMargin float64) int {
	offset := verticalDocumentMargin + verticalPageMargin
	for i, h := range heights {
		if offset >= top {
			return i
		}
		offset += h
	}
	if len(heights) == 0 {
		return 0
	}
	return len(heights) - 1
}

// VisiblePageNumber is CurrentPageNumber biased by visibleOffset so that a
// page counts as reached slightly before its edge hits the viewport top.
// A remembered page wins unconditionally. Unlike CurrentPageNumber, an
// unmatched walk returns len(heights), one past the last index.
func VisiblePageNumber(heights []float64, top, verticalPageMargin, verticalDocumentMargin, visibleOffset float64, remembered *int) int {
	if remembered != nil {
		return *remembered
	}
	offset := verticalDocumentMargin + verticalPageMargin + visibleOffset
	for i, h := range heights {
		if offset >= top {
			return i
		}
		offset += h
	}
	return len(heights)
}

// PagesAboveFold returns the numbers of rendered pages whose top edge has
// already scrolled above top.
func PagesAboveFold(elements []Element, top float64) []int {
	var pages []int
	for _, e := range elements {
		if e.Kind == ElementPage && e.Top < top {
			pages = append(pages, e.Number)
		}
	}
	return pages
}
