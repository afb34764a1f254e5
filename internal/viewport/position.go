package viewport

// OffsetForPage returns the absolute scroll offset of the top of page: the
// leading document margin plus every page before it. Out-of-range pages
// are clamped.
func OffsetForPage(heights []float64, verticalDocumentMargin float64, page int) float64 {
	if page < 0 {
		page = 0
	}
	return verticalDocumentMargin + sumHeights(heights, page)
}

// PageForOffset is the inverse of OffsetForPage: the first page whose
// bottom edge lies at or beyond offset+1. The extra pixel keeps an offset
// sitting exactly on a boundary on the lower page. Offsets past the end
// map to the last page.
func PageForOffset(heights []float64, verticalDocumentMargin, offset float64) int {
	total := verticalDocumentMargin
	for i, h := range heights {
		total += h
		if total >= offset+1 {
			return i
		}
	}
	if len(heights) == 0 {
		return 0
	}
	return len(heights) - 1
}
