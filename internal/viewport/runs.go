package viewport

// RunKind distinguishes page runs from note markers in AspectRuns.
type RunKind int

const (
	RunPages RunKind = iota
	RunNote
)

// Run is either a contiguous range of pages [Start, End) or a note that
// precedes Page.
type Run struct {
	Kind RunKind

	Start int
	End   int
	// Total and Count accumulate aspects so a run can be drawn as one block
	// of average height.
	Total float64
	Count int
	// SkipStartPageNumber is set on runs that directly follow a note; the
	// first page is labelled together with the note.
	SkipStartPageNumber bool

	Note *Note
	Page int
}

// AverageAspect returns the mean aspect of the pages in a page run.
func (r Run) AverageAspect() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.Total / float64(r.Count)
}

// AspectRuns groups consecutive pages into runs, starting a new run at
// every page that carries a note.
func AspectRuns(computed []ComputedAspect) []Run {
	var runs []Run
	current := Run{Kind: RunPages}

	closeRun := func(end int) {
		if end == current.Start {
			return
		}
		current.End = end
		runs = append(runs, current)
		current = Run{Kind: RunPages, Start: end}
	}

	for i, c := range computed {
		if c.Note != nil {
			closeRun(i)
			runs = append(runs, Run{Kind: RunNote, Note: c.Note, Page: i})
			current.SkipStartPageNumber = true
		}
		current.Total += c.Aspect
		current.Count++
	}
	closeRun(len(computed))
	return runs
}
