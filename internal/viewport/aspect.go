package viewport

import "math"

// Note marks a page that carries an attached note. Notes start a new page
// run when rendering.
type Note struct {
	ID    string
	Title string
}

// PageAspect is the height/width ratio of one page. Known is false until
// the page has been measured.
type PageAspect struct {
	Aspect float64
	Known  bool
	Note   *Note
}

// AspectStore holds page aspects for every display mode. Both sequences
// always have one entry per document page.
type AspectStore struct {
	pages   map[Mode][]PageAspect
	version uint64
}

// NewAspectStore creates a store for pageCount pages with all aspects unknown.
func NewAspectStore(pageCount int) *AspectStore {
	if pageCount < 0 {
		pageCount = 0
	}
	s := &AspectStore{pages: make(map[Mode][]PageAspect, len(Modes))}
	for _, m := range Modes {
		s.pages[m] = make([]PageAspect, pageCount)
	}
	return s
}

// PageCount returns the number of pages tracked.
func (s *AspectStore) PageCount() int { return len(s.pages[ModeImage]) }

// Version changes whenever any aspect or note is modified.
func (s *AspectStore) Version() uint64 { return s.version }

// Aspects returns the aspects for mode. The slice must not be modified.
func (s *AspectStore) Aspects(mode Mode) []PageAspect {
	mode.mustBeValid()
	return s.pages[mode]
}

// Aspect returns the aspect recorded for one page.
func (s *AspectStore) Aspect(mode Mode, page int) (float64, bool) {
	aspects := s.Aspects(mode)
	if page < 0 || page >= len(aspects) {
		return 0, false
	}
	return aspects[page].Aspect, aspects[page].Known
}

// Set records a measured aspect and reports whether anything changed.
// Values within a relative tolerance of the stored aspect are ignored, as
// are out-of-range pages and non-positive or non-finite aspects: a known
// aspect is never reverted to unknown.
func (s *AspectStore) Set(mode Mode, page int, aspect float64) bool {
	aspects := s.Aspects(mode)
	if page < 0 || page >= len(aspects) {
		return false
	}
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return false
	}
	existing := aspects[page]
	if existing.Known && withinPercent(existing.Aspect, aspect, aspectTolerance) {
		return false
	}
	aspects[page].Aspect = aspect
	aspects[page].Known = true
	s.version++
	return true
}

// SetNote attaches (or with nil, removes) a note marker on a page in every mode.
func (s *AspectStore) SetNote(page int, note *Note) {
	if page < 0 || page >= s.PageCount() {
		return
	}
	for _, m := range Modes {
		s.pages[m][page].Note = note
	}
	s.version++
}

// withinPercent reports whether b lies within pct (a fraction) of a.
func withinPercent(a, b, pct float64) bool {
	return math.Abs(a-b) <= math.Abs(a)*pct
}
