// Package document loads the page metadata a viewing session starts from:
// page aspects as far as they are known, page notes, annotations and the
// text-mode measurements that arrive after load.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"

	"docview/internal/viewport"
)

var (
	ErrNoPages   = errors.New("document has no pages")
	ErrPageRange = errors.New("page out of range")
)

// Page is one entry of the metadata file. Nil aspects are not measured yet.
type Page struct {
	Aspect     *float64 `json:"aspect"`
	TextAspect *float64 `json:"text_aspect"`
	Note       *Note    `json:"note,omitempty"`
}

type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Region struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type Annotation struct {
	ID      string  `json:"id"`
	Page    int     `json:"page"`
	Title   string  `json:"title"`
	Content string  `json:"content,omitempty"`
	Region  *Region `json:"region"`
}

// Document is the parsed metadata file.
type Document struct {
	Title       string       `json:"title"`
	Pages       []Page       `json:"pages"`
	Annotations []Annotation `json:"annotations"`
}

// Measurement is an aspect that becomes known after the document loaded.
type Measurement struct {
	Page   int
	Aspect float64
}

// Load reads and validates a metadata file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes metadata JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if len(doc.Pages) == 0 {
		return nil, ErrNoPages
	}
	for _, a := range doc.Annotations {
		if a.Page < 0 || a.Page >= len(doc.Pages) {
			return nil, fmt.Errorf("annotation %q on page %d: %w", a.ID, a.Page, ErrPageRange)
		}
	}
	return &doc, nil
}

// Synthetic builds a document of n pages for demos: every page has a
// known image aspect and a text aspect that still has to be measured.
func Synthetic(n int) *Document {
	doc := &Document{Title: fmt.Sprintf("Untitled (%d pages)", n)}
	for i := 0; i < n; i++ {
		img := viewport.DefaultAspect
		if i%7 == 3 {
			img = 8.5 / 11 // landscape insert
		}
		txt := 0.6 + float64(i%5)*0.15
		doc.Pages = append(doc.Pages, Page{Aspect: &img, TextAspect: &txt})
	}
	return doc
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.Pages) }

// NewStore seeds an aspect store: image aspects and notes come from the
// metadata, text aspects start unknown and arrive as measurements.
func (d *Document) NewStore() *viewport.AspectStore {
	s := viewport.NewAspectStore(len(d.Pages))
	for i, p := range d.Pages {
		if p.Aspect != nil {
			s.Set(viewport.ModeImage, i, *p.Aspect)
		}
		if p.Note != nil {
			s.SetNote(i, &viewport.Note{ID: p.Note.ID, Title: p.Note.Title})
		}
	}
	return s
}

// PendingMeasurements returns the aspects for mode that NewStore left
// unknown but the metadata can provide later, in page order.
func (d *Document) PendingMeasurements(mode viewport.Mode) []Measurement {
	var out []Measurement
	for i, p := range d.Pages {
		var v *float64
		switch mode {
		case viewport.ModeText:
			v = p.TextAspect
		case viewport.ModeImage:
			// image aspects are seeded by NewStore
		default:
			panic(fmt.Sprintf("document: %v: %q", viewport.ErrInvalidMode, string(mode)))
		}
		if v != nil {
			out = append(out, Measurement{Page: i, Aspect: *v})
		}
	}
	return out
}

// ViewportAnnotations converts annotations for the controller, ordered
// naturally by title so "Note 2" sorts before "Note 10".
func (d *Document) ViewportAnnotations() []viewport.Annotation {
	out := make([]viewport.Annotation, 0, len(d.Annotations))
	for _, a := range d.Annotations {
		va := viewport.Annotation{ID: a.ID, Page: a.Page, Title: a.Title, Content: a.Content}
		if a.Region != nil {
			va.Region = &viewport.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
		}
		out = append(out, va)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return natural.Less(out[i].Title, out[j].Title)
		}
		return out[i].Page < out[j].Page
	})
	return out
}

// AnnotationValid returns the predicate the controller uses: well-formed
// annotations that still point at a page of this document.
func (d *Document) AnnotationValid() func(viewport.Annotation) bool {
	n := len(d.Pages)
	return func(a viewport.Annotation) bool {
		return viewport.ValidAnnotation(a) && a.Page < n
	}
}
