package ui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/config"
	"docview/internal/document"
)

// testDoc has n square pages in image mode and half-height text pages.
func testDoc(n int) *document.Document {
	text := make([]float64, n)
	for i := range text {
		text[i] = 0.5
	}
	return testDocWithText(text)
}

// testDocWithText has one square image page per text aspect.
func testDocWithText(text []float64) *document.Document {
	doc := &document.Document{Title: "Report"}
	for _, txt := range text {
		img, txt := 1.0, txt
		doc.Pages = append(doc.Pages, document.Page{Aspect: &img, TextAspect: &txt})
	}
	doc.Annotations = []document.Annotation{
		{ID: "a1", Page: 0, Title: "Intro", Content: "opening remarks", Region: &document.Region{X1: 0.1, Y1: 0.5, X2: 0.4, Y2: 0.6}},
		{ID: "a2", Page: 5, Title: "Budget 10", Region: &document.Region{X1: 0.2, Y1: 0.1, X2: 0.5, Y2: 0.2}},
		{ID: "a3", Page: 4, Title: "Budget 2", Region: &document.Region{X1: 0.2, Y1: 0.3, X2: 0.5, Y2: 0.4}},
	}
	return doc
}

// newTestModel builds a sized model at 100% zoom: 100x23 cells give a
// 800px wide container and a 480px body.
func newTestModel(t *testing.T, mutate func(*config.Config)) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Viewer.Zoom = "100%"
	if mutate != nil {
		mutate(&cfg)
	}
	m := New(cfg, testDoc(10))
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 23})
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressKeys(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = send(m, keyMsg(k))
	}
	return m
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
