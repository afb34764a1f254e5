package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docview/internal/viewport"
)

// ---------- View ----------
func (m Model) View() string {
	if m.width == 0 || m.surface.rows == 0 {
		return "Loading…"
	}
	body := strings.Join(m.renderBody(), "\n")
	if m.layout.shown {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderSidebar())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderStatus())
}

// pageLabel is the page indicator, clamped to the document.
func (m Model) pageLabel() string {
	n := m.ctrl.PageCount()
	p := m.ctrl.VisiblePageNumber()
	if p < 1 {
		p = 1
	}
	if p > n {
		p = n
	}
	return fmt.Sprintf("Page %d of %d", p, n)
}

func (m Model) renderHeader() string {
	parts := []string{
		titleStyle.Render(m.doc.Title),
		m.pageLabel(),
		m.ctrl.ZoomLabel(),
		string(m.ctrl.Mode()),
	}
	if m.measuring {
		parts = append(parts, m.spinner.View()+" measuring")
	}
	line := strings.Join(parts, dividerStyle.Render(" │ "))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m Model) renderStatus() string {
	switch {
	case m.jump.active:
		return "Go to page: " + m.jump.input.View()
	case m.search.searching:
		return "Find: " + m.search.searchInput.View()
	}
	status := m.statusMsg
	if status == "" {
		s := m.ctrl.Metrics().Snapshot()
		status = fmt.Sprintf("scrolls %d user / %d programmatic (%d suppressed)",
			s.UserScrollEvents, s.ProgrammaticScrolls, s.SuppressedEvents)
	}
	return renderFooter(m.width, status, m.help.View(m.keys))
}

// renderBody draws the rows of the visible window. Each row samples the
// document at its vertical midpoint.
func (m Model) renderBody() []string {
	cols := m.surface.containerCols()
	rows := make([]string, m.surface.rows)
	elements := m.ctrl.ElementsToShow()
	pm := m.ctrl.Settings().VerticalPageMargin

	pageCols := int(math.Round(m.ctrl.Width() / m.surface.pxCol))
	pageCols = max(min(pageCols, cols), 2)
	pad := max((cols-pageCols)/2, 0)

	for r := range rows {
		y := m.ctrl.Top() + (float64(r)+0.5)*m.surface.pxRow
		el, ok := pageAt(elements, y)
		if !ok {
			rows[r] = strings.Repeat(" ", cols)
			continue
		}
		local := y - el.Top
		if local < pm || local >= el.Height-pm {
			rows[r] = strings.Repeat(" ", cols)
			continue
		}
		line := m.pageRow(el, local, pageCols)
		rows[r] = strings.Repeat(" ", pad) + line + strings.Repeat(" ", max(cols-pad-pageCols, 0))
	}

	if a := m.layout.displayed; a != nil {
		box := strings.Split(annotationBoxStyle.Width(max(cols-4, 10)).Render(a.Title+"\n"+a.Content), "\n")
		start := max(len(rows)-len(box), 0)
		for i := start; i < len(rows); i++ {
			rows[i] = box[i-start]
		}
	}
	return rows
}

func pageAt(elements []viewport.Element, y float64) (viewport.Element, bool) {
	for _, el := range elements {
		if el.Kind == viewport.ElementPage && y >= el.Top && y < el.Top+el.Height {
			return el, true
		}
	}
	return viewport.Element{}, false
}

// pageRow draws one row of a page's content box. local is the offset of
// the row inside the page element.
func (m Model) pageRow(el viewport.Element, local float64, width int) string {
	pm := m.ctrl.Settings().VerticalPageMargin
	content := el.Height - 2*pm
	first := local-m.surface.pxRow < pm
	last := local+m.surface.pxRow >= el.Height-pm
	inner := width - 2

	switch {
	case first:
		label := fmt.Sprintf(" %d ", el.Number+1)
		if m.ctrl.ComputedAspects()[el.Number].Note != nil {
			label = " " + symbolNote + label
		}
		fill := max(inner-lipgloss.Width(label), 0)
		return pageEdgeStyle.Render("┌") + pageLabelStyle.Render(label) +
			pageEdgeStyle.Render(strings.Repeat("─", fill)+"┐")
	case last:
		return pageEdgeStyle.Render("└" + strings.Repeat("─", inner) + "┘")
	}

	fillRune := "▒"
	if m.ctrl.Mode() == viewport.ModeText {
		fillRune = "≡"
	}
	cells := make([]string, inner)
	for i := range cells {
		cells[i] = pageFillStyle.Render(fillRune)
	}
	frac := (local - pm) / content
	for _, a := range m.annotations {
		if a.Page != el.Number || a.Region == nil || frac < a.Region.Y1 || frac > a.Region.Y2 {
			continue
		}
		x := int(a.Region.X1 * float64(inner))
		if x >= 0 && x < inner {
			cells[x] = symbolAnnotation
		}
	}
	return pageEdgeStyle.Render("│") + strings.Join(cells, "") + pageEdgeStyle.Render("│")
}

// renderSidebar shows the outline of notes and page runs and the
// annotation list.
func (m Model) renderSidebar() string {
	// one column each for the border and the padding
	w := max(m.layout.sidebarCols-2, 4)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Outline") + "\n")
	for _, run := range m.ctrl.AspectRuns() {
		switch run.Kind {
		case viewport.RunNote:
			b.WriteString(symbolNote + " " + truncate(run.Note.Title, w-8) + subtleStyle.Render(fmt.Sprintf(" p.%d", run.Page+1)) + "\n")
		default:
			start := run.Start + 1
			if run.SkipStartPageNumber {
				start++
			}
			switch {
			case start > run.End:
				continue
			case start == run.End:
				b.WriteString(subtleStyle.Render(fmt.Sprintf("  page %d", start)) + "\n")
			default:
				b.WriteString(subtleStyle.Render(fmt.Sprintf("  pages %d-%d", start, run.End)) + "\n")
			}
		}
	}

	b.WriteString("\n" + titleStyle.Render("Annotations") + "\n")
	if len(m.search.filteredIdx) == 0 {
		b.WriteString(subtleStyle.Render("  none") + "\n")
	}
	for j, i := range m.search.filteredIdx {
		a := m.annotations[i]
		line := fmt.Sprintf("%s %s", symbolAnnotation, truncate(a.Title, w-8)) + subtleStyle.Render(fmt.Sprintf(" p.%d", a.Page+1))
		if j == m.search.cursor {
			line = okStyle.Render("›") + line
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
	}
	return sidebarStyle.Width(w + 1).Height(m.surface.rows).MaxHeight(m.surface.rows).Render(strings.TrimSuffix(b.String(), "\n"))
}

func truncate(s string, n int) string {
	if n < 1 {
		n = 1
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
