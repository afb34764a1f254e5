package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jump.active = false
		m.jump.input.Blur()
		return m, nil
	case "enter":
		m.jump.active = false
		m.jump.input.Blur()
		raw := strings.TrimSpace(m.jump.input.Value())
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > m.ctrl.PageCount() {
			m.statusMsg = fmt.Sprintf("No page %q (1-%d)", raw, m.ctrl.PageCount())
			return m, nil
		}
		if err := m.ctrl.RestorePosition(m.ctx, n-1, true); err != nil {
			m.fail("jump", err)
		}
		return m, m.scrollEventsCmd()
	}
	var cmd tea.Cmd
	m.jump.input, cmd = m.jump.input.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.searching = false
		m.search.searchInput.Blur()
		m.search.searchInput.SetValue("")
		m.applySearch()
		return m, nil
	case "enter":
		m.search.searching = false
		m.search.searchInput.Blur()
		if err := m.openSelected(); err != nil {
			m.fail("annotation", err)
		}
		return m, m.scrollEventsCmd()
	case "up", "ctrl+p":
		if m.search.cursor > 0 {
			m.search.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.search.cursor < len(m.search.filteredIdx)-1 {
			m.search.cursor++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search.searchInput, cmd = m.search.searchInput.Update(msg)
	if q := m.search.searchInput.Value(); q != m.search.query {
		m.applySearch()
	}
	return m, cmd
}

// applySearch refreshes the annotation list from the search input.
func (m *Model) applySearch() {
	q := strings.ToLower(strings.TrimSpace(m.search.searchInput.Value()))
	m.search.query = m.search.searchInput.Value()
	m.search.filteredIdx = filterAnnotations(q, m.annotations, m.filterCfg)
	if m.search.cursor >= len(m.search.filteredIdx) {
		m.search.cursor = max(len(m.search.filteredIdx)-1, 0)
	}
}

// openSelected shows the annotation under the list cursor.
func (m *Model) openSelected() error {
	if len(m.search.filteredIdx) == 0 {
		m.statusMsg = "No annotation selected"
		return nil
	}
	a := m.annotations[m.search.filteredIdx[m.search.cursor]]
	m.statusMsg = fmt.Sprintf("%s (page %d)", a.Title, a.Page+1)
	return m.ctrl.ShowAnnotation(m.ctx, a, true)
}

// stepAnnotation moves the list cursor by dir, wrapping, and shows the
// annotation it lands on.
func (m *Model) stepAnnotation(dir int) error {
	n := len(m.search.filteredIdx)
	if n == 0 {
		m.statusMsg = "No annotations"
		return nil
	}
	if m.layout.displayed != nil {
		m.search.cursor = ((m.search.cursor+dir)%n + n) % n
	}
	return m.openSelected()
}
