package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/infra/logx"
	"docview/internal/viewport"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.jump.active:
			return m.handleJumpKey(msg)
		case m.search.searching:
			return m.handleSearchKey(msg)
		}
		return m.handleViewerKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := msg.Height - chromeRows
		if rows < 1 {
			rows = 1
		}
		m.surface.cols, m.surface.rows = msg.Width, rows
		if err := m.ctrl.Resize(m.ctx, m.surface.bodyHeight()); err != nil {
			m.fail("resize", err)
		}
		return m, m.scrollEventsCmd()

	case scrollEventsMsg:
		m.flushEvents()
		return m, nil

	case measureTickMsg:
		return m.handleMeasureTick()

	case spinner.TickMsg:
		if !m.measuring {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) fail(op string, err error) {
	logx.Errorw("viewer command failed", "op", op, "err", err)
	m.statusMsg = op + ": " + err.Error()
}

// flushEvents hands an undelivered programmatic scroll event to the
// controller so a following user scroll is not mistaken for it.
func (m *Model) flushEvents() {
	if pos, ok := m.surface.takeEvent(); ok {
		m.ctrl.OnScroll(pos)
	}
}

// userScroll is a native scroll by whole rows.
func (m *Model) userScroll(rows int) {
	m.flushEvents()
	m.ctrl.OnScroll(m.surface.wheel(rows))
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.userScroll(3)
	case tea.MouseButtonWheelUp:
		m.userScroll(-3)
	}
	return m, nil
}

func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	op := ""
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Down):
		m.userScroll(1)
	case key.Matches(msg, k.Up):
		m.userScroll(-1)
	case key.Matches(msg, k.PageDown):
		m.userScroll(max(m.surface.rows-1, 1))
	case key.Matches(msg, k.PageUp):
		m.userScroll(-max(m.surface.rows-1, 1))
	case key.Matches(msg, k.Top):
		op = "scroll"
		_, err = m.ctrl.ScrollTo(m.ctx, 0)
	case key.Matches(msg, k.Bottom):
		op = "scroll"
		_, err = m.ctrl.ScrollTo(m.ctx, m.ctrl.OverallHeight())
	case key.Matches(msg, k.Jump):
		m.jump.active = true
		m.jump.input.SetValue("")
		m.jump.input.Focus()
		return m, nil
	case key.Matches(msg, k.ZoomIn):
		op, err = "zoom", m.ctrl.ZoomIn(m.ctx)
	case key.Matches(msg, k.ZoomOut):
		op, err = "zoom", m.ctrl.ZoomOut(m.ctx)
	case key.Matches(msg, k.Fit):
		op, err = "zoom", m.ctrl.ZoomFit(m.ctx, true, 1)
	case key.Matches(msg, k.Actual):
		op, err = "zoom", m.ctrl.SetZoom(m.ctx, viewport.Zoom100)
	case key.Matches(msg, k.Mode):
		op, err = "mode", m.ctrl.ChangeMode(m.ctx, m.ctrl.Mode().Other())
	case key.Matches(msg, k.Sidebar):
		op, err = "sidebar", m.ctrl.ToggleSidebar(m.ctx)
	case key.Matches(msg, k.Search):
		m.search.searching = true
		m.search.searchInput.Focus()
		if !m.layout.shown {
			op, err = "sidebar", m.ctrl.ShowSidebar(m.ctx, true)
		}
	case key.Matches(msg, k.Next):
		op, err = "annotation", m.stepAnnotation(1)
	case key.Matches(msg, k.Prev):
		op, err = "annotation", m.stepAnnotation(-1)
	case key.Matches(msg, k.Open):
		op, err = "annotation", m.openSelected()
	case key.Matches(msg, k.Close):
		m.layout.hideAnnotation()
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	if err != nil {
		m.fail(op, err)
	}
	return m, m.scrollEventsCmd()
}
