package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/infra/logx"
	"docview/internal/viewport"
)

// applyMeasurements feeds up to one batch of pending text aspects to the
// controller. Each offset is compensated before the next aspect is set,
// since SetAspect anchors on the page at the current top.
func (m *Model) applyMeasurements() {
	n := m.cfg.Terminal.MeasureBatch
	if n <= 0 || n > len(m.pending) {
		n = len(m.pending)
	}
	batch := m.pending[:n]
	m.pending = m.pending[n:]

	var delta float64
	for _, ms := range batch {
		off := m.ctrl.SetAspect(viewport.ModeText, ms.Page, ms.Aspect)
		if off == 0 {
			continue
		}
		delta += off
		if _, err := m.ctrl.ScrollBy(m.ctx, off); err != nil {
			m.fail("scroll", err)
			break
		}
	}
	logx.Debugw("measurements applied", "count", len(batch), "offset", delta, "left", len(m.pending))
}

func (m Model) handleMeasureTick() (Model, tea.Cmd) {
	if !m.measuring {
		return m, nil
	}
	m.applyMeasurements()
	if len(m.pending) > 0 {
		return m, tea.Batch(m.measureCmd(), m.scrollEventsCmd())
	}
	m.measuring = false
	m.statusMsg = fmt.Sprintf("Measured %d pages", m.doc.PageCount())
	return m, m.scrollEventsCmd()
}
