package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// measureTickMsg asks the model to apply the next batch of measurements.
type measureTickMsg struct{}

// scrollEventsMsg tells Update that the surface fired a native scroll
// event, like a browser's scroll event after a programmatic scroll. The
// event itself stays on the surface until delivered, so a user scroll that
// gets there first delivers it in order.
type scrollEventsMsg struct{}

func (m Model) measureCmd() tea.Cmd {
	return tea.Tick(m.cfg.MeasureInterval(), func(time.Time) tea.Msg { return measureTickMsg{} })
}

// scrollEventsCmd delivers whatever the surface emitted during this update.
func (m Model) scrollEventsCmd() tea.Cmd {
	if !m.surface.eventPending {
		return nil
	}
	return func() tea.Msg { return scrollEventsMsg{} }
}
