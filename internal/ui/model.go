package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/config"
	"docview/internal/document"
	"docview/internal/viewport"
)

// rows taken by the header and footer around the document body
const chromeRows = 3

var defaultFilterConfig = FilterConfig{
	MinCoverage: 0.6,
	MaxSpread:   40,
	MaxResults:  200,
}

type SearchState struct {
	searching   bool
	searchInput textinput.Model
	query       string
	filteredIdx []int // visible index -> annotations index
	cursor      int
}

type JumpState struct {
	active bool
	input  textinput.Model
}

type Model struct {
	ctx     context.Context
	cfg     config.Config
	doc     *document.Document
	ctrl    *viewport.Controller
	surface *termSurface
	layout  *layoutState

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool

	width, height int
	statusMsg     string

	// measurements that have not reached the aspect store yet
	pending   []document.Measurement
	measuring bool

	annotations []viewport.Annotation
	search      SearchState
	jump        JumpState
	filterCfg   FilterConfig
}

// New builds the viewer for doc. The controller is created here and lives
// as long as the model.
func New(cfg config.Config, doc *document.Document) Model {
	layout := &layoutState{
		sidebarCols: cfg.Viewer.SidebarWidth,
		pxCol:       cfg.Terminal.PixelsPerColumn,
		shown:       cfg.Viewer.ShowSidebar,
	}
	surface := newTermSurface(layout, cfg.Terminal.PixelsPerRow, cfg.Terminal.PixelsPerColumn)

	opts := cfg.Options()
	opts.AnnotationValid = doc.AnnotationValid()
	ctrl := viewport.NewController(doc.NewStore(), surface, layout, opts)
	surface.ctrl = ctrl

	m := Model{
		ctx:         context.Background(),
		cfg:         cfg,
		doc:         doc,
		ctrl:        ctrl,
		surface:     surface,
		layout:      layout,
		keys:        defaultKeyMap(),
		help:        help.New(),
		pending:     doc.PendingMeasurements(viewport.ModeText),
		annotations: doc.ViewportAnnotations(),
		filterCfg:   defaultFilterConfig,
	}
	m.measuring = len(m.pending) > 0

	si := textinput.New()
	si.Placeholder = "Fuzzy search annotations…"
	si.CharLimit = 120
	si.Width = 24
	m.search.searchInput = si
	m.applySearch()

	ji := textinput.New()
	ji.Placeholder = "page"
	ji.CharLimit = 8
	ji.Width = 8
	m.jump.input = ji

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = subtleStyle
	m.spinner = sp

	return m
}

func (m Model) Init() tea.Cmd {
	if !m.measuring {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.measureCmd())
}

// Controller exposes the viewport controller, mainly for tests and embedding.
func (m Model) Controller() *viewport.Controller { return m.ctrl }
