package ui

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"lazypager/internal/config"
	"lazypager/internal/domain"
	"lazypager/internal/eventbus"
	"lazypager/internal/pages"
	"lazypager/internal/paging"
	"lazypager/internal/ui/input"
	inputtypes "lazypager/internal/ui/input/types"
	"lazypager/internal/ui/views"
)

// statusTimeout is how long a status message stays visible
const statusTimeout = 3 * time.Second

// velocityWindow is how recent the last pointer motion must be to carry momentum
const velocityWindow = 100 * time.Millisecond

// dragState tracks a mouse drag across the pager frame
type dragState struct {
	startPos    int
	startOffset float64
	lastPos     int
	lastTime    time.Time
	velocity    float64 // offset units per second
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	logger *log.Logger

	source    *pages.Source
	engine    *paging.Engine[*domain.Page]
	viewport  *terminalViewport
	scheduler *teaScheduler

	// UI-specific state
	width          int
	height         int
	help           help.Model
	styles         *views.Styles
	inPagerMode    bool // tracks if we're currently in pager mode
	frameScheduled bool
	drag           *dragState
	statusMessage  string
	statusError    bool
	statusSeq      int
	now            func() time.Time

	inputHandler *input.Handler
	pagerOps     *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the pager model and loads the first page set
func NewModel(bus eventbus.EventBus, cfg *config.Config, source *pages.Source, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		bus:          bus,
		logger:       logger.WithPrefix("ui"),
		source:       source,
		viewport:     newTerminalViewport(),
		scheduler:    newTeaScheduler(),
		help:         help.New(),
		styles:       views.NewStyles(),
		now:          time.Now,
		inputHandler: input.New(),
		pagerOps:     NewPagerOps(),
	}

	m.engine = paging.NewEngine[*domain.Page](paging.Options{
		Direction:      cfg.PagingDirection(),
		Circular:       cfg.Circular,
		Autoplay:       cfg.Autoplay.Enabled,
		AutoplayPeriod: cfg.AutoplayPeriod(),
		Scheduler:      m.scheduler,
		Logger:         logger,
	}, source, m.viewport)

	observer := paging.Observer{
		CurrentPageChanged: func(index int) {
			m.logger.Debug("page changed", "page", index)
		},
	}
	if bus != nil {
		observer = paging.Chain(observer, eventbus.PagingObserver(bus, m.engine))
	}
	m.engine.SetObserver(observer)

	m.reload()
	if last := cfg.Session.LastPage; last > 0 && last < m.engine.PageCount() {
		m.engine.SetPage(last, false)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)
}

// Engine returns the paging engine driven by the model
func (m *Model) Engine() *paging.Engine[*domain.Page] {
	return m.engine
}

// Status returns a snapshot of the pager for display and persistence
func (m *Model) Status() domain.PagerStatus {
	return domain.PagerStatus{
		CurrentPage: m.engine.CurrentPage(),
		PageCount:   m.engine.PageCount(),
		Circular:    m.engine.Circular(),
		Autoplay:    m.engine.Autoplay().Enabled(),
		State:       m.engine.State().String(),
	}
}

// CurrentPage implements the input context
func (m *Model) CurrentPage() int { return m.engine.CurrentPage() }

// PageCount implements the input context
func (m *Model) PageCount() int { return m.engine.PageCount() }

// Direction implements the input context
func (m *Model) Direction() paging.Direction { return m.engine.Direction() }

// Circular implements the input context
func (m *Model) Circular() bool { return m.engine.Circular() }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.scheduler.drain()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		m.frameScheduled = false
		m.stepFrame()

	case scheduleMsg:
		m.scheduler.fire(msg.id)

	case EventMsg:
		cmds = append(cmds, m.handleEvent(msg.Event))

	case pagerMsg:
		if msg.err != nil {
			m.logger.Error("pager failed", "page", msg.index, "err", msg.err)
			cmds = append(cmds, m.setStatus(fmt.Sprintf("pager failed: %v", msg.err), true))
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusError = false
		}

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.frameCmd(), m.scheduler.drain())
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.MoveAction:
		m.engine.MoveByPages(a.Delta, a.Animated)

	case inputtypes.GotoAction:
		if a.Index < 0 || a.Index >= m.engine.PageCount() {
			if !m.engine.Circular() {
				return m.setStatus(fmt.Sprintf("no page %d", a.Index+1), true)
			}
		}
		m.engine.SetPageTransition(a.Index, a.Transition, a.Animated)

	case inputtypes.SubmitTextAction:
		return m.setStatus(fmt.Sprintf("invalid page %q", a.Text), true)

	case inputtypes.ToggleAutoplayAction:
		autoplay := m.engine.Autoplay()
		if autoplay.Enabled() {
			autoplay.Disable()
		} else {
			autoplay.Enable(0)
		}
		m.publishSettings()
		if autoplay.Enabled() {
			return m.setStatus(fmt.Sprintf("autoplay every %s", autoplay.Period()), false)
		}
		return m.setStatus("autoplay off", false)

	case inputtypes.ToggleCircularAction:
		m.engine.SetCircular(!m.engine.Circular())
		m.publishSettings()
		if m.engine.Circular() {
			return m.setStatus("circular on", false)
		}
		return m.setStatus("circular off", false)

	case inputtypes.ReloadAction:
		return m.reloadWithStatus()

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case inputtypes.QuitAction:
		if !a.Force {
			m.publishSettings()
		}
		return tea.Quit
	}
	return nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ReloadRequestedEvent:
		return m.reloadWithStatus()
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

// reload rescans the page directory and resets the engine to its first page.
// A drag or coast in progress is dropped with the old pages.
func (m *Model) reload() error {
	count, err := m.source.Rescan()
	if err != nil && !errors.Is(err, pages.ErrNoPages) {
		m.logger.Error("failed to scan pages", "dir", m.source.Dir(), "err", err)
	}
	m.drag = nil
	m.viewport.SetOffset(0)
	m.engine.Reload(count)
	if m.bus != nil {
		m.bus.Publish(eventbus.PagesReloadedEvent{Dir: m.source.Dir(), Count: count})
	}
	return err
}

func (m *Model) reloadWithStatus() tea.Cmd {
	if err := m.reload(); err != nil {
		return m.setStatus(err.Error(), true)
	}
	return m.setStatus(fmt.Sprintf("loaded %d pages", m.engine.PageCount()), false)
}

// publishSettings asks the config writer to persist the pager settings
func (m *Model) publishSettings() {
	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.ConfigChangedEvent{
		LastPage: m.engine.CurrentPage(),
		Circular: m.engine.Circular(),
		Autoplay: m.engine.Autoplay().Enabled(),
	})
}

// openPager returns a command that shows the current page using ov pager
func (m *Model) openPager() tea.Cmd {
	page, ok := m.engine.VisibleContent()
	if !ok {
		return m.setStatus("no page to open", true)
	}
	if m.program == nil {
		return m.setStatus("pager unavailable", true)
	}
	program, ops, width := m.program, m.pagerOps, m.width
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := ops.ShowPage(page, width)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{index: page.Index, err: err}
	}
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusSeq++
	m.statusMessage = message
	m.statusError = isError
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// frameCmd schedules the next animation frame while the viewport is moving
func (m *Model) frameCmd() tea.Cmd {
	if m.viewport.moving() == motionNone || m.frameScheduled {
		return nil
	}
	m.frameScheduled = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// stepFrame advances the viewport and reports the end of a motion to the engine
func (m *Model) stepFrame() {
	kind := m.viewport.moving()
	if kind == motionNone {
		return
	}
	offset, done := m.viewport.step()
	m.engine.OffsetChanged(offset)
	if !done {
		return
	}
	switch kind {
	case motionAnimating:
		m.engine.AnimationFinished()
	case motionDecelerating:
		m.engine.Settle(offset)
	}
}

// handleMouse maps wheel events to page moves and left-button drags to engine gestures
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.inPagerMode {
		return
	}
	pos := msg.X
	if m.engine.Direction() == paging.Vertical {
		pos = msg.Y
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.engine.MoveByPages(-1, true)
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.engine.MoveByPages(1, true)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.beginDrag(pos)
	case msg.Action == tea.MouseActionMotion && m.drag != nil:
		m.dragTo(pos)
	case msg.Action == tea.MouseActionRelease && m.drag != nil:
		m.endDrag(pos)
	}
}

func (m *Model) beginDrag(pos int) {
	if m.engine.PageCount() == 0 {
		return
	}
	if m.viewport.moving() == motionDecelerating {
		// catch the coasting page where it is
		m.viewport.drag(m.viewport.Offset())
	}
	m.engine.BeginDrag()
	m.drag = &dragState{
		startPos:    pos,
		startOffset: m.viewport.Offset(),
		lastPos:     pos,
		lastTime:    m.now(),
	}
}

func (m *Model) dragTo(pos int) {
	d := m.drag
	offset := d.startOffset - float64(pos-d.startPos)
	m.viewport.drag(offset)
	m.engine.OffsetChanged(offset)

	now := m.now()
	if dt := now.Sub(d.lastTime).Seconds(); dt > 0 {
		d.velocity = -float64(pos-d.lastPos) / dt
	}
	d.lastPos = pos
	d.lastTime = now
}

func (m *Model) endDrag(pos int) {
	if pos != m.drag.lastPos {
		m.dragTo(pos)
	}
	velocity := m.drag.velocity
	if m.now().Sub(m.drag.lastTime) > velocityWindow {
		velocity = 0
	}
	m.drag = nil

	if math.Abs(velocity) < flickVelocity {
		m.engine.EndDrag(false)
		return
	}
	m.engine.EndDrag(true)
	m.viewport.decelerate(velocity)
}

// layout sizes one page to the pager frame
func (m *Model) layout() {
	w, h := m.pageSize()
	if m.engine.Direction() == paging.Vertical {
		m.viewport.setExtent(float64(h))
	} else {
		m.viewport.setExtent(float64(w))
	}
}

// pageSize returns the pager frame interior
func (m *Model) pageSize() (int, int) {
	frame := m.styles.Frame
	w := m.width - frame.GetHorizontalFrameSize()
	// header, indicator and status lines plus the help view
	chrome := 3 + lipgloss.Height(m.help.View(m.inputHandler.Keys()))
	h := m.height - frame.GetVerticalFrameSize() - chrome
	return max(w, 1), max(h, 1)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	w, h := m.pageSize()
	pager := m.styles.Frame.Render(views.RenderPager(m.styles, views.PagerState{
		Pages:     m.pageViews(),
		Offset:    m.viewport.Offset(),
		Width:     w,
		Height:    h,
		Direction: m.engine.Direction(),
	}))

	indicator := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		views.RenderIndicator(m.styles, m.engine.CurrentPage(), m.engine.VisiblePage(), m.engine.PageCount()))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		pager,
		indicator,
		m.renderStatusLine(),
		m.help.View(m.inputHandler.Keys()),
	)
}

func (m *Model) pageViews() []views.PageView {
	placements := m.engine.Window().Slots(m.viewport.Extent())
	out := make([]views.PageView, 0, len(placements))
	for _, p := range placements {
		if p.Content == nil {
			continue
		}
		out = append(out, views.PageView{
			Index:  p.Index,
			Title:  p.Content.Title,
			Body:   p.Content.Body,
			Offset: p.Offset,
		})
	}
	return out
}

func (m *Model) renderHeader() string {
	header := m.styles.Title.Render("lazypager") + " " + m.styles.Dim.Render(m.source.Dir())
	if page, ok := m.engine.VisibleContent(); ok {
		header += "  " + m.styles.PageTitle.Render(page.Title)
	}
	return header
}

func (m *Model) renderStatusLine() string {
	if ti := m.inputHandler.TextInput(); ti != nil {
		return m.styles.Prompt.Render(m.inputHandler.Prompt()) + ti.View()
	}
	status := m.Status()
	return views.RenderStatus(m.styles, views.StatusInfo{
		State:    status.State,
		Current:  status.CurrentPage,
		Count:    status.PageCount,
		Circular: status.Circular,
		Autoplay: status.Autoplay,
		Message:  m.statusMessage,
		IsError:  m.statusError,
	})
}
