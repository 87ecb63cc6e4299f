package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jwulff/callboard/internal/api"
	"github.com/jwulff/callboard/internal/dashboard"
	"github.com/jwulff/callboard/internal/i18n"
	"github.com/jwulff/callboard/internal/logger"
	"github.com/jwulff/callboard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the poll period used when Options leaves it unset.
const DefaultInterval = 5 * time.Second

// Options configures a dashboard model.
type Options struct {
	Source   dashboard.Source
	Logger   *logger.Logger
	Catalog  *i18n.Catalog
	Interval time.Duration
	Language i18n.Language
	Title    string
}

// Model is the root bubbletea model for the supervisor dashboard.
type Model struct {
	// Polling
	ctx        context.Context
	cancel     context.CancelFunc
	source     dashboard.Source
	interval   time.Duration
	pollSeq    int // last poll started
	appliedSeq int // last poll applied to view state
	inFlight   int
	stopped    bool

	// View state. A successful poll replaces all of it at once.
	calls       []api.Call
	stats       api.DashboardStats
	volume      []dashboard.ChartPoint
	lastUpdated time.Time

	// UI state
	filter      dashboard.Filter
	language    i18n.Language
	tableScroll int
	width       int
	height      int
	static      bool

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	log     *logger.Logger
	catalog *i18n.Catalog
	title   string
}

// New creates a Model with default state. Polling is bound to ctx and to
// the model's own lifetime; Close releases it.
func New(ctx context.Context, opts Options) Model {
	pollCtx, cancel := context.WithCancel(ctx)

	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Catalog == nil {
		opts.Catalog = i18n.Builtin()
	}
	if opts.Language == "" {
		opts.Language = i18n.English
	}

	return Model{
		ctx:      pollCtx,
		cancel:   cancel,
		source:   opts.Source,
		interval: opts.Interval,
		stats:    dashboard.InitialStats(),
		filter:   dashboard.FilterAll,
		language: opts.Language,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(ui.SpinnerStyle),
		),
		log:     opts.Logger,
		catalog: opts.Catalog,
		title:   opts.Title,
	}
}

// Close cancels in-flight polls. Safe to call more than once.
func (m Model) Close() {
	m.cancel()
}

// Init polls immediately and arms the repeating timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshCmd(), tickCmd(m.interval), m.spinner.Tick)
}

// refreshCmd requests a poll right away.
func refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{}
	}
}

// tickCmd fires the next poll after one interval. Each tick re-arms it.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return PollTickMsg{}
	})
}

// fetchCmd runs one poll cycle against src.
func fetchCmd(ctx context.Context, src dashboard.Source, id uuid.UUID, seq int) tea.Cmd {
	return func() tea.Msg {
		snap, err := dashboard.Fetch(ctx, src)
		if err != nil {
			return PollErrorMsg{ID: id, Seq: seq, Err: err, Snapshot: snap}
		}
		return PollResultMsg{ID: id, Seq: seq, Snapshot: snap}
	}
}

// startPoll numbers a new poll cycle and returns the command running it.
func (m *Model) startPoll() tea.Cmd {
	if m.source == nil {
		return nil
	}
	m.pollSeq++
	m.inFlight++
	id := uuid.New()
	m.log.WithPoll(id, m.pollSeq).Debug("poll started")
	return fetchCmd(m.ctx, m.source, id, m.pollSeq)
}

func (m *Model) finishPoll() {
	if m.inFlight > 0 {
		m.inFlight--
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case RefreshMsg:
		if m.stopped {
			return m, nil
		}
		return m, m.startPoll()

	case PollTickMsg:
		if m.stopped {
			return m, nil
		}
		return m, tea.Batch(m.startPoll(), tickCmd(m.interval))

	case PollResultMsg:
		m.finishPoll()
		if m.stopped {
			return m, nil
		}
		entry := m.log.WithPoll(msg.ID, msg.Seq)
		if msg.Seq < m.appliedSeq {
			// A slower, older poll finished after a newer one.
			entry.WithField("applied_seq", m.appliedSeq).Debug("discarding stale poll")
			return m, nil
		}
		m.appliedSeq = msg.Seq
		m.apply(msg.Snapshot, dashboard.AllParts)
		entry.WithField("calls", len(msg.Snapshot.Calls)).Debug("poll applied")
		return m, nil

	case PollErrorMsg:
		m.finishPoll()
		if m.stopped {
			return m, nil
		}
		entry := m.log.WithPoll(msg.ID, msg.Seq)
		entry.WithError(msg.Err).Error("Error fetching dashboard data")
		// Feeds read before the failure still land; the rest keep their
		// last values.
		if msg.Snapshot.Parts != 0 && msg.Seq >= m.appliedSeq {
			m.appliedSeq = msg.Seq
			m.apply(msg.Snapshot, msg.Snapshot.Parts)
			entry.WithField("calls", len(msg.Snapshot.Calls)).Debug("partial poll applied")
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// apply replaces the parts of the view state named by parts with snap's.
func (m *Model) apply(snap dashboard.Snapshot, parts dashboard.Part) {
	if parts&dashboard.PartCalls != 0 {
		m.calls = snap.Calls
	}
	if parts&dashboard.PartStats != 0 {
		m.stats = snap.Stats
	}
	if parts&dashboard.PartVolume != 0 {
		m.volume = snap.Volume
	}
	m.lastUpdated = snap.FetchedAt
	m.clampScroll()
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopped = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.filter.Next())

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(dashboard.FilterAll)

	case key.Matches(msg, m.keys.FilterEmerg):
		m.setFilter(dashboard.FilterEmergency)

	case key.Matches(msg, m.keys.FilterUrgent):
		m.setFilter(dashboard.FilterUrgent)

	case key.Matches(msg, m.keys.FilterNonEmer):
		m.setFilter(dashboard.FilterNonEmergency)

	case key.Matches(msg, m.keys.ToggleLang):
		m.language = m.language.Next()

	case key.Matches(msg, m.keys.Refresh):
		if m.stopped {
			return m, nil
		}
		return m, m.startPoll()

	case key.Matches(msg, m.keys.Up):
		if m.tableScroll > 0 {
			m.tableScroll--
		}

	case key.Matches(msg, m.keys.Down):
		if m.tableScroll < m.maxTableScroll() {
			m.tableScroll++
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampScroll()
	}

	return m, nil
}

func (m *Model) setFilter(f dashboard.Filter) {
	m.filter = f
	m.tableScroll = 0
}

// filteredCalls is recomputed on every render, never stored.
func (m Model) filteredCalls() []api.Call {
	return dashboard.FilterCalls(m.calls, m.filter)
}

func (m *Model) clampScroll() {
	if m.tableScroll > m.maxTableScroll() {
		m.tableScroll = m.maxTableScroll()
	}
}

func (m Model) maxTableScroll() int {
	total := len(m.filteredCalls())
	visible := m.tableVisibleRows()
	if total <= visible {
		return 0
	}
	return total - visible
}

func (m Model) tableVisibleRows() int {
	if m.height == 0 {
		return max(1, len(m.filteredCalls()))
	}
	// header(1) + divider(1) + cards(2) + blank(1) + chart title(1) + chart
	// + divider(1) + table title(1) + column header(1) + divider(1) + footer
	chart := max(1, len(m.volume))
	footer := 1
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	reserved := 10 + chart + footer
	return max(3, m.height-reserved)
}

func (m Model) label(k string) string {
	return m.catalog.Label(m.language, k)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	divider := ui.DividerStyle.Render(strings.Repeat("─", m.width))

	sections := []string{
		m.renderHeader(),
		divider,
		m.renderStatCards(),
		"",
		m.renderChart(),
		divider,
		m.renderCallTable(),
	}
	if !m.static {
		sections = append(sections, divider, m.help.View(m.keys))
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.title
	if title == "" {
		title = m.label("title")
	}
	left := ui.TitleStyle.Render(title)

	status := ui.StatusLabelStyle.Render(m.label("system_status")) + " " +
		ui.StatusActiveStyle.Render(m.label("active"))

	var buttons []string
	for _, lang := range i18n.Languages {
		text := m.catalog.Label(lang, "button")
		if lang == m.language {
			buttons = append(buttons, ui.LangActiveStyle.Render(text))
		} else {
			buttons = append(buttons, ui.LangInactiveStyle.Render(text))
		}
	}

	var activity string
	switch {
	case m.inFlight > 0 && !m.static:
		activity = m.spinner.View()
	case m.lastUpdated.IsZero():
		activity = ui.DimStyle.Render(m.label("waiting"))
	default:
		activity = ui.DimStyle.Render(m.label("updated") + " " + m.lastUpdated.Format("15:04:05"))
	}

	right := activity + "  " + status + "  " + strings.Join(buttons, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderStatCards() string {
	const gap = 2
	cardW := max(12, (m.width-2*gap)/3)

	sla := ui.StatCard(m.label("sla"), dashboard.FormatPercent(m.stats.SLAPercentage), ui.ColorSLA, cardW)
	latency := ui.StatCard(m.label("latency"), dashboard.FormatLatency(m.stats.AvgLatencyMS), ui.ColorLatency, cardW)
	sentiment := ui.StatCard(m.label("sentiment_overall"),
		dashboard.OverallSentiment(m.stats.SentimentBreakdown), ui.ColorSentiment, cardW)

	spacer := strings.Repeat(" ", gap)
	return lipgloss.JoinHorizontal(lipgloss.Top, sla, spacer, latency, spacer, sentiment)
}

func (m Model) renderChart() string {
	title := ui.SectionTitleStyle.Render(m.label("call_volume"))
	return title + "\n" + ui.BarChart(m.volume, m.width, m.label("no_volume"))
}

func (m Model) renderCallTable() string {
	calls := m.filteredCalls()

	// Title with the urgency filter on the right
	var options []string
	for _, f := range dashboard.Filters {
		text := m.label(string(f))
		if f == m.filter {
			options = append(options, ui.FilterActiveStyle.Render(text))
		} else {
			options = append(options, ui.DimStyle.Render(text))
		}
	}
	left := ui.SectionTitleStyle.Render(fmt.Sprintf("%s (%d)", m.label("live_calls"), len(calls)))
	right := m.label("filter") + " " + strings.Join(options, " ")
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))

	widths := ui.ColumnWidths(m.width)
	titles := []string{
		m.label("caller_id"), m.label("transcript"), m.label("intent"), m.label("urgency"),
		m.label("sentiment"), m.label("action"), m.label("timestamp"),
	}

	lines := []string{
		left + strings.Repeat(" ", gap) + right,
		ui.TableHeader(titles, widths),
	}

	if len(calls) == 0 {
		lines = append(lines, ui.DimStyle.Render("  "+m.label("no_calls")))
		return strings.Join(lines, "\n")
	}

	start := min(m.tableScroll, len(calls))
	end := min(start+m.tableVisibleRows(), len(calls))
	for _, c := range calls[start:end] {
		lines = append(lines, ui.CallRow(c, widths))
	}
	return strings.Join(lines, "\n")
}

// Render draws a single static frame of the dashboard for snap.
func Render(opts Options, snap dashboard.Snapshot, width int) string {
	m := New(context.Background(), opts)
	defer m.Close()

	m.width = width
	m.help.Width = width
	m.static = true
	m.apply(snap, dashboard.AllParts)
	return m.View()
}

// Run starts the interactive dashboard and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
