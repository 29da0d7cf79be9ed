package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/errors"
	"github.com/matzehuels/analogue/pkg/graph"
	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/render/grid"
	"github.com/matzehuels/analogue/pkg/render/nodeview"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listMatchStyle    = lipgloss.NewStyle().Underline(true)
	previewStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

const (
	listWidth      = 32
	// listLabelWidth leaves room for the cursor column.
	listLabelWidth = listWidth - 2
	ellipsis       = "…"
)

// labelWidths measures list labels the same in every locale.
var labelWidths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// browseKeys are the key bindings of the browser.
type browseKeys struct {
	Up, Down, Hints, Select, Quit key.Binding
}

var defaultBrowseKeys = browseKeys{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
	Hints:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "hints")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "select")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// =============================================================================
// BrowseModel - Interactive node browser
// =============================================================================

// BrowseModel is the bubbletea model for fuzzy-finding and previewing nodes.
type BrowseModel struct {
	Entries  []graph.Entry
	Selected *graph.Entry

	lib     *node.Library
	labels  []string
	matches []fuzzy.Match
	cursor  int

	filter  textinput.Model
	preview viewport.Model
	keys    browseKeys
	display *nodeview.DisplayOptions
	view    *nodeview.Renderer
	height  int
}

// NewBrowseModel creates a browser over entries.
func NewBrowseModel(lib *node.Library, entries []graph.Entry, display nodeview.DisplayOptions) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "filter nodes"
	ti.Prompt = "/ "
	ti.Focus()

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.ID + " " + lib.DisplayName(e.Node)
	}

	m := BrowseModel{
		Entries: entries,
		lib:     lib,
		labels:  labels,
		filter:  ti,
		preview: viewport.New(60, 15),
		keys:    defaultBrowseKeys,
		display: &display,
		height:  15,
	}
	m.view = nodeview.New(lib, m.display)
	m.refilter()
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if e, ok := m.current(); ok {
				m.Selected = &e
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
				m.refreshPreview()
			}
			return m, nil
		case key.Matches(msg, m.keys.Hints):
			m.display.ShowTypeHints = !m.display.ShowTypeHints
			m.view.Invalidate()
			m.refreshPreview()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 5)
		m.preview.Width = max(msg.Width-listWidth-4, 10)
		m.preview.Height = m.height
		m.refreshPreview()
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// refilter recomputes the matches for the current filter text.
func (m *BrowseModel) refilter() {
	pattern := m.filter.Value()
	if pattern == "" {
		m.matches = make([]fuzzy.Match, len(m.labels))
		for i, l := range m.labels {
			m.matches[i] = fuzzy.Match{Str: l, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(pattern, m.labels)
	}
	m.cursor = 0
	m.refreshPreview()
}

func (m *BrowseModel) current() (graph.Entry, bool) {
	if m.cursor >= len(m.matches) {
		return graph.Entry{}, false
	}
	return m.Entries[m.matches[m.cursor].Index], true
}

func (m *BrowseModel) refreshPreview() {
	e, ok := m.current()
	if !ok {
		m.preview.SetContent(listDimStyle.Render("no matching nodes"))
		return
	}
	m.view.Bind(e.Node)
	buf, err := m.view.Buffer()
	if err != nil {
		m.preview.SetContent(StyleError.Render(err.Error()))
		return
	}
	m.preview.SetContent(grid.ANSI(buf, nil) + "\n\n" +
		listDimStyle.Render(fmt.Sprintf("%s  %s  hints %s", classLabel(m.lib, e.Node), buf.Size(), onOff(m.display.ShowTypeHints))))
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Nodes"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", previewStyle.Render(m.preview.View())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  ↑/↓ navigate  ctrl+t hints  ⏎ select  esc quit", min(m.cursor+1, len(m.matches)), len(m.Entries))))
	return b.String()
}

func (m BrowseModel) listView() string {
	offset := 0
	if m.cursor >= m.height {
		offset = m.cursor - m.height + 1
	}
	end := min(offset+m.height, len(m.matches))

	lines := make([]string, 0, m.height)
	for i := offset; i < end; i++ {
		match := m.matches[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		lines = append(lines, cursor+highlightMatch(match, listLabelWidth, style))
	}
	return lipgloss.NewStyle().Width(listWidth).Render(strings.Join(lines, "\n"))
}

// highlightMatch renders a label, truncated to width cells, with its
// fuzzy-matched characters underlined.
func highlightMatch(match fuzzy.Match, width int, style lipgloss.Style) string {
	text := labelWidths.Truncate(match.Str, width, ellipsis)
	limit := len(text)
	if text != match.Str {
		limit -= len(ellipsis)
	}
	if len(match.MatchedIndexes) == 0 {
		return style.Render(text)
	}
	var b strings.Builder
	next := 0
	for i, r := range text {
		if i < limit && next < len(match.MatchedIndexes) && match.MatchedIndexes[next] == i {
			b.WriteString(style.Inherit(listMatchStyle).Render(string(r)))
			next++
			continue
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// browseCommand creates the browse command for interactive node lookup.
func (c *CLI) browseCommand() *cobra.Command {
	var noHints bool

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Fuzzy-find nodes and preview them",
		Long: `Open an interactive browser over the nodes of a document. Type to filter
by id or name; the selected node is drawn on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], noHints)
		},
	}
	cmd.Flags().BoolVar(&noHints, "no-hints", false, "start with port type hints hidden")
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, path string, noHints bool) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}

	model := NewBrowseModel(doc.lib, doc.entries, c.displayOptions(noHints))
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "browser")
	}

	m := final.(BrowseModel)
	if m.Selected == nil {
		return nil
	}
	renderer, err := outputRenderer(c.out, c.Config.Output.Color)
	if err != nil {
		return err
	}
	m.view.Bind(m.Selected.Node)
	buf, err := m.view.Buffer()
	if err != nil {
		return err
	}
	writeNodeHeader(c.out, renderer, doc.lib, *m.Selected, buf.Size())
	fmt.Fprintln(c.out, formatBuffer(buf, renderer))
	return nil
}
