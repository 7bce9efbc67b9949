package main

import (
	"fmt"
	"os"
	"strings"

	"fastascan/internal/config"
	"fastascan/internal/fasta"
	"fastascan/internal/seq"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// defaultWrapWidth is used when neither config nor the terminal dictates a
// narrower sequence display width.
const defaultWrapWidth = 60

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	// Alphabet label styles
	alphaNucStyle     = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	alphaProtStyle    = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	alphaUnknownStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// alphabetStyle picks the style used to colorize an alphabet label.
func alphabetStyle(a seq.Alphabet) lipgloss.Style {
	switch a {
	case seq.Nucleotide, seq.LikelyNucleotide:
		return alphaNucStyle
	case seq.Protein, seq.LikelyProtein:
		return alphaProtStyle
	}
	return alphaUnknownStyle
}

type listItem struct {
	record seq.Record
}

func (i listItem) FilterValue() string {
	return i.record.Header
}

func (i listItem) Title() string {
	if i.record.Header != "" {
		return i.record.Header
	}
	return "(no header)"
}

func (i listItem) Description() string {
	a := i.record.Alphabet()
	return fmt.Sprintf("Length: %d    Alphabet: %s", i.record.Len(), alphabetStyle(a).Render(string(a)))
}

type mode int

const (
	modeSequence mode = iota
	modeWrapped
	modeComposition
)

func (m mode) String() string {
	switch m {
	case modeSequence:
		return "Sequence"
	case modeWrapped:
		return "Wrapped"
	case modeComposition:
		return "Composition"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []seq.Record
	currentMode   mode
	wrapWidth     int
	showHelp      bool
	width         int
	height        int
	totalRecords  int
	selectedIndex int
}

func newModel(records []seq.Record, wrapWidth int) model {
	if wrapWidth <= 0 {
		wrapWidth = defaultWrapWidth
	}

	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{record: record}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "FASTA Records"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:         l,
		records:      records,
		currentMode:  modeSequence,
		wrapWidth:    wrapWidth,
		totalRecords: len(records),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// cycleMode advances the detail pane to the next display mode, wrapping
// around after composition.
func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of width
		listWidth := msg.Width / 3
		listHeight := msg.Height - 4

		m.list.SetWidth(listWidth)
		m.list.SetHeight(listHeight)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab":
			return m.cycleMode(), nil

		case "1":
			m.currentMode = modeSequence
			return m, nil

		case "2":
			m.currentMode = modeWrapped
			return m, nil

		case "3":
			m.currentMode = modeComposition
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	leftPanel := m.renderLeftPanel()
	rightPanel := m.renderRightPanel()
	statusBar := m.renderStatusBar()

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		rightPanel,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		statusBar,
	)
}

func (m model) renderLeftPanel() string {
	listWidth := m.width / 3

	return containerStyle.
		Width(listWidth - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.records) == 0 {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No records available")
	}

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No item selected")
	}

	record := selectedItem.(listItem).record

	header := titleStyle.Render(record.Header)

	a := record.Alphabet()
	label := lipgloss.NewStyle().Foreground(mutedColor)
	metaStr := label.Render("Length: ") + alphabetStyle(a).Render(fmt.Sprintf("%d", record.Len())) +
		label.Render("    Alphabet: ") + alphabetStyle(a).Render(string(a))

	content := strings.Join(m.buildRightLines(record), "\n")

	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		metaStr,
		"",
		sequenceStyle.Width(rightWidth-6).Render(content),
	)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panelContent)
}

// buildRightLines produces the detail pane body for the current mode: the
// raw sequence, the sequence wrapped at wrapWidth columns, or a composition
// summary of the classification tallies.
func (m model) buildRightLines(record seq.Record) []string {
	switch m.currentMode {
	case modeWrapped:
		return wrapSequence(record.Sequence, m.wrapWidth)
	case modeComposition:
		nuc, prot, other := record.Counts()
		return []string{
			fmt.Sprintf("Nucleotide characters: %d", nuc),
			fmt.Sprintf("Amino acid characters: %d", prot),
			fmt.Sprintf("Other characters:      %d", other),
			"",
			fmt.Sprintf("Classification: %s", record.Alphabet()),
		}
	}
	if record.Sequence == "" {
		return []string{"(empty sequence)"}
	}
	return []string{record.Sequence}
}

// wrapSequence splits s into lines of at most width characters. Width
// values below 1 fall back to the default.
func wrapSequence(s string, width int) []string {
	if width < 1 {
		width = defaultWrapWidth
	}
	if s == "" {
		return []string{"(empty sequence)"}
	}
	var lines []string
	for start := 0; start < len(s); start += width {
		end := start + width
		if end > len(s) {
			end = len(s)
		}
		lines = append(lines, s[start:end])
	}
	return lines
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d records", m.selectedIndex+1, m.totalRecords)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())
	rightInfo := "Press 'h' for help, 'q' to quit"

	totalUsed := len(leftInfo) + len(centerInfo) + len(rightInfo)
	spacing := m.width - totalUsed - 6

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		rightSpacing := spacing - leftSpacing

		statusContent = fmt.Sprintf("%s%s%s%s%s",
			leftInfo,
			strings.Repeat(" ", leftSpacing),
			centerInfo,
			strings.Repeat(" ", rightSpacing),
			rightInfo,
		)
	} else {
		// fallback for narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `FASTA Records Browser - Help

Navigation:
  up/down, j/k  Navigate list
  /             Filter records
  Enter         Select record

View Modes:
  tab           Cycle display mode
  1             Show raw sequence
  2             Show wrapped sequence
  3             Show composition summary

General:
  h             Toggle this help
  q, Ctrl+C     Quit application

Current Mode: ` + m.currentMode.String() + `
Total Records: ` + fmt.Sprintf("%d", m.totalRecords) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	modal := modalStyle.Render(helpContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

// loadRecords reads every record from the FASTA file at path.
func loadRecords(path string) ([]seq.Record, error) {
	p := fasta.NewParser(path)
	records, err := p.Records()
	if err != nil {
		return nil, err
	}
	var out []seq.Record
	for rec := range records {
		out = append(out, rec)
	}
	return out, nil
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	path := cfg.InputFasta
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = "example.fasta"
	}

	if !fasta.NewParser(path).IsFasta() {
		log.Fatal("file is not FASTA format or was not found", "path", path)
	}
	records, err := loadRecords(path)
	if err != nil {
		log.Fatal("failed to read records", "path", path, "err", err)
	}

	p := tea.NewProgram(newModel(records, cfg.WrapWidth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
