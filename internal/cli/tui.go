package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/isoweek"
)

// List styles
var (
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	listCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	listLongStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// now is the clock used to highlight the current week.
var now = time.Now

// currentWeek returns today's ISO week when today falls in ISO year year,
// and -1 otherwise.
func currentWeek(year int) int {
	isoYear, week := isoweek.Week(isoweek.DateOf(now()))
	if isoYear != year {
		return -1
	}
	return week
}

// weeksTable renders up to limit weeks of year starting after offset
// weeks. The current week is highlighted; week 53 is marked in yellow.
func weeksTable(year, current, offset, limit int) string {
	n := isoweek.WeeksInYear(year)
	end := min(offset+limit, n)

	rows := make([][]string, 0, end-offset)
	for w := offset + 1; w <= end; w++ {
		r, _ := isoweek.WeekRange(year, w)
		rows = append(rows, []string{
			strconv.Itoa(w),
			r.String(),
			r.Start.String(),
			r.End.String(),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Week", "Range", "Monday", "Sunday").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			week := offset + row + 1
			switch {
			case week == current:
				return cell.Inherit(listCurrentStyle)
			case week == isoweek.MaxWeek:
				return cell.Inherit(listLongStyle)
			case col >= 2:
				return cell.Inherit(listDimStyle)
			}
			return cell
		})

	return t.Render()
}

// =============================================================================
// weekBrowser - Interactive year browser
// =============================================================================

// weekBrowser is the bubbletea model behind "weeks -i".
type weekBrowser struct {
	year   int
	offset int
	height int
	status string
}

func newWeekBrowser(year int) weekBrowser {
	return weekBrowser{year: year, height: 20}
}

func (m weekBrowser) Init() tea.Cmd {
	return nil
}

func (m weekBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m = m.setYear(m.year - 1)
		case "right", "l":
			m = m.setYear(m.year + 1)
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "t":
			if y, _ := isoweek.Week(isoweek.DateOf(now())); y != m.year {
				m = m.setYear(y)
			}
		}
	case tea.WindowSizeMsg:
		// Title, help, borders and footer take ten lines.
		m.height = max(msg.Height-10, 5)
		m.offset = min(m.offset, m.maxOffset())
	}
	return m, nil
}

func (m weekBrowser) setYear(year int) weekBrowser {
	if err := errors.ValidateYear(year); err != nil {
		m.status = errors.UserMessage(err)
		return m
	}
	m.year = year
	m.offset = min(m.offset, m.maxOffset())
	return m
}

func (m weekBrowser) maxOffset() int {
	return max(isoweek.WeeksInYear(m.year)-m.height, 0)
}

func (m weekBrowser) View() string {
	var b strings.Builder

	title := fmt.Sprintf("ISO weeks of %d", m.year)
	if isoweek.HasWeek53(m.year) {
		title += " " + StyleWarning.Render("(53 weeks)")
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ year  ↑/↓ scroll  t this year  q quit"))
	b.WriteString("\n\n")

	b.WriteString(weeksTable(m.year, currentWeek(m.year), m.offset, m.height))
	b.WriteString("\n")

	n := isoweek.WeeksInYear(m.year)
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d-%d/%d]", m.offset+1, min(m.offset+m.height, n), n)))
	if m.status != "" {
		b.WriteString("  " + StyleWarning.Render(m.status))
	}
	return b.String()
}
