package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spider-dash/internal/storage"
)

const maxLeaders = 20

// RunRecorder stores finished runs and reads back the best ones.
// *storage.Store implements it.
type RunRecorder interface {
	RecordRun(r storage.Run) (int64, error)
	TopRuns(limit int) ([]storage.Run, error)
	Best() (int, error)
}

var _ RunRecorder = (*storage.Store)(nil)

// leaderboard is a table of the best recorded runs.
type leaderboard struct {
	table table.Model
	runs  []storage.Run
	best  int
}

func newLeaderboard(height int) leaderboard {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: 14},
			{Title: "Score", Width: 8},
			{Title: "Result", Width: 8},
			{Title: "Time", Width: 14},
		}),
		table.WithHeight(max(3, height-4)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	t.SetStyles(s)

	return leaderboard{table: t}
}

// load refreshes the table from the recorder. Errors leave it empty.
func (b *leaderboard) load(r RunRecorder) {
	b.runs = nil
	b.best = 0
	if r == nil {
		b.table.SetRows(nil)
		return
	}

	if runs, err := r.TopRuns(maxLeaders); err == nil {
		b.runs = runs
	}
	if best, err := r.Best(); err == nil {
		b.best = best
	}

	rows := make([]table.Row, len(b.runs))
	for i, run := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			run.Player,
			fmt.Sprintf("%d", run.Score),
			run.Outcome,
			run.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

func (b *leaderboard) setHeight(height int) {
	b.table.SetHeight(max(3, height-4))
}

func (b leaderboard) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("BEST RUNS")
	if len(b.runs) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No runs recorded yet.")
		return title + "\n" + empty
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return title + "\n" + box.Render(b.table.View())
}
