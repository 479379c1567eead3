package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ntc/internal/config"
	"ntc/internal/domain"
)

// ReviewViewer displays the table entries of the last run in an
// interactive TUI: entry list on the left, fixture details on the right
type ReviewViewer struct {
	config *config.Config
}

// NewReviewViewer creates a new ReviewViewer
func NewReviewViewer(cfg *config.Config) *ReviewViewer {
	return &ReviewViewer{config: cfg}
}

// View runs the interactive browser over the report's table entries
func (rv *ReviewViewer) View(report *domain.Report) error {
	if len(report.Entries) == 0 {
		color.Yellow("No table entries in the last run")
		return nil
	}

	duplicates := make(map[string]bool)
	for _, w := range report.Warnings {
		duplicates[w.Identifier] = true
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, entry := range report.Entries {
		marker := "[green]ok[white]"
		if entry.ExpectsErrors {
			marker = "[red]err[white]"
		}
		text := fmt.Sprintf("[yellow]%d.[white] %s (%s)", i+1, entry.Identifier, marker)
		if duplicates[entry.Identifier] {
			text += " [orange]dup[white]"
		}
		list.AddItem(text, "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 4, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Fixture Entries (%d total, %d duplicate) | ↑↓ navigate, → view source, ← back, Ctrl+C to exit ",
		len(report.Entries), report.Meta.Duplicates,
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(report.Entries) {
			return
		}
		entry := report.Entries[index]
		statsView.SetText(rv.formatEntryStats(entry, duplicates[entry.Identifier]))
		detailsView.SetText(rv.formatEntrySource(entry))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatEntryStats renders the header pane for one table entry
func (rv *ReviewViewer) formatEntryStats(entry domain.Entry, duplicate bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[cyan]identifier:[white] [yellow]%s[white]\n", entry.Identifier)
	fmt.Fprintf(&b, "[cyan]fixture:[white] %s\n", entry.FixturePath)
	if entry.ExpectsErrors {
		b.WriteString("[cyan]expects:[white] [red]parse errors[white]")
	} else {
		b.WriteString("[cyan]expects:[white] [green]clean parse[white]")
	}
	if duplicate {
		b.WriteString("  [orange](duplicate identifier)[white]")
	}
	b.WriteString("\n")

	return b.String()
}

// formatEntrySource renders the emitted fixture's source for the details pane
func (rv *ReviewViewer) formatEntrySource(entry domain.Entry) string {
	path := filepath.Join(rv.config.GetFixturesPath(), filepath.FromSlash(entry.FixturePath))
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[red]cannot read fixture: %v[white]", err)
	}
	return tview.Escape(string(content))
}
