package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/five82/picket/internal/selection"
	"github.com/five82/picket/internal/state"
)

// Session is the surface the UI needs from the host: the selection loop
// plus enough context to label the screen and follow catalog reloads.
type Session interface {
	selection.Session
	Mode() string
	SyncCatalog(snap state.Snapshot) bool
}

// Options configure the UI runtime.
type Options struct {
	Context       context.Context
	Store         *state.Store
	Session       Session
	ThemeName     string
	OnThemeChange func(name string)
}

// Run wires up tview components and blocks until the session finishes,
// the user quits, or ctx is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Session == nil {
		return fmt.Errorf("ui requires a session")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	app := tview.NewApplication()
	model := newViewModel(app, opts)

	go func() {
		ticker := time.NewTicker(DefaultUIInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				app.QueueUpdateDraw(func() { app.Stop() })
				return
			case <-ticker.C:
				snapshot := opts.Store.Snapshot()
				app.QueueUpdateDraw(func() {
					model.update(snapshot)
				})
			}
		}
	}()

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// If the help modal is open, let it handle keys (otherwise the
		// global handler swallows Esc and the modal can't be dismissed).
		if model.root != nil && model.root.HasPage("help") {
			switch event.Key() {
			case tcell.KeyCtrlC:
				app.Stop()
				return nil
			case tcell.KeyESC:
				model.hideHelp()
				return nil
			case tcell.KeyRune:
				if event.Rune() == '?' || event.Rune() == 'q' {
					model.hideHelp()
					return nil
				}
			}
			return event
		}

		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'T':
				model.cycleTheme()
				return nil
			case '?':
				model.showHelp()
				return nil
			}
		}
		return event
	})

	return app.Run()
}

func (vm *viewModel) update(snapshot state.Snapshot) {
	vm.lastSnap = snapshot
	vm.options.Session.SyncCatalog(snapshot)
	vm.renderStatus(snapshot)
	vm.renderFooter()
	vm.lastRefresh = time.Now()
}

func (vm *viewModel) renderStatus(snapshot state.Snapshot) {
	theme := vm.theme
	sel := vm.options.Session.Selector()

	_, _, width, _ := vm.statusView.GetInnerRect()
	if width <= 0 {
		width = 120
	}
	compact := width < LayoutCompactWidth

	mode := vm.options.Session.Mode()
	chip := fmt.Sprintf("[%s:%s:b] %s [-:-:-]",
		theme.Background, theme.ModeColor(mode), strings.ToUpper(mode))

	title := sel.Title()
	if title == "" {
		title = "Catalog"
	}
	maxTitle := 48
	if compact {
		maxTitle = 24
	}

	parts := []string{
		chip,
		fmt.Sprintf("[%s::b]%s[-]", theme.Text, tview.Escape(truncate(title, maxTitle))),
		fmt.Sprintf("[%s]Items:[-] [%s]%d[-]", theme.Muted, theme.Text, len(snapshot.Catalog.Items)),
	}
	if !compact {
		parts = append(parts, fmt.Sprintf("[%s]Gen:[-] [%s]%d[-]", theme.Muted, theme.Text, snapshot.Generation))
	}
	if !snapshot.LoadedAt.IsZero() {
		parts = append(parts, fmt.Sprintf("[%s]%s[-]", theme.Muted, humanizeAge(time.Since(snapshot.LoadedAt))))
	}
	if snapshot.FailedReloads > 0 {
		parts = append(parts, fmt.Sprintf("[%s::b]STALE[-] [%s]%d failed reloads[-]",
			theme.Warning, theme.Warning, snapshot.FailedReloads))
	}
	if snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", snapshot.LastError), maxErr)
		parts = append(parts, fmt.Sprintf("[%s::b]ERROR[-] [%s]%s[-]",
			theme.Danger, theme.Danger, tview.Escape(errText)))
	}

	vm.statusView.SetText(strings.Join(filterStrings(parts), "  "))
}

func (vm *viewModel) renderFooter() {
	theme := vm.theme
	sel := vm.options.Session.Selector()

	_, _, width, _ := vm.footerView.GetInnerRect()
	if width <= 0 {
		width = 120
	}

	var parts []string
	if width >= LayoutStatsWidth {
		for _, st := range sel.Stats() {
			valueColor := ternary(st.Over, theme.Danger, theme.Text)
			parts = append(parts, fmt.Sprintf("[%s]%s:[-] [%s]%s[-]",
				theme.Muted, st.Label, valueColor, st.Value))
		}
	}
	if col := sel.ActiveColumn(); col != nil && col.PagesCount() > 1 {
		parts = append(parts, fmt.Sprintf("[%s]Page[-] [%s]%d/%d[-]",
			theme.Muted, theme.Text, col.PageIndex()+1, col.PagesCount()))
	}
	parts = append(parts, fmt.Sprintf("[%s]%s[-]", theme.Faint, theme.Name))

	status, danger := sel.FooterText()
	statusColor := ternary(danger, theme.Danger, theme.Muted)
	second := []string{fmt.Sprintf("[%s]%s[-]", statusColor, tview.Escape(status))}
	if hint := sel.Hint(); hint != "" {
		second = append(second, fmt.Sprintf("[%s]%s[-]", theme.Muted, tview.Escape(hint)))
	}

	vm.footerView.SetText(strings.Join(filterStrings(parts), "  •  ") +
		"\n" + strings.Join(second, "  •  "))
}
