package tea

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/picket/internal/ui"
)

// renderHeader renders the status bar with catalog and reload state.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := ui.NewBgStyle(m.theme.Surface)

	compact := m.width < ui.LayoutCompactWidth
	sep := bg.Spaces(2)
	sel := m.session.Selector()

	var parts []string

	parts = append(parts, bg.Render("picket", styles.Logo))

	mode := m.session.Mode()
	parts = append(parts, styles.ModeStyle(mode).Render(strings.ToUpper(mode)))

	title := sel.Title()
	if title == "" {
		title = "Catalog"
	}
	maxTitle := 48
	if compact {
		maxTitle = 24
	}
	parts = append(parts, bg.Render(truncate(title, maxTitle), styles.Text.Bold(true)))

	parts = append(parts,
		bg.Render("Items:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Catalog.Items)), styles.Text),
	)

	if !compact {
		parts = append(parts,
			bg.Render("Gen:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.snapshot.Generation), styles.Text),
		)
	}

	if !m.snapshot.LoadedAt.IsZero() {
		parts = append(parts, bg.Render(humanizeAge(time.Since(m.snapshot.LoadedAt)), styles.MutedText))
	}

	if m.snapshot.FailedReloads > 0 {
		parts = append(parts,
			bg.Render("STALE", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(fmt.Sprintf("%d failed reloads", m.snapshot.FailedReloads), styles.WarningText),
		)
	}

	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the command hints bar (matching the tview
// cmdBar).
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := ui.NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.session.Mode() {
	case "multi", "drop":
		commands = []cmd{
			{"Space", "Mark"},
			{"Enter", "Confirm"},
			{"/", "By Category"},
			{"Tab", "Column"},
			{"Esc", "Cancel"},
		}
	case "compare":
		commands = []cmd{
			{"Space", "Mark Pair"},
			{"Enter", "Compare"},
			{"/", "By Category"},
			{"Tab", "Column"},
			{"Esc", "Cancel"},
		}
	default:
		commands = []cmd{
			{"Enter", "Select"},
			{"a-z", "Jump"},
			{"/", "By Category"},
			{"Tab", "Column"},
			{"Esc", "Cancel"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Help and theme indicators
	segments = append(segments,
		bg.Render("?", styles.AccentText)+colon+bg.Render("Help", styles.MutedText))
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// humanizeAge renders a duration since some event, compactly.
func humanizeAge(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
