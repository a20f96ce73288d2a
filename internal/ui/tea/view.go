package tea

import (
	"fmt"
	"strings"

	"github.com/five82/picket/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain renders the full UI (matching the tview layout): one status
// line, one command line, the selector, and a two-line footer.
func (m Model) renderMain() string {
	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderSelector(contentHeight))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderFooter renders stats, paging, and the status line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := ui.NewBgStyle(m.theme.Surface)
	sel := m.session.Selector()
	sep := bg.Sep("  •  ")

	var parts []string
	if m.width >= ui.LayoutStatsWidth {
		for _, st := range sel.Stats() {
			valueStyle := styles.Text
			if st.Over {
				valueStyle = styles.DangerText
			}
			parts = append(parts,
				bg.Render(st.Label+":", styles.MutedText)+bg.Space()+
					bg.Render(st.Value, valueStyle))
		}
	}
	if col := sel.ActiveColumn(); col != nil && col.PagesCount() > 1 {
		parts = append(parts,
			bg.Render("Page", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", col.PageIndex()+1, col.PagesCount()), styles.Text))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	status, danger := sel.FooterText()
	statusStyle := styles.MutedText
	if danger {
		statusStyle = styles.DangerText
	}
	second := []string{bg.Render(status, statusStyle)}
	if hint := sel.Hint(); hint != "" {
		second = append(second, bg.Render(hint, styles.MutedText))
	}

	line1 := styles.Footer.Width(m.width).Render(bg.Join(parts, sep))
	line2 := styles.Footer.Width(m.width).Render(bg.Join(second, sep))
	return line1 + "\n" + line2
}
