package tea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/picket/internal/selection"
	"github.com/five82/picket/internal/ui"
)

// renderSelector renders the visible columns into a block of height rows.
// The engine owns geometry; this mirrors the tview SelectorView cell for
// cell so both frontends show the same layout.
func (m Model) renderSelector(height int) string {
	styles := m.theme.Styles()
	sel := m.session.Selector()
	sel.PrepareLayout(m.width, height)

	if sel.Empty() {
		return lipgloss.Place(
			m.width,
			height,
			lipgloss.Center,
			lipgloss.Center,
			styles.FaintText.Render("Nothing to select"),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
		)
	}

	cols := sel.VisibleColumns()
	blocks := make([]string, 0, len(cols)*2)
	end := 0
	for i, col := range cols {
		offset := sel.ColumnOffset(i)
		if gap := offset - end; gap > 0 {
			blocks = append(blocks, strings.Repeat(" ", gap))
		}
		blocks = append(blocks, m.renderColumn(col, height, styles))
		end = offset + col.Width()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model) renderColumn(col *selection.Column, height int, styles ui.Styles) string {
	rows := make([]string, 0, height)
	for _, e := range col.Page() {
		if len(rows) == height {
			break
		}
		rows = append(rows, m.renderRow(col, e, styles))
	}
	blank := strings.Repeat(" ", col.Width())
	for len(rows) < height {
		rows = append(rows, blank)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(col *selection.Column, e *selection.Entry, styles ui.Styles) string {
	width := col.Width()
	widths := col.CellWidths()
	if e.IsNull() || len(widths) == 0 {
		return strings.Repeat(" ", width)
	}
	if e.IsCategory() {
		return styles.AccentText.Bold(true).Render(padCell(col.CellText(e, 0), width))
	}

	indent := col.Indent()
	caption := ""
	if widths[0] > indent {
		caption = padCell(col.CellText(e, 0), widths[0]-indent)
	}
	var trail strings.Builder
	for i := 1; i < len(widths); i++ {
		if widths[i] <= 0 {
			continue
		}
		trail.WriteString(padLeftCell(col.CellText(e, i), widths[i]))
	}
	reserved := col.ReservedWidth()
	denial := ""
	if reserved > 0 {
		denial = strings.Repeat(" ", reserved)
		if d := e.Denial(); d != "" {
			denial = padLeftCell(d, reserved)
		}
	}

	// Highlighted rows take one style across the full width so the bar
	// reads as one piece.
	cursor := col.Active() && e == col.GetSelected()
	swept := col.Active() && !cursor && col.IsSelected(e)
	if cursor || swept {
		plain := plainLead(col, e) + caption + trail.String() + denial
		if cursor {
			return styles.Selected.Render(padCell(plain, width))
		}
		return styles.Swept.Render(padCell(plain, width))
	}

	rowStyle := styles.Text
	if !e.Enabled() {
		rowStyle = styles.FaintText
	} else if c := col.Preset().Color(e); c != "" {
		rowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	var b strings.Builder
	b.WriteString(m.renderLead(col, e, styles))
	b.WriteString(rowStyle.Render(caption))
	b.WriteString(rowStyle.Render(trail.String()))
	if denial != "" {
		if e.Denial() != "" {
			b.WriteString(styles.DangerText.Render(denial))
		} else {
			b.WriteString(denial)
		}
	}
	return b.String()
}

// renderLead styles the indent zone: the chosen marker and the quick key.
func (m Model) renderLead(col *selection.Column, e *selection.Entry, styles ui.Styles) string {
	var b strings.Builder
	if col.Multiselect() {
		if e.ChosenCount > 0 {
			marker := "#"
			if e.ChosenCount >= e.StackSize() {
				marker = "+"
			}
			b.WriteString(styles.SuccessText.Render(marker))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(" ")
	}
	if k := e.QuickKey(); k != 0 {
		keyStyle := styles.AccentText
		if !e.Enabled() {
			keyStyle = styles.FaintText
		}
		b.WriteString(keyStyle.Render(string(k)))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")
	return b.String()
}

// plainLead is the unstyled indent zone for highlighted rows.
func plainLead(col *selection.Column, e *selection.Entry) string {
	var b strings.Builder
	if col.Multiselect() {
		if e.ChosenCount > 0 {
			if e.ChosenCount >= e.StackSize() {
				b.WriteString("+")
			} else {
				b.WriteString("#")
			}
		} else {
			b.WriteString(" ")
		}
		b.WriteString(" ")
	}
	if k := e.QuickKey(); k != 0 {
		b.WriteRune(k)
	} else {
		b.WriteString(" ")
	}
	b.WriteString(" ")
	return b.String()
}

// padCell pads or truncates s to an exact display width.
func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// padLeftCell right-aligns s within an exact display width.
func padLeftCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillLeft(s, width)
}
