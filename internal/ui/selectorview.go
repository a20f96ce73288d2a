package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/five82/picket/internal/selection"
)

// SelectorView is a tview primitive that draws a selection session's
// columns. The engine owns geometry; the view only paints prepared
// state, so Draw stays a straight transcription of column pages into
// screen cells.
type SelectorView struct {
	*tview.Box

	session Session
	theme   Theme
	done    func()
}

// NewSelectorView creates a view bound to a session.
func NewSelectorView(session Session, theme Theme) *SelectorView {
	v := &SelectorView{
		Box:     tview.NewBox(),
		session: session,
		theme:   theme,
	}
	v.SetBackgroundColor(hexToColor(theme.Background))
	return v
}

// SetTheme switches the palette used for subsequent draws.
func (v *SelectorView) SetTheme(theme Theme) {
	v.theme = theme
	v.SetBackgroundColor(hexToColor(theme.Background))
}

// SetDoneFunc installs the callback fired when the session reaches a
// terminal state after handling input.
func (v *SelectorView) SetDoneFunc(fn func()) {
	v.done = fn
}

// Draw renders the visible columns into the view's inner rectangle.
func (v *SelectorView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 || v.session == nil {
		return
	}

	sel := v.session.Selector()
	sel.PrepareLayout(width, height)

	if sel.Empty() {
		msg := "Nothing to select"
		style := tcell.StyleDefault.
			Background(hexToColor(v.theme.Background)).
			Foreground(hexToColor(v.theme.Faint))
		drawClipped(screen, x+(width-runewidth.StringWidth(msg))/2, y+height/2, x+width, msg, style)
		return
	}

	for i, col := range sel.VisibleColumns() {
		v.drawColumn(screen, x+sel.ColumnOffset(i), y, x+width, y+height, col)
	}
}

func (v *SelectorView) drawColumn(screen tcell.Screen, x, y, clipX, clipY int, col *selection.Column) {
	widths := col.CellWidths()
	reserved := col.ReservedWidth()
	colWidth := col.Width()
	for r, e := range col.Page() {
		if y+r >= clipY {
			break
		}
		v.drawRow(screen, x, y+r, clipX, col, e, widths, reserved, colWidth)
	}
}

func (v *SelectorView) drawRow(screen tcell.Screen, x, y, clipX int, col *selection.Column, e *selection.Entry, widths []int, reserved, colWidth int) {
	if e.IsNull() || len(widths) == 0 {
		return
	}
	base := tcell.StyleDefault.Background(hexToColor(v.theme.Background))

	if e.IsCategory() {
		style := base.Foreground(hexToColor(v.theme.Accent)).Bold(true)
		drawClipped(screen, x, y, clipX, padCell(col.CellText(e, 0), widths[0]), style)
		return
	}

	cursor := col.Active() && e == col.GetSelected()
	swept := col.Active() && !cursor && col.IsSelected(e)
	style := base.Foreground(hexToColor(v.theme.Text))
	switch {
	case cursor:
		style = tcell.StyleDefault.
			Background(hexToColor(v.theme.SelectionBg)).
			Foreground(hexToColor(v.theme.SelectionText))
	case swept:
		style = tcell.StyleDefault.
			Background(hexToColor(v.theme.FocusBg)).
			Foreground(hexToColor(v.theme.Text))
	case !e.Enabled():
		style = base.Foreground(hexToColor(v.theme.Faint))
	default:
		if c := col.Preset().Color(e); c != "" {
			style = base.Foreground(hexToColor(c))
		}
	}

	// Highlighted rows paint the whole column width first so the bar reads
	// as one piece under the cells.
	if cursor || swept {
		for i := 0; i < colWidth && x+i < clipX; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
	}

	// The indent zone in front of the caption holds the chosen marker and
	// the quick key.
	indent := col.Indent()
	if col.Multiselect() && e.ChosenCount > 0 && x < clipX {
		marker := '#'
		if e.ChosenCount >= e.StackSize() {
			marker = '+'
		}
		markerStyle := style.Bold(true)
		if !cursor && !swept {
			markerStyle = base.Foreground(hexToColor(v.theme.Success)).Bold(true)
		}
		screen.SetContent(x, y, marker, nil, markerStyle)
	}
	if k := e.QuickKey(); k != 0 && x+indent-2 < clipX {
		keyStyle := style
		if !cursor && !swept && e.Enabled() {
			keyStyle = base.Foreground(hexToColor(v.theme.Accent))
		}
		screen.SetContent(x+indent-2, y, k, nil, keyStyle)
	}

	if widths[0] > indent {
		drawClipped(screen, x+indent, y, clipX, padCell(col.CellText(e, 0), widths[0]-indent), style)
	}

	// Trailing cells are right-aligned inside their negotiated zones.
	cx := x + widths[0]
	for i := 1; i < len(widths); i++ {
		w := widths[i]
		if w <= 0 {
			continue
		}
		drawClipped(screen, cx, y, clipX, padLeftCell(col.CellText(e, i), w), style)
		cx += w
	}

	if d := e.Denial(); d != "" && reserved > 0 {
		denialStyle := base.Foreground(hexToColor(v.theme.Danger))
		drawClipped(screen, x+colWidth-reserved, y, clipX, padLeftCell(d, reserved), denialStyle)
	}
}

// drawClipped writes text starting at x, clipping at clipX. Widths follow
// runewidth so wide runes keep columns aligned.
func drawClipped(screen tcell.Screen, x, y, clipX int, text string, style tcell.Style) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > clipX {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

// InputHandler feeds decoded key events into the session.
func (v *SelectorView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if v.session == nil {
			return
		}
		in, ok := decodeKey(event)
		if !ok {
			return
		}
		v.session.OnInput(in)
		if v.session.Done() && v.done != nil {
			v.done()
		}
	})
}

// decodeKey translates a tcell key event into a selector input. The second
// return is false for keys the selector does not consume.
func decodeKey(event *tcell.EventKey) (selection.Input, bool) {
	switch event.Key() {
	case tcell.KeyUp:
		return selection.Input{Action: selection.ActionUp}, true
	case tcell.KeyDown:
		return selection.Input{Action: selection.ActionDown}, true
	case tcell.KeyLeft:
		return selection.Input{Action: selection.ActionLeft}, true
	case tcell.KeyRight:
		return selection.Input{Action: selection.ActionRight}, true
	case tcell.KeyPgUp:
		return selection.Input{Action: selection.ActionPageUp}, true
	case tcell.KeyPgDn:
		return selection.Input{Action: selection.ActionPageDown}, true
	case tcell.KeyHome:
		return selection.Input{Action: selection.ActionHome}, true
	case tcell.KeyEnd:
		return selection.Input{Action: selection.ActionEnd}, true
	case tcell.KeyEnter:
		return selection.Input{Action: selection.ActionConfirm}, true
	case tcell.KeyESC:
		return selection.Input{Action: selection.ActionCancel}, true
	case tcell.KeyTAB:
		return selection.Input{Action: selection.ActionSwitchColumn}, true
	case tcell.KeyBacktab:
		return selection.Input{Action: selection.ActionLeft}, true
	case tcell.KeyRune:
		switch r := event.Rune(); r {
		case ' ':
			return selection.Input{Action: selection.ActionToggleSelect}, true
		case '/':
			return selection.Input{Action: selection.ActionToggleMode}, true
		default:
			// Letters and digits are quick-key jumps; unbound keys fall
			// through inside the engine.
			if r > ' ' {
				return selection.Input{Action: selection.ActionKey, Key: r}, true
			}
		}
	}
	return selection.Input{}, false
}
