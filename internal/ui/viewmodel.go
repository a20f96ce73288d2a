package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/five82/picket/internal/state"
)

type viewModel struct {
	// Core application state
	app     *tview.Application
	options Options
	root    *tview.Pages
	theme   Theme

	// Header components
	header      *tview.Flex
	statusView  *tview.TextView
	cmdBar      *tview.TextView
	logoView    *tview.TextView
	lastRefresh time.Time

	// Main content views
	selector   *SelectorView
	footerView *tview.TextView
	mainLayout *tview.Flex

	lastSnap state.Snapshot
}

func newViewModel(app *tview.Application, opts Options) *viewModel {
	theme := GetTheme(opts.ThemeName)
	bg := hexToColor(theme.Background)

	// Override focus borders to use single lines instead of double lines
	tview.Borders.HorizontalFocus = tview.Borders.Horizontal
	tview.Borders.VerticalFocus = tview.Borders.Vertical
	tview.Borders.TopLeftFocus = tview.Borders.TopLeft
	tview.Borders.TopRightFocus = tview.Borders.TopRight
	tview.Borders.BottomLeftFocus = tview.Borders.BottomLeft
	tview.Borders.BottomRightFocus = tview.Borders.BottomRight

	tview.Styles.PrimitiveBackgroundColor = bg
	tview.Styles.ContrastBackgroundColor = bg
	tview.Styles.MoreContrastBackgroundColor = bg
	tview.Styles.PrimaryTextColor = tcell.ColorDefault // Allow dynamic colors

	// Header components (compact toolbar)
	statusView := tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	statusView.SetTextAlign(tview.AlignLeft)
	statusView.SetBackgroundColor(bg)

	// Commands section as a single-line toolbar
	cmdBar := tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	cmdBar.SetBackgroundColor(bg)
	cmdBar.SetTextAlign(tview.AlignLeft)

	logoView := tview.NewTextView()
	logoView.SetTextAlign(tview.AlignLeft)
	logoView.SetDynamicColors(true)
	logoView.SetRegions(true)
	logoView.SetBackgroundColor(bg)
	logoView.SetText(createLogo(theme.Warning))

	selector := NewSelectorView(opts.Session, theme)

	footerView := tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	footerView.SetTextAlign(tview.AlignLeft)
	footerView.SetBackgroundColor(bg)

	vm := &viewModel{
		app:        app,
		options:    opts,
		theme:      theme,
		statusView: statusView,
		cmdBar:     cmdBar,
		logoView:   logoView,
		selector:   selector,
		footerView: footerView,
	}

	selector.SetDoneFunc(func() {
		app.Stop()
	})

	vm.root = tview.NewPages()
	vm.root.SetBackgroundColor(bg)
	vm.root.AddPage("main", vm.buildMainLayout(), true, true)

	app.SetRoot(vm.root, true)
	app.SetFocus(vm.selector)
	vm.setCommandBar(opts.Session.Mode())
	if opts.Store != nil {
		vm.update(opts.Store.Snapshot())
	}

	return vm
}

func (vm *viewModel) buildMainLayout() tview.Primitive {
	bg := hexToColor(vm.theme.Background)

	// Header: dense two-line bar (status + commands) with compact logo
	headerTop := tview.NewFlex().SetDirection(tview.FlexColumn)
	headerTop.SetBackgroundColor(bg)
	headerTop.
		AddItem(vm.logoView, 8, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(vm.statusView, 0, 1, false)

	vm.header = tview.NewFlex().SetDirection(tview.FlexRow)
	vm.header.SetBackgroundColor(bg)
	vm.header.
		AddItem(headerTop, 0, 1, false).
		AddItem(vm.cmdBar, 1, 0, false)

	vm.mainLayout = tview.NewFlex().SetDirection(tview.FlexRow)
	vm.mainLayout.SetBackgroundColor(bg)
	vm.mainLayout.
		AddItem(vm.header, HeaderRows, 0, false).
		AddItem(vm.selector, 0, 1, true).
		AddItem(vm.footerView, FooterRows, 0, false)

	return vm.mainLayout
}

func (vm *viewModel) setCommandBar(mode string) {
	type cmd struct{ key, desc string }
	var commands []cmd
	switch mode {
	case "multi", "drop":
		commands = []cmd{
			{"<Space>", "Mark"},
			{"<Enter>", "Confirm"},
			{"</>", "By Category"},
			{"<Tab>", "Column"},
			{"<T>", "Theme"},
			{"<?>", "Help"},
			{"<Esc>", "Cancel"},
		}
	case "compare":
		commands = []cmd{
			{"<Space>", "Mark Pair"},
			{"<Enter>", "Compare"},
			{"</>", "By Category"},
			{"<Tab>", "Column"},
			{"<T>", "Theme"},
			{"<?>", "Help"},
			{"<Esc>", "Cancel"},
		}
	default:
		commands = []cmd{
			{"<Enter>", "Select"},
			{"<a-z>", "Jump"},
			{"</>", "By Category"},
			{"<Tab>", "Column"},
			{"<T>", "Theme"},
			{"<?>", "Help"},
			{"<Esc>", "Cancel"},
		}
	}

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments, fmt.Sprintf("[%s]%s[-] [%s]%s[-]",
			vm.theme.Accent, c.key, vm.theme.Muted, c.desc))
	}
	vm.cmdBar.SetText(strings.Join(segments, "  •  "))
}

func (vm *viewModel) cycleTheme() {
	next := NextTheme(vm.theme.Name)
	vm.applyTheme(GetTheme(next))
	if vm.options.OnThemeChange != nil {
		vm.options.OnThemeChange(next)
	}
}

func (vm *viewModel) applyTheme(theme Theme) {
	vm.theme = theme
	bg := hexToColor(theme.Background)

	tview.Styles.PrimitiveBackgroundColor = bg
	tview.Styles.ContrastBackgroundColor = bg
	tview.Styles.MoreContrastBackgroundColor = bg

	vm.root.SetBackgroundColor(bg)
	vm.mainLayout.SetBackgroundColor(bg)
	vm.header.SetBackgroundColor(bg)
	vm.statusView.SetBackgroundColor(bg)
	vm.cmdBar.SetBackgroundColor(bg)
	vm.logoView.SetBackgroundColor(bg)
	vm.footerView.SetBackgroundColor(bg)
	vm.logoView.SetText(createLogo(theme.Warning))
	vm.selector.SetTheme(theme)

	vm.setCommandBar(vm.options.Session.Mode())
	vm.renderStatus(vm.lastSnap)
	vm.renderFooter()
}
