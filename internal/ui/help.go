package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// showHelp opens a modal listing every binding from the shared keymap,
// laid out k9s-style in columns of bracketed keys.
func (vm *viewModel) showHelp() {
	var pairs []struct{ key, desc string }
	for _, group := range DefaultKeyMap().FullHelp() {
		for _, b := range group {
			h := b.Help()
			if h.Key == "" && h.Desc == "" {
				continue
			}
			pairs = append(pairs, struct{ key, desc string }{h.Key, h.Desc})
		}
	}

	var helpLines []string
	maxRows := 5
	for i, p := range pairs {
		row := i % maxRows
		col := i / maxRows

		text := fmt.Sprintf("[%s]<%s>[%s] %s", vm.theme.Accent, p.key, vm.theme.Muted, p.desc)
		for len(helpLines) <= row {
			helpLines = append(helpLines, "")
		}
		if col > 0 {
			helpLines[row] += "  |  " + text
		} else {
			helpLines[row] = text
		}
	}

	text := strings.Join(helpLines, "\n")
	modal := tview.NewModal().SetText(text).AddButtons([]string{"Close"})
	modal.SetBorderColor(hexToColor(vm.theme.BorderFocus))
	modal.SetBackgroundColor(hexToColor(vm.theme.Surface))
	modal.SetTextColor(hexToColor(vm.theme.Text))
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		vm.hideHelp()
	})
	vm.root.RemovePage("help")
	vm.root.AddPage("help", center(75, maxRows+5, modal), true, true)
	vm.app.SetFocus(modal)
}

func (vm *viewModel) hideHelp() {
	vm.root.RemovePage("help")
	vm.app.SetFocus(vm.selector)
}
