package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/five82/picket/internal/selection"
	"github.com/five82/picket/internal/state"
)

// stubSubject and stubSession adapt the engine's pick variant to the
// Session surface the views consume.

type stubSubject struct {
	id  string
	key rune
}

func (s stubSubject) ID() string   { return s.id }
func (s stubSubject) Name() string { return s.id }
func (s stubSubject) Category() selection.Category {
	return selection.Category{ID: "tools", Name: "TOOLS", Rank: 1}
}
func (s stubSubject) QuickKey() rune { return s.key }

type stubSession struct {
	selection.Session
	synced int
}

func (s *stubSession) Mode() string { return "pick" }

func (s *stubSession) SyncCatalog(state.Snapshot) bool {
	s.synced++
	return false
}

func newPickSession(ids ...string) (*stubSession, *selection.PickSelector) {
	p := selection.NewPickSelector(selection.NewBasePreset())
	stacks := make([]selection.Stack, 0, len(ids))
	for i, id := range ids {
		stacks = append(stacks, selection.Stack{
			Subject: stubSubject{id: id, key: rune('a' + i)},
			Count:   1,
		})
	}
	p.AddCarriedStacks(stacks...)
	return &stubSession{Session: p}, p
}

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		name    string
		ev      *tcell.EventKey
		want    selection.Action
		wantKey rune
		ok      bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), selection.ActionUp, 0, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), selection.ActionDown, 0, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), selection.ActionLeft, 0, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), selection.ActionRight, 0, true},
		{"page_up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), selection.ActionPageUp, 0, true},
		{"page_down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), selection.ActionPageDown, 0, true},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), selection.ActionHome, 0, true},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), selection.ActionEnd, 0, true},
		{"confirm", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), selection.ActionConfirm, 0, true},
		{"cancel", tcell.NewEventKey(tcell.KeyESC, 0, tcell.ModNone), selection.ActionCancel, 0, true},
		{"next_column", tcell.NewEventKey(tcell.KeyTAB, 0, tcell.ModNone), selection.ActionSwitchColumn, 0, true},
		{"prev_column", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), selection.ActionLeft, 0, true},
		{"toggle", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), selection.ActionToggleSelect, 0, true},
		{"nav_mode", tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone), selection.ActionToggleMode, 0, true},
		{"quick_key", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), selection.ActionKey, 'x', true},
		{"function_key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), selection.ActionNone, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := decodeKey(tc.ev)
			if ok != tc.ok {
				t.Fatalf("decodeKey ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if in.Action != tc.want {
				t.Fatalf("decodeKey action = %v, want %v", in.Action, tc.want)
			}
			if in.Key != tc.wantKey {
				t.Fatalf("decodeKey key = %q, want %q", in.Key, tc.wantKey)
			}
		})
	}
}

func TestSelectorViewInputDrivesSession(t *testing.T) {
	sess, p := newPickSession("alpha", "bravo")
	p.PrepareLayout(60, 10)

	v := NewSelectorView(sess, GetTheme("Nightfox"))
	v.SetRect(0, 0, 60, 12)

	var done bool
	v.SetDoneFunc(func() { done = true })

	handler := v.InputHandler()
	press := func(ev *tcell.EventKey) {
		handler(ev, func(tview.Primitive) {})
	}

	press(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	press(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if !done {
		t.Fatal("done callback not fired after confirm")
	}
	got, ok := p.Result()
	if !ok || got.ID() != "bravo" {
		t.Fatalf("Result() = %v/%v, want bravo", got, ok)
	}
}

func TestSelectorViewDrawShowsEntries(t *testing.T) {
	sess, _ := newPickSession("alpha", "bravo")

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 12)

	v := NewSelectorView(sess, GetTheme("Nightfox"))
	v.SetRect(0, 0, 60, 12)
	v.Draw(screen)

	content := screenText(screen, 60, 12)
	for _, want := range []string{"TOOLS", "alpha", "bravo"} {
		if !strings.Contains(content, want) {
			t.Fatalf("drawn screen missing %q:\n%s", want, content)
		}
	}
}

func TestSelectorViewDrawEmptyState(t *testing.T) {
	sess := &stubSession{Session: selection.NewPickSelector(selection.NewBasePreset())}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 8)

	v := NewSelectorView(sess, GetTheme("Slate"))
	v.SetRect(0, 0, 40, 8)
	v.Draw(screen)

	if content := screenText(screen, 40, 8); !strings.Contains(content, "Nothing to select") {
		t.Fatalf("empty draw missing placeholder:\n%s", content)
	}
}

func screenText(screen tcell.SimulationScreen, width, height int) string {
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		b.WriteString("\n")
	}
	return b.String()
}
