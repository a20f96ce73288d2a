package selection

import "fmt"

// summaryRank pushes the mirror category after every catalog group.
const summaryRank = 1000

// Chosen is one line of a multi-selection result.
type Chosen struct {
	Subject Subject
	Count   int
}

// MultiSelector accumulates chosen counts across entries and mirrors them
// into a trailing summary column.
type MultiSelector struct {
	*Selector
	summary *Column
}

// NewMultiSelector builds a selector whose toggle-select flips rows between
// none and all available units.
func NewMultiSelector(preset Preset) *MultiSelector {
	m := &MultiSelector{selectorBase: NewSelector(preset)}
	ref := m.cats.Add(Category{ID: "selected", Name: "SELECTED", Rank: summaryRank})
	m.summary = newSummaryColumn(m.cats, ref)
	m.summary.onChange = m.mirrorEntry
	m.AppendColumn(m.summary)
	for _, col := range m.columns {
		col.SetMultiselect(true)
	}
	m.onEntryAdded = m.entryAdded
	return m
}

// newSummaryColumn builds the mirror column: no direct selection, active
// only once it paginates, every entry forced into the mirror category.
func newSummaryColumn(cats *Categories, ref int) *Column {
	col := NewColumn(newSummaryPreset(), cats)
	col.permitSelect = false
	col.pagedActivate = true
	col.forcedCat = ref
	col.SetMultiselect(true)
	return col
}

// summaryPreset captions mirrored rows and shows how much of each stack is
// chosen.
type summaryPreset struct {
	BasePreset
}

func newSummaryPreset() *summaryPreset {
	p := &summaryPreset{}
	p.AppendCell(Cell{Text: DefaultCaption})
	p.AppendCell(Cell{Text: chosenAmount, Title: "AMOUNT"})
	return p
}

func chosenAmount(e *Entry) string {
	if !e.IsItem() || e.ChosenCount <= 0 {
		return ""
	}
	if e.ChosenCount >= e.AvailableCount() {
		return fmt.Sprintf("%d", e.ChosenCount)
	}
	return fmt.Sprintf("%d of %d", e.ChosenCount, e.AvailableCount())
}

// OnInput adds chosen-count handling over the base routing.
func (m *MultiSelector) OnInput(in Input) {
	switch in.Action {
	case ActionToggleSelect:
		m.toggleChosen()
	case ActionConfirm:
		if len(m.chosenEntries()) > 0 {
			m.done = true
		}
	default:
		m.selectorBase.OnInput(in)
	}
}

// toggleChosen flips every highlighted row between none and all. A sweep
// holding any unchosen row chooses everything; a fully chosen sweep clears.
func (m *MultiSelector) toggleChosen() {
	col := m.ActiveColumn()
	if col == nil || !col.AllowsSelecting() {
		return
	}
	selected := col.GetAllSelected()
	if len(selected) == 0 {
		return
	}
	choose := false
	for _, e := range selected {
		if e.ChosenCount < e.AvailableCount() {
			choose = true
			break
		}
	}
	for _, e := range selected {
		n := 0
		if choose {
			n = e.AvailableCount()
		}
		m.SetChosen(e, n)
	}
}

// SetChosen clamps and records a chosen count and propagates the change to
// every column.
func (m *MultiSelector) SetChosen(e *Entry, n int) {
	if !e.IsItem() {
		return
	}
	if n < 0 {
		n = 0
	}
	if avail := e.AvailableCount(); n > avail {
		n = avail
	}
	if e.ChosenCount == n {
		return
	}
	e.ChosenCount = n
	m.onEntryChanged(e)
}

// entryAdded seeds the summary for entries that arrive pre-chosen.
func (m *MultiSelector) entryAdded(e *Entry) {
	if e.ChosenCount > 0 {
		m.mirrorEntry(e)
	}
}

// mirrorEntry keeps the summary row for e in step with its chosen count:
// added when it first goes positive, updated while it moves, removed when
// it returns to zero.
func (m *MultiSelector) mirrorEntry(e *Entry) {
	if !e.IsItem() {
		return
	}
	id := e.Subject().ID()
	have := m.summary.FindBySubject(id)
	switch {
	case e.ChosenCount <= 0:
		if have == nil {
			return
		}
		m.summary.RemoveBySubject(id)
	case have == nil:
		mirror := NewItemEntry(e.Subject(), e.CategoryRef(), e.StackSize())
		mirror.ChosenCount = e.ChosenCount
		mirror.CustomKey = e.QuickKey()
		m.summary.AddEntry(mirror)
	default:
		have.ChosenCount = e.ChosenCount
		have.stack = e.StackSize()
		have.CustomKey = e.QuickKey()
	}
	m.InvalidateLayout()
}

// chosenEntries lists every source entry with a positive chosen count,
// skipping the summary mirrors.
func (m *MultiSelector) chosenEntries() []*Entry {
	var out []*Entry
	for _, col := range m.columns {
		if col == m.summary {
			continue
		}
		for _, e := range col.Entries() {
			if e.IsItem() && e.ChosenCount > 0 {
				out = append(out, e)
			}
		}
	}
	return out
}

// ChosenCounts snapshots chosen counts by subject ID, for replay after the
// host rebuilds its stacks.
func (m *MultiSelector) ChosenCounts() map[string]int {
	out := make(map[string]int)
	for _, e := range m.chosenEntries() {
		out[e.Subject().ID()] = e.ChosenCount
	}
	return out
}

// ReplayChosen re-applies chosen counts after a rebuild. Subjects that no
// longer exist are silently dropped; counts clamp to the new availability.
func (m *MultiSelector) ReplayChosen(counts map[string]int) {
	for id, n := range counts {
		if e, col := m.FindEntryBySubject(id); e != nil && col != m.summary {
			m.SetChosen(e, n)
		}
	}
}

// Result lists every chosen subject with its count, nil after a cancel.
func (m *MultiSelector) Result() []Chosen {
	if m.canceled {
		return nil
	}
	entries := m.chosenEntries()
	out := make([]Chosen, 0, len(entries))
	for _, e := range entries {
		out = append(out, Chosen{Subject: e.Subject(), Count: e.ChosenCount})
	}
	return out
}
