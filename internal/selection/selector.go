package selection

// Standard column slots. Side columns fold into the carried column when the
// client is too narrow for them.
const (
	carriedColumn = iota
	gearColumn
	groundColumn
)

// Auto-assigned quick keys come from the digit range. Letters belong to
// presets and user pins and are never handed out here.
const (
	quickKeyMin = '0'
	quickKeyMax = '9'
)

// StatLine is one host-provided figure shown under the list, weight or
// volume in the reference app. Over marks the value as exceeding its
// budget.
type StatLine struct {
	Label string
	Value string
	Over  bool
}

// Session is the loop contract between a selector variant and a frontend:
// feed inputs until Done, then read the variant's result.
type Session interface {
	OnInput(Input)
	Done() bool
	Selector() *Selector
}

// Selector composes columns over a shared category table, routes input,
// and owns layout, quick keys, and modal state.
type Selector struct {
	preset Preset
	cats   *Categories

	columns []*Column
	active  int
	offsets []int

	mode  NavMode
	title string
	hint  string
	stats func() []StatLine

	layoutValid  bool
	lastW, lastH int

	done     bool
	canceled bool

	// onEntryAdded observes every entry accepted into a column so variants
	// can seed state from pre-chosen rows.
	onEntryAdded func(*Entry)
}

// NewSelector builds a selector with the three standard source columns:
// carried, gear, ground.
func NewSelector(preset Preset) *Selector {
	cats := NewCategories()
	return &Selector{
		preset: preset,
		cats:   cats,
		columns: []*Column{
			NewColumn(preset, cats),
			NewColumn(preset, cats),
			NewColumn(preset, cats),
		},
	}
}

// Selector returns the receiver so every variant satisfies Session through
// embedding.
func (s *Selector) Selector() *Selector {
	return s
}

// selectorBase is what variants embed: embedding Selector directly would
// name the field Selector, shadowing the promoted Selector method that
// Session requires.
type selectorBase = Selector

// Categories exposes the category table entries refer into.
func (s *Selector) Categories() *Categories {
	return s.cats
}

// Preset is the rule set this selector was built with.
func (s *Selector) Preset() Preset {
	return s.preset
}

// Mode is the current navigation mode.
func (s *Selector) Mode() NavMode {
	return s.mode
}

// AddCarriedStacks feeds carried stacks through the preset into the main
// column under their base categories.
func (s *Selector) AddCarriedStacks(stacks ...Stack) {
	for _, st := range stacks {
		s.addStack(s.columns[carriedColumn], st, "")
	}
}

// AddGearStacks feeds worn or wielded stacks into the gear column under an
// origin-specific category.
func (s *Selector) AddGearStacks(origin string, stacks ...Stack) {
	for _, st := range stacks {
		s.addStack(s.columns[gearColumn], st, origin)
	}
}

// AddGroundStacks feeds nearby stacks into the ground column under an
// origin-specific category.
func (s *Selector) AddGroundStacks(origin string, stacks ...Stack) {
	for _, st := range stacks {
		s.addStack(s.columns[groundColumn], st, origin)
	}
}

func (s *Selector) addStack(col *Column, st Stack, origin string) {
	if st.Subject == nil || st.Count <= 0 {
		return
	}
	if !s.preset.Shown(st.Subject) {
		return
	}
	ref := s.cats.Naturalize(st.Subject.Category(), origin)
	e := NewItemEntry(st.Subject, ref, st.Count)
	if denial := s.preset.Denial(st.Subject); denial != "" {
		e.denial = denial
		e.enabled = false
	}
	stored := col.AddEntry(e)
	s.layoutValid = false
	if stored != nil && s.onEntryAdded != nil {
		s.onEntryAdded(stored)
	}
}

// AppendColumn adds a custom column after the standard three.
func (s *Selector) AppendColumn(col *Column) {
	col.SetMode(s.mode)
	s.columns = append(s.columns, col)
	s.layoutValid = false
}

// Reset drops every entry while keeping columns, preset, and categories.
// Hosts call it before re-adding stacks after their data changed.
func (s *Selector) Reset() {
	for _, col := range s.columns {
		col.Clear()
	}
	s.layoutValid = false
}

// InvalidateLayout forces the next PrepareLayout to renegotiate.
func (s *Selector) InvalidateLayout() {
	s.layoutValid = false
}

// PrepareLayout lays the columns into a client rectangle. Cheap when the
// size is unchanged and nothing moved since the last call.
func (s *Selector) PrepareLayout(width, height int) {
	if s.layoutValid && width == s.lastW && height == s.lastH {
		return
	}
	for _, col := range s.columns {
		col.SetHeight(height)
		col.PreparePaging()
		col.ResetWidth()
	}
	s.rearrangeColumns(width)
	s.reassignQuickKeys()
	s.refreshActiveColumn()
	s.lastW, s.lastH = width, height
	s.layoutValid = true
}

// rearrangeColumns fits the visible columns into the client width:
// shrink the widest first, hide from the right when floors are not enough,
// and as a last resort fold the side columns into the main one.
func (s *Selector) rearrangeColumns(clientWidth int) {
	for _, col := range s.columns {
		col.SetVisibility(true)
	}

	for s.visibleWidth() > clientWidth {
		var widest *Column
		for _, col := range s.VisibleColumns() {
			if col.Width() <= col.MinWidth() {
				continue
			}
			if widest == nil || col.Width() > widest.Width() {
				widest = col
			}
		}
		if widest == nil {
			break
		}
		widest.SetWidth(widest.Width() - 1)
	}

	// Hide from the right, sparing the active column so a swap made through
	// ToggleActiveColumn survives the next layout pass.
	for s.visibleWidth() > clientWidth {
		vis := s.VisibleColumns()
		if len(vis) <= 1 {
			break
		}
		hid := false
		for i := len(vis) - 1; i >= 0; i-- {
			if vis[i] != s.ActiveColumn() {
				vis[i].SetVisibility(false)
				hid = true
				break
			}
		}
		if !hid {
			break
		}
	}

	if s.visibleWidth() > clientWidth {
		s.foldSideColumns(clientWidth)
	}

	s.placeColumns(clientWidth)
}

// foldSideColumns merges gear and ground into the carried column when even
// a lone column cannot fit, so no entry becomes unreachable.
func (s *Selector) foldSideColumns(clientWidth int) {
	main := s.columns[carriedColumn]
	if !s.columns[gearColumn].Empty() || !s.columns[groundColumn].Empty() {
		s.columns[gearColumn].MoveEntriesTo(main)
		s.columns[groundColumn].MoveEntriesTo(main)
		main.SetVisibility(true)
		main.PreparePaging()
		main.ResetWidth()
	}
	if main.Width() > clientWidth {
		main.SetWidth(clientWidth)
	}
}

// placeColumns fixes the x offset of every visible column: centered while
// the row occupies at most 4/5 of the client, left-aligned when tighter.
func (s *Selector) placeColumns(clientWidth int) {
	vis := s.VisibleColumns()
	total := s.visibleWidth()
	x := 0
	if total <= clientWidth*4/5 {
		x = (clientWidth - total) / 2
	}
	s.offsets = s.offsets[:0]
	for _, col := range vis {
		s.offsets = append(s.offsets, x)
		x += col.Width() + columnGap
	}
}

// VisibleColumns returns the columns that take part in rendering, in order.
func (s *Selector) VisibleColumns() []*Column {
	out := make([]*Column, 0, len(s.columns))
	for _, col := range s.columns {
		if col.Visible() {
			out = append(out, col)
		}
	}
	return out
}

// ColumnOffset is the x position of visible column i inside the client
// rectangle.
func (s *Selector) ColumnOffset(i int) int {
	if i < 0 || i >= len(s.offsets) {
		return 0
	}
	return s.offsets[i]
}

func (s *Selector) visibleWidth() int {
	vis := s.VisibleColumns()
	if len(vis) == 0 {
		return 0
	}
	n := columnGap * (len(vis) - 1)
	for _, col := range vis {
		n += col.Width()
	}
	return n
}

// reassignQuickKeys hands digit keys to entries without one. Keys already
// claimed anywhere, by preset preference or user pin, are collected first
// so no key is ever bound twice across columns.
func (s *Selector) reassignQuickKeys() {
	taken := make(map[rune]bool)
	for _, col := range s.columns {
		for _, e := range col.Entries() {
			if k := e.QuickKey(); k != 0 {
				taken[k] = true
			}
		}
	}
	reserved := func(k rune) bool { return taken[k] }
	next := rune(quickKeyMin)
	for _, col := range s.columns {
		if !col.permitSelect {
			continue
		}
		next = col.ReassignQuickKeys(reserved, next, quickKeyMax)
	}
}

// refreshActiveColumn moves the cursor off a hidden or drained column.
func (s *Selector) refreshActiveColumn() {
	if s.active >= 0 && s.active < len(s.columns) {
		col := s.columns[s.active]
		if col.Visible() && col.Activatable() {
			col.OnActivate()
			return
		}
		col.OnDeactivate()
	}
	for i, col := range s.columns {
		if col.Visible() && col.Activatable() {
			s.setActiveColumn(i)
			return
		}
	}
}

func (s *Selector) setActiveColumn(i int) {
	if cur := s.ActiveColumn(); cur != nil && i != s.active {
		cur.OnDeactivate()
	}
	s.active = i
	s.columns[i].OnActivate()
}

// ActiveColumn returns the column holding the cursor.
func (s *Selector) ActiveColumn() *Column {
	if s.active < 0 || s.active >= len(s.columns) {
		return nil
	}
	return s.columns[s.active]
}

// ToggleActiveColumn cycles the cursor to the next activatable column in
// dir. Activating a hidden column swaps its visibility with the current
// one so narrow layouts still reach every column.
func (s *Selector) ToggleActiveColumn(dir Direction) {
	n := len(s.columns)
	if n == 0 {
		return
	}
	idx := s.active
	for i := 0; i < n; i++ {
		idx = (idx + n + int(dir)) % n
		if idx == s.active {
			return
		}
		col := s.columns[idx]
		if !col.Activatable() {
			continue
		}
		if !col.Visible() {
			if cur := s.ActiveColumn(); cur != nil {
				cur.SetVisibility(false)
			}
			col.SetVisibility(true)
			s.layoutValid = false
		}
		s.setActiveColumn(idx)
		return
	}
}

// ToggleNavMode flips between item and category navigation everywhere.
func (s *Selector) ToggleNavMode() {
	if s.mode == NavByItem {
		s.mode = NavByCategory
	} else {
		s.mode = NavByItem
	}
	for _, col := range s.columns {
		col.SetMode(s.mode)
	}
}

// OnInput routes one input: cancel closes the session, quick keys jump to
// their entry, column cycling moves the cursor sideways, and everything
// else reaches the active column.
func (s *Selector) OnInput(in Input) {
	switch in.Action {
	case ActionCancel:
		s.done = true
		s.canceled = true
	case ActionToggleMode:
		s.ToggleNavMode()
	case ActionLeft:
		s.ToggleActiveColumn(Backward)
	case ActionRight, ActionSwitchColumn:
		s.ToggleActiveColumn(Forward)
	case ActionKey:
		if e, col := s.FindEntryByKey(in.Key); e != nil {
			s.jumpTo(col, e)
		}
	default:
		if col := s.ActiveColumn(); col != nil {
			col.OnInput(in)
		}
	}
}

// FindEntryByKey searches every column for the entry bound to key.
func (s *Selector) FindEntryByKey(key rune) (*Entry, *Column) {
	for _, col := range s.columns {
		if e := col.FindByKey(key); e != nil {
			return e, col
		}
	}
	return nil, nil
}

// FindEntryBySubject searches every column for the entry holding subject
// id.
func (s *Selector) FindEntryBySubject(id string) (*Entry, *Column) {
	for _, col := range s.columns {
		if e := col.FindBySubject(id); e != nil {
			return e, col
		}
	}
	return nil, nil
}

// jumpTo activates the column holding e and moves the cursor onto it,
// swapping visibility when the column is hidden.
func (s *Selector) jumpTo(col *Column, e *Entry) {
	for i, have := range s.columns {
		if have != col {
			continue
		}
		if !col.Visible() {
			if cur := s.ActiveColumn(); cur != nil {
				cur.SetVisibility(false)
			}
			col.SetVisibility(true)
			s.layoutValid = false
		}
		s.setActiveColumn(i)
		col.SelectEntry(e)
		return
	}
}

// onEntryChanged fans an entry mutation out to every column and schedules
// a fresh layout.
func (s *Selector) onEntryChanged(e *Entry) {
	for _, col := range s.columns {
		col.OnChange(e)
	}
	s.layoutValid = false
}

// Selected is the entry under the cursor.
func (s *Selector) Selected() *Entry {
	if col := s.ActiveColumn(); col != nil {
		return col.GetSelected()
	}
	return nil
}

// AllSelected is every entry the current mode highlights in the active
// column.
func (s *Selector) AllSelected() []*Entry {
	if col := s.ActiveColumn(); col != nil {
		return col.GetAllSelected()
	}
	return nil
}

// HasAvailableChoices reports whether any entry anywhere can be chosen.
func (s *Selector) HasAvailableChoices() bool {
	for _, col := range s.columns {
		for _, e := range col.Entries() {
			if e.IsSelectable() {
				return true
			}
		}
	}
	return false
}

// Empty reports whether no column holds any entry.
func (s *Selector) Empty() bool {
	for _, col := range s.columns {
		if !col.Empty() {
			return false
		}
	}
	return true
}

// SetTitle sets the frame caption frontends draw.
func (s *Selector) SetTitle(t string) {
	s.title = t
}

// Title is the frame caption.
func (s *Selector) Title() string {
	return s.title
}

// SetHint sets the line shown under the title.
func (s *Selector) SetHint(h string) {
	s.hint = h
}

// Hint is the line shown under the title.
func (s *Selector) Hint() string {
	return s.hint
}

// SetStatsProvider installs a host callback producing the figures shown
// under the list.
func (s *Selector) SetStatsProvider(fn func() []StatLine) {
	s.stats = fn
}

// Stats returns the host's current stat lines, nil without a provider.
func (s *Selector) Stats() []StatLine {
	if s.stats == nil {
		return nil
	}
	return s.stats()
}

// FooterText is the status line; danger is true when nothing in the list
// can be chosen.
func (s *Selector) FooterText() (text string, danger bool) {
	if !s.HasAvailableChoices() {
		return "No available choices", true
	}
	return s.mode.Label(), false
}

// Done reports whether the session reached a terminal state.
func (s *Selector) Done() bool {
	return s.done
}

// Canceled reports whether the session ended without a result.
func (s *Selector) Canceled() bool {
	return s.canceled
}
