package selection

import (
	"math"
	"sort"

	"github.com/mattn/go-runewidth"
)

// Hard floors a cell may shrink to before it is hidden outright.
const (
	minCaptionWidth = 12
	minCellWidth    = 3
)

// Spacing inside and between columns, in screen cells.
const (
	cellGap   = 2
	denialGap = 2
	columnGap = 2
)

// Left margin of item rows. Multi-select sessions widen it to make room
// for the chosen marker.
const (
	entryIndent       = 2
	multiselectIndent = 2
)

type cellWidth struct {
	current int // negotiated width, 0 = hidden
	natural int // widest content measured
}

// Column flows entries under category headers, paginates them, and tracks
// the cursor row. Columns never draw; frontends read their prepared state.
type Column struct {
	preset Preset
	cats   *Categories

	entries     []*Entry
	selected    int
	pageOffset  int
	perPage     int
	pagingValid bool

	mode        NavMode
	multiselect bool
	visibility  bool
	active      bool

	widths   []cellWidth
	reserved int

	// Summary-style columns flip these: they refuse direct selection, only
	// activate once they paginate, and force every entry into one category.
	permitSelect  bool
	pagedActivate bool
	forcedCat     int

	// onChange, when set, observes chosen-count changes anywhere in the
	// selector. The summary column uses it to mirror chosen entries.
	onChange func(*Entry)
}

// NewColumn builds an empty column over a shared category table.
func NewColumn(preset Preset, cats *Categories) *Column {
	return &Column{
		preset:       preset,
		cats:         cats,
		perPage:      math.MaxInt,
		visibility:   true,
		permitSelect: true,
		forcedCat:    noCategory,
		widths:       make([]cellWidth, len(preset.Cells())),
	}
}

// Preset exposes the cell and color rules frontends render with.
func (c *Column) Preset() Preset {
	return c.preset
}

// AddEntry inserts an item entry, merging it into an existing stack when
// subject and category match. Returns the stored entry. Paging goes stale
// until PreparePaging runs again.
func (c *Column) AddEntry(e *Entry) *Entry {
	if !e.IsItem() {
		return nil
	}
	if c.forcedCat >= 0 {
		e.category = c.forcedCat
	}
	for _, have := range c.entries {
		if have.IsItem() && have.subject.ID() == e.subject.ID() && have.category == e.category {
			have.stack += e.stack
			c.ExpandToFit(have)
			c.pagingValid = false
			return have
		}
	}
	c.entries = append(c.entries, e)
	c.ExpandToFit(e)
	c.pagingValid = false
	return e
}

// FindBySubject returns the item entry for the given subject ID, nil when
// absent.
func (c *Column) FindBySubject(id string) *Entry {
	for _, e := range c.entries {
		if e.IsItem() && e.subject.ID() == id {
			return e
		}
	}
	return nil
}

// RemoveBySubject deletes the item entry for id, if present.
func (c *Column) RemoveBySubject(id string) bool {
	for i, e := range c.entries {
		if e.IsItem() && e.subject.ID() == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.pagingValid = false
			return true
		}
	}
	return false
}

// FindByKey returns the entry bound to the quick key, nil when none match.
func (c *Column) FindByKey(key rune) *Entry {
	if key == 0 {
		return nil
	}
	for _, e := range c.entries {
		if e.IsItem() && e.QuickKey() == key {
			return e
		}
	}
	return nil
}

// MoveEntriesTo merges every item entry into dst and clears this column.
func (c *Column) MoveEntriesTo(dst *Column) {
	for _, e := range c.entries {
		if e.IsItem() {
			dst.AddEntry(e)
		}
	}
	c.Clear()
}

// Clear drops all entries and resets selection and paging.
func (c *Column) Clear() {
	c.entries = nil
	c.selected = 0
	c.pageOffset = 0
	c.pagingValid = false
}

// Entries returns the prepared rows. Callers must not modify the slice.
func (c *Column) Entries() []*Entry {
	return c.entries
}

// Page returns the rows of the page the cursor sits on.
func (c *Column) Page() []*Entry {
	if len(c.entries) == 0 {
		return nil
	}
	start := c.pageOffset
	if start < 0 || start >= len(c.entries) {
		start = 0
	}
	end := start + c.perPage
	if end > len(c.entries) || end < 0 {
		end = len(c.entries)
	}
	return c.entries[start:end]
}

// Empty reports whether the column holds no entries at all.
func (c *Column) Empty() bool {
	return len(c.entries) == 0
}

// SetHeight fixes the page capacity. Zero or negative heights leave the
// column unpaginated.
func (c *Column) SetHeight(h int) {
	perPage := math.MaxInt
	if h > 0 {
		perPage = h
	}
	if perPage != c.perPage {
		c.perPage = perPage
		c.pagingValid = false
	}
}

// EntriesPerPage is the page capacity, math.MaxInt when unpaginated.
func (c *Column) EntriesPerPage() int {
	return c.perPage
}

// PagesCount is at least 1, even for an empty column.
func (c *Column) PagesCount() int {
	if len(c.entries) == 0 || c.perPage <= 0 {
		return 1
	}
	return (len(c.entries)-1)/c.perPage + 1
}

// PageIndex is the page the cursor currently sits on.
func (c *Column) PageIndex() int {
	return c.pageOf(c.pageOffset)
}

func (c *Column) pageOf(idx int) int {
	if c.perPage <= 0 {
		return 0
	}
	return idx / c.perPage
}

func (c *Column) rankOf(ref int) int {
	if cat := c.cats.Get(ref); cat != nil {
		return cat.Rank
	}
	return 0
}

// PreparePaging rebuilds the visual row order: item entries sorted by
// category rank and preset order, headers re-inserted at every group change
// and page top, and a null filler wherever a header would land on the last
// row of a page. Repeated calls without entry changes are no-ops.
func (c *Column) PreparePaging() {
	if c.pagingValid {
		return
	}
	items := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.IsItem() {
			items = append(items, e)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.category != b.category {
			ra, rb := c.rankOf(a.category), c.rankOf(b.category)
			if ra != rb {
				return ra < rb
			}
			return a.category < b.category
		}
		return c.preset.Compare(a.subject, b.subject)
	})

	c.entries = make([]*Entry, 0, len(items)+headerHeadroom(len(items)))
	current := noCategory
	for _, e := range items {
		topOfPage := len(c.entries)%c.perPage == 0
		if e.category != current || topOfPage {
			current = e.category
			if c.perPage > 1 && (len(c.entries)+1)%c.perPage == 0 {
				// A header on the last row of a page would sit apart from
				// its group, so pad the page and let it open the next one.
				c.entries = append(c.entries, newNullEntry())
			}
			c.entries = append(c.entries, NewCategoryEntry(e.category))
		}
		c.entries = append(c.entries, e)
	}

	target := min(c.selected, len(c.entries)-1)
	if !c.selectIndex(target, Forward) {
		c.selectIndex(target, Backward)
	}
	c.pagingValid = true
}

// headerHeadroom guesses the header overhead so the rebuild rarely regrows.
func headerHeadroom(n int) int {
	return n/8 + 4
}

// selectIndex snaps the cursor to the nearest selectable entry at or after
// idx in dir, without wrapping. Reports whether a selectable row was found.
func (c *Column) selectIndex(idx int, dir Direction) bool {
	if len(c.entries) == 0 {
		return false
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.entries) {
		idx = len(c.entries) - 1
	}
	for i := idx; i >= 0 && i < len(c.entries); i += int(dir) {
		if c.entries[i].IsSelectable() {
			c.selected = i
			c.pageOffset = i - i%c.perPage
			return true
		}
	}
	return false
}

// SelectEntry moves the cursor onto e when it belongs to this column.
func (c *Column) SelectEntry(e *Entry) bool {
	for i, have := range c.entries {
		if have == e {
			return c.selectIndex(i, Forward)
		}
	}
	return false
}

// nextSelectableIndex walks cyclically from idx in dir and returns the next
// selectable index, or idx itself when no other row qualifies.
func (c *Column) nextSelectableIndex(idx int, dir Direction) int {
	n := len(c.entries)
	if n == 0 {
		return idx
	}
	next := idx
	for {
		next = (next + n + int(dir)) % n
		if next == idx || c.entries[next].IsSelectable() {
			break
		}
	}
	if !c.entries[next].IsSelectable() {
		return idx
	}
	return next
}

// MoveSelection advances the cursor to the next selectable row, wrapping at
// the ends. Category navigation skips the rest of the highlighted group so
// one keypress moves a whole category.
func (c *Column) MoveSelection(dir Direction) {
	idx := c.selected
	for {
		idx = c.nextSelectableIndex(idx, dir)
		if idx == c.selected || !c.isSelectedByCategoryAt(idx) {
			break
		}
	}
	c.selectIndex(idx, dir)
}

// MoveSelectionPage moves to the first selectable row of the next page, or
// to the boundary row when the walk would wrap.
func (c *Column) MoveSelectionPage(dir Direction) {
	idx := c.selected
	startPage := c.PageIndex()
	for {
		next := c.nextSelectableIndex(idx, dir)
		if next == idx {
			break
		}
		if (next > idx) != (dir == Forward) {
			break // wrapped; stop at the boundary
		}
		idx = next
		if c.pageOf(idx) != startPage {
			break
		}
	}
	c.selectIndex(idx, dir)
}

// OnInput applies a navigation action. Actions the column does not handle
// are ignored so the selector can route freely.
func (c *Column) OnInput(in Input) {
	switch in.Action {
	case ActionUp:
		c.MoveSelection(Backward)
	case ActionDown:
		c.MoveSelection(Forward)
	case ActionPageUp:
		c.MoveSelectionPage(Backward)
	case ActionPageDown:
		c.MoveSelectionPage(Forward)
	case ActionHome:
		c.selectIndex(0, Forward)
	case ActionEnd:
		c.selectIndex(len(c.entries)-1, Backward)
	}
}

// OnChange notifies the column that an entry's chosen state changed
// somewhere in the selector.
func (c *Column) OnChange(e *Entry) {
	if c.onChange != nil {
		c.onChange(e)
	}
}

// GetSelected returns the cursor row, nil when the column is empty.
func (c *Column) GetSelected() *Entry {
	if c.selected < 0 || c.selected >= len(c.entries) {
		return nil
	}
	return c.entries[c.selected]
}

// GetAllSelected returns the rows the current mode treats as chosen: the
// cursor row, or in multi-select category navigation the whole highlighted
// group on the current page.
func (c *Column) GetAllSelected() []*Entry {
	if !c.AllowsSelecting() {
		return nil
	}
	var out []*Entry
	for i, e := range c.entries {
		if !e.IsItem() {
			continue
		}
		if e == c.GetSelected() || (c.multiselect && c.isSelectedByCategoryAt(i)) {
			out = append(out, e)
		}
	}
	return out
}

// IsSelected reports whether e is highlighted: the cursor row, or in
// multi-select category navigation every same-group row on the page.
func (c *Column) IsSelected(e *Entry) bool {
	if e == nil {
		return false
	}
	if e == c.GetSelected() {
		return true
	}
	return c.multiselect && c.IsSelectedByCategory(e)
}

// IsSelectedByCategory reports whether e is swept up by category
// navigation: an item of the cursor's category shown on the same page.
func (c *Column) IsSelectedByCategory(e *Entry) bool {
	for i, have := range c.entries {
		if have == e {
			return c.isSelectedByCategoryAt(i)
		}
	}
	return false
}

func (c *Column) isSelectedByCategoryAt(idx int) bool {
	if c.mode != NavByCategory {
		return false
	}
	e := c.entries[idx]
	if !e.IsItem() {
		return false
	}
	cur := c.GetSelected()
	if cur == nil {
		return false
	}
	return e.category == cur.category && c.pageOf(idx) == c.PageIndex()
}

// ReassignQuickKeys hands keys from [next, maxKey] to item entries that
// have none. Keys claimed elsewhere are skipped via reserved; entries that
// already carry a preset or custom key keep it untouched. Entries beyond
// the range stay keyless. Returns the next unassigned key so callers can
// continue across columns.
func (c *Column) ReassignQuickKeys(reserved func(rune) bool, next, maxKey rune) rune {
	for _, e := range c.entries {
		if !e.IsItem() || e.QuickKey() != 0 {
			continue
		}
		for next <= maxKey && reserved != nil && reserved(next) {
			next++
		}
		if next > maxKey {
			continue
		}
		e.CustomKey = next
		next++
	}
	return next
}

// SetMode switches navigation between by-item and by-category.
func (c *Column) SetMode(m NavMode) {
	c.mode = m
}

// Mode is the column's current navigation mode.
func (c *Column) Mode() NavMode {
	return c.mode
}

// SetMultiselect reserves marker space in the caption indent for chosen
// counts.
func (c *Column) SetMultiselect(v bool) {
	c.multiselect = v
}

// Multiselect reports whether the column renders chosen markers.
func (c *Column) Multiselect() bool {
	return c.multiselect
}

// SetVisibility shows or hides the column in layout. Hidden columns keep
// their entries and can be reached again through column cycling.
func (c *Column) SetVisibility(v bool) {
	c.visibility = v
}

// Visible reports whether the column takes part in rendering.
func (c *Column) Visible() bool {
	return c.visibility && len(c.entries) > 0
}

// Activatable reports whether column cycling may land here. Summary-style
// columns only accept the cursor once they paginate.
func (c *Column) Activatable() bool {
	if len(c.entries) == 0 {
		return false
	}
	if c.pagedActivate {
		return c.PagesCount() > 1
	}
	return true
}

// AllowsSelecting reports whether toggle-select may act on this column's
// rows.
func (c *Column) AllowsSelecting() bool {
	return c.permitSelect && c.Activatable()
}

// OnActivate marks the column as holding the cursor.
func (c *Column) OnActivate() {
	c.active = true
}

// OnDeactivate releases the cursor.
func (c *Column) OnDeactivate() {
	c.active = false
}

// Active reports whether the column holds the cursor.
func (c *Column) Active() bool {
	return c.active
}

// Indent is the left margin of item rows, widened in multi-select mode to
// fit the chosen marker.
func (c *Column) Indent() int {
	n := entryIndent
	if c.multiselect {
		n += multiselectIndent
	}
	return n
}

// CellText resolves the display text of cell i for entry e. Header rows
// show their category name in the caption cell; stubs fill empty item
// cells.
func (c *Column) CellText(e *Entry, i int) string {
	cells := c.preset.Cells()
	if i < 0 || i >= len(cells) {
		return ""
	}
	if i == 0 && e.IsCategory() {
		if cat := c.cats.Get(e.CategoryRef()); cat != nil {
			return cat.Name
		}
		return ""
	}
	if !e.IsItem() {
		return ""
	}
	text := ""
	if fn := cells[i].Text; fn != nil {
		text = fn(e)
	}
	if text == "" {
		return cells[i].Stub
	}
	return text
}

// entryCellWidth measures one cell of one row including its indent or gap.
func (c *Column) entryCellWidth(e *Entry, i int) int {
	w := runewidth.StringWidth(c.CellText(e, i))
	if i == 0 {
		if e.IsItem() {
			w += c.Indent()
		}
		return w
	}
	if w == 0 {
		return 0
	}
	return w + cellGap
}

func (c *Column) ensureWidths() {
	if n := len(c.preset.Cells()); len(c.widths) != n {
		c.widths = make([]cellWidth, n)
	}
}

// ExpandToFit widens the cached natural widths to cover e's cells and the
// column's denial reservation.
func (c *Column) ExpandToFit(e *Entry) {
	c.ensureWidths()
	for i := range c.widths {
		if w := c.entryCellWidth(e, i); w > c.widths[i].natural {
			c.widths[i].natural = w
		}
	}
	if d := runewidth.StringWidth(e.Denial()); d > 0 {
		if r := d + denialGap; r > c.reserved {
			c.reserved = r
		}
	}
}

// ResetWidth re-derives every natural width from the current entries and
// restores them as the working widths.
func (c *Column) ResetWidth() {
	c.widths = make([]cellWidth, len(c.preset.Cells()))
	c.reserved = 0
	for _, e := range c.entries {
		c.ExpandToFit(e)
	}
	for i := range c.widths {
		c.widths[i].current = c.widths[i].natural
	}
}

// Width is the negotiated column width: visible cells plus the denial
// reservation.
func (c *Column) Width() int {
	n := c.reserved
	for _, cw := range c.widths {
		n += cw.current
	}
	return n
}

// NaturalWidth is the width the column wants before negotiation.
func (c *Column) NaturalWidth() int {
	n := c.reserved
	for _, cw := range c.widths {
		n += cw.natural
	}
	return n
}

// MinWidth is the floor SetWidth can reach without hiding the caption.
func (c *Column) MinWidth() int {
	c.ensureWidths()
	if len(c.widths) == 0 {
		return c.reserved
	}
	floor := min(minCaptionWidth, c.widths[0].natural)
	return floor + c.reserved
}

// SetWidth forces the column into width. Shrinking takes from the
// rightmost cells down to their floors, then from the caption, then hides
// cells outright. Growth goes to the caption cell.
func (c *Column) SetWidth(width int) {
	c.ensureWidths()
	if len(c.widths) == 0 {
		return
	}
	excess := c.Width() - width
	if excess < 0 {
		c.widths[0].current -= excess
		return
	}
	for i := len(c.widths) - 1; i > 0 && excess > 0; i-- {
		give := min(c.widths[i].current-minCellWidth, excess)
		if give <= 0 {
			continue
		}
		c.widths[i].current -= give
		excess -= give
	}
	if excess > 0 {
		if give := min(c.widths[0].current-minCaptionWidth, excess); give > 0 {
			c.widths[0].current -= give
			excess -= give
		}
	}
	for i := len(c.widths) - 1; i > 0 && excess > 0; i-- {
		if c.widths[i].current > 0 {
			excess -= c.widths[i].current
			c.widths[i].current = 0
		}
	}
}

// CellWidths returns the negotiated width of every cell, 0 meaning hidden.
func (c *Column) CellWidths() []int {
	c.ensureWidths()
	out := make([]int, len(c.widths))
	for i, cw := range c.widths {
		out[i] = cw.current
	}
	return out
}

// ReservedWidth is the right-aligned space kept for denial text.
func (c *Column) ReservedWidth() int {
	return c.reserved
}
