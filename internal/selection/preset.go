package selection

import "fmt"

// Cell is one column of text within a row.
type Cell struct {
	// Text renders the cell for an item entry. Empty output falls back to
	// Stub.
	Text  func(*Entry) string
	Title string
	Stub  string
}

// Preset decides which subjects appear in a selector, how rows order within
// a category, and what each cell of a row shows.
type Preset interface {
	// Shown filters subjects at the door; hidden subjects never become
	// entries.
	Shown(Subject) bool
	// Denial returns a non-empty reason when the subject may not be chosen.
	// Denied subjects still appear, disabled, with the reason shown
	// right-aligned in the column.
	Denial(Subject) string
	// Compare is a strict weak order applied within one category.
	Compare(a, b Subject) bool
	// Color returns a hex row color, "" for the frontend default.
	Color(*Entry) string
	// Cells lists the cell layout. The first cell is the caption; header
	// rows render the category name there.
	Cells() []Cell
}

// BasePreset implements Preset with permissive defaults and a caption cell.
// Embed it and override what the host cares about.
type BasePreset struct {
	cells []Cell
}

// NewBasePreset returns a preset whose single cell captions entries with
// their stack count and subject name.
func NewBasePreset() *BasePreset {
	p := &BasePreset{}
	p.AppendCell(Cell{Text: DefaultCaption})
	return p
}

func (p *BasePreset) Shown(Subject) bool { return true }

func (p *BasePreset) Denial(Subject) string { return "" }

func (p *BasePreset) Compare(a, b Subject) bool { return a.Name() < b.Name() }

func (p *BasePreset) Color(*Entry) string { return "" }

func (p *BasePreset) Cells() []Cell { return p.cells }

// AppendCell adds a cell definition after the existing ones.
func (p *BasePreset) AppendCell(c Cell) {
	p.cells = append(p.cells, c)
}

// DefaultCaption renders an item entry as "name" or "count name" for
// stacks of more than one.
func DefaultCaption(e *Entry) string {
	if !e.IsItem() {
		return ""
	}
	if n := e.StackSize(); n > 1 {
		return fmt.Sprintf("%d %s", n, e.Subject().Name())
	}
	return e.Subject().Name()
}
