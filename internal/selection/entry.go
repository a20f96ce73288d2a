package selection

// Entry is one list row: an item stack, a category header, or the null
// filler pagination uses to keep headers off the last row of a page.
//
// Predicates are safe on a nil receiver so callers can chain lookups
// without guarding every step.
type Entry struct {
	subject  Subject
	category int
	stack    int
	enabled  bool
	denial   string

	// ChosenCount is how many units the user has marked in multi-select
	// sessions. CustomKey overrides the subject's preferred quick key.
	ChosenCount int
	CustomKey   rune
}

// NewItemEntry builds an enabled item row for count units of subject under
// the category at ref.
func NewItemEntry(subject Subject, ref, count int) *Entry {
	return &Entry{subject: subject, category: ref, stack: count, enabled: true}
}

// NewCategoryEntry builds a header row for the category at ref.
func NewCategoryEntry(ref int) *Entry {
	return &Entry{category: ref}
}

func newNullEntry() *Entry {
	return &Entry{category: noCategory}
}

// IsNull reports whether e is a pagination filler. A nil entry is null.
func (e *Entry) IsNull() bool {
	return e == nil || (e.subject == nil && e.category < 0)
}

// IsItem reports whether e stands for a subject stack.
func (e *Entry) IsItem() bool {
	return e != nil && e.subject != nil
}

// IsCategory reports whether e is a header row.
func (e *Entry) IsCategory() bool {
	return e != nil && e.subject == nil && e.category >= 0
}

// IsSelectable reports whether the cursor may land on e.
func (e *Entry) IsSelectable() bool {
	return e.IsItem() && e.enabled
}

// Subject returns the adapted item, nil for headers and fillers.
func (e *Entry) Subject() Subject {
	if e == nil {
		return nil
	}
	return e.subject
}

// CategoryRef is the index into the selector's category table, negative
// when the row has none.
func (e *Entry) CategoryRef() int {
	if e == nil {
		return noCategory
	}
	return e.category
}

// StackSize is the number of units this row stands for.
func (e *Entry) StackSize() int {
	if e == nil {
		return 0
	}
	return e.stack
}

// AvailableCount is how many units a session may still claim.
func (e *Entry) AvailableCount() int {
	return e.StackSize()
}

// Enabled reports whether the preset allowed choosing this row.
func (e *Entry) Enabled() bool {
	return e != nil && e.enabled
}

// Denial is the reason the row cannot be chosen, empty when it can.
func (e *Entry) Denial() string {
	if e == nil {
		return ""
	}
	return e.denial
}

// QuickKey resolves the row's shortcut: an explicit override first, then
// the subject's preference, then none.
func (e *Entry) QuickKey() rune {
	if e == nil {
		return 0
	}
	if e.CustomKey != 0 {
		return e.CustomKey
	}
	if e.subject != nil {
		return e.subject.QuickKey()
	}
	return 0
}
