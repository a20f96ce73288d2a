package selection

// Subject is the thing a list row stands for. Hosts adapt their own item
// types to this surface; the engine inspects nothing beyond it.
type Subject interface {
	// ID uniquely identifies the subject. Stacks of the same ID within one
	// category merge into a single entry.
	ID() string
	Name() string
	Category() Category
	// QuickKey is the subject's preferred shortcut, 0 for none.
	QuickKey() rune
}

// Stack pairs a subject with how many units of it are present.
type Stack struct {
	Subject Subject
	Count   int
}
