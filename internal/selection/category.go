package selection

import "fmt"

// Category describes one header group. Rank orders groups top to bottom;
// ties break by insertion order.
type Category struct {
	ID   string
	Name string
	Rank int
}

// noCategory marks an entry without a category reference.
const noCategory = -1

// Categories is an append-only table shared by all columns of a selector.
// Entries refer to categories by index so merged stacks and naturalized
// variants stay cheap to compare.
type Categories struct {
	list  []Category
	index map[string]int
}

func NewCategories() *Categories {
	return &Categories{index: make(map[string]int)}
}

// Add returns the table index for c, inserting it when its ID is new.
func (cs *Categories) Add(c Category) int {
	if ref, ok := cs.index[c.ID]; ok {
		return ref
	}
	cs.list = append(cs.list, c)
	ref := len(cs.list) - 1
	cs.index[c.ID] = ref
	return ref
}

// Naturalize derives an origin-specific variant of base: suffixed ID and
// name, rank nudged so the variant sorts right after its base group. An
// empty origin resolves to the base category itself.
func (cs *Categories) Naturalize(base Category, origin string) int {
	if origin == "" {
		return cs.Add(base)
	}
	return cs.Add(Category{
		ID:   fmt.Sprintf("%s_%s", base.ID, origin),
		Name: fmt.Sprintf("%s (%s)", base.Name, origin),
		Rank: base.Rank + 1,
	})
}

// Get returns the category at ref, nil when ref is out of range.
func (cs *Categories) Get(ref int) *Category {
	if ref < 0 || ref >= len(cs.list) {
		return nil
	}
	return &cs.list[ref]
}

// Len is the number of known categories.
func (cs *Categories) Len() int {
	return len(cs.list)
}
