package selection

// CompareSelector gathers exactly two subjects. Selecting a third evicts
// the oldest pick, first in, first out.
type CompareSelector struct {
	*MultiSelector
	compared []*Entry
}

func NewCompareSelector(preset Preset) *CompareSelector {
	return &CompareSelector{MultiSelector: NewMultiSelector(preset)}
}

// OnInput caps the chosen set at two entries and accepts confirm only with
// a complete pair.
func (c *CompareSelector) OnInput(in Input) {
	switch in.Action {
	case ActionToggleSelect:
		c.toggleCompared()
	case ActionConfirm:
		if len(c.compared) == 2 {
			c.done = true
		}
	default:
		c.MultiSelector.OnInput(in)
	}
}

func (c *CompareSelector) toggleCompared() {
	col := c.ActiveColumn()
	if col == nil || !col.AllowsSelecting() {
		return
	}
	e := col.GetSelected()
	if !e.IsSelectable() {
		return
	}
	for i, have := range c.compared {
		if have == e {
			c.SetChosen(e, 0)
			c.compared = append(c.compared[:i], c.compared[i+1:]...)
			return
		}
	}
	if len(c.compared) == 2 {
		c.SetChosen(c.compared[0], 0)
		c.compared = c.compared[1:]
	}
	c.SetChosen(e, 1)
	c.compared = append(c.compared, e)
}

// ReplayChosen drops the comparison state instead of replaying it; a pair
// picked against stale stacks is not worth keeping.
func (c *CompareSelector) ReplayChosen(map[string]int) {
	c.compared = nil
}

// Result returns the pair to compare in pick order.
func (c *CompareSelector) Result() (first, second Subject, ok bool) {
	if c.canceled || len(c.compared) != 2 {
		return nil, nil, false
	}
	return c.compared[0].Subject(), c.compared[1].Subject(), true
}
