package selection

// Drop is one line of a drop result.
type Drop struct {
	Subject Subject
	Count   int
}

// DropSelector collects per-subject drop counts. Toggle-select flips a row
// between nothing and its full available count; explicit counts clamp to
// availability through SetChosen.
type DropSelector struct {
	*MultiSelector
}

func NewDropSelector(preset Preset) *DropSelector {
	return &DropSelector{MultiSelector: NewMultiSelector(preset)}
}

// Result lists what to drop, nil after a cancel.
func (d *DropSelector) Result() []Drop {
	if d.canceled {
		return nil
	}
	entries := d.chosenEntries()
	out := make([]Drop, 0, len(entries))
	for _, e := range entries {
		out = append(out, Drop{Subject: e.Subject(), Count: e.ChosenCount})
	}
	return out
}
