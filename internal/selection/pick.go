package selection

// PickSelector resolves to a single subject: confirm takes the cursor row,
// and a quick key on a selectable entry resolves immediately.
type PickSelector struct {
	*selectorBase
	result Subject
}

func NewPickSelector(preset Preset) *PickSelector {
	return &PickSelector{selectorBase: NewSelector(preset)}
}

// OnInput resolves confirm and quick-key hits; everything else falls
// through to the base routing.
func (p *PickSelector) OnInput(in Input) {
	switch in.Action {
	case ActionConfirm:
		if e := p.Selected(); e.IsSelectable() {
			p.result = e.Subject()
			p.done = true
		}
	case ActionKey:
		if e, _ := p.FindEntryByKey(in.Key); e.IsSelectable() {
			p.result = e.Subject()
			p.done = true
			return
		}
		p.selectorBase.OnInput(in)
	default:
		p.selectorBase.OnInput(in)
	}
}

// Result returns the picked subject once the session resolved.
func (p *PickSelector) Result() (Subject, bool) {
	if p.canceled || p.result == nil {
		return nil, false
	}
	return p.result, true
}
