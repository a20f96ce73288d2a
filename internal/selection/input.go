package selection

// Action identifies one keyboard-driven operation on a selector. Frontends
// translate their key events into actions; the engine never sees terminal
// codes.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionConfirm
	ActionCancel
	ActionToggleSelect
	ActionToggleMode
	ActionSwitchColumn
	// ActionKey jumps to the entry bound to Input.Key.
	ActionKey
)

// Input is one decoded key event. Key is meaningful only for ActionKey.
type Input struct {
	Action Action
	Key    rune
}

// Direction of a selection walk through a column.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// NavMode controls whether selection movement steps row by row or sweeps
// whole category groups.
type NavMode int

const (
	NavByItem NavMode = iota
	NavByCategory
)

// Label is the footer wording for the mode.
func (m NavMode) Label() string {
	if m == NavByCategory {
		return "navigating by category"
	}
	return "navigating by item"
}
