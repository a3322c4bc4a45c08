package ledctl

// ShiftMode selects which animation, if any, drives the LED bank.
// Right and Left are a single value, so both can never be active.
type ShiftMode uint8

const (
	Idle ShiftMode = iota
	RightActive
	LeftActive
)

func (m ShiftMode) Active() bool { return m != Idle }

func (m ShiftMode) String() string {
	switch m {
	case RightActive:
		return "right"
	case LeftActive:
		return "left"
	default:
		return "idle"
	}
}

// toggle flips the flag for want. Turning want on replaces any other mode.
func (m ShiftMode) toggle(want ShiftMode) ShiftMode {
	if m == want {
		return Idle
	}
	return want
}
