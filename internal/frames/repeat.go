package frames

// RepeatMode represents what happens after the last frame.
type RepeatMode int

const (
	RepeatOnce RepeatMode = iota
	RepeatLoop
)

// RepeatFromBool maps the repeat config switch to a RepeatMode.
func RepeatFromBool(repeat bool) RepeatMode {
	if repeat {
		return RepeatLoop
	}
	return RepeatOnce
}

// String returns the name of the repeat mode.
func (r RepeatMode) String() string {
	switch r {
	case RepeatLoop:
		return "loop"
	default:
		return "once"
	}
}

// Icon returns a visual indicator for the repeat mode.
func (r RepeatMode) Icon() string {
	switch r {
	case RepeatLoop:
		return "[repeat]"
	default:
		return ""
	}
}
