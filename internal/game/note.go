package game

// Kind is the note type byte from the chart file.
type Kind uint8

const (
	Tap Kind = iota
	Drag
	Hold
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case Drag:
		return "drag"
	case Hold:
		return "hold"
	}
	return "tap"
}

// Note is a single chart event. Immutable after the chart is built.
type Note struct {
	Beat          float64
	Lane          int
	Kind          Kind
	DurationBeats float64 // 0 for anything but holds
}

// EndBeat is the beat at which the note stops mattering. For taps and
// drags this is just Beat.
func (n *Note) EndBeat() float64 {
	return n.Beat + n.DurationBeats
}
