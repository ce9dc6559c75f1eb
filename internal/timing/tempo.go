package timing

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTempoMap is returned by NewTempoMap for maps that cannot
// define a monotonic beat to time mapping.
var ErrInvalidTempoMap = errors.New("invalid tempo map")

// TempoEvent sets the bpm from Beat onward, until the next event.
type TempoEvent struct {
	Beat float64
	BPM  float64
}

// TempoMap converts between beat positions and seconds under a
// piecewise-constant bpm curve. Beat 0 is always time 0; an event list
// starting after beat 0 implies its first bpm back to the origin.
// Validated once at construction, never again.
type TempoMap struct {
	events []TempoEvent
	times  []float64 // seconds at each event's beat
}

func NewTempoMap(events []TempoEvent) (*TempoMap, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no tempo events", ErrInvalidTempoMap)
	}
	for i, e := range events {
		if e.BPM <= 0 {
			return nil, fmt.Errorf("%w: bpm %v at beat %v", ErrInvalidTempoMap, e.BPM, e.Beat)
		}
		if e.Beat < 0 {
			return nil, fmt.Errorf("%w: negative beat %v", ErrInvalidTempoMap, e.Beat)
		}
		if i > 0 && e.Beat <= events[i-1].Beat {
			return nil, fmt.Errorf("%w: beats not increasing at %v", ErrInvalidTempoMap, e.Beat)
		}
	}

	evs := make([]TempoEvent, len(events))
	copy(evs, events)

	times := make([]float64, len(evs))
	times[0] = evs[0].Beat * secondsPerBeat(evs[0].BPM)
	for i := 1; i < len(evs); i++ {
		times[i] = times[i-1] + (evs[i].Beat-evs[i-1].Beat)*secondsPerBeat(evs[i-1].BPM)
	}

	return &TempoMap{events: evs, times: times}, nil
}

func secondsPerBeat(bpm float64) float64 {
	return 60.0 / bpm
}

// segmentAt returns the index of the event governing the given beat.
// Beats before the first event fall into the first segment, which also
// covers extrapolation before beat 0.
func (m *TempoMap) segmentAt(beat float64) int {
	i := sort.Search(len(m.events), func(i int) bool {
		return m.events[i].Beat > beat
	}) - 1
	if i < 0 {
		i = 0
	}
	return i
}

// BeatToTime returns the number of seconds into playback at which the
// given beat occurs. Total over all beats; beats past the last tempo
// event extrapolate at the last event's rate.
func (m *TempoMap) BeatToTime(beat float64) float64 {
	i := m.segmentAt(beat)
	return m.times[i] + (beat-m.events[i].Beat)*secondsPerBeat(m.events[i].BPM)
}

// TimeToBeat is the inverse of BeatToTime.
func (m *TempoMap) TimeToBeat(seconds float64) float64 {
	i := sort.Search(len(m.times), func(i int) bool {
		return m.times[i] > seconds
	}) - 1
	if i < 0 {
		i = 0
	}
	return m.events[i].Beat + (seconds-m.times[i])/secondsPerBeat(m.events[i].BPM)
}

// Events returns the tempo events in beat order.
func (m *TempoMap) Events() []TempoEvent {
	return m.events
}
