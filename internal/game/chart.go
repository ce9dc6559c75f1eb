package game

import (
	"errors"
	"fmt"
	"sort"

	"git.lost.host/meutraa/chrzl/internal/timing"
)

// ErrInvalidChart is returned by NewChart for chart data that fails
// validation. Loading is all or nothing; there is no degraded chart.
var ErrInvalidChart = errors.New("invalid chart")

// Meta is the chart header data.
type Meta struct {
	SongName string
	Offset   float64 // seconds the audio leads the chart
}

// Lane carries the automation for one playfield column.
type Lane struct {
	XPoints []timing.KeyPoint // normalized x position keyframes
}

// Chart is the validated, read-only form of a chart file. Safe to share
// between any number of sampling calls once built.
type Chart struct {
	Meta  Meta
	Tempo *timing.TempoMap

	notes       []*Note // ascending by beat
	lanes       []Lane
	speedPoints []timing.KeyPoint
}

// NewChart validates the parsed pieces and freezes them into a Chart.
// The tempo events and note list are validated here, once, so the
// converters and the sampler never have to.
func NewChart(meta Meta, tempo []timing.TempoEvent, notes []*Note, lanes []Lane, speed []timing.KeyPoint) (*Chart, error) {
	tm, err := timing.NewTempoMap(tempo)
	if nil != err {
		return nil, err
	}

	laneCount := len(lanes)
	for _, n := range notes {
		if n.Beat < 0 {
			return nil, fmt.Errorf("%w: note at negative beat %v", ErrInvalidChart, n.Beat)
		}
		if n.DurationBeats < 0 {
			return nil, fmt.Errorf("%w: note at beat %v with negative duration", ErrInvalidChart, n.Beat)
		}
		if n.Kind > Hold {
			return nil, fmt.Errorf("%w: unknown note kind %d at beat %v", ErrInvalidChart, n.Kind, n.Beat)
		}
		if laneCount > 0 && (n.Lane < 0 || n.Lane >= laneCount) {
			return nil, fmt.Errorf("%w: note at beat %v in lane %d of %d", ErrInvalidChart, n.Beat, n.Lane, laneCount)
		}
	}

	ns := make([]*Note, len(notes))
	copy(ns, notes)
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].Beat < ns[j].Beat })

	timing.ResolveFloorPositions(speed, tm)

	return &Chart{
		Meta:        meta,
		Tempo:       tm,
		notes:       ns,
		lanes:       lanes,
		speedPoints: speed,
	}, nil
}

// Notes returns the note list, ascending by beat. Callers must not
// modify it.
func (c *Chart) Notes() []*Note {
	return c.notes
}

func (c *Chart) Lanes() []Lane {
	return c.lanes
}

func (c *Chart) SpeedPoints() []timing.KeyPoint {
	return c.speedPoints
}

// LastBeat is the end beat of the latest-ending note, 0 for an empty
// chart.
func (c *Chart) LastBeat() float64 {
	last := 0.0
	for _, n := range c.notes {
		if end := n.EndBeat(); end > last {
			last = end
		}
	}
	return last
}

// Duration is the chart length in seconds, measured to the end of the
// latest note.
func (c *Chart) Duration() float64 {
	return c.Tempo.BeatToTime(c.LastBeat())
}
