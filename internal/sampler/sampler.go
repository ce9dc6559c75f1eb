// Package sampler turns a playback position into the per-frame data a
// renderer needs. It only ever reads the chart; the same chart can be
// sampled from any number of samplers at once.
package sampler

import (
	"sort"

	"git.lost.host/meutraa/chrzl/internal/ease"
	"git.lost.host/meutraa/chrzl/internal/game"
	"git.lost.host/meutraa/chrzl/internal/playback"
	"git.lost.host/meutraa/chrzl/internal/timing"
)

// Config tunes the visibility window and the motion curve. A zero
// lookahead falls back to the default; a zero lookbehind really means
// notes vanish the moment they pass.
type Config struct {
	// LookaheadBeats is how far past the current beat notes become
	// visible. A note at exactly lookahead distance has progress 1.
	LookaheadBeats float64
	// LookbehindBeats is how long past notes stay in the snapshot, for
	// renderers that fade them out rather than dropping them.
	LookbehindBeats float64
	// Ease reshapes note approach motion.
	Ease ease.Kind
}

const defaultLookahead = 4.0

// SampledNote is one visible note with its motion progress resolved.
// Progress counts down toward the hit line: 1 at the lookahead edge, 0
// at the current beat, negative once passed.
type SampledNote struct {
	Note          *game.Note
	Progress      float64
	EasedProgress float64 // the configured ease applied to the clamped progress
	TailProgress  float64 // hold tail position, equal to Progress for taps and drags
}

// Snapshot is everything a renderer needs for one frame. It is rebuilt
// on every call and holds only references into the chart.
type Snapshot struct {
	Time   float64
	Beat   float64
	Scroll float64   // integrated scroll distance from the speed keypoints
	LaneX  []float64 // per-lane normalized x at the current beat
	Notes  []SampledNote
}

type Sampler struct {
	chart *game.Chart
	cfg   Config

	// maxEnd[i] is the largest end beat among notes[0..i], used to find
	// where still-ringing holds can start.
	maxEnd []float64
}

func New(chart *game.Chart, cfg Config) *Sampler {
	if cfg.LookaheadBeats <= 0 {
		cfg.LookaheadBeats = defaultLookahead
	}
	if cfg.LookbehindBeats < 0 {
		cfg.LookbehindBeats = 0
	}

	notes := chart.Notes()
	maxEnd := make([]float64, len(notes))
	for i, n := range notes {
		maxEnd[i] = n.EndBeat()
		if i > 0 && maxEnd[i-1] > maxEnd[i] {
			maxEnd[i] = maxEnd[i-1]
		}
	}

	return &Sampler{chart: chart, cfg: cfg, maxEnd: maxEnd}
}

// Sample builds the frame snapshot for the given playback status.
// Notes are emitted in ascending beat order, so render order is stable
// frame to frame.
func (s *Sampler) Sample(st playback.Status) Snapshot {
	beat := s.chart.Tempo.TimeToBeat(st.Time)
	lo := beat - s.cfg.LookbehindBeats
	hi := beat + s.cfg.LookaheadBeats

	notes := s.chart.Notes()

	// First note whose tail could still reach the window. maxEnd is
	// nondecreasing, so this is binary searchable.
	start := sort.Search(len(notes), func(i int) bool {
		return s.maxEnd[i] >= lo
	})
	end := sort.Search(len(notes), func(i int) bool {
		return notes[i].Beat > hi
	})

	var sampled []SampledNote
	for _, n := range notes[start:end] {
		if n.Beat < lo && n.EndBeat() < lo {
			continue
		}
		p := (n.Beat - beat) / s.cfg.LookaheadBeats
		sampled = append(sampled, SampledNote{
			Note:          n,
			Progress:      p,
			EasedProgress: ease.Apply(s.cfg.Ease, p),
			TailProgress:  (n.EndBeat() - beat) / s.cfg.LookaheadBeats,
		})
	}

	lanes := s.chart.Lanes()
	laneX := make([]float64, len(lanes))
	for i, lane := range lanes {
		laneX[i] = timing.FindValue(beat, lane.XPoints)
	}

	return Snapshot{
		Time:   st.Time,
		Beat:   beat,
		Scroll: timing.FloorPosition(st.Time, s.chart.SpeedPoints(), s.chart.Tempo),
		LaneX:  laneX,
		Notes:  sampled,
	}
}
