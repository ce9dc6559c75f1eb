// Package playback owns the play position of one chart session. A
// Player is driven entirely by its caller: the host loop feeds wall
// clock deltas to Tick and applies control commands between frames.
// Nothing here blocks, schedules, or reads a real clock.
package playback

import (
	"errors"

	"git.lost.host/meutraa/chrzl/internal/game"
)

// ErrInvalidRate is returned for non-positive rate requests. The player
// is left exactly as it was.
var ErrInvalidRate = errors.New("invalid playback rate")

type State uint8

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "stopped"
}

// EndPolicy decides what Tick does when the position passes the end of
// the chart.
type EndPolicy uint8

const (
	// EndStop clamps to the chart end and stops.
	EndStop EndPolicy = iota
	// EndLoop wraps the overshoot back to the start and keeps playing.
	EndLoop
	// EndHold clamps to the chart end but stays in Playing, holding the
	// last frame.
	EndHold
)

// Status is a read-only copy of the player position for samplers and
// renderers. Take one per frame, after commands and Tick have run.
type Status struct {
	Time    float64
	Beat    float64
	Rate    float64
	State   State
	AtEnd   bool
	EndTime float64
}

// Player is the playback state machine. It never touches the chart
// beyond reading its duration and tempo map, and every method returns
// with the player in a defined state.
type Player struct {
	chart    *game.Chart
	duration float64

	now   float64
	rate  float64
	state State
	end   EndPolicy
}

func NewPlayer(chart *game.Chart, end EndPolicy) *Player {
	return &Player{
		chart:    chart,
		duration: chart.Duration(),
		rate:     1.0,
		state:    Stopped,
		end:      end,
	}
}

func (p *Player) Now() float64      { return p.now }
func (p *Player) Rate() float64     { return p.rate }
func (p *Player) State() State      { return p.state }
func (p *Player) Playing() bool     { return p.state == Playing }
func (p *Player) Duration() float64 { return p.duration }

// Beat is the current position converted through the tempo map.
func (p *Player) Beat() float64 {
	return p.chart.Tempo.TimeToBeat(p.now)
}

// Play starts or resumes from the current position.
func (p *Player) Play() {
	p.state = Playing
}

// Pause halts advancement but keeps the position. Pausing an already
// paused or stopped player changes nothing.
func (p *Player) Pause() {
	if p.state == Playing {
		p.state = Paused
	}
}

// Toggle flips between Playing and not.
func (p *Player) Toggle() {
	if p.state == Playing {
		p.state = Paused
	} else {
		p.state = Playing
	}
}

// Reset moves the position back to the start without changing the
// play state.
func (p *Player) Reset() {
	p.now = 0
}

// Seek jumps to an absolute time in seconds. Targets outside the chart
// are clamped, never rejected; the play state is untouched.
func (p *Player) Seek(seconds float64) {
	p.now = p.clamp(seconds)
}

// SeekBy jumps relative to the current position, with the same
// clamping as Seek.
func (p *Player) SeekBy(delta float64) {
	p.Seek(p.now + delta)
}

// SetRate changes the playback rate multiplier. Non-positive rates are
// rejected with ErrInvalidRate and the previous rate kept.
func (p *Player) SetRate(rate float64) error {
	if rate <= 0 {
		return ErrInvalidRate
	}
	p.rate = rate
	return nil
}

// Tick advances the position by delta wall seconds scaled by the rate.
// Only a Playing player moves. Hitting the chart end follows the
// configured EndPolicy.
func (p *Player) Tick(delta float64) {
	if p.state != Playing {
		return
	}
	p.now += delta * p.rate
	if p.now < 0 {
		p.now = 0
		return
	}
	if p.now <= p.duration {
		return
	}
	switch p.end {
	case EndLoop:
		if p.duration > 0 {
			for p.now > p.duration {
				p.now -= p.duration
			}
		} else {
			p.now = 0
		}
	case EndHold:
		p.now = p.duration
	default:
		p.now = p.duration
		p.state = Stopped
	}
}

// Status snapshots the player for this frame's sampling and rendering.
func (p *Player) Status() Status {
	return Status{
		Time:    p.now,
		Beat:    p.Beat(),
		Rate:    p.rate,
		State:   p.state,
		AtEnd:   p.now >= p.duration,
		EndTime: p.duration,
	}
}

func (p *Player) clamp(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	if seconds > p.duration {
		return p.duration
	}
	return seconds
}
