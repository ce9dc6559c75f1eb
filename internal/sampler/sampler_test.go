package sampler

import (
	"math"
	"testing"

	"git.lost.host/meutraa/chrzl/internal/ease"
	"git.lost.host/meutraa/chrzl/internal/game"
	"git.lost.host/meutraa/chrzl/internal/playback"
	"git.lost.host/meutraa/chrzl/internal/timing"
)

func buildChart(t testing.TB, notes []*game.Note, lanes []game.Lane, speed []timing.KeyPoint) *game.Chart {
	t.Helper()
	chart, err := game.NewChart(
		game.Meta{},
		[]timing.TempoEvent{{Beat: 0, BPM: 120}},
		notes, lanes, speed,
	)
	if nil != err {
		t.Fatal(err)
	}
	return chart
}

func statusAt(seconds float64) playback.Status {
	return playback.Status{Time: seconds, Rate: 1, State: playback.Playing}
}

func TestSampleWindow(t *testing.T) {
	var notes []*game.Note
	for beat := 0; beat <= 16; beat++ {
		notes = append(notes, &game.Note{Beat: float64(beat)})
	}
	chart := buildChart(t, notes, nil, nil)
	s := New(chart, Config{LookaheadBeats: 4, LookbehindBeats: 1})

	// 2 seconds at 120bpm is beat 4; window is [3, 8]
	snap := s.Sample(statusAt(2.0))

	if math.Abs(snap.Beat-4.0) > 1e-9 {
		t.Fatal("beat", snap.Beat)
	}
	if len(snap.Notes) != 6 {
		t.Log("visible notes", len(snap.Notes))
		for _, sn := range snap.Notes {
			t.Log("  beat", sn.Note.Beat)
		}
		t.Fail()
	}
	for _, sn := range snap.Notes {
		if sn.Note.Beat < 3 || sn.Note.Beat > 8 {
			t.Log("note outside window at beat", sn.Note.Beat)
			t.Fail()
		}
	}
}

func TestSampleProgress(t *testing.T) {
	notes := []*game.Note{{Beat: 3}, {Beat: 4}, {Beat: 6}, {Beat: 8}}
	chart := buildChart(t, notes, nil, nil)
	s := New(chart, Config{LookaheadBeats: 4, LookbehindBeats: 1, Ease: ease.OutQuad})

	snap := s.Sample(statusAt(2.0)) // beat 4

	want := []struct {
		beat     float64
		progress float64
		eased    float64
	}{
		{3, -0.25, 0},      // past the bar; ease clamps to 0
		{4, 0, 0},          // on the bar
		{6, 0.5, 0.75},     // OutQuad(0.5)
		{8, 1, 1},          // window edge
	}
	if len(snap.Notes) != len(want) {
		t.Fatal("visible notes", len(snap.Notes))
	}
	for i, w := range want {
		sn := snap.Notes[i]
		if sn.Note.Beat != w.beat {
			t.Log("order broken at", i, "got beat", sn.Note.Beat)
			t.Fail()
		}
		if math.Abs(sn.Progress-w.progress) > 1e-9 {
			t.Log("beat", w.beat, "progress", sn.Progress)
			t.Fail()
		}
		if math.Abs(sn.EasedProgress-w.eased) > 1e-9 {
			t.Log("beat", w.beat, "eased", sn.EasedProgress)
			t.Fail()
		}
	}
}

// A hold whose head scrolled past long ago stays visible while its tail
// is still in range.
func TestSampleHoldTail(t *testing.T) {
	notes := []*game.Note{
		{Beat: 0, Kind: game.Hold, DurationBeats: 10},
		{Beat: 1},
		{Beat: 6},
	}
	chart := buildChart(t, notes, nil, nil)
	s := New(chart, Config{LookaheadBeats: 4, LookbehindBeats: 1})

	snap := s.Sample(statusAt(3.0)) // beat 6, window [5, 10]

	if len(snap.Notes) != 2 {
		t.Fatal("visible notes", len(snap.Notes))
	}
	hold := snap.Notes[0]
	if hold.Note.Beat != 0 || hold.Note.Kind != game.Hold {
		t.Fatal("first visible note is not the hold")
	}
	if math.Abs(hold.TailProgress-1.0) > 1e-9 {
		t.Log("tail progress", hold.TailProgress)
		t.Fail()
	}
	// the tap at beat 1 is long gone
	for _, sn := range snap.Notes {
		if sn.Note.Beat == 1 {
			t.Log("dead tap still visible")
			t.Fail()
		}
	}
}

func TestSampleOrderingStable(t *testing.T) {
	var notes []*game.Note
	for beat := 0; beat < 32; beat++ {
		notes = append(notes, &game.Note{Beat: float64(beat) / 2, Lane: beat % 4})
	}
	chart := buildChart(t, notes, nil, nil)
	s := New(chart, Config{})

	for _, seconds := range []float64{0, 0.7, 1.3, 2.9, 5.0} {
		snap := s.Sample(statusAt(seconds))
		for i := 1; i < len(snap.Notes); i++ {
			if snap.Notes[i].Note.Beat < snap.Notes[i-1].Note.Beat {
				t.Log("unsorted snapshot at", seconds)
				t.Fail()
			}
		}
	}
}

func TestSampleAutomation(t *testing.T) {
	lanes := []game.Lane{
		{XPoints: []timing.KeyPoint{
			{Beat: 0, Value: 0},
			{Beat: 8, Value: 1},
		}},
		{},
	}
	speed := []timing.KeyPoint{{Beat: 0, Value: 2}}
	chart := buildChart(t, []*game.Note{{Beat: 4}}, lanes, speed)
	s := New(chart, Config{})

	snap := s.Sample(statusAt(2.0)) // beat 4

	if len(snap.LaneX) != 2 {
		t.Fatal("lane count", len(snap.LaneX))
	}
	if math.Abs(snap.LaneX[0]-0.5) > 1e-9 {
		t.Log("lane 0 x", snap.LaneX[0])
		t.Fail()
	}
	if snap.LaneX[1] != 0 {
		t.Log("unautomated lane x", snap.LaneX[1])
		t.Fail()
	}
	// constant speed 2 for 2 seconds
	if math.Abs(snap.Scroll-4.0) > 1e-9 {
		t.Log("scroll", snap.Scroll)
		t.Fail()
	}
}

func TestDefaults(t *testing.T) {
	chart := buildChart(t, []*game.Note{{Beat: 0}}, nil, nil)
	s := New(chart, Config{})
	if s.cfg.LookaheadBeats != defaultLookahead {
		t.Log("lookahead", s.cfg.LookaheadBeats)
		t.Fail()
	}
	snap := s.Sample(statusAt(0))
	if len(snap.Notes) != 1 || snap.Notes[0].EasedProgress != 0 {
		t.Log("default sample", snap.Notes)
		t.Fail()
	}
}
