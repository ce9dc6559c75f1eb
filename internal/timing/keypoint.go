package timing

import (
	"math"
	"sort"

	"git.lost.host/meutraa/chrzl/internal/ease"
)

// KeyPoint is one keyframe of an automated value. Ease shapes the
// interpolation from this keyframe to the next one.
type KeyPoint struct {
	Beat  float64
	Value float64
	Ease  ease.Kind

	fp float64 // integrated scroll distance, set by ResolveFloorPositions
}

// FindValue interpolates the keypoint sequence at the given beat.
// Before the first keyframe the value is 0, after the last it holds the
// last value.
func FindValue(beat float64, points []KeyPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	if len(points) == 1 {
		if beat >= points[0].Beat {
			return points[0].Value
		}
		return 0
	}
	if beat > points[len(points)-1].Beat {
		return points[len(points)-1].Value
	}

	i := sort.Search(len(points), func(i int) bool {
		return points[i].Beat > beat
	})
	if i == 0 {
		return 0
	}
	from, to := &points[i-1], &points[i-1]
	if i < len(points) {
		to = &points[i]
	}
	if to.Beat == from.Beat || math.Abs(beat-from.Beat) < 1e-12 {
		return from.Value
	}

	t := (beat - from.Beat) / (to.Beat - from.Beat)
	return ease.Lerp(from.Value, to.Value, ease.Apply(from.Ease, t))
}

// ResolveFloorPositions precomputes, for each speed keypoint, the scroll
// distance accumulated up to it. Must run once before FloorPosition is
// used with the sequence.
func ResolveFloorPositions(points []KeyPoint, tempo *TempoMap) {
	if len(points) == 0 {
		return
	}
	points[0].fp = 0
	for i := 1; i < len(points); i++ {
		prev := &points[i-1]
		dt := tempo.BeatToTime(points[i].Beat) - tempo.BeatToTime(prev.Beat)
		points[i].fp = prev.fp + prev.Value*dt
	}
}

// FloorPosition integrates the piecewise-constant speed keypoints up to
// the given number of seconds, yielding the total scroll distance.
func FloorPosition(seconds float64, points []KeyPoint, tempo *TempoMap) float64 {
	if len(points) == 0 {
		return 0
	}
	i := sort.Search(len(points), func(i int) bool {
		return tempo.BeatToTime(points[i].Beat) > seconds
	}) - 1
	if i < 0 {
		i = 0
	}
	at := tempo.BeatToTime(points[i].Beat)
	return points[i].fp + (seconds-at)*points[i].Value
}
