package config

import (
	"git.lost.host/meutraa/chrzl/internal/ease"
	"git.lost.host/meutraa/chrzl/internal/playback"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory   = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate        = kingpin.Flag("rate", "Playback rate multiplier").Default("1.0").Short('r').Float64()
	Offset      = kingpin.Flag("offset", "Global audio offset").Default("0ms").Short('o').Duration()
	Delay       = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	Lookahead   = kingpin.Flag("lookahead", "Beats of approach visible above the hit bar").Default("4.0").Short('l').Float64()
	Lookbehind  = kingpin.Flag("lookbehind", "Beats a passed note stays visible").Default("1.0").Float64()
	easeName    = kingpin.Flag("ease", "Approach motion curve").Default("linear").Short('e').String()
	endPolicy   = kingpin.Flag("at-end", "End of chart behavior").Default("stop").Enum("stop", "loop", "hold")
	LaneSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	BarRow      = kingpin.Flag("bar-row", "Console rows between hit bar and bottom").Default("8").Uint()

	Ease ease.Kind
	End  playback.EndPolicy
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	Ease, _ = ease.KindByName(*easeName)
	switch *endPolicy {
	case "loop":
		End = playback.EndLoop
	case "hold":
		End = playback.EndHold
	default:
		End = playback.EndStop
	}
}
