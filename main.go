package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/chrzl/internal/config"
	"git.lost.host/meutraa/chrzl/internal/game"
	"git.lost.host/meutraa/chrzl/internal/parser"
	"git.lost.host/meutraa/chrzl/internal/playback"
	"git.lost.host/meutraa/chrzl/internal/render"
	"git.lost.host/meutraa/chrzl/internal/sampler"
	"git.lost.host/meutraa/chrzl/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

type cell struct {
	row, col int
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{FramePeriod: *config.FramePeriod}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	var mp3File, oggFile, chartFile string
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		switch path.Ext(info.Name()) {
		case ".mp3":
			mp3File = p
		case ".ogg":
			oggFile = p
		case ".json":
			chartFile = p
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	if chartFile == "" {
		return errors.New("unable to find a .json chart in given directory")
	}

	chart, err := psr.Parse(chartFile)
	if nil != err {
		return err
	}

	player := playback.NewPlayer(chart, config.End)
	if err := player.SetRate(*config.Rate); nil != err {
		return err
	}
	smp := sampler.New(chart, sampler.Config{
		LookaheadBeats:  *config.Lookahead,
		LookbehindBeats: *config.Lookbehind,
		Ease:            config.Ease,
	})

	audio, err := openAudio(mp3File, oggFile)
	if nil != err {
		return err
	}
	if nil != audio {
		defer audio.close()
		// The chart's own offset shifts the audio the same way the
		// global flag does.
		chartOffset := time.Duration(chart.Meta.Offset * float64(time.Second))
		go func() {
			time.Sleep(*config.Delay + *config.Offset + chartOffset)
			audio.start()
		}()
	}

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	rows, columns := r.Size()
	hitRow := rows - int(*config.BarRow)
	travel := hitRow - 2
	lanes := chart.Lanes()
	laneCount := len(lanes)
	if laneCount == 0 {
		laneCount = 4
	}
	spacing := int(*config.LaneSpacing)
	baseCol := func(lane int) int {
		return columns/2 + (2*lane-laneCount+1)*spacing
	}
	sideCol := baseCol(0) - 36
	if sideCol < 2 {
		sideCol = 2
	}

	var drawn []cell
	duration := player.Duration()
	player.Play()

	r.RenderLoop(*config.Delay, func(delta time.Duration) bool {
		// Apply the commands that arrived since the last frame, then
		// advance, then sample. Never the other way around.
		for i := 0; i < len(keyChannel); i++ {
			key := <-keyChannel
			switch {
			case key.Key == keyboard.KeyEsc || key.Rune == 'q':
				return false
			case key.Key == keyboard.KeySpace:
				player.Toggle()
				if nil != audio {
					audio.setPaused(!player.Playing())
				}
			case key.Rune == 'r':
				player.Reset()
				if nil != audio {
					audio.seek(0)
				}
			case key.Key == keyboard.KeyArrowLeft:
				player.SeekBy(-1)
				if nil != audio {
					audio.seek(player.Now())
				}
			case key.Key == keyboard.KeyArrowRight:
				player.SeekBy(1)
				if nil != audio {
					audio.seek(player.Now())
				}
			case key.Key == keyboard.KeyArrowUp || key.Key == keyboard.KeyArrowDown:
				rate := player.Rate() * 1.1
				if key.Key == keyboard.KeyArrowDown {
					rate = player.Rate() / 1.1
				}
				if err := player.SetRate(rate); nil != err {
					r.AddDecoration(2, sideCol, "rate rejected", 120)
					break
				}
				if nil != audio {
					audio.setRate(rate)
				}
				r.AddDecoration(2, sideCol, fmt.Sprintf("%.2fx  ", rate), 120)
			}
		}

		player.Tick(delta.Seconds())
		status := player.Status()
		if status.State == playback.Stopped && status.AtEnd {
			return false
		}

		snap := smp.Sample(status)

		for _, c := range drawn {
			r.Fill(c.row, c.col, " ")
		}
		drawn = drawn[:0]

		// Hit bar
		for i := 0; i < laneCount; i++ {
			r.Fill(hitRow, laneCol(baseCol(i), snap, i, spacing), th.HitBarSymbol(i))
		}

		// Song progress across the top
		if duration > 0 {
			width := int(float64(columns) * status.Time / duration)
			for i := 0; i < width; i++ {
				r.Fill(1, i+1, "─")
			}
		}

		for _, sn := range snap.Notes {
			note := sn.Note
			col := laneCol(baseCol(note.Lane), snap, note.Lane, spacing)

			row := hitRow - int(math.Round(sn.EasedProgress*float64(travel)))
			if sn.Progress < 0 {
				// Past the bar: keep linear motion downward and fade out.
				row = hitRow - int(math.Round(sn.Progress*float64(travel)))
			}

			if note.Kind == game.Hold {
				tailRow := hitRow - int(math.Round(sn.EasedProgress*float64(travel)))
				if sn.TailProgress >= 0 {
					tailRow = hitRow - int(math.Round(math.Min(sn.TailProgress, 1)*float64(travel)))
				}
				for br := tailRow; br < row; br++ {
					if br > 1 && br < rows {
						r.FillColor(br, col, th.NoteColor(note.Lane, note.Kind), th.HoldBodySymbol())
						drawn = append(drawn, cell{br, col})
					}
				}
			}

			if row <= 1 || row >= rows {
				continue
			}
			color := th.NoteColor(note.Lane, note.Kind)
			if sn.Progress < 0 && *config.Lookbehind > 0 {
				color = th.FadedNoteColor(note.Lane, note.Kind, -sn.Progress**config.Lookahead / *config.Lookbehind)
			}
			r.FillColor(row, col, color, th.NoteSymbol(note.Lane, note.Kind))
			drawn = append(drawn, cell{row, col})
		}

		r.Fill(4, sideCol, fmt.Sprintf("    Song:  %v", chart.Meta.SongName))
		r.Fill(5, sideCol, fmt.Sprintf("   State:  %-8v", status.State))
		r.Fill(6, sideCol, fmt.Sprintf("    Time:  %7.2fs / %.2fs", status.Time, duration))
		r.Fill(7, sideCol, fmt.Sprintf("    Beat:  %8.3f", snap.Beat))
		r.Fill(8, sideCol, fmt.Sprintf("    Rate:  %5.2fx", status.Rate))
		r.Fill(9, sideCol, fmt.Sprintf("  Scroll:  %8.3f", snap.Scroll))
		r.Fill(10, sideCol, fmt.Sprintf(" Visible:  %4v / %v", len(snap.Notes), len(chart.Notes())))

		return true
	})

	return nil
}

// laneCol offsets the lane's resting column by its x automation, scaled
// to the lane spacing.
func laneCol(base int, snap sampler.Snapshot, lane int, spacing int) int {
	if lane >= len(snap.LaneX) {
		return base
	}
	return base + int(math.Round(snap.LaneX[lane]*float64(spacing)))
}

// songAudio wraps the decoded song stream so playback commands can gate
// and retune it. Decoding itself is beep's problem.
type songAudio struct {
	streamer  beep.StreamSeekCloser
	format    beep.Format
	resampler *beep.Resampler
	ctrl      *beep.Ctrl
}

func openAudio(mp3File, oggFile string) (*songAudio, error) {
	audioFile := mp3File
	if oggFile != "" {
		audioFile = oggFile
	}
	if audioFile == "" {
		return nil, nil
	}

	f, err := os.Open(audioFile)
	if nil != err {
		return nil, err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	if oggFile != "" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		return nil, err
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		return nil, err
	}

	resampler := beep.ResampleRatio(4, *config.Rate, streamer)
	ctrl := &beep.Ctrl{Streamer: resampler}
	return &songAudio{streamer: streamer, format: format, resampler: resampler, ctrl: ctrl}, nil
}

func (a *songAudio) start() {
	speaker.Play(a.ctrl)
}

func (a *songAudio) setPaused(paused bool) {
	speaker.Lock()
	a.ctrl.Paused = paused
	speaker.Unlock()
}

func (a *songAudio) setRate(rate float64) {
	speaker.Lock()
	a.resampler.SetRatio(rate)
	speaker.Unlock()
}

func (a *songAudio) seek(seconds float64) {
	speaker.Lock()
	if err := a.streamer.Seek(a.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))); nil != err {
		log.Println("unable to seek audio", err)
	}
	speaker.Unlock()
}

func (a *songAudio) close() {
	if err := a.streamer.Close(); nil != err {
		log.Println("unable to close audio stream", err)
	}
}
