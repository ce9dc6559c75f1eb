package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"git.lost.host/meutraa/chrzl/internal/ease"
	"git.lost.host/meutraa/chrzl/internal/game"
	"git.lost.host/meutraa/chrzl/internal/timing"
)

// ErrParse is returned for documents that are not valid chart JSON.
// There is no partial recovery; a bad file yields no chart at all.
var ErrParse = errors.New("chart parse error")

type DefaultParser struct{}

type keyPointDoc struct {
	Beat  float64 `json:"beat"`
	Value float64 `json:"value"`
	Ease  uint8   `json:"easeType"`
}

type tempoDoc struct {
	Beat float64 `json:"beat"`
	BPM  float64 `json:"bpm"`
}

type noteDoc struct {
	Beat          float64 `json:"beat"`
	Lane          int     `json:"lane"`
	Kind          uint8   `json:"kind"`
	DurationBeats float64 `json:"durationBeats"`
}

type laneDoc struct {
	XPoints []keyPointDoc `json:"xPositionKeyPoints"`
}

type chartDoc struct {
	SongName string        `json:"songName"`
	Offset   float64       `json:"offset"`
	TempoMap []tempoDoc    `json:"tempoMap"`
	Notes    []noteDoc     `json:"notes"`
	Lanes    []laneDoc     `json:"lanes"`
	Speed    []keyPointDoc `json:"speedKeyPoints"`
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseBytes(data)
}

// ParseBytes decodes and validates one chart document. Malformed JSON
// is an ErrParse; data that decodes but breaks a chart invariant
// surfaces the model's own validation error.
func (p *DefaultParser) ParseBytes(data []byte) (*game.Chart, error) {
	var doc chartDoc
	if err := json.Unmarshal(data, &doc); nil != err {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	tempo := make([]timing.TempoEvent, len(doc.TempoMap))
	for i, t := range doc.TempoMap {
		tempo[i] = timing.TempoEvent{Beat: t.Beat, BPM: t.BPM}
	}

	notes := make([]*game.Note, len(doc.Notes))
	for i, n := range doc.Notes {
		notes[i] = &game.Note{
			Beat:          n.Beat,
			Lane:          n.Lane,
			Kind:          game.Kind(n.Kind),
			DurationBeats: n.DurationBeats,
		}
	}

	lanes := make([]game.Lane, len(doc.Lanes))
	for i, l := range doc.Lanes {
		lanes[i] = game.Lane{XPoints: keyPoints(l.XPoints)}
	}

	meta := game.Meta{SongName: doc.SongName, Offset: doc.Offset}
	return game.NewChart(meta, tempo, notes, lanes, keyPoints(doc.Speed))
}

func keyPoints(docs []keyPointDoc) []timing.KeyPoint {
	if len(docs) == 0 {
		return nil
	}
	points := make([]timing.KeyPoint, len(docs))
	for i, d := range docs {
		points[i] = timing.KeyPoint{Beat: d.Beat, Value: d.Value, Ease: ease.Kind(d.Ease)}
	}
	return points
}
