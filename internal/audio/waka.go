package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wakaCycle is one "wa" plus one "ka"
const wakaCycle = 270 * time.Millisecond

// WakaGenerator produces the endless two-tone chomp played while the actor
// walks. Each half cycle sweeps the pitch, down for "wa" and up for "ka".
type WakaGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	cycle int
	fade  int
	phase float64
}

// NewWakaGenerator creates a chomp generator around base frequency freq
func NewWakaGenerator(sr beep.SampleRate, freq float64) *WakaGenerator {
	return &WakaGenerator{
		sr:    sr,
		freq:  freq,
		cycle: max(sr.N(wakaCycle), 2),
		fade:  max(sr.N(5*time.Millisecond), 1),
	}
}

func (g *WakaGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.cycle / 2
	for i := range samples {
		p := g.pos % g.cycle

		// Position within the current half, 0..1
		var sweep float64
		if p < half {
			sweep = 1 - float64(p)/float64(half)
		} else {
			sweep = float64(p-half) / float64(g.cycle-half)
		}
		freq := g.freq * (0.5 + 0.5*sweep)

		// Short fade at each half boundary avoids clicks
		edge := math.Min(float64(p%half), float64(half-p%half)) / float64(g.fade)
		amplitude := 0.3 * math.Min(edge, 1)

		sample := amplitude * triangle(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *WakaGenerator) Err() error {
	return nil
}

// triangle maps a phase in [0, 1) onto a triangle wave in [-1, 1]
func triangle(phase float64) float64 {
	return 4*math.Abs(phase-0.5) - 1
}

// newVolume wraps s with a linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
