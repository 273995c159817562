package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// clicker plays a short knock for every resolved collision.
type clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newClicker() *clicker {
	return &clicker{mixer: &beep.Mixer{}}
}

func (c *clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Click queues n knocks, at most four at a time.
func (c *clicker) Click(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || n <= 0 {
		return
	}
	for range min(n, 4) {
		speaker.Lock()
		c.mixer.Add(beep.Take(sampleRate.N(time.Millisecond*40), newKnock(sampleRate, 660)))
		speaker.Unlock()
	}
}

func (c *clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// knock is a sine burst with an exponential decay.
type knock struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newKnock(sr beep.SampleRate, freq float64) *knock {
	return &knock{sr: sr, freq: freq}
}

func (k *knock) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(k.pos) / float64(k.sr)
		s := 0.2 * math.Sin(2*math.Pi*k.freq*t) * math.Exp(-t*80)
		samples[i][0] = s
		samples[i][1] = s
		k.pos++
	}
	return len(samples), true
}

func (k *knock) Err() error {
	return nil
}
