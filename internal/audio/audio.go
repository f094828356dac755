package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// tone generates a sine wave at the given frequency and volume
func tone(freq, vol float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * vol
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel) with a
// linear fade-out. The paddle cue repeats often, so the tail must not click.
func squareWave(freq, vol float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	numSamples := total
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := vol * float64(numSamples) / float64(total)
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayPaddleHit plays the sound for balls bouncing off a paddle. Callers
// rate-limit it: with a full pool there can be hundreds of hits per tick.
func PlayPaddleHit() {
	if !initialized {
		return
	}
	// High-pitched short tick, kept quiet: it recurs all game long
	speaker.Play(squareWave(880, 0.12, 40*time.Millisecond))
}

// PlayLaunch plays the cue for the ball pool launching
func PlayLaunch() {
	if !initialized {
		return
	}
	// Rising sine sweep, the loudest cue: it fires once per ten seconds
	go func() {
		speaker.Play(tone(330, 0.3, 80*time.Millisecond))
		time.Sleep(80 * time.Millisecond)
		speaker.Play(tone(440, 0.3, 80*time.Millisecond))
		time.Sleep(80 * time.Millisecond)
		speaker.Play(tone(660, 0.35, 120*time.Millisecond))
	}()
}

// PlayScore plays the sound when a side scores
func PlayScore() {
	if !initialized {
		return
	}
	// Descending tone for score
	go func() {
		speaker.Play(squareWave(660, 0.2, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(440, 0.2, 100*time.Millisecond))
		time.Sleep(100 * time.Millisecond)
		speaker.Play(squareWave(330, 0.2, 150*time.Millisecond))
	}()
}
