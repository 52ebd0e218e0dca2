package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/collide/internal/dynamo"
)

const (
	SampleRate = 44100
	BufferSize = 512
)

// Processor turns collision events into short percussive clicks. Frames
// report through OnFrame on the simulation thread; the portaudio callback
// consumes the pending triggers.
type Processor struct {
	Stream *portaudio.Stream

	speedScale float64

	mu             sync.Mutex
	pendingContact float64
	pendingWall    float64

	// callback-thread state
	contactEnv, wallEnv     float64
	contactPhase, wallPhase float64
	FilterState             [2]float64

	Active bool
}

func NewProcessor(speedLimit float64) *Processor {
	if speedLimit <= 0 {
		speedLimit = 1
	}
	return &Processor{speedScale: 1 / speedLimit}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}

	// output only
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start stream: %w", err)
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// OnFrame queues a click for the frame's hardest contact and a lower
// thump when any body hit a wall.
func (a *Processor) OnFrame(bodies []dynamo.Body, stats dynamo.FrameStats, t float64) {
	contact := 0.0
	if stats.Contacts > 0 {
		contact = math.Min(math.Abs(stats.PeakApproach)*a.speedScale, 1)
	}
	wall := 0.0
	if stats.WallHits > 0 {
		wall = math.Min(0.2+0.05*float64(stats.WallHits), 0.6)
	}

	a.mu.Lock()
	a.pendingContact = math.Max(a.pendingContact, contact)
	a.pendingWall = math.Max(a.pendingWall, wall)
	a.mu.Unlock()
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

func (a *Processor) ProcessAudio(out [][]float32) {
	a.mu.Lock()
	if a.pendingContact > 0 {
		a.contactEnv = math.Max(a.contactEnv, a.pendingContact)
	}
	if a.pendingWall > 0 {
		a.wallEnv = math.Max(a.wallEnv, a.pendingWall)
	}
	a.pendingContact, a.pendingWall = 0, 0
	a.mu.Unlock()

	const (
		contactFreq = 880.0
		wallFreq    = 110.0
		vol         = 0.25
	)
	dt := 1.0 / float64(SampleRate)
	// ~30ms and ~80ms decay
	contactDecay := math.Exp(-dt / 0.03)
	wallDecay := math.Exp(-dt / 0.08)

	for i := range out[0] {
		s := a.contactEnv*math.Sin(2*math.Pi*a.contactPhase) +
			a.wallEnv*math.Sin(2*math.Pi*a.wallPhase)

		a.contactPhase += contactFreq * dt
		a.contactPhase -= math.Floor(a.contactPhase)
		a.wallPhase += wallFreq * dt
		a.wallPhase -= math.Floor(a.wallPhase)
		a.contactEnv *= contactDecay
		a.wallEnv *= wallDecay

		a.FilterState[0] = lpf(s, 2400, dt, a.FilterState[0])
		a.FilterState[1] = lpf(s, 1800, dt, a.FilterState[1])

		out[0][i] = float32(a.FilterState[0] * vol)
		out[1][i] = float32(a.FilterState[1] * vol)
	}
}
