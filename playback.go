// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"sync/atomic"
	"time"
)

// PlaybackState is the player's lifecycle phase.
type PlaybackState int

const (
	// StateInit means the player has been constructed but Run has not
	// decoded anything yet.
	StateInit PlaybackState = iota

	// StateDisplaying means frames are being decoded and presented.
	StateDisplaying

	// StateTerminating means the animation is done (or was never a loop)
	// and the player is holding the last frame, waiting for cancellation.
	StateTerminating

	// StateDone means the surface has been cleared and Run has returned.
	StateDone
)

// String returns the state name for logging.
func (s PlaybackState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateDisplaying:
		return "displaying"
	case StateTerminating:
		return "terminating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// CancelToken requests cooperative shutdown of a running player. The player
// polls it once per frame iteration, so cancellation latency is bounded by
// one frame interval during display and by the coarse poll period while
// terminating.
type CancelToken struct {
	canceled atomic.Bool
}

// Cancel requests shutdown. Safe to call from any goroutine, repeatedly.
func (t *CancelToken) Cancel() {
	t.canceled.Store(true)
}

// Canceled reports whether Cancel has been called.
func (t *CancelToken) Canceled() bool {
	return t.canceled.Load()
}

// terminatePollInterval is the sleep between cancellation checks once the
// animation has finished. Responsiveness does not matter at that point, only
// not burning CPU.
const terminatePollInterval = time.Second

// PlayerConfig configures a Player. Store, Surface, and Cancel are
// mandatory.
type PlayerConfig struct {
	// Store is the encoded animation or static image to play.
	Store *FrameStore

	// Surface receives the decoded frames.
	Surface Surface

	// OffsetX and OffsetY shift the frame from its centered position.
	OffsetX int
	OffsetY int

	// Background, when true, fills the surface with BackgroundColor before
	// the first frame instead of leaving existing contents in place.
	Background bool

	// BackgroundColor is the fill color used when Background is set.
	BackgroundColor Pixel

	// BackgroundStore, when set, is a static store decoded once and blitted
	// centered under the animation before the first frame. It is decoded
	// after the BackgroundColor fill, so both can be combined.
	BackgroundStore *FrameStore

	// Logger receives player lifecycle events. Defaults to NoOpLogger.
	Logger Logger

	// Cancel is polled each iteration to stop playback.
	Cancel *CancelToken
}

// Player runs a FrameStore's playback loop against a Surface.
type Player struct {
	store   *FrameStore
	surface Surface
	fb      *FrameBuffer
	destX   int
	destY   int

	background bool
	bgColor    Pixel
	bgStore    *FrameStore
	bgBuffer   *FrameBuffer

	logger Logger
	cancel *CancelToken
	state  PlaybackState

	// Injected for tests. now feeds the delta-time computation and sleep
	// performs the inter-frame wait.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPlayer validates the configuration and prepares a player. The frame
// buffer is allocated here; Run itself does not allocate.
func NewPlayer(cfg PlayerConfig) (*Player, error) {
	if cfg.Store == nil {
		return nil, configurationError("NewPlayer", "store is required", nil)
	}
	if cfg.Surface == nil {
		return nil, configurationError("NewPlayer", "surface is required", nil)
	}
	if cfg.Cancel == nil {
		return nil, configurationError("NewPlayer", "cancel token is required", nil)
	}
	if cfg.Store.FrameCount() == 0 {
		return nil, configurationError("NewPlayer", "store has no frames", nil)
	}
	if err := cfg.Surface.Format().Validate(); err != nil {
		return nil, err
	}
	if cfg.Store.FrameCount() > 1 {
		iv := newInputValidator()
		if err := iv.ValidateInterval(cfg.Store.Interval); err != nil {
			return nil, err
		}
	}

	fb, err := NewFrameBuffer(cfg.Store.Width, cfg.Store.Height)
	if err != nil {
		return nil, err
	}

	var bgBuffer *FrameBuffer
	if cfg.BackgroundStore != nil {
		if cfg.BackgroundStore.FrameCount() != 1 {
			return nil, configurationError("NewPlayer",
				"background store must be a single static frame", nil)
		}
		bgBuffer, err = NewFrameBuffer(cfg.BackgroundStore.Width, cfg.BackgroundStore.Height)
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = &NoOpLogger{}
	}

	surfW, surfH := cfg.Surface.Size()
	return &Player{
		store:      cfg.Store,
		surface:    cfg.Surface,
		fb:         fb,
		destX:      (surfW-cfg.Store.Width)/2 + cfg.OffsetX,
		destY:      (surfH-cfg.Store.Height)/2 + cfg.OffsetY,
		background: cfg.Background,
		bgColor:    cfg.BackgroundColor,
		bgStore:    cfg.BackgroundStore,
		bgBuffer:   bgBuffer,
		logger:     logger,
		cancel:     cfg.Cancel,
		state:      StateInit,
		now:        time.Now,
		sleep:      time.Sleep,
	}, nil
}

// State returns the player's current lifecycle phase.
func (p *Player) State() PlaybackState {
	return p.state
}

// Run plays the store until the cancel token fires. Non-looping stores hold
// their last frame on screen after the sequence ends; looping stores wrap
// back to frame 0, whose Raw payload resets the delta chain. On return the
// surface has been cleared to black and presented.
func (p *Player) Run() error {
	p.logger.Info("playback starting",
		Field{Key: "frames", Value: p.store.FrameCount()},
		Field{Key: "method", Value: p.store.Method.String()},
		Field{Key: "loop", Value: p.store.Loop})

	if p.background {
		if err := Fill(p.surface, p.bgColor); err != nil {
			p.state = StateDone
			return err
		}
	}
	if p.bgStore != nil {
		p.bgStore.DecodeFrame(0, p.bgBuffer.pixels)
		surfW, surfH := p.surface.Size()
		bgX := (surfW - p.bgStore.Width) / 2
		bgY := (surfH - p.bgStore.Height) / 2
		if err := Blit(p.surface, p.bgBuffer, bgX, bgY); err != nil {
			p.state = StateDone
			return err
		}
	}

	p.state = StateDisplaying
	frame := 0
	frameStart := p.now()

	for !p.cancel.Canceled() {
		p.store.DecodeFrame(frame, p.fb.pixels)
		if err := Blit(p.surface, p.fb, p.destX, p.destY); err != nil {
			p.state = StateDone
			return err
		}
		if err := p.surface.Present(); err != nil {
			p.state = StateDone
			return resourceError("Run", "failed to present frame", err)
		}

		frame++
		if frame >= p.store.FrameCount() {
			if !p.store.Loop {
				break
			}
			frame = 0
		}

		// Delta-time pacing: subtract decode and blit cost from the
		// nominal interval so frame rate stays stable under load.
		elapsed := p.now().Sub(frameStart)
		if wait := p.store.Interval - elapsed; wait > 0 {
			p.sleep(wait)
		}
		frameStart = p.now()
	}

	p.state = StateTerminating
	p.logger.Debug("sequence complete, holding last frame")
	for !p.cancel.Canceled() {
		p.sleep(terminatePollInterval)
	}

	if err := Fill(p.surface, PixelBlack); err != nil {
		p.state = StateDone
		return err
	}
	err := p.surface.Present()
	p.state = StateDone
	p.logger.Info("playback finished")
	if err != nil {
		return resourceError("Run", "failed to present cleared surface", err)
	}
	return nil
}
