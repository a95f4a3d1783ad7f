package ads

import (
	"context"
	"sync"
	"time"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"

	"github.com/google/uuid"
)

// simulatedAd plays a timer driven ad: load, then loaded; show, then earned
// reward followed by closed. Events fire on timer goroutines, never inside
// Load or Show.
type simulatedAd struct {
	*emitter

	id    uuid.UUID
	delay time.Duration

	mu     sync.Mutex
	loaded bool
	timers []*time.Timer
}

func newSimulatedAd(delay time.Duration) *simulatedAd {
	return &simulatedAd{
		emitter: newEmitter(),
		id:      uuid.New(),
		delay:   delay,
	}
}

func (a *simulatedAd) ID() uuid.UUID {
	return a.id
}

func (a *simulatedAd) Load(_ context.Context) error {
	if a.isDestroyed() {
		return domainerrors.ErrAdLoadFailed.WrapMessage("ad destroyed")
	}

	a.schedule(func() {
		a.mu.Lock()
		a.loaded = true
		a.mu.Unlock()

		a.emit(entity.AdEvent{Type: entity.AdEventLoaded})
	})

	return nil
}

func (a *simulatedAd) Show(_ context.Context) error {
	a.mu.Lock()
	loaded := a.loaded
	a.mu.Unlock()

	if !loaded || a.isDestroyed() {
		return domainerrors.ErrAdShowFailed.WrapMessage("ad not loaded")
	}

	a.schedule(func() {
		a.emit(entity.AdEvent{Type: entity.AdEventEarnedReward})
		a.emit(entity.AdEvent{Type: entity.AdEventClosed})
	})

	return nil
}

func (a *simulatedAd) Destroy() {
	if !a.destroy() {
		return
	}

	a.mu.Lock()
	for _, timer := range a.timers {
		timer.Stop()
	}
	a.timers = nil
	a.mu.Unlock()
}

func (a *simulatedAd) schedule(fn func()) {
	a.mu.Lock()
	a.timers = append(a.timers, time.AfterFunc(a.delay, fn))
	a.mu.Unlock()
}
