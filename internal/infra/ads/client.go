package ads

import (
	"context"
	"log/slog"
	"sync"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/errors"

	"github.com/google/uuid"
)

// clientAd is played by the device. Load and Show only mark the ad as
// requested; the device reports progress through ClientHub.Dispatch.
type clientAd struct {
	*emitter

	id     uuid.UUID
	userID uuid.UUID
	hub    *ClientHub
}

func (a *clientAd) ID() uuid.UUID {
	return a.id
}

func (a *clientAd) Load(_ context.Context) error {
	if a.isDestroyed() {
		return domainerrors.ErrAdLoadFailed.WrapMessage("ad destroyed")
	}

	return nil
}

func (a *clientAd) Show(_ context.Context) error {
	if a.isDestroyed() {
		return domainerrors.ErrAdShowFailed.WrapMessage("ad destroyed")
	}

	return nil
}

func (a *clientAd) Destroy() {
	if a.destroy() {
		a.hub.remove(a)
	}
}

// ClientHub tracks the live device-played ad of each user.
type ClientHub struct {
	logger *slog.Logger

	mu  sync.Mutex
	ads map[uuid.UUID]*clientAd
}

func NewClientHub(logger *slog.Logger) *ClientHub {
	return &ClientHub{
		logger: logger,
		ads:    make(map[uuid.UUID]*clientAd),
	}
}

// newAd registers a fresh ad for userID, destroying the one it replaces.
func (h *ClientHub) newAd(userID uuid.UUID) *clientAd {
	ad := &clientAd{
		emitter: newEmitter(),
		id:      uuid.New(),
		userID:  userID,
		hub:     h,
	}

	h.mu.Lock()
	previous := h.ads[userID]
	h.ads[userID] = ad
	h.mu.Unlock()

	if previous != nil {
		previous.Destroy()
	}

	return ad
}

func (h *ClientHub) remove(ad *clientAd) {
	h.mu.Lock()
	if h.ads[ad.userID] == ad {
		delete(h.ads, ad.userID)
	}
	h.mu.Unlock()
}

// Dispatch delivers a device-reported event to the user's live ad. Handlers
// run on the calling goroutine, so it returns once the flow has reacted.
func (h *ClientHub) Dispatch(_ context.Context, userID uuid.UUID, event entity.AdEvent) error {
	if !event.Type.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown ad event %q", event.Type)
	}

	h.mu.Lock()
	ad := h.ads[userID]
	h.mu.Unlock()

	if ad == nil || !ad.emit(event) {
		return domainerrors.ErrNoActiveAd
	}

	h.logger.Debug("[Ads] Client event dispatched",
		slog.String("ad_id", ad.id.String()),
		slog.String("type", string(event.Type)),
	)

	return nil
}
