package ads

import (
	"context"
	"time"

	"carebridge/config"
	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/service"
	"carebridge/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Factory creates rewarded ads of the configured provider.
type Factory struct {
	provider string
	delay    time.Duration
	hub      *ClientHub
}

func NewFactory(cfg *config.Config, hub *ClientHub) (service.RewardedAdFactory, error) {
	switch cfg.Ads.Provider {
	case constants.AdsProviderSimulated, constants.AdsProviderClient:
	default:
		return nil, errors.Errorf("unknown ads provider: %s", cfg.Ads.Provider)
	}

	return &Factory{
		provider: cfg.Ads.Provider,
		delay:    cfg.Ads.SimulatedDelay,
		hub:      hub,
	}, nil
}

func (f *Factory) NewRewardedAd(_ context.Context, userID uuid.UUID) (service.RewardedAd, error) {
	if f.provider == constants.AdsProviderClient {
		return f.hub.newAd(userID), nil
	}

	return newSimulatedAd(f.delay), nil
}

func newAdEventReporter(hub *ClientHub) service.AdEventReporter {
	return hub
}

// Module provides the ad factory and the client hub the API reports events to.
var Module = fx.Options(
	fx.Provide(
		NewClientHub,
		newAdEventReporter,
		NewFactory,
	),
)
