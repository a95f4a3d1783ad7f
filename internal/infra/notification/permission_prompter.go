package notification

import (
	"context"
	"log/slog"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/repository"
	"carebridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// permissionRequestType tags the data message asking a device to show the OS prompt
const permissionRequestType = "permission_request"

type devicePermissionPrompter struct {
	deviceRepo repository.DeviceRepository
	notifier   service.NotificationService
	logger     *slog.Logger
}

// NewDevicePermissionPrompter derives a user's notification permission from
// what their active devices last reported. notifier may be nil.
func NewDevicePermissionPrompter(
	deviceRepo repository.DeviceRepository,
	notifier service.NotificationService,
	logger *slog.Logger,
) service.PermissionPrompter {
	return &devicePermissionPrompter{
		deviceRepo: deviceRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (p *devicePermissionPrompter) Status(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error) {
	devices, err := p.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return entity.PermissionUnsupported, errors.Wrap(err, "failed to fetch devices")
	}

	return aggregatePermission(devices), nil
}

// Prompt asks every push-capable device that has not granted permission to
// show the OS prompt. The answer arrives later as a device update, so the
// returned status is the one currently known.
func (p *devicePermissionPrompter) Prompt(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error) {
	devices, err := p.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return entity.PermissionUnsupported, errors.Wrap(err, "failed to fetch devices")
	}

	status := aggregatePermission(devices)
	if status == entity.PermissionGranted || p.notifier == nil {
		return status, nil
	}

	for _, device := range devices {
		if device.FCMToken == "" || device.Permission == entity.PermissionGranted {
			continue
		}

		err := p.notifier.SendSingleNotification(ctx, device.FCMToken, "", "", map[string]string{
			"type": permissionRequestType,
		})
		if err != nil {
			p.logger.Warn("[Permission] Failed to send permission request",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return status, nil
}

// aggregatePermission is granted when any device granted, denied when some
// device can receive push but none granted, and unsupported otherwise.
func aggregatePermission(devices []*entity.UserDevice) entity.PermissionStatus {
	status := entity.PermissionUnsupported
	for _, device := range devices {
		switch {
		case device.Permission == entity.PermissionGranted && device.FCMToken != "":
			return entity.PermissionGranted
		case device.FCMToken != "":
			status = entity.PermissionDenied
		}
	}

	return status
}
