package impl

import (
	"context"
	"log/slog"
	"time"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/repository"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when a user tries to access a device they don't own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
)

type deviceService struct {
	deviceRepo  repository.DeviceRepository
	permissions usecase.PermissionUsecase
	logger      *slog.Logger
}

// NewDeviceService creates a new device service instance. Any change to a
// device's token or reported permission invalidates the user's cached
// permission gate.
func NewDeviceService(deviceRepo repository.DeviceRepository, permissions usecase.PermissionUsecase, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:  deviceRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	permission := deviceInfo.Permission
	if permission == "" {
		permission = entity.PermissionUnsupported
	}
	if !permission.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown permission %q", permission)
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	// Same hardware id re-registers in place
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateDeviceToken(ctx, device.ID, deviceInfo.FCMToken, permission); err != nil {
			return nil, errors.Wrap(err, "failed to update device token")
		}
		s.permissions.Invalidate(userID)

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   deviceInfo.Platform,
		Permission: permission,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}
	s.permissions.Invalidate(userID)

	s.logger.Info("[Device] Registered device",
		slog.String("user_id", userID.String()),
		slog.String("platform", device.Platform),
		slog.String("permission", string(permission)),
	)

	return device, nil
}

// UpdateDeviceToken updates the FCM token and reported permission of a device
func (s *deviceService) UpdateDeviceToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string, permission entity.PermissionStatus) error {
	if !permission.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown permission %q", permission)
	}

	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateDeviceToken(ctx, deviceID, fcmToken, permission); err != nil {
		return errors.Wrap(err, "failed to update device token")
	}
	s.permissions.Invalidate(userID)

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}
	s.permissions.Invalidate(userID)

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, ErrDeviceUnauthorized
	}

	return device, nil
}
