package impl

import (
	"context"
	"testing"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/repository"
	mockRepo "carebridge/internal/mocks/repository"
	mockUsecase "carebridge/internal/mocks/usecase"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	deviceRepo  *mockRepo.MockDeviceRepository
	permissions *mockUsecase.MockPermissionUsecase
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	permissions := mockUsecase.NewMockPermissionUsecase(t)
	service := NewDeviceService(deviceRepo, permissions, newTestLogger())

	return deviceServiceFixtures{
		service:     service,
		deviceRepo:  deviceRepo,
		permissions: permissions,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken:   "test-fcm-token",
		DeviceID:   "device-123",
		Platform:   "ios",
		Permission: entity.PermissionGranted,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	fx.permissions.EXPECT().Invalidate(userID).Return().Once()

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, entity.PermissionGranted, device.Permission)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_DefaultsToUnsupported(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)
	fx.permissions.EXPECT().Invalidate(userID).Return().Once()

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "web-1", Platform: "web"})
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionUnsupported, device.Permission)
}

func TestDeviceService_RegisterDevice_RejectsUnknownPermission(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{Permission: "maybe"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.ErrorContains(t, err, `unknown permission "maybe"`)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:         deviceID,
		UserID:     userID,
		FCMToken:   "old-token",
		DeviceID:   "device-123",
		Platform:   "ios",
		Permission: entity.PermissionDenied,
		IsActive:   true,
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken:   "new-fcm-token",
		DeviceID:   "device-123",
		Platform:   "ios",
		Permission: entity.PermissionGranted,
	}

	updatedDevice := &entity.UserDevice{
		ID:         deviceID,
		UserID:     userID,
		FCMToken:   "new-fcm-token",
		DeviceID:   "device-123",
		Platform:   "ios",
		Permission: entity.PermissionGranted,
		IsActive:   true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateDeviceToken(ctx, deviceID, "new-fcm-token", entity.PermissionGranted).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	fx.permissions.EXPECT().Invalidate(userID).Return().Once()

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.Equal(t, entity.PermissionGranted, device.Permission)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_RegisterDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
}

func TestDeviceService_UpdateDeviceToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "old-token"}, nil)

	fx.deviceRepo.EXPECT().
		UpdateDeviceToken(ctx, deviceID, "new-fcm-token", entity.PermissionDenied).
		Return(nil)

	fx.permissions.EXPECT().Invalidate(userID).Return().Once()

	err := fx.service.UpdateDeviceToken(ctx, userID, deviceID, "new-fcm-token", entity.PermissionDenied)
	require.NoError(t, err)
}

func TestDeviceService_UpdateDeviceToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateDeviceToken(ctx, uuid.New(), deviceID, "token", entity.PermissionGranted)
	assert.Equal(t, ErrDeviceNotFound, err)
}

func TestDeviceService_UpdateDeviceToken_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.UpdateDeviceToken(ctx, uuid.New(), deviceID, "token", entity.PermissionGranted)
	assert.Equal(t, ErrDeviceUnauthorized, err)
}

func TestDeviceService_UpdateDeviceToken_UpdateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().
		UpdateDeviceToken(ctx, deviceID, "token", entity.PermissionGranted).
		Return(errors.New("database error"))

	err := fx.service.UpdateDeviceToken(ctx, userID, deviceID, "token", entity.PermissionGranted)
	assert.ErrorContains(t, err, "failed to update device token")
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	fx.permissions.EXPECT().Invalidate(userID).Return().Once()

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New(), IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.Equal(t, ErrDeviceUnauthorized, err)
}
