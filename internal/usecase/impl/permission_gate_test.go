package impl

import (
	"context"
	"sync"
	"testing"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	mockSvc "carebridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPermissionGate_RequestIsIdempotentWhenGranted(t *testing.T) {
	prompter := mockSvc.NewMockPermissionPrompter(t)
	userID := uuid.New()
	ctx := context.Background()

	prompter.EXPECT().Status(ctx, userID).Return(entity.PermissionUnsupported, nil).Once()
	prompter.EXPECT().Prompt(ctx, userID).Return(entity.PermissionGranted, nil).Once()

	gate, err := NewPermissionGate(ctx, userID, prompter)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionUnsupported, gate.Current())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := gate.Request(ctx)
			assert.NoError(t, err)
			assert.Equal(t, entity.PermissionGranted, status)
		}()
	}
	wg.Wait()

	assert.Equal(t, entity.PermissionGranted, gate.Current())
}

func TestPermissionGate_PromptErrorKeepsCachedStatus(t *testing.T) {
	prompter := mockSvc.NewMockPermissionPrompter(t)
	userID := uuid.New()
	ctx := context.Background()

	prompter.EXPECT().Status(ctx, userID).Return(entity.PermissionDenied, nil).Once()
	prompter.EXPECT().Prompt(ctx, userID).Return(entity.PermissionUnsupported, errors.New("platform unavailable")).Once()

	gate, err := NewPermissionGate(ctx, userID, prompter)
	require.NoError(t, err)

	status, err := gate.Request(ctx)
	require.Error(t, err)
	assert.Equal(t, entity.PermissionDenied, status)
	assert.Equal(t, entity.PermissionDenied, gate.Current())
}

func TestPermissionService_RequestDeniedSurfacesError(t *testing.T) {
	prompter := mockSvc.NewMockPermissionPrompter(t)
	svc := NewPermissionService(prompter, newTestLogger())
	userID := uuid.New()

	prompter.EXPECT().Status(mock.Anything, userID).Return(entity.PermissionUnsupported, nil).Once()
	prompter.EXPECT().Prompt(mock.Anything, userID).Return(entity.PermissionDenied, nil).Once()

	status, err := svc.Request(context.Background(), userID)
	assert.Equal(t, entity.PermissionDenied, status)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	current, err := svc.Current(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, current)
}

func TestPermissionService_InvalidateRereadsStatus(t *testing.T) {
	prompter := mockSvc.NewMockPermissionPrompter(t)
	svc := NewPermissionService(prompter, newTestLogger())
	userID := uuid.New()

	prompter.EXPECT().Status(mock.Anything, userID).Return(entity.PermissionDenied, nil).Once()
	prompter.EXPECT().Status(mock.Anything, userID).Return(entity.PermissionGranted, nil).Once()

	current, err := svc.Current(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, current)

	// Cached until invalidated
	current, err = svc.Current(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, current)

	svc.Invalidate(userID)

	current, err = svc.Current(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, current)
}
