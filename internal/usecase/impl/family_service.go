package impl

import (
	"context"
	"log/slog"
	"strings"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/repository"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type familyService struct {
	familyRepo  repository.FamilyRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewFamilyService creates the pairing and display-name resolver
func NewFamilyService(
	familyRepo repository.FamilyRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.FamilyUsecase {
	return &familyService{
		familyRepo:  familyRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (s *familyService) GuardianPairing(ctx context.Context, guardianID uuid.UUID) (*entity.Pairing, error) {
	group, err := s.familyRepo.FindLatestGroupByGuardian(ctx, guardianID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPairingNotFound)
		}

		return nil, errors.Wrap(err, "failed to find guardian group")
	}

	return &entity.Pairing{
		GroupID:    group.ID,
		GuardianID: guardianID,
		ParentID:   group.ParentID,
	}, nil
}

func (s *familyService) ParentPairing(ctx context.Context, parentID uuid.UUID) (*entity.Pairing, error) {
	group, err := s.familyRepo.FindGroupByParent(ctx, parentID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPairingNotFound)
		}

		return nil, errors.Wrap(err, "failed to find parent group")
	}

	member, err := s.familyRepo.FindPrimaryMember(ctx, group.ID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPairingNotFound)
		}

		return nil, errors.Wrap(err, "failed to find primary guardian")
	}

	return &entity.Pairing{
		GroupID:    group.ID,
		GuardianID: member.GuardianID,
		ParentID:   parentID,
	}, nil
}

func (s *familyService) GuardianGroupIDs(ctx context.Context, guardianID uuid.UUID) ([]uuid.UUID, error) {
	groupIDs, err := s.familyRepo.FindGroupIDsByGuardian(ctx, guardianID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardian groups")
	}

	return groupIDs, nil
}

// DisplayName never fails; lookup errors and blank names yield fallback.
func (s *familyService) DisplayName(ctx context.Context, profileID uuid.UUID, fallback string) string {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			s.logger.Warn("[Family] Profile lookup failed, using fallback name",
				slog.String("profile_id", profileID.String()),
				slog.Any("error", err),
			)
		}

		return fallback
	}

	if name := strings.TrimSpace(profile.Name); name != "" {
		return name
	}

	return fallback
}
